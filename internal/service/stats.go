package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// StatsService serves the dashboard counters. Thin by design — the
// aggregation lives in one repository query path, but keeping the layer
// means the handler stays wired like every other one.
type StatsService struct {
	repo   repository.StatsRepository
	logger *slog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repository.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		logger: logger,
	}
}

// Dashboard returns the current record counts.
func (s *StatsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.logger.Error("failed to compute dashboard stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("computing dashboard stats: %w", err)
	}

	return stats, nil
}
