package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// CandidateService handles business logic for candidate profiles.
// Candidates are create-and-read only — no update or delete exists.
type CandidateService struct {
	repo   repository.CandidateRepository
	logger *slog.Logger
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(repo repository.CandidateRepository, logger *slog.Logger) *CandidateService {
	return &CandidateService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new candidate profile.
// Photo and manifesto are optional; everything else is required.
func (s *CandidateService) Create(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.ClassYear = strings.TrimSpace(candidate.ClassYear)

	if candidate.UserID == "" {
		return nil, apperror.ValidationFailed("user_id", "user_id is required")
	}
	if candidate.Name == "" {
		return nil, apperror.ValidationFailed("name", "candidate name is required")
	}
	if candidate.ClassYear == "" {
		return nil, apperror.ValidationFailed("class_year", "class_year is required")
	}

	if err := s.repo.CreateCandidate(ctx, candidate); err != nil {
		s.logger.Error("failed to create candidate",
			slog.String("name", candidate.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating candidate: %w", err)
	}

	s.logger.Info("candidate created",
		slog.String("id", candidate.ID),
		slog.String("name", candidate.Name),
	)

	return candidate, nil
}

// GetByID retrieves a candidate profile.
// Returns apperror.ErrNotFound if the candidate doesn't exist.
func (s *CandidateService) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "candidate ID is required")
	}

	return s.repo.GetCandidateByID(ctx, id)
}

// List returns every candidate. No pagination; a school election has a
// handful of candidates at most.
func (s *CandidateService) List(ctx context.Context) ([]model.Candidate, error) {
	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		s.logger.Error("failed to list candidates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	return candidates, nil
}
