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

// CampaignService handles business logic for campaigns.
type CampaignService struct {
	repo   repository.CampaignRepository
	logger *slog.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(repo repository.CampaignRepository, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new campaign.
//
// STATUS VALIDATION, NOT TRANSITION VALIDATION:
// The status must be one of draft/active/completed, but ANY of the three
// may be set at creation — a campaign can be born "completed". With no
// update operation in the system there are no transitions to police.
func (s *CampaignService) Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	campaign.Title = strings.TrimSpace(campaign.Title)

	if campaign.CandidateID == "" {
		return nil, apperror.ValidationFailed("candidate_id", "candidate_id is required")
	}
	if campaign.Title == "" {
		return nil, apperror.ValidationFailed("title", "campaign title is required")
	}
	if !campaign.Status.Valid() {
		return nil, apperror.ValidationFailed("status",
			"status must be one of: draft, active, completed")
	}

	if err := s.repo.CreateCampaign(ctx, campaign); err != nil {
		s.logger.Error("failed to create campaign",
			slog.String("candidateID", campaign.CandidateID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	s.logger.Info("campaign created",
		slog.String("id", campaign.ID),
		slog.String("candidateID", campaign.CandidateID),
		slog.String("status", string(campaign.Status)),
	)

	return campaign, nil
}

// GetByID retrieves a single campaign. Not exposed over HTTP, but the
// repository contract supports it and tests rely on it.
func (s *CampaignService) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "campaign ID is required")
	}

	return s.repo.GetCampaignByID(ctx, id)
}

// ListByCandidate returns all campaigns belonging to one candidate.
// An unknown candidate yields an empty list, not an error — the listing
// endpoint doesn't check candidate existence, matching the original API.
func (s *CampaignService) ListByCandidate(ctx context.Context, candidateID string) ([]model.Campaign, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return nil, apperror.ValidationFailed("candidate_id", "candidate_id is required")
	}

	campaigns, err := s.repo.ListCampaignsByCandidate(ctx, candidateID)
	if err != nil {
		s.logger.Error("failed to list campaigns",
			slog.String("candidateID", candidateID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	return campaigns, nil
}
