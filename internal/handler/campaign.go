package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/service"
)

// CampaignHandler serves campaign endpoints.
type CampaignHandler struct {
	campaignService *service.CampaignService
	logger          *slog.Logger
}

func NewCampaignHandler(campaignService *service.CampaignService, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// HandleCreate creates a campaign, with events and materials embedded in
// the body.
func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var campaign model.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	created, err := h.campaignService.Create(r.Context(), &campaign)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("campaign created",
		slog.String("campaign_id", created.ID),
		slog.String("candidate_id", created.CandidateID),
		slog.String("status", string(created.Status)),
	)

	writeJSON(w, http.StatusOK, envelope("campaign", created))
}

// HandleListByCandidate returns all campaigns belonging to one candidate.
// An unknown candidate id simply yields an empty list, matching the
// repository contract.
func (h *CampaignHandler) HandleListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")

	campaigns, err := h.campaignService.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("campaigns", campaigns))
}
