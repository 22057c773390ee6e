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

// CandidateHandler serves candidate profile endpoints.
type CandidateHandler struct {
	candidateService *service.CandidateService
	logger           *slog.Logger
}

func NewCandidateHandler(candidateService *service.CandidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
		logger:           logger,
	}
}

// HandleCreate registers a new candidate profile. The body is decoded
// straight into the model; server-assigned fields (id, created_at) are
// overwritten by the service regardless of what the client sends.
func (h *CandidateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var candidate model.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	created, err := h.candidateService.Create(r.Context(), &candidate)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("candidate created", slog.String("candidate_id", created.ID))

	writeJSON(w, http.StatusOK, envelope("candidate", created))
}

// HandleList returns every registered candidate.
func (h *CandidateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.candidateService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("candidates", candidates))
}

// HandleGetByID returns a single candidate by its path ID.
func (h *CandidateHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "candidateID")

	candidate, err := h.candidateService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("candidate", candidate))
}
