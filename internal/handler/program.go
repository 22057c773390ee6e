package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/service"
)

// ProgramHandler serves program generation and storage endpoints.
type ProgramHandler struct {
	programService *service.ProgramService
	logger         *slog.Logger
}

func NewProgramHandler(programService *service.ProgramService, logger *slog.Logger) *ProgramHandler {
	return &ProgramHandler{
		programService: programService,
		logger:         logger,
	}
}

// generatedProgramPayload is the response body of a generation request.
// model_used rather than model: the field names what produced the text,
// not a model in the data-model sense.
type generatedProgramPayload struct {
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
	ModelUsed   string    `json:"model_used"`
}

// HandleGenerate drafts an electoral program with the AI provider and
// returns the raw text. NOTHING is persisted here — the client reviews
// the draft and saves it (or not) via HandleSave.
func (h *ProgramHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	result, err := h.programService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("program", generatedProgramPayload{
		Content:     result.Text,
		GeneratedAt: result.GeneratedAt,
		ModelUsed:   result.Model,
	}))
}

// HandleSave persists a program, hand-written or previously generated.
func (h *ProgramHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var program model.Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	saved, err := h.programService.Save(r.Context(), &program)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("program saved",
		slog.String("program_id", saved.ID),
		slog.String("candidate_id", saved.CandidateID),
	)

	writeJSON(w, http.StatusOK, envelope("program", saved))
}

// HandleListByCandidate returns all saved programs for one candidate.
func (h *ProgramHandler) HandleListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")

	programs, err := h.programService.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("programs", programs))
}
