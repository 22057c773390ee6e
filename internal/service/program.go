package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/generator"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// Generation parameters, fixed by product decision rather than configurable:
// the prompt promises "massimo 1500 parole", and 4000 output tokens is
// comfortably above that for Italian text.
const (
	maxOutputTokens = 4000

	// generationTimeout bounds the one call in the system that can block
	// for a long time. The provider call must never hold a request hostage
	// indefinitely.
	generationTimeout = 60 * time.Second
)

// systemInstruction fixes the assistant's persona and register for every
// generation. Kept in Italian — the programs it produces are Italian.
const systemInstruction = `Sei un esperto consulente politico per elezioni studentesche italiane.
Crei programmi elettorali coinvolgenti, realistici e specifici per studenti delle scuole superiori.
Il programma deve essere professionale ma accessibile agli studenti, con proposte concrete e realizzabili.`

// GenerateRequest is the structured input to program generation.
//
// None of the list fields are validated for emptiness on purpose: a
// candidate with no declared issues still gets a program — the model
// fills the gaps. Only the inputs' PLACEMENT in the prompt is fixed.
type GenerateRequest struct {
	CandidateName  string   `json:"candidate_name"`
	ClassYear      string   `json:"class_year"`
	MainIssues     []string `json:"main_issues"`
	PersonalValues []string `json:"personal_values"`
	SchoolContext  string   `json:"school_context"`
}

// ProgramService drafts electoral programs via the text generator and
// persists the ones a client decides to save. Generation and persistence
// are deliberately separate operations: generating returns raw text and
// stores NOTHING — the client reviews, possibly edits, then saves.
type ProgramService struct {
	repo   repository.ProgramRepository
	gen    generator.TextGenerator // nil when no provider credential is configured
	logger *slog.Logger
}

// NewProgramService creates a ProgramService. Pass a nil generator when
// the provider credential is missing; Generate then fails with a
// configuration error without attempting any network call, and every
// other operation is unaffected.
func NewProgramService(repo repository.ProgramRepository, gen generator.TextGenerator, logger *slog.Logger) *ProgramService {
	return &ProgramService{
		repo:   repo,
		gen:    gen,
		logger: logger,
	}
}

// Generate drafts an electoral program from the structured request.
//
// The prompt is deterministic: same request, same prompt, byte for byte.
// Whatever variety the output has comes from the model, not from us.
// The result is returned raw — not persisted, not parsed, not validated
// beyond the provider's own non-empty check.
func (s *ProgramService) Generate(ctx context.Context, req GenerateRequest) (*generator.Result, error) {
	if s.gen == nil {
		// Checked before any network activity — a missing credential is a
		// deployment problem, not a provider outage.
		return nil, apperror.ProviderMisconfigured("text generation is not configured: missing API key")
	}

	// Session id ties together the log lines of one generation.
	genID := xid.New().String()

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	s.logger.Info("program generation started",
		slog.String("genID", genID),
		slog.String("candidate", req.CandidateName),
	)

	result, err := s.gen.Generate(ctx, generator.Request{
		Prompt:            buildPrompt(req),
		SystemInstruction: systemInstruction,
		MaxOutputTokens:   maxOutputTokens,
	})
	if err != nil {
		s.logger.Error("program generation failed",
			slog.String("genID", genID),
			slog.String("error", err.Error()),
		)
		// The provider's error text never reaches the client; it lives in
		// the wrapped chain for the logs only.
		return nil, apperror.ProviderUnavailable("program generation failed", err)
	}

	s.logger.Info("program generation finished",
		slog.String("genID", genID),
		slog.String("model", result.Model),
		slog.Int("chars", len(result.Text)),
	)

	return result, nil
}

// buildPrompt renders the five request fields into the fixed template.
// List inputs are comma-joined; empty lists render as empty sections the
// model fills on its own.
func buildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`Crea un programma elettorale completo per le elezioni studentesche per:
- Candidato: %s
- Anno scolastico: %s
- Principali questioni: %s
- Valori personali: %s
- Contesto scolastico: %s

Il programma deve includere:
1. Titolo accattivante
2. Presentazione del candidato
3. Visione per la scuola
4. 5-7 proposte concrete e specifiche
5. Conclusione motivante

Scrivi in italiano, stile professionale ma giovanile. Massimo 1500 parole.`,
		req.CandidateName,
		req.ClassYear,
		strings.Join(req.MainIssues, ", "),
		strings.Join(req.PersonalValues, ", "),
		req.SchoolContext,
	)
}

// Save persists a program a client decided to keep — generated or
// hand-written; GeneratedByAI records which.
func (s *ProgramService) Save(ctx context.Context, program *model.Program) (*model.Program, error) {
	program.Title = strings.TrimSpace(program.Title)

	if program.CandidateID == "" {
		return nil, apperror.ValidationFailed("candidate_id", "candidate_id is required")
	}
	if program.Title == "" {
		return nil, apperror.ValidationFailed("title", "program title is required")
	}
	if program.Content == "" {
		return nil, apperror.ValidationFailed("content", "program content is required")
	}

	if err := s.repo.CreateProgram(ctx, program); err != nil {
		s.logger.Error("failed to save program",
			slog.String("candidateID", program.CandidateID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("saving program: %w", err)
	}

	s.logger.Info("program saved",
		slog.String("id", program.ID),
		slog.String("candidateID", program.CandidateID),
		slog.Bool("generatedByAI", program.GeneratedByAI),
	)

	return program, nil
}

// GetByID retrieves a single saved program. Not exposed over HTTP, kept
// for completeness and tests.
func (s *ProgramService) GetByID(ctx context.Context, id string) (*model.Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "program ID is required")
	}

	return s.repo.GetProgramByID(ctx, id)
}

// ListByCandidate returns all saved programs for one candidate.
func (s *ProgramService) ListByCandidate(ctx context.Context, candidateID string) ([]model.Program, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return nil, apperror.ValidationFailed("candidate_id", "candidate_id is required")
	}

	programs, err := s.repo.ListProgramsByCandidate(ctx, candidateID)
	if err != nil {
		s.logger.Error("failed to list programs",
			slog.String("candidateID", candidateID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing programs: %w", err)
	}

	return programs, nil
}
