package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sakif/election-manager/internal/generator"
	"github.com/sakif/election-manager/internal/handler"
	"github.com/sakif/election-manager/internal/model"
)

// MockGenerator implements a canned text generator for handler testing
// without hitting the provider.
type MockGenerator struct {
	CapturedReq generator.Request
	ReturnRes   *generator.Result
	ReturnErr   error
}

func (m *MockGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Result, error) {
	m.CapturedReq = req
	if m.ReturnErr != nil {
		return nil, m.ReturnErr
	}
	return m.ReturnRes, nil
}

func programRouter(h *handler.ProgramHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/generate-program", h.HandleGenerate)
	r.Post("/api/programs", h.HandleSave)
	r.Get("/api/programs/{candidateID}", h.HandleListByCandidate)
	return r
}

func TestProgramHandler_HandleGenerate(t *testing.T) {
	genBody := `{
		"candidate_name": "Mario Rossi",
		"class_year": "4B",
		"main_issues": ["mensa", "palestra"],
		"personal_values": ["trasparenza"],
		"school_context": "liceo scientifico di provincia"
	}`

	t.Run("successful generation", func(t *testing.T) {
		mockGen := &MockGenerator{
			ReturnRes: &generator.Result{
				Text:        "UN VOTO PER CAMBIARE\n\nCari studenti...",
				Model:       "gemini-2.5-pro-preview-05-06",
				GeneratedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			},
		}
		env := newTestEnv(t, mockGen)
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		req := httptest.NewRequest(http.MethodPost, "/api/generate-program", bytes.NewBufferString(genBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Success bool `json:"success"`
			Program struct {
				Content     string    `json:"content"`
				GeneratedAt time.Time `json:"generated_at"`
				ModelUsed   string    `json:"model_used"`
			} `json:"program"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, "UN VOTO PER CAMBIARE\n\nCari studenti...", res.Program.Content)
		assert.Equal(t, "gemini-2.5-pro-preview-05-06", res.Program.ModelUsed)
		assert.False(t, res.Program.GeneratedAt.IsZero())

		// The request fields must all reach the prompt.
		assert.Contains(t, mockGen.CapturedReq.Prompt, "Mario Rossi")
		assert.Contains(t, mockGen.CapturedReq.Prompt, "mensa, palestra")
		assert.Contains(t, mockGen.CapturedReq.Prompt, "trasparenza")
		assert.Contains(t, mockGen.CapturedReq.Prompt, "liceo scientifico di provincia")
	})

	t.Run("no generator configured", func(t *testing.T) {
		env := newTestEnv(t, nil)
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		req := httptest.NewRequest(http.MethodPost, "/api/generate-program", bytes.NewBufferString(genBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Contains(t, res.Detail, "not configured")
	})

	t.Run("provider failure maps to 502 without leaking internals", func(t *testing.T) {
		mockGen := &MockGenerator{
			ReturnErr: errors.New("rpc error: connection refused to 10.0.0.7:443"),
		}
		env := newTestEnv(t, mockGen)
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		req := httptest.NewRequest(http.MethodPost, "/api/generate-program", bytes.NewBufferString(genBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.NotContains(t, rr.Body.String(), "10.0.0.7")
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t, &MockGenerator{})
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		req := httptest.NewRequest(http.MethodPost, "/api/generate-program", bytes.NewBufferString(`{"candidate_name":`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProgramHandler_HandleSave(t *testing.T) {
	t.Run("valid program", func(t *testing.T) {
		env := newTestEnv(t, nil)
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		raw := `{"candidate_id":"cand-1","title":"Il mio programma","content":"Testo completo","generated_by_ai":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/programs", bytes.NewBufferString(raw))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Success bool          `json:"success"`
			Program model.Program `json:"program"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Program.ID)
		assert.True(t, res.Program.GeneratedByAI)
		assert.False(t, res.Program.CreatedAt.IsZero())
	})

	t.Run("missing content", func(t *testing.T) {
		env := newTestEnv(t, nil)
		router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

		raw := `{"candidate_id":"cand-1","title":"Senza testo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/programs", bytes.NewBufferString(raw))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProgramHandler_HandleListByCandidate(t *testing.T) {
	env := newTestEnv(t, nil)
	router := programRouter(handler.NewProgramHandler(env.programs, testLogger()))

	save := func(candidateID, title string) {
		raw, _ := json.Marshal(map[string]any{
			"candidate_id":    candidateID,
			"title":           title,
			"content":         "testo",
			"generated_by_ai": false,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/programs", bytes.NewReader(raw))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("save program returned status %d: %s", rr.Code, rr.Body.String())
		}
	}

	save("cand-1", "Programma uno")
	save("cand-2", "Programma di un altro")

	req := httptest.NewRequest(http.MethodGet, "/api/programs/cand-1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Programs []model.Program `json:"programs"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	if assert.Len(t, res.Programs, 1) {
		assert.Equal(t, "Programma uno", res.Programs[0].Title)
	}
}
