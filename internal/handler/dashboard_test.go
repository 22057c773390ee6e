package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/election-manager/internal/handler"
	"github.com/sakif/election-manager/internal/model"
)

func TestDashboardHandler_HandleStats(t *testing.T) {
	env := newTestEnv(t, nil)
	h := handler.NewDashboardHandler(env.stats, testLogger())

	ctx := context.Background()

	for _, name := range []string{"Mario Rossi", "Lucia Bianchi"} {
		_, err := env.candidates.Create(ctx, &model.Candidate{
			UserID:    "user-1",
			Name:      name,
			ClassYear: "4B",
		})
		assert.NoError(t, err)
	}

	for _, status := range []model.CampaignStatus{model.CampaignActive, model.CampaignDraft, model.CampaignActive} {
		_, err := env.campaigns.Create(ctx, &model.Campaign{
			CandidateID: "cand-1",
			Title:       "Campagna",
			Status:      status,
		})
		assert.NoError(t, err)
	}

	_, err := env.programs.Save(ctx, &model.Program{
		CandidateID: "cand-1",
		Title:       "Programma",
		Content:     "testo",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rr := httptest.NewRecorder()
	h.HandleStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Success bool                 `json:"success"`
		Stats   model.DashboardStats `json:"stats"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Stats.TotalCandidates)
	assert.Equal(t, 3, res.Stats.TotalCampaigns)
	assert.Equal(t, 2, res.Stats.ActiveCampaigns)
	assert.Equal(t, 1, res.Stats.TotalPrograms)
}

func TestHandleRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.HandleRoot(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res map[string]string
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "running", res["status"])
	assert.NotEmpty(t, res["message"])
}
