package model

import "time"

// Program is the electoral platform text associated with a candidate,
// authored manually or produced by the AI generator.
//
// GeneratedByAI records the provenance flag exactly as the client saved
// it — the server doesn't verify that AI-flagged content actually came
// from a generation call.
type Program struct {
	ID            string    `json:"id"           db:"id"`
	CandidateID   string    `json:"candidate_id" db:"candidate_id"`
	Title         string    `json:"title"        db:"title"`
	Content       string    `json:"content"      db:"content"`
	GeneratedByAI bool      `json:"generated_by_ai" db:"generated_by_ai"`
	CreatedAt     time.Time `json:"created_at"   db:"created_at"`
}

// DashboardStats aggregates the record counts shown on the admin dashboard.
type DashboardStats struct {
	TotalCandidates int `json:"total_candidates"`
	TotalCampaigns  int `json:"total_campaigns"`
	ActiveCampaigns int `json:"active_campaigns"`
	TotalPrograms   int `json:"total_programs"`
}
