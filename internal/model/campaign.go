package model

import "time"

// CampaignStatus enumerates a campaign's lifecycle stage.
//
// The system deliberately enforces no transition rules — any of the three
// values may be set at creation and never changes automatically. Campaigns
// have no update operation, so a status is effectively fixed for life.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the three recognised statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignCompleted:
		return true
	}
	return false
}

// CampaignEvent is a free-form entry in a campaign's event list
// (a debate, an assembly, a poster session, ...).
type CampaignEvent struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// CampaignMaterial is a free-form entry in a campaign's material list
// (a flyer, a video, a slogan, ...).
type CampaignMaterial struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Campaign represents a candidate's organised set of promotional
// activities and materials.
//
// Events and Materials keep their submitted order. The SQLite repository
// stores both slices as JSON text columns — they're opaque to every query
// we run, so a serialised blob beats two extra tables.
type Campaign struct {
	ID          string             `json:"id"          db:"id"`
	CandidateID string             `json:"candidate_id" db:"candidate_id"`
	Title       string             `json:"title"       db:"title"`
	Description string             `json:"description" db:"description"`
	Status      CampaignStatus     `json:"status"      db:"status"`
	Events      []CampaignEvent    `json:"events"      db:"events"`
	Materials   []CampaignMaterial `json:"materials"   db:"materials"`
	CreatedAt   time.Time          `json:"created_at"  db:"created_at"`
}
