package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// compile-time check that *DB implements repository.CampaignRepository
var _ repository.CampaignRepository = (*DB)(nil)

// CreateCampaign inserts a new campaign.
//
// JSON COLUMNS:
// Events and materials are marshalled to JSON text. They're never filtered
// or joined on — only stored and returned with the campaign — so the blob
// keeps their submitted order for free and avoids two child tables.
func (db *DB) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	campaign.ID = uuid.NewString()
	campaign.CreatedAt = time.Now().UTC()

	if campaign.Events == nil {
		campaign.Events = []model.CampaignEvent{}
	}
	if campaign.Materials == nil {
		campaign.Materials = []model.CampaignMaterial{}
	}

	events, err := json.Marshal(campaign.Events)
	if err != nil {
		return fmt.Errorf("sqlite: encoding campaign events: %w", err)
	}
	materials, err := json.Marshal(campaign.Materials)
	if err != nil {
		return fmt.Errorf("sqlite: encoding campaign materials: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO campaigns (id, candidate_id, title, description, status, events, materials, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		campaign.ID,
		campaign.CandidateID,
		campaign.Title,
		campaign.Description,
		string(campaign.Status),
		string(events),
		string(materials),
		campaign.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating campaign: %w", err)
	}

	return nil
}

// GetCampaignByID retrieves a single campaign.
// Returns apperror.ErrNotFound if no campaign exists with that ID.
func (db *DB) GetCampaignByID(ctx context.Context, id string) (*model.Campaign, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, candidate_id, title, description, status, events, materials, created_at
		 FROM campaigns WHERE id = ?`,
		id,
	)

	campaign, err := scanCampaign(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("campaign", id)
		}
		return nil, fmt.Errorf("sqlite: getting campaign %s: %w", id, err)
	}

	return campaign, nil
}

// ListCampaignsByCandidate returns the campaigns belonging to one
// candidate, in insertion order. Campaigns of other candidates never
// appear — the WHERE clause is the only filter the system needs.
func (db *DB) ListCampaignsByCandidate(ctx context.Context, candidateID string) ([]model.Campaign, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, candidate_id, title, description, status, events, materials, created_at
		 FROM campaigns
		 WHERE candidate_id = ?
		 ORDER BY created_at ASC, rowid ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing campaigns for candidate %s: %w", candidateID, err)
	}
	defer rows.Close()

	campaigns := make([]model.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning campaign row: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating campaigns: %w", err)
	}

	return campaigns, nil
}

// scanCampaign reads one campaign row and decodes the JSON columns.
// Taking the Scan function (rather than *sql.Row / *sql.Rows) lets the
// single-row and multi-row paths share the column mapping.
func scanCampaign(scan func(dest ...any) error) (*model.Campaign, error) {
	var c model.Campaign
	var status, events, materials string

	if err := scan(
		&c.ID,
		&c.CandidateID,
		&c.Title,
		&c.Description,
		&status,
		&events,
		&materials,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = model.CampaignStatus(status)
	if err := json.Unmarshal([]byte(events), &c.Events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	if err := json.Unmarshal([]byte(materials), &c.Materials); err != nil {
		return nil, fmt.Errorf("decoding materials: %w", err)
	}

	return &c, nil
}
