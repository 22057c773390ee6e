package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// compile-time check that *DB implements repository.CandidateRepository
var _ repository.CandidateRepository = (*DB)(nil)

// CreateCandidate inserts a new candidate profile.
//
// POINTER RECEIVER ARGUMENT:
// We take *model.Candidate so the caller sees the generated ID and
// timestamp after the call — the repository owns both.
func (db *DB) CreateCandidate(ctx context.Context, candidate *model.Candidate) error {
	candidate.ID = uuid.NewString()
	candidate.CreatedAt = time.Now().UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO candidates (id, user_id, name, class_year, description, photo, manifesto, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		candidate.ID,
		candidate.UserID,
		candidate.Name,
		candidate.ClassYear,
		candidate.Description,
		candidate.Photo,
		candidate.Manifesto,
		candidate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating candidate: %w", err)
	}

	return nil
}

// GetCandidateByID retrieves a single candidate.
// Returns apperror.ErrNotFound if no candidate exists with that ID.
func (db *DB) GetCandidateByID(ctx context.Context, id string) (*model.Candidate, error) {
	var c model.Candidate

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, name, class_year, description, photo, manifesto, created_at
		 FROM candidates WHERE id = ?`,
		id,
	).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.ClassYear,
		&c.Description,
		&c.Photo,
		&c.Manifesto,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("candidate", id)
		}
		return nil, fmt.Errorf("sqlite: getting candidate %s: %w", id, err)
	}

	return &c, nil
}

// ListCandidates returns every candidate in insertion order.
// No pagination — a school election has tens of candidates at most.
func (db *DB) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, name, class_year, description, photo, manifesto, created_at
		 FROM candidates
		 ORDER BY created_at ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]model.Candidate, 0)
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.ClassYear,
			&c.Description, &c.Photo, &c.Manifesto, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating candidates: %w", err)
	}

	return candidates, nil
}
