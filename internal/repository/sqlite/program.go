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

// compile-time check that *DB implements repository.ProgramRepository
var _ repository.ProgramRepository = (*DB)(nil)

// CreateProgram inserts a saved electoral program.
// SQLite has no boolean type — generated_by_ai is an INTEGER 0/1 and the
// driver converts Go bools transparently.
func (db *DB) CreateProgram(ctx context.Context, program *model.Program) error {
	program.ID = uuid.NewString()
	program.CreatedAt = time.Now().UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO programs (id, candidate_id, title, content, generated_by_ai, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		program.ID,
		program.CandidateID,
		program.Title,
		program.Content,
		program.GeneratedByAI,
		program.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating program: %w", err)
	}

	return nil
}

// GetProgramByID retrieves a single program.
// Returns apperror.ErrNotFound if no program exists with that ID.
func (db *DB) GetProgramByID(ctx context.Context, id string) (*model.Program, error) {
	var p model.Program

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, candidate_id, title, content, generated_by_ai, created_at
		 FROM programs WHERE id = ?`,
		id,
	).Scan(
		&p.ID,
		&p.CandidateID,
		&p.Title,
		&p.Content,
		&p.GeneratedByAI,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("program", id)
		}
		return nil, fmt.Errorf("sqlite: getting program %s: %w", id, err)
	}

	return &p, nil
}

// ListProgramsByCandidate returns one candidate's programs in insertion order.
func (db *DB) ListProgramsByCandidate(ctx context.Context, candidateID string) ([]model.Program, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, candidate_id, title, content, generated_by_ai, created_at
		 FROM programs
		 WHERE candidate_id = ?
		 ORDER BY created_at ASC, rowid ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing programs for candidate %s: %w", candidateID, err)
	}
	defer rows.Close()

	programs := make([]model.Program, 0)
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(
			&p.ID, &p.CandidateID, &p.Title, &p.Content,
			&p.GeneratedByAI, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning program row: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating programs: %w", err)
	}

	return programs, nil
}
