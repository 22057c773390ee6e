package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` verifies at compile time that *DB implements the
// interface. Without it, a missing method only surfaces wherever *DB is
// passed as a UserRepository — which could be much later.
var _ repository.UserRepository = (*DB)(nil)

// Create inserts a new user.
//
// DUPLICATE DETECTION:
// We rely on the UNIQUE constraint on users.email rather than a
// SELECT-then-INSERT check — the constraint is atomic, a pre-check is not.
// modernc.org/sqlite reports the violation as a plain error whose text
// contains "UNIQUE constraint failed", so we match on that to translate it
// into the domain's duplicate error.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, token, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		string(user.Role),
		user.Token,
		user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return apperror.Duplicate("user", user.Email)
		}
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by their internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return db.getUser(ctx, `id = ?`, id, id)
}

// GetUserByEmail retrieves a user by email (exact, case-sensitive match).
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return db.getUser(ctx, `email = ?`, email, email)
}

// GetUserByToken resolves a bearer token to its user. Tokens replaced by a
// later login no longer appear in any row, so stale tokens simply miss.
func (db *DB) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		// The empty string is the "no token issued" default for every row —
		// never let it match.
		return nil, apperror.NotFound("user", "<empty token>")
	}
	return db.getUser(ctx, `token = ?`, token, "<token>")
}

// getUser fetches a single user by an arbitrary WHERE clause.
// notFoundKey is used in the error message instead of the lookup value so
// that tokens don't end up in logs.
func (db *DB) getUser(ctx context.Context, where string, value, notFoundKey string) (*model.User, error) {
	var u model.User
	var role string

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, token, created_at
		 FROM users WHERE `+where,
		value,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&role,
		&u.Token,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", notFoundKey)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", notFoundKey, err)
	}

	u.Role = model.Role(role)
	return &u, nil
}

// UpdateUserToken overwrites the user's current bearer token.
// Unconditional single-row UPDATE keyed by user ID — the previous token is
// gone the moment this commits.
func (db *DB) UpdateUserToken(ctx context.Context, userID, token string) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE users SET token = ? WHERE id = ?`,
		token, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating token for user %s: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("user", userID)
	}

	return nil
}
