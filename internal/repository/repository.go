// Package repository declares the storage interfaces the service layer
// depends on. The concrete SQLite implementation lives in the sqlite
// subpackage; tests substitute in-memory fakes.
//
// METHOD NAMING:
// One *sqlite.DB implements every interface here, so method names carry
// the entity (CreateUser, CreateCandidate, ...) instead of relying on the
// receiver type to disambiguate.
package repository

import (
	"context"

	"github.com/sakif/election-manager/internal/model"
)

// UserRepository persists user accounts and their bearer tokens.
type UserRepository interface {
	// CreateUser inserts a new user. Returns apperror.ErrDuplicate if the
	// email is already registered.
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetUserByToken resolves the user holding the given bearer token.
	// Exact match only — a token replaced by a later login no longer resolves.
	GetUserByToken(ctx context.Context, token string) (*model.User, error)
	// UpdateUserToken overwrites the user's current token. Unconditional
	// single-row write, so concurrent logins cannot race a read-modify-write.
	UpdateUserToken(ctx context.Context, userID, token string) error
}

type CandidateRepository interface {
	CreateCandidate(ctx context.Context, candidate *model.Candidate) error
	GetCandidateByID(ctx context.Context, id string) (*model.Candidate, error)
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	GetCampaignByID(ctx context.Context, id string) (*model.Campaign, error)
	ListCampaignsByCandidate(ctx context.Context, candidateID string) ([]model.Campaign, error)
}

type ProgramRepository interface {
	CreateProgram(ctx context.Context, program *model.Program) error
	GetProgramByID(ctx context.Context, id string) (*model.Program, error)
	ListProgramsByCandidate(ctx context.Context, candidateID string) ([]model.Program, error)
}

// StatsRepository aggregates counts across the other collections for the
// dashboard. Kept separate so fakes that only care about one entity don't
// have to implement it.
type StatsRepository interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
