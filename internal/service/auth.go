// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// Services accept primitives and return domain models plus apperror
// values; they know nothing about HTTP, and handlers know nothing about
// SQL. Every dependency comes in through the constructor so tests can
// substitute fakes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/auth"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	tokens    auth.TokenPolicy
	logger    *slog.Logger
}

// compile-time check: AuthService is the TokenVerifier the middleware wants.
var _ auth.TokenVerifier = (*AuthService)(nil)

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	tokens auth.TokenPolicy,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a new account and issues its first bearer token.
//
// The returned User carries the token — registration doubles as the first
// login, so the client never has to call /login right after /register.
//
// Email collisions surface as apperror.ErrDuplicate; the decision is made
// by the database's UNIQUE constraint, not a check-then-insert race.
func (s *AuthService) Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}
	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if !role.Valid() {
		return nil, apperror.ValidationFailed("role",
			"role must be one of: visitor, candidate, admin, designer")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", err.Error())
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		Token:        s.tokens.Issue(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Duplicate is an expected outcome, not a system failure — let the
		// repository's domain error through without logging it as an error.
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// Login authenticates by email and password and rotates the bearer token.
//
// TOKEN REPLACEMENT:
// Each successful login writes a fresh token over the stored one, which
// invalidates every previously issued token for that user. The write is
// unconditional and keyed by user ID, so concurrent logins simply
// last-write-wins — no read-modify-write race exists.
//
// Wrong email and wrong password produce the same error: a login endpoint
// must not reveal which half of the credential pair was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token := s.tokens.Issue()
	if err := s.users.UpdateUserToken(ctx, user.ID, token); err != nil {
		s.logger.Error("failed to rotate token",
			slog.String("userID", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("rotating token: %w", err)
	}
	user.Token = token

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return user, nil
}

// VerifyToken resolves a bearer token to its user by exact match.
// No expiry is enforced — a token works until the next login replaces it.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	return s.users.GetUserByToken(ctx, token)
}
