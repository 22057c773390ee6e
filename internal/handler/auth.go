package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/auth"
	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/service"
)

// AuthHandler handles registration, login, and the authenticated-user
// lookup.
type AuthHandler struct {
	authService *service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the user shape returned by the auth endpoints. The
// password hash never appears and created_at is an internal detail the
// frontend doesn't use.
type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func toUserPayload(u *model.User) userPayload {
	return userPayload{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
		Token: u.Token,
	}
}

// HandleRegister creates a new user account. Registration doubles as a
// first login: the response already carries a usable token.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name, model.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	writeJSON(w, http.StatusOK, envelope("user", toUserPayload(user)))
}

// HandleLogin verifies credentials and rotates the user's token. Any
// previously issued token stops working.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid request body"))
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("user logged in", slog.String("user_id", user.ID))

	writeJSON(w, http.StatusOK, envelope("user", toUserPayload(user)))
}

// HandleMe returns the user identified by the bearer token. The auth
// middleware has already verified the token, so the user is always
// present in the context here.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	writeJSON(w, http.StatusOK, envelope("user", toUserPayload(user)))
}
