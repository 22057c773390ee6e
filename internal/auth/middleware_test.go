package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakif/election-manager/internal/model"
)

// fakeVerifier resolves a single known token.
type fakeVerifier struct {
	token string
	user  *model.User
}

func (f *fakeVerifier) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	if token == f.token {
		return f.user, nil
	}
	return nil, errors.New("unknown token")
}

// echoHandler records whether it ran and which user it saw.
type echoHandler struct {
	called bool
	user   *model.User
	okUser bool
}

func (h *echoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.user, h.okUser = UserFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestRequireAuth(t *testing.T) {
	verifier := &fakeVerifier{
		token: "good-token",
		user:  &model.User{ID: "user-1", Name: "Mario", Role: model.RoleAdmin},
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCalled bool
	}{
		{"valid bearer token", "Bearer good-token", http.StatusOK, true},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized, false},
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed header", "good-token", http.StatusUnauthorized, false},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &echoHandler{}
			protected := RequireAuth(verifier)(inner)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			protected.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if inner.called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", inner.called, tt.wantCalled)
			}
			if tt.wantCalled && (!inner.okUser || inner.user.ID != "user-1") {
				t.Errorf("handler saw user %+v, want user-1", inner.user)
			}
		})
	}
}

func TestOptionalAuth_PassesThroughAnonymous(t *testing.T) {
	verifier := &fakeVerifier{token: "good-token", user: &model.User{ID: "user-1"}}
	inner := &echoHandler{}
	wrapped := OptionalAuth(verifier)(inner)

	// No token: request proceeds, context stays anonymous.
	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if !inner.called {
		t.Error("handler was not called for anonymous request")
	}
	if inner.okUser {
		t.Errorf("anonymous request carried user %+v", inner.user)
	}
}

func TestOptionalAuth_AttachesKnownUser(t *testing.T) {
	verifier := &fakeVerifier{token: "good-token", user: &model.User{ID: "user-1"}}
	inner := &echoHandler{}
	wrapped := OptionalAuth(verifier)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)

	if !inner.okUser || inner.user.ID != "user-1" {
		t.Errorf("handler saw user %+v, want user-1", inner.user)
	}
}
