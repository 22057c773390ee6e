package handler

// RESPONSE HELPERS:
// Every success body has the same envelope: {"success": true, <key>: <payload>}.
// Every error body has the same shape: {"detail": "<message>"} with the
// status carrying the error class. The frontend never has to guess which
// fields to expect.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/election-manager/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// envelope builds a success body: {"success": true, key: payload}.
func envelope(key string, payload any) map[string]any {
	return map[string]any{
		"success": true,
		key:       payload,
	}
}

// writeJSON sends a JSON response with the given status code.
// Headers and status MUST be set before the first body write — Encode
// writes, so it goes last.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and
// sends it.
//
// This is the single place where the service layer's error taxonomy meets
// HTTP. errors.Is walks the wrapped chain (AppError implements Unwrap),
// so services can wrap freely with fmt.Errorf("...: %w", err).
//
// Anything that isn't a typed AppError collapses to a generic 500 — raw
// error text can contain SQL, file paths, or provider internals and must
// never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrDuplicate):
			// The original API used 400 for duplicate registration, not
			// 409 — clients depend on it.
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrProviderMisconfigured):
			status = http.StatusInternalServerError
		case errors.Is(err, apperror.ErrProviderUnavailable):
			status = http.StatusBadGateway
		}

		writeJSON(w, status, ErrorResponse{Detail: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Detail: "internal server error",
	})
}
