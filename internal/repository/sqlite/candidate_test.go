package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/election-manager/internal/apperror"
	"github.com/sakif/election-manager/internal/model"
)

func createTestCandidate(t *testing.T, db *DB, userID, name string) *model.Candidate {
	t.Helper()
	candidate := &model.Candidate{
		UserID:      userID,
		Name:        name,
		ClassYear:   "5B",
		Description: "Representative for the science track",
	}
	if err := db.CreateCandidate(context.Background(), candidate); err != nil {
		t.Fatalf("failed to create test candidate: %v", err)
	}
	return candidate
}

func TestCreateCandidate(t *testing.T) {
	db := newTestDB(t)

	candidate := &model.Candidate{
		UserID:      "user-1",
		Name:        "Giulia Bianchi",
		ClassYear:   "4A",
		Description: "More club funding",
		Photo:       "aGVsbG8=",
		Manifesto:   "A school for everyone",
	}

	if err := db.CreateCandidate(context.Background(), candidate); err != nil {
		t.Fatalf("CreateCandidate() error = %v", err)
	}

	if candidate.ID == "" {
		t.Error("CreateCandidate() did not set candidate.ID")
	}
	if candidate.CreatedAt.IsZero() {
		t.Error("CreateCandidate() did not set candidate.CreatedAt")
	}
}

func TestGetCandidateByID_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	original := &model.Candidate{
		UserID:      "user-1",
		Name:        "Giulia Bianchi",
		ClassYear:   "4A",
		Description: "More club funding",
		Photo:       "aGVsbG8=",
		Manifesto:   "A school for everyone",
	}
	if err := db.CreateCandidate(context.Background(), original); err != nil {
		t.Fatalf("CreateCandidate() error = %v", err)
	}

	got, err := db.GetCandidateByID(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("GetCandidateByID() error = %v", err)
	}

	// Every field survives the round trip.
	if got.ID != original.ID ||
		got.UserID != original.UserID ||
		got.Name != original.Name ||
		got.ClassYear != original.ClassYear ||
		got.Description != original.Description ||
		got.Photo != original.Photo ||
		got.Manifesto != original.Manifesto {
		t.Errorf("GetCandidateByID() = %+v, want %+v", got, original)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, original.CreatedAt)
	}
}

func TestGetCandidateByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetCandidateByID(context.Background(), "no-such-id")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("GetCandidateByID() error = %v, want ErrNotFound", err)
	}
}

func TestListCandidates(t *testing.T) {
	db := newTestDB(t)

	// Empty database → empty (non-nil) slice.
	candidates, err := db.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("ListCandidates() error = %v", err)
	}
	if candidates == nil || len(candidates) != 0 {
		t.Fatalf("ListCandidates() on empty db = %v, want empty slice", candidates)
	}

	first := createTestCandidate(t, db, "user-1", "Giulia Bianchi")
	second := createTestCandidate(t, db, "user-2", "Luca Verdi")

	candidates, err = db.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("ListCandidates() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("ListCandidates() returned %d candidates, want 2", len(candidates))
	}

	// Insertion order.
	if candidates[0].ID != first.ID || candidates[1].ID != second.ID {
		t.Errorf("ListCandidates() order = [%s, %s], want [%s, %s]",
			candidates[0].ID, candidates[1].ID, first.ID, second.ID)
	}
}
