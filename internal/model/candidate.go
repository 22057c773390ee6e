package model

import "time"

// Candidate represents a participant standing for election.
//
// UserID references the account that created the profile — a reference,
// not ownership: a User can exist without ever becoming a Candidate.
//
// Photo holds a base64-encoded image. Storing the blob as text keeps the
// schema simple and matches how the frontend submits it; candidate photos
// are small enough that a TEXT column is fine.
//
// Candidates are create-and-read only — there are no update or delete
// operations anywhere in the system.
type Candidate struct {
	ID          string    `json:"id"          db:"id"`
	UserID      string    `json:"user_id"     db:"user_id"`
	Name        string    `json:"name"        db:"name"`
	ClassYear   string    `json:"class_year"  db:"class_year"`
	Description string    `json:"description" db:"description"`
	Photo       string    `json:"photo,omitempty"     db:"photo"`     // base64, optional
	Manifesto   string    `json:"manifesto,omitempty" db:"manifesto"` // optional
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}
