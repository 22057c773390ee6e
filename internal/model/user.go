// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Role identifies what a user is allowed to do in the election system.
//
// WHY A NAMED STRING TYPE?
// A plain string would work, but a named type documents intent and lets us
// attach methods (like Valid). The underlying representation is still a
// string, so it serialises to JSON and stores in SQLite without any
// conversion code.
type Role string

const (
	RoleVisitor   Role = "visitor"
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
	RoleDesigner  Role = "designer"
)

// Valid reports whether r is one of the four recognised roles.
func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleCandidate, RoleAdmin, RoleDesigner:
		return true
	}
	return false
}

// User represents a registered account.
//
// WHY PasswordHash AND NOT Password?
// We never store the plain-text password. Registration hashes it with
// bcrypt (see internal/auth/password.go) and only the hash is persisted.
// The `json:"-"` tag guarantees the hash can never leak into an API
// response, even if a handler serialises the whole struct by accident.
//
// Token is the current bearer credential. Exactly one token is active per
// user: each successful login OVERWRITES it, which also invalidates the
// previous one (token lookup is an exact match against this column).
type User struct {
	ID           string    `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"` // unique, case-sensitive as stored
	PasswordHash string    `json:"-"          db:"password_hash"`
	Name         string    `json:"name"       db:"name"`
	Role         Role      `json:"role"       db:"role"`
	Token        string    `json:"token,omitempty" db:"token"` // empty until first issued
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
