package auth

import "github.com/google/uuid"

// TokenPolicy issues bearer tokens and decides how long they stay valid.
//
// WHY AN INTERFACE FOR SOMETHING THIS SMALL?
// The contract today is deliberately loose: tokens are opaque random
// strings with no expiry, valid until the next login replaces them. That
// looseness is isolated behind this interface so a stricter policy
// (expiring tokens, signed tokens, rotation) can be swapped in without
// touching any call site — the service layer only ever asks for Issue().
type TokenPolicy interface {
	// Issue returns a fresh opaque bearer token.
	Issue() string
}

// UUIDTokens issues 128-bit random UUIDv4 tokens. Collision-free for
// practical purposes and unguessable, which is all an opaque bearer
// credential needs. Validity is implicit: a token works exactly as long
// as it sits on the user's row.
type UUIDTokens struct{}

// NewUUIDTokens returns the default token policy.
func NewUUIDTokens() UUIDTokens {
	return UUIDTokens{}
}

// Issue returns a new random token.
func (UUIDTokens) Issue() string {
	return uuid.NewString()
}
