// Package generator abstracts the external text-generation capability.
//
// The service layer depends only on the TextGenerator interface, so the
// real Gemini-backed implementation (subpackage gemini) can be replaced
// with a deterministic stub in tests — the same pattern we'd use for any
// external collaborator we can't run in CI.
package generator

import (
	"context"
	"time"
)

// Request carries one generation call to the provider.
type Request struct {
	Prompt            string // the user-visible prompt
	SystemInstruction string // fixed tone/format instruction
	MaxOutputTokens   int32  // soft ceiling on the completion size
}

// Result is the provider's completion plus the metadata callers surface
// to clients.
type Result struct {
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TextGenerator is the narrow interface to an opaque text-generation
// capability. Implementations must honour ctx cancellation — this is the
// one call in the system that blocks for a non-trivial duration.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
