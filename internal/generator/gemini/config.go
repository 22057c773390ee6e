package gemini

// DefaultModel pins the generation model. The model id is part of the API
// response (model_used), so changing it is a visible behaviour change for
// clients, not just an internal upgrade.
const DefaultModel = "gemini-2.5-pro-preview-05-06"

// Config holds the Gemini client configuration.
type Config struct {
	// APIKey authenticates against the Gemini API. Required — New fails
	// without it, and the caller decides whether that's fatal (it isn't:
	// the server runs fine with generation disabled).
	APIKey string

	// Model overrides DefaultModel when set.
	Model string
}

// DefaultConfig returns a Config with the fixed model and the key left
// empty for the caller to fill from the environment.
func DefaultConfig() Config {
	return Config{Model: DefaultModel}
}
