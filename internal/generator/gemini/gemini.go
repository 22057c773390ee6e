// Package gemini implements generator.TextGenerator on Google's Gemini API
// via the official google.golang.org/genai SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/sakif/election-manager/internal/generator"
)

// compile-time check that *Client implements generator.TextGenerator
var _ generator.TextGenerator = (*Client)(nil)

// Client wraps the genai SDK client behind the TextGenerator interface.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a Gemini-backed text generator.
//
// Fails if no API key is configured — callers treat that as "generation
// unavailable", not as a startup error; the rest of the API works without
// a key.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	// The SDK only validates the config shape here; the key itself is
	// checked by the API on the first call.
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate runs one completion. No retries — if the provider fails, the
// caller hears about it exactly once per request.
func (c *Client) Generate(ctx context.Context, req generator.Request) (*generator.Result, error) {
	start := time.Now()

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(req.Prompt),
		cfg,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini: generating content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		// A completion with no text (safety block, empty candidates) is a
		// provider failure from the caller's point of view.
		return nil, fmt.Errorf("gemini: provider returned an empty completion")
	}

	c.logger.Debug("gemini completion finished",
		slog.String("model", c.model),
		slog.Int("chars", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	return &generator.Result{
		Text:        text,
		Model:       c.model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
