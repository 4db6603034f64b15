// File: services/intelligence/generator.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mahatta/config"

	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey  = errors.New("text generation API key not configured")
	ErrEmptyCandidate = errors.New("text generation returned no candidate text")
)

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the generation constraints shared by every adapter.
type Options struct {
	Model           string
	Endpoint        string
	MaxOutputTokens int32
	Temperature     float32
}

// Disabled is used when no credential is configured. It is not an error condition.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) { return "", nil }

// NewFromConfig picks the adapter described by cfg. A missing credential yields Disabled.
func NewFromConfig(ctx context.Context, cfg config.Config, logger *zap.Logger) (Generator, error) {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		logger.Info("No text generation credential configured; rationale generation disabled")
		return Disabled{}, nil
	}

	opts := Options{
		Model:           cfg.GeminiModel,
		Endpoint:        cfg.GeminiEndpoint,
		MaxOutputTokens: cfg.GeminiMaxTokens,
		Temperature:     cfg.GeminiTemperature,
	}

	switch strings.ToLower(cfg.GeminiTransport) {
	case "", "rest":
		return NewGeminiRESTClient(&http.Client{Timeout: cfg.GeminiTimeout}, apiKey, opts)
	case "sdk":
		return NewGeminiClient(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unknown GEMINI_TRANSPORT %q", cfg.GeminiTransport)
	}
}
