// Package ai wraps the external completion providers that generate crash
// diagnoses. The rest of the system treats a provider as an opaque
// text-in/text-out collaborator.
package ai

import (
	"context"
	"errors"
)

// Provider name constants.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrMissingModel    = errors.New("model is required")
	ErrMissingBaseURL  = errors.New("base url is required for compatible provider")
	ErrInvalidProvider = errors.New("invalid provider")
)

// Config selects and configures a completion provider.
type Config struct {
	// Provider is one of the Provider* constants; empty defaults to openai.
	Provider string
	APIKey   string
	// BaseURL overrides the provider endpoint; required for compatible.
	BaseURL string
	Model   string
}

// Provider generates a completion for a prompt pair.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete sends the prompts and returns the full response text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewProvider creates the provider described by cfg.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
