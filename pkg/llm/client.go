package llm

import (
	"context"
	"fmt"
)

// Article is the slice of a fetched news item that goes into a prompt.
type Article struct {
	Title     string
	Summary   string
	Published string
}

// Client is one hosted model provider. Generate performs a single
// completion call for a prompt; KeyPrefix is the provider's API key
// convention, checked before any network call during validation.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	KeyPrefix() string
	Name() string
}

// NewClientFactory returns a constructor for the configured provider. The
// factory takes the API key at call time because the gateway re-reads the
// stored credential before every call. An empty model means the provider
// default.
func NewClientFactory(provider, model string) (func(apiKey string) Client, error) {
	switch provider {
	case "", "gemini":
		return func(apiKey string) Client { return NewGeminiClient(apiKey, model) }, nil
	case "openai":
		return func(apiKey string) Client { return NewOpenAIClient(apiKey, model) }, nil
	case "claude":
		return func(apiKey string) Client { return NewAnthropicClient(apiKey, model) }, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (valid: gemini, openai, claude)", provider)
	}
}
