package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNoCredential = errors.New("api key not configured")
	ErrNoArticles   = errors.New("no articles")
	ErrEmptyMessage = errors.New("empty message")
)

// callTimeout bounds every outbound model call; the provider SDKs would
// otherwise wait indefinitely.
const callTimeout = 60 * time.Second

// CredentialStore supplies the API key for outbound model calls.
type CredentialStore interface {
	Get() string
}

// Gateway wraps a hosted model behind two operations over fetched
// articles, summarize and chat, plus key validation. The stored credential
// is re-read before every call so a key saved mid-session takes effect
// immediately.
type Gateway struct {
	store     CredentialStore
	newClient func(apiKey string) Client
}

func NewGateway(store CredentialStore, newClient func(apiKey string) Client) *Gateway {
	return &Gateway{store: store, newClient: newClient}
}

// Summarize asks the model for a short overall summary of the articles.
// It performs exactly one upstream call, and none when articles is empty
// or no credential is set.
func (g *Gateway) Summarize(ctx context.Context, articles []Article) (string, error) {
	apiKey := g.store.Get()
	if apiKey == "" {
		return "", ErrNoCredential
	}
	if len(articles) == 0 {
		return "", ErrNoArticles
	}

	return g.generate(ctx, apiKey, summarizePrompt(articles))
}

// Chat answers a user question using only the supplied articles as
// context. Exactly one upstream call; none on empty input.
func (g *Gateway) Chat(ctx context.Context, articles []Article, message string) (string, error) {
	apiKey := g.store.Get()
	if apiKey == "" {
		return "", ErrNoCredential
	}
	if len(articles) == 0 {
		return "", ErrNoArticles
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	return g.generate(ctx, apiKey, chatPrompt(articles, message))
}

func (g *Gateway) generate(ctx context.Context, apiKey, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client := g.newClient(apiKey)
	text, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s call failed: %w", client.Name(), err)
	}
	return strings.TrimSpace(text), nil
}
