// Package completion generates cover letters through a hosted text-completion API.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
)

var (
	// ErrMissingAPIKey is returned when neither the request nor the server supplies a credential.
	ErrMissingAPIKey = errors.New("completion API key is not configured")
	// ErrNoCompletion is returned when the API answered without any completion text.
	ErrNoCompletion = errors.New("no completion returned")
)

// Request is a single completion request.
type Request struct {
	Prompt      string
	Temperature float64
	// APIKey overrides the server credential when non-empty.
	APIKey string
}

// Generator produces completion text for a prompt.
type Generator interface {
	// ResolveAPIKey returns the credential a request with requestKey would use,
	// or ErrMissingAPIKey when there is none.
	ResolveAPIKey(ctx context.Context, requestKey string) (string, error)
	Generate(ctx context.Context, req Request) (string, error)
}

// ModelFactory builds a language model bound to apiKey.
type ModelFactory func(ctx context.Context, apiKey string) (llms.Model, error)

// Client is the Generator used by the HTTP handlers.
type Client struct {
	cfg      config.CompletionConfig
	creds    CredentialProvider
	newModel ModelFactory
}

// NewClient creates a Client for the configured provider. creds supplies the server credential.
func NewClient(cfg config.CompletionConfig, creds CredentialProvider) (*Client, error) {
	if creds == nil {
		creds = StaticCredential(cfg.APIKey)
	}
	c := &Client{cfg: cfg, creds: creds}

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		httpClient := newRetryClient(http.DefaultTransport, cfg.Timeout, cfg.MaxRetries, 500*time.Millisecond)
		c.newModel = openAIFactory(cfg, httpClient)
	case config.ProviderGoogleAI:
		c.newModel = googleAIFactory(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
	return c, nil
}

func openAIFactory(cfg config.CompletionConfig, httpClient *http.Client) ModelFactory {
	return func(_ context.Context, apiKey string) (llms.Model, error) {
		opts := []openai.Option{
			openai.WithToken(apiKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)
	}
}

func googleAIFactory(cfg config.CompletionConfig) ModelFactory {
	return func(ctx context.Context, apiKey string) (llms.Model, error) {
		return googleai.New(ctx,
			googleai.WithAPIKey(apiKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	}
}

// ResolveAPIKey implements Generator. The request credential wins over the server credential.
func (c *Client) ResolveAPIKey(ctx context.Context, requestKey string) (string, error) {
	if key := strings.TrimSpace(requestKey); key != "" {
		return key, nil
	}
	key, err := c.creds.APIKey(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve completion credential: %w", err)
	}
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// Generate implements Generator.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	apiKey, err := c.ResolveAPIKey(ctx, req.APIKey)
	if err != nil {
		return "", err
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	llm, err := c.newModel(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("failed to create completion client: %w", err)
	}

	resp, err := llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt)},
		llms.WithTemperature(req.Temperature),
		llms.WithN(1),
	)
	if err != nil {
		if isEmptyResponse(err) {
			return "", ErrNoCompletion
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrNoCompletion
	}
	return resp.Choices[0].Content, nil
}

func isEmptyResponse(err error) bool {
	if errors.Is(err, openai.ErrEmptyResponse) {
		return true
	}
	// The OpenAI transport layer reports missing choices with its own unexported error value.
	return strings.Contains(err.Error(), "empty response")
}
