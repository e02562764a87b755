package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
)

// ErrIdentityNotConfigured is returned when no identity provider URL is configured.
var ErrIdentityNotConfigured = errors.New("identity provider is not configured")

// identityTimeout bounds a single call to the identity provider.
const identityTimeout = 10 * time.Second

// IdentityClient talks to the hosted identity provider on behalf of a signed-in caller.
type IdentityClient struct {
	baseURL string
	anonKey string
	timeout time.Duration
}

type providerUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

// NewIdentityClient creates a client for the provider's auth endpoints.
func NewIdentityClient(cfg config.IdentityConfig) (*IdentityClient, error) {
	if cfg.URL == "" {
		return nil, ErrIdentityNotConfigured
	}
	return &IdentityClient{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		anonKey: cfg.AnonKey,
		timeout: identityTimeout,
	}, nil
}

// httpClient returns a client that sends accessToken as a bearer token on every request.
func (ic *IdentityClient) httpClient(ctx context.Context, accessToken string) *http.Client {
	base := &http.Client{Timeout: ic.timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	client.Timeout = ic.timeout
	return client
}

func (ic *IdentityClient) do(ctx context.Context, accessToken, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, ic.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if ic.anonKey != "" {
		req.Header.Set("apikey", ic.anonKey)
	}
	return ic.httpClient(ctx, accessToken).Do(req)
}

// GetUser fetches the caller's profile from the provider.
func (ic *IdentityClient) GetUser(ctx context.Context, accessToken string) (model.User, error) {
	resp, err := ic.do(ctx, accessToken, http.MethodGet, "/user")
	if err != nil {
		return model.User{}, fmt.Errorf("failed to fetch user information: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return model.User{}, fmt.Errorf("user endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var pu providerUser
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user info: %w", err)
	}
	id, err := uuid.Parse(pu.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %s", ErrInvalidSubject, err.Error())
	}
	return model.User{ID: id, Email: pu.Email, Role: pu.Role, Metadata: pu.UserMetadata}, nil
}

// SignOut ends the caller's session at the provider.
func (ic *IdentityClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := ic.do(ctx, accessToken, http.MethodPost, "/logout")
	if err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("logout endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
