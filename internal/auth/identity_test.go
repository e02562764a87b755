package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *IdentityClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ic, err := NewIdentityClient(config.IdentityConfig{URL: srv.URL + "/", AnonKey: "anon"})
	require.NoError(t, err)
	return ic
}

func TestNewIdentityClient_NotConfigured(t *testing.T) {
	_, err := NewIdentityClient(config.IdentityConfig{})
	assert.ErrorIs(t, err, ErrIdentityNotConfigured)
}

func TestGetUser(t *testing.T) {
	ic := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            testUser.ID.String(),
			"email":         testUser.Email,
			"role":          "authenticated",
			"user_metadata": map[string]interface{}{"full_name": "Alice"},
		})
	})

	user, err := ic.GetUser(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, "Alice", user.Metadata["full_name"])
}

func TestGetUser_ProviderRejects(t *testing.T) {
	ic := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
	})

	_, err := ic.GetUser(context.Background(), "expired")
	assert.ErrorContains(t, err, "401")
}

func TestGetUser_ProviderTimeout(t *testing.T) {
	release := make(chan struct{})
	ic := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	})
	t.Cleanup(func() { close(release) })
	ic.timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := ic.GetUser(context.Background(), "session-token")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSignOut(t *testing.T) {
	called := false
	ic := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, ic.SignOut(context.Background(), "session-token"))
	assert.True(t, called)
}

func TestSignOut_Failure(t *testing.T) {
	ic := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Error(t, ic.SignOut(context.Background(), "session-token"))
}
