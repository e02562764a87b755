package auth

import (
	"testing"
	"time"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
)

// TestJWTSecret is the shared secret used by NewTestValidator.
const TestJWTSecret = "test-jwt-secret-with-enough-length"

// NewTestValidator returns a validator configured the way the provider signs tokens.
func NewTestValidator(t *testing.T) *TokenValidator {
	t.Helper()
	v, err := NewTokenValidator(config.AuthConfig{
		JWTSecret: TestJWTSecret,
		Issuer:    "https://project.supabase.co/auth/v1",
		Audience:  "authenticated",
	})
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}
	return v
}

// GetAccessToken is a helper function to obtain a one hour access token for user.
func GetAccessToken(t *testing.T, v *TokenValidator, user model.User) string {
	t.Helper()
	token, err := v.SignToken(user, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}
