// Package auth verifies sessions issued by the identity provider and handles sign-out.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
)

// ClaimsContextKey is the gin context key verified claims are stored under.
const ClaimsContextKey = "claims"

var (
	// ErrInvalidIssuer is returned when the token was not issued by the configured provider.
	ErrInvalidIssuer = errors.New("invalid token issuer")
	// ErrInvalidAudience is returned when the token is not meant for this service.
	ErrInvalidAudience = errors.New("invalid token audience")
	// ErrInvalidSubject is returned when the subject claim is not a user id.
	ErrInvalidSubject = errors.New("invalid token subject")
)

// Claims are the session claims issued by the identity provider.
type Claims struct {
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	SessionID    string                 `json:"session_id,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// User converts the claims into the caller's identity.
func (c *Claims) User() (model.User, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %s", ErrInvalidSubject, err.Error())
	}
	return model.User{ID: id, Email: c.Email, Role: c.Role, Metadata: c.UserMetadata}, nil
}

// TokenValidator verifies HS256 session tokens with the provider's shared secret.
type TokenValidator struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenValidator creates a validator from the auth configuration.
func NewTokenValidator(cfg config.AuthConfig) (*TokenValidator, error) {
	if cfg.JWTSecret == "" {
		return nil, config.ErrMissingJWTSecret
	}
	return &TokenValidator{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

// ValidatedToken parses encodeToken and checks signature, expiry, issuer and audience.
func (v *TokenValidator) ValidatedToken(encodeToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(encodeToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return nil, ErrInvalidIssuer
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return nil, ErrInvalidAudience
	}
	return claims, nil
}

// SignToken issues a session token for user in the provider's format.
// The service itself never logs users in; this backs local tooling and tests.
func (v *TokenValidator) SignToken(user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     user.Email,
		Role:      user.Role,
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}
	return signed, nil
}
