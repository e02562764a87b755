// Package middleware contain utilities middleware code
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
		Error: "Unauthorized",
	})
}

// authenticate verifies the bearer token of the request and returns its claims and user.
// ok is false when no usable session is present.
func authenticate(ctx *gin.Context, validator *auth.TokenValidator, bl auth.JwtBlacklistStore) (*auth.Claims, model.User, bool) {
	tokenString, err := utilities.ExtractBearerToken(ctx)
	if err != nil {
		return nil, model.User{}, false
	}

	claims, err := validator.ValidatedToken(tokenString)
	if err != nil {
		auth.LogAuthAttempt("warning", "Token", "Fail", "", err.Error())
		return nil, model.User{}, false
	}

	if bl != nil {
		isBlacklisted, err := bl.IsBlacklisted(tokenString)
		if err != nil {
			log.Printf("failed to check token blacklist: %v", err)
			return nil, model.User{}, false
		}
		if isBlacklisted {
			auth.LogAuthAttempt("warning", "Token", "Fail", claims.Subject, "revoked token")
			return nil, model.User{}, false
		}
	}

	user, err := claims.User()
	if err != nil {
		return nil, model.User{}, false
	}
	return claims, user, true
}

// RequireAuth validates the Bearer token in the Authorization header, rejects revoked
// sessions, and stores the caller's user and claims on the context. Every failure
// responds 401 {"error":"Unauthorized"} before the handler runs.
func RequireAuth(validator *auth.TokenValidator, bl auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, user, ok := authenticate(ctx, validator, bl)
		if !ok {
			abortUnauthorized(ctx)
			return
		}

		ctx.Set(auth.ClaimsContextKey, claims)
		ctx.Set(utilities.UserContextKey, user)
		ctx.Next()
	}
}

// OptionalAuth stores the caller's user when a valid session is present and
// otherwise lets the request through anonymously.
func OptionalAuth(validator *auth.TokenValidator, bl auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, user, ok := authenticate(ctx, validator, bl); ok {
			ctx.Set(auth.ClaimsContextKey, claims)
			ctx.Set(utilities.UserContextKey, user)
		}
		ctx.Next()
	}
}
