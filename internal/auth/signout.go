package auth

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// SignOutController handles sign-out by blacklisting the caller's session token
type SignOutController struct {
	BlacklistStore JwtBlacklistStore
	// Identity is optional; when set the provider session is ended too.
	Identity *IdentityClient
}

// NewSignOutController creates a new instance of SignOutController
func NewSignOutController(blacklistStore JwtBlacklistStore, identity *IdentityClient) *SignOutController {
	return &SignOutController{
		BlacklistStore: blacklistStore,
		Identity:       identity,
	}
}

// SignOutHandler revokes the bearer token used for this request.
// @Summary Sign out
// @Description Revoke the current session token
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} utilities.MessageResponse "Successfully signed out"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to sign out"
// @Router /auth/signout [post]
func (sc *SignOutController) SignOutHandler(c *gin.Context) {
	tokenString, err := utilities.ExtractBearerToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	claims, err := extractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	exp := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := sc.BlacklistStore.AddToBlacklist(tokenString, exp); err != nil {
		log.Printf("failed to blacklist token: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to sign out"})
		return
	}

	if sc.Identity != nil {
		if err := sc.Identity.SignOut(c.Request.Context(), tokenString); err != nil {
			// The token is already revoked locally.
			log.Printf("identity provider sign out failed: %v", err)
		}
	}

	LogAuthAttempt("info", "SignOut", "Success", claims.Subject, "")
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully signed out"})
}

func extractClaims(c *gin.Context) (*Claims, error) {
	claims, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*Claims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	return realClaims, nil
}
