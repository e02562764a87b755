// Package user provides the current-user endpoint.
package user

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// ProfileSource fetches the caller's full profile from the identity provider.
type ProfileSource interface {
	GetUser(ctx context.Context, accessToken string) (model.User, error)
}

// UserController handles the current-user endpoint
type UserController struct {
	// Profiles is optional; without it the user is built from token claims alone.
	Profiles ProfileSource
}

// NewUserController creates a new instance of UserController
func NewUserController(profiles ProfileSource) *UserController {
	return &UserController{Profiles: profiles}
}

// UserResponse wraps the current user, which is null without a session.
type UserResponse struct {
	User *model.User `json:"user"`
}

// CurrentUser returns the signed-in user or {"user":null}.
// @Summary Get current user
// @Tags User
// @Produce json
// @Param Authorization header string false "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} UserResponse "Current user or null"
// @Router /user [get]
func (uc *UserController) CurrentUser(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusOK, UserResponse{User: nil})
		return
	}

	if uc.Profiles != nil {
		if token, err := utilities.ExtractBearerToken(c); err == nil {
			profile, err := uc.Profiles.GetUser(c.Request.Context(), token)
			if err == nil && profile.ID == user.ID {
				user = profile
			} else if err != nil {
				log.Printf("failed to fetch profile for %s, using token claims: %v", user.ID, err)
			}
		}
	}

	c.JSON(http.StatusOK, UserResponse{User: &user})
}
