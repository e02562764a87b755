package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// RoleAuthenticated is the role the identity provider assigns to signed-in users.
const RoleAuthenticated = "authenticated"

// CheckRole will protect endpoint from sessions that do not carry one of roles.
// Provider keys such as the anonymous key are tokens too, so they are rejected here.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil || !utilities.Contains(roles, user.Role) {
			abortUnauthorized(ctx)
			return
		}
		ctx.Next()
	}
}
