package utilities

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrInvalidAuthHeader is returned when the Authorization header is missing or not a bearer token.
var ErrInvalidAuthHeader = errors.New("Invalid authorization header")

// ExtractBearerToken returns the token part of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	const BearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if len(authHeader) <= len(BearerSchema) || !strings.EqualFold(authHeader[:len(BearerSchema)], BearerSchema) {
		return "", ErrInvalidAuthHeader
	}

	return strings.TrimSpace(authHeader[len(BearerSchema):]), nil
}
