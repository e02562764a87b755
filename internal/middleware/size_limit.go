package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

var multipartOverhead = int64(8 * 1024) // rough padding

// SizeLimit function is a middleware that rejects bodies larger than maxBodyBytes.
// A declared Content-Length over the limit is answered 413 immediately; otherwise the
// body reader returns *http.MaxBytesError once the limit is crossed.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	limit := maxBodyBytes + multipartOverhead
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "File too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

		c.Next()
	}
}
