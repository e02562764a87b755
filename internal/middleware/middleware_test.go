package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

var testUser = model.User{
	ID:    uuid.MustParse("7c1d2a4e-5b8f-4c3d-9e2a-1f0b6d8c4a11"),
	Email: "alice@example.com",
	Role:  RoleAuthenticated,
}

func init() {
	gin.SetMode(gin.TestMode)
}

func checkUserHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func doRequest(r http.Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	v := auth.NewTestValidator(t)
	bl := auth.NewInMemoryBlacklistStore()

	r := gin.New()
	r.GET("/protected", RequireAuth(v, bl), CheckRole(RoleAuthenticated), checkUserHandler)

	valid := auth.GetAccessToken(t, v, testUser)
	revoked := auth.GetAccessToken(t, v, testUser)
	require.NoError(t, bl.AddToBlacklist(revoked, time.Now().Add(time.Hour)))

	anon := testUser
	anon.Role = "anon"
	anonToken := auth.GetAccessToken(t, v, anon)

	t.Run("valid token", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/protected", valid, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testUser.ID.String())
	})

	for name, token := range map[string]string{
		"missing":    "",
		"malformed":  "not-a-jwt",
		"revoked":    revoked,
		"wrong role": anonToken,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(r, http.MethodGet, "/protected", token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	v := auth.NewTestValidator(t)
	r := gin.New()
	r.GET("/user", OptionalAuth(v, nil), checkUserHandler)

	rec := doRequest(r, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())

	rec = doRequest(r, http.MethodGet, "/user", "garbage", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())

	rec = doRequest(r, http.MethodGet, "/user", auth.GetAccessToken(t, v, testUser), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testUser.Email)
}

func TestSizeLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusOK)
	})

	rec := doRequest(r, http.MethodPost, "/upload", "", strings.NewReader("small"))
	assert.Equal(t, http.StatusOK, rec.Code)

	big := bytes.Repeat([]byte("a"), 64*1024)
	rec = doRequest(r, http.MethodPost, "/upload", "", bytes.NewReader(big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// Unknown length is still capped by the reader.
	req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(bytes.NewReader(big)))
	req.ContentLength = -1
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSafeHeader(t *testing.T) {
	r := gin.New()
	r.Use(SafeHeader())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
}

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/limited", RateLimiterMiddleware(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, doRequest(r, http.MethodGet, "/limited", "", nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
