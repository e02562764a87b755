package coverletter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/completion"
	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/middleware"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var caller = model.User{ID: uuid.New(), Email: "dave@example.com", Role: "authenticated"}

// fakeGenerator records requests and answers with text or err.
type fakeGenerator struct {
	serverKey string
	text      string
	err       error
	requests  []completion.Request
}

func (f *fakeGenerator) ResolveAPIKey(_ context.Context, requestKey string) (string, error) {
	if requestKey != "" {
		return requestKey, nil
	}
	if f.serverKey == "" {
		return "", completion.ErrMissingAPIKey
	}
	return f.serverKey, nil
}

func (f *fakeGenerator) Generate(ctx context.Context, req completion.Request) (string, error) {
	if _, err := f.ResolveAPIKey(ctx, req.APIKey); err != nil {
		return "", err
	}
	f.requests = append(f.requests, req)
	return f.text, f.err
}

func setup(t *testing.T, gen completion.Generator) (*gin.Engine, string) {
	t.Helper()
	v := auth.NewTestValidator(t)
	cc := NewCoverLetterController(gen)

	r := gin.New()
	r.POST("/chatgpt", cc.GenerateCoverLetter)
	r.POST("/openai-coverletter", middleware.RequireAuth(v, nil), cc.GenerateForJob)
	return r, auth.GetAccessToken(t, v, caller)
}

// assertOneKey checks the response carries exactly one of key or "error".
func assertOneKey(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	_, hasKey := resp[key]
	_, hasErr := resp["error"]
	assert.True(t, hasKey != hasErr, "response %v must carry exactly one of %q or error", resp, key)
	assert.Len(t, resp, 1)
}

func TestGenerateCoverLetter_Success(t *testing.T) {
	gen := &fakeGenerator{serverKey: "server", text: "Dear Acme"}
	r, _ := setup(t, gen)

	rec, resp := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE", "companyName": "Acme", "resume": "ten years"}, "", r, "/chatgpt", http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dear Acme", resp["reply"])
	assertOneKey(t, resp, "reply")

	require.Len(t, gen.requests, 1)
	assert.Equal(t, completion.SimpleTemperature, gen.requests[0].Temperature)
	assert.Equal(t, completion.CoverLetterPrompt("SRE", "Acme", "ten years"), gen.requests[0].Prompt)
}

func TestGenerateCoverLetter_CallerKey(t *testing.T) {
	gen := &fakeGenerator{text: "letter"}
	r, _ := setup(t, gen)

	rec, _ := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE", "companyName": "Acme", "resume": "cv", "apiKey": "sk-caller"}, "", r, "/chatgpt", http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.requests, 1)
	assert.Equal(t, "sk-caller", gen.requests[0].APIKey)
}

func TestGenerateCoverLetter_MissingKey(t *testing.T) {
	gen := &fakeGenerator{}
	r, _ := setup(t, gen)

	rec, resp := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE", "companyName": "Acme", "resume": "cv"}, "", r, "/chatgpt", http.MethodPost)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "OpenAI API key is not configured"}, resp)
	assert.Empty(t, gen.requests)
}

func TestGenerateCoverLetter_KeyCheckedBeforeResume(t *testing.T) {
	r, _ := setup(t, &fakeGenerator{})
	rec, resp := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE"}, "", r, "/chatgpt", http.MethodPost)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API key is not configured", resp["error"])

	r, _ = setup(t, &fakeGenerator{serverKey: "server"})
	rec, resp = testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE"}, "", r, "/chatgpt", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertOneKey(t, resp, "reply")
}

func TestGenerateCoverLetter_MalformedBody(t *testing.T) {
	r, _ := setup(t, &fakeGenerator{serverKey: "server"})
	rec, resp := testutil.MakeJSONRequest("{not json", "", r, "/chatgpt", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertOneKey(t, resp, "reply")
}

func TestGenerateCoverLetter_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no completion", completion.ErrNoCompletion, "No response from OpenAI API"},
		{"upstream failure", errors.New("connection refused"), "Failed to get response from OpenAI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setup(t, &fakeGenerator{serverKey: "server", err: tt.err})
			rec, resp := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE", "companyName": "Acme", "resume": "cv"}, "", r, "/chatgpt", http.MethodPost)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.want, resp["error"])
			assertOneKey(t, resp, "reply")
		})
	}
}

func TestGenerateForJob_Success(t *testing.T) {
	gen := &fakeGenerator{serverKey: "server", text: "Dear hiring team"}
	r, token := setup(t, gen)

	body := gin.H{"jobTitle": "SRE", "companyName": "Acme", "jobDescription": "Run k8s", "resumeText": "cv"}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/openai-coverletter", http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dear hiring team", resp["coverLetter"])
	assertOneKey(t, resp, "coverLetter")
	require.Len(t, gen.requests, 1)
	assert.Equal(t, completion.JobAwareTemperature, gen.requests[0].Temperature)
	assert.Contains(t, gen.requests[0].Prompt, "The job description is: Run k8s")
	assert.Empty(t, gen.requests[0].APIKey)
}

func TestGenerateForJob_Validation(t *testing.T) {
	gen := &fakeGenerator{serverKey: "server"}
	r, token := setup(t, gen)

	for name, body := range map[string]gin.H{
		"no title":   {"companyName": "Acme", "resumeText": "cv"},
		"no company": {"jobTitle": "SRE", "resumeText": "cv"},
		"no resume":  {"jobTitle": "SRE", "companyName": "Acme"},
	} {
		t.Run(name, func(t *testing.T) {
			rec, resp := testutil.MakeJSONRequest(body, token, r, "/openai-coverletter", http.MethodPost)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Job title, company name, and resume text are required", resp["error"])
		})
	}
	assert.Empty(t, gen.requests)
}

func TestGenerateForJob_Errors(t *testing.T) {
	body := gin.H{"jobTitle": "SRE", "companyName": "Acme", "resumeText": "cv"}

	r, token := setup(t, &fakeGenerator{})
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/openai-coverletter", http.MethodPost)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API key is not configured", resp["error"])

	r, token = setup(t, &fakeGenerator{serverKey: "server", err: errors.New("timeout")})
	rec, resp = testutil.MakeJSONRequest(body, token, r, "/openai-coverletter", http.MethodPost)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate cover letter", resp["error"])

	r, _ = setup(t, &fakeGenerator{serverKey: "server"})
	rec, resp = testutil.MakeJSONRequest(body, "", r, "/openai-coverletter", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", resp["error"])
}

// TestGenerateCoverLetter_RealClient drives the handler through the langchaingo client
// against a local stand-in for the completion API.
func TestGenerateCoverLetter_RealClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-caller", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": "Dear Acme,"},
				"finish_reason": "stop",
			}},
		})
	}))
	defer srv.Close()

	client, err := completion.NewClient(config.CompletionConfig{
		Provider: config.ProviderOpenAI,
		Model:    "gpt-4",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	}, nil)
	require.NoError(t, err)

	r, _ := setup(t, client)
	rec, resp := testutil.MakeJSONRequest(gin.H{"jobTitle": "SRE", "companyName": "Acme", "resume": "cv", "apiKey": "sk-caller"}, "", r, "/chatgpt", http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dear Acme,", resp["reply"])
}
