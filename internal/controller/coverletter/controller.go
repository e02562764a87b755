// Package coverletter provides HTTP handlers that generate cover letters.
package coverletter

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/completion"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// Client-facing messages. The completion API is named after the provider clients know.
const (
	msgMissingKey     = "OpenAI API key is not configured"
	msgNoCompletion   = "No response from OpenAI API"
	msgSimpleFailed   = "Failed to get response from OpenAI"
	msgJobAwareFailed = "Failed to generate cover letter"
	msgJobAwareFields = "Job title, company name, and resume text are required"
)

// CoverLetterController handles cover letter generation endpoints
type CoverLetterController struct {
	Generator completion.Generator
}

// NewCoverLetterController creates a new instance of CoverLetterController
func NewCoverLetterController(generator completion.Generator) *CoverLetterController {
	return &CoverLetterController{
		Generator: generator,
	}
}

// SimpleRequest is the body of the résumé-only cover letter endpoint.
type SimpleRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Resume      string `json:"resume"`
	APIKey      string `json:"apiKey"`
}

// SimpleResponse carries the generated letter.
type SimpleResponse struct {
	Reply string `json:"reply"`
}

// JobRequest is the body of the job-aware cover letter endpoint.
type JobRequest struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	ResumeText     string `json:"resumeText"`
}

// JobResponse carries the generated letter.
type JobResponse struct {
	CoverLetter string `json:"coverLetter"`
}

// GenerateCoverLetter writes a cover letter from a job title, company and résumé.
// The caller may supply their own API key.
// @Summary Generate cover letter
// @Description apiKey is optional and overrides the server credential
// @Tags CoverLetter
// @Accept json
// @Produce json
// @Param request body SimpleRequest true "Job and resume"
// @Success 200 {object} SimpleResponse "Generated cover letter"
// @Failure 400 {object} utilities.ErrorResponse "Resume is required"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "OpenAI API key is not configured"
// @Router /chatgpt [post]
func (cc *CoverLetterController) GenerateCoverLetter(c *gin.Context) {
	var req SimpleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !cc.hasCredential(c, req.APIKey) {
		return
	}

	if strings.TrimSpace(req.Resume) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Resume is required"})
		return
	}

	text, ok := cc.generate(c, completion.Request{
		Prompt:      completion.CoverLetterPrompt(req.JobTitle, req.CompanyName, req.Resume),
		Temperature: completion.SimpleTemperature,
		APIKey:      req.APIKey,
	}, msgSimpleFailed)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SimpleResponse{Reply: text})
}

// GenerateForJob writes a cover letter that also considers the job description.
// Only the server credential is used.
// @Summary Generate cover letter for a job
// @Tags CoverLetter
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param request body JobRequest true "Job and resume"
// @Success 200 {object} JobResponse "Generated cover letter"
// @Failure 400 {object} utilities.ErrorResponse "Job title, company name, and resume text are required"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Failed to generate cover letter"
// @Router /openai-coverletter [post]
func (cc *CoverLetterController) GenerateForJob(c *gin.Context) {
	if _, err := utilities.ExtractUser(c); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: msgJobAwareFields})
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" || strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.ResumeText) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: msgJobAwareFields})
		return
	}

	if !cc.hasCredential(c, "") {
		return
	}

	text, ok := cc.generate(c, completion.Request{
		Prompt:      completion.JobCoverLetterPrompt(req.JobTitle, req.CompanyName, req.JobDescription, req.ResumeText),
		Temperature: completion.JobAwareTemperature,
	}, msgJobAwareFailed)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, JobResponse{CoverLetter: text})
}

// hasCredential writes the configuration error and returns false when no API key is available.
func (cc *CoverLetterController) hasCredential(c *gin.Context, requestKey string) bool {
	_, err := cc.Generator.ResolveAPIKey(c.Request.Context(), requestKey)
	if err == nil {
		return true
	}
	if !errors.Is(err, completion.ErrMissingAPIKey) {
		log.Printf("Error resolving completion credential: %v", err)
	}
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: msgMissingKey})
	return false
}

func (cc *CoverLetterController) generate(c *gin.Context, req completion.Request, failure string) (string, bool) {
	text, err := cc.Generator.Generate(c.Request.Context(), req)
	if err == nil {
		return text, true
	}

	switch {
	case errors.Is(err, completion.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: msgMissingKey})
	case errors.Is(err, completion.ErrNoCompletion):
		log.Printf("Completion API returned no choices")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: msgNoCompletion})
	default:
		log.Printf("Error calling OpenAI API: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: failure})
	}
	return "", false
}
