// Package job provides HTTP handlers for job listings.
package job

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// JobController serves job postings
type JobController struct {
	// now is replaceable in tests.
	now func() time.Time
}

// NewJobController creates a new instance of JobController
func NewJobController() *JobController {
	return &JobController{now: time.Now}
}

// JobsResponse lists job postings.
type JobsResponse struct {
	Jobs []model.Job `json:"jobs"`
}

// postings are the listed jobs; posted_date is filled in per request.
var postings = []model.Job{
	{
		ID:          "job1",
		Title:       "Senior DevOps Engineer",
		Company:     "TechCorp",
		Location:    "Remote",
		Description: "We are looking for a Senior DevOps Engineer to help us build and maintain our cloud infrastructure. Experience with AWS, Kubernetes, and CI/CD pipelines required.",
		MatchScore:  92,
		Platform:    "LinkedIn",
		URL:         "https://example.com/job1",
	},
	{
		ID:          "job2",
		Title:       "Cloud Infrastructure Engineer",
		Company:     "CloudTech Solutions",
		Location:    "San Francisco, CA (Remote)",
		Description: "Join our team as a Cloud Infrastructure Engineer and help us design, implement, and manage scalable cloud solutions on AWS and GCP.",
		MatchScore:  88,
		Platform:    "Indeed",
		URL:         "https://example.com/job2",
	},
	{
		ID:          "job3",
		Title:       "Site Reliability Engineer",
		Company:     "DataSystems Inc",
		Location:    "New York, NY",
		Description: "Looking for an SRE to ensure our systems are reliable, scalable, and performant. Experience with monitoring tools and incident response required.",
		MatchScore:  85,
		Platform:    "LinkedIn",
		URL:         "https://example.com/job3",
	},
	{
		ID:          "job4",
		Title:       "DevOps Specialist",
		Company:     "TechInnovate",
		Location:    "Austin, TX (Hybrid)",
		Description: "Join our DevOps team to automate and optimize our deployment processes. Experience with Docker, Terraform, and Jenkins required.",
		MatchScore:  79,
		Platform:    "Monster",
		URL:         "https://example.com/job4",
	},
	{
		ID:          "job5",
		Title:       "Cloud DevOps Engineer",
		Company:     "Innovate Systems",
		Location:    "Chicago, IL",
		Description: "Help us build and maintain our infrastructure across multiple cloud providers. Strong knowledge of AWS services and IaC tools required.",
		MatchScore:  76,
		Platform:    "Indeed",
		URL:         "https://example.com/job5",
	},
	{
		ID:          "job6",
		Title:       "Senior SRE",
		Company:     "TechGiant",
		Location:    "Seattle, WA",
		Description: "Join our SRE team to design and implement scalable infrastructure solutions. Experience with Kubernetes, Prometheus, and Grafana required.",
		MatchScore:  72,
		Platform:    "LinkedIn",
		URL:         "https://example.com/job6",
	},
}

// GetJobs returns job postings ordered by match score, highest first.
// @Summary List job postings
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param platform query string false "Only postings from this platform (case-insensitive)"
// @Param min_score query int false "Only postings with at least this match score"
// @Success 200 {object} JobsResponse "Job postings"
// @Failure 400 {object} utilities.ErrorResponse "min_score must be an integer"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Router /scrape-jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	if _, err := utilities.ExtractUser(c); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	minScore := 0
	if raw := c.Query("min_score"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "min_score must be an integer"})
			return
		}
		minScore = n
	}
	platform := strings.TrimSpace(c.Query("platform"))

	today := jc.now().UTC().Format("2006-01-02")
	jobs := make([]model.Job, 0, len(postings))
	for _, j := range postings {
		if j.MatchScore < minScore {
			continue
		}
		if platform != "" && !strings.EqualFold(j.Platform, platform) {
			continue
		}
		j.PostedDate = today
		jobs = append(jobs, j)
	}
	sort.SliceStable(jobs, func(a, b int) bool { return jobs[a].MatchScore > jobs[b].MatchScore })

	c.JSON(http.StatusOK, JobsResponse{Jobs: jobs})
}
