// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jawadkoroth/Jobpilotai/internal/database"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// ApplyRequest is the body of an application submission.
type ApplyRequest struct {
	JobID       string  `json:"jobId" binding:"required"`
	ResumeURL   string  `json:"resumeUrl" binding:"required"`
	CoverLetter *string `json:"coverLetter"`
}

// ApplyResponse is returned after an application is stored.
type ApplyResponse struct {
	Success     bool              `json:"success"`
	Application model.Application `json:"application"`
}

// ApplicationsResponse lists the caller's applications.
type ApplicationsResponse struct {
	Applications []model.Application `json:"applications"`
}

// StatusRequest asks for an application status change.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StatusResponse is returned after a status change.
type StatusResponse struct {
	Application model.Application `json:"application"`
}

const errMissingApplyFields = "Job ID and resume URL are required"

// Submit handles the creation of a new job application by the signed-in user.
// @Summary Submit job application
// @Description Stores an application with status "applied". Applying to the same job twice is allowed.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body ApplyRequest true "Application information"
// @Success 200 {object} ApplyResponse "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Job ID and resume URL are required"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to store application"
// @Router /apply [post]
func (ac *ApplicationController) Submit(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if utilities.IsValidationError(err) || errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: errMissingApplyFields})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.JobID) == "" || strings.TrimSpace(req.ResumeURL) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: errMissingApplyFields})
		return
	}

	coverLetter := req.CoverLetter
	if coverLetter != nil && strings.TrimSpace(*coverLetter) == "" {
		coverLetter = nil
	}

	application := model.Application{
		UserID:      user.ID,
		JobID:       req.JobID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: coverLetter,
		Status:      model.ApplicationStatusApplied,
		AppliedAt:   time.Now().UTC(),
	}

	if err := ac.DB.WithContext(c.Request.Context()).Create(&application).Error; err != nil {
		log.Printf("failed to store application for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to store application"})
		return
	}

	c.JSON(http.StatusOK, ApplyResponse{Success: true, Application: application})
}

// List returns the caller's applications, most recent first.
// @Summary List my applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} ApplicationsResponse "Applications of the caller"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to load applications"
// @Router /applications [get]
func (ac *ApplicationController) List(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		log.Printf("failed to load applications for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to load applications"})
		return
	}

	c.JSON(http.StatusOK, ApplicationsResponse{Applications: applications})
}

// UpdateStatus moves one of the caller's applications to a new status.
// @Summary Change application status
// @Description applied -> interview|rejected, interview -> offer|rejected. offer and rejected are final.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} StatusResponse "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Unknown status"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Invalid status transition"
// @Failure 500 {object} utilities.ErrorResponse "Failed to update application"
// @Router /applications/{id}/status [patch]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Status is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
		return
	}

	db := ac.DB.WithContext(c.Request.Context())

	var application model.Application
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		log.Printf("failed to load application %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update application"})
		return
	}

	previous := application.Status
	if err := application.TransitionTo(req.Status); err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: err.Error()})
		}
		return
	}

	// Guard on the previous status so concurrent transitions cannot both win.
	result := db.Model(&model.Application{}).
		Where("id = ? AND user_id = ? AND status = ?", id, user.ID, previous).
		Update("status", application.Status)
	if result.Error != nil {
		log.Printf("failed to update application %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update application"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: model.ErrInvalidTransition.Error()})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Application: application})
}
