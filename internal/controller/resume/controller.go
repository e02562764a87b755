// Package resume provides HTTP handlers for résumé upload, parsing and records.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jawadkoroth/Jobpilotai/internal/database"
	"github.com/jawadkoroth/Jobpilotai/internal/extract"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/storage"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// MaxResumeSize is the largest accepted résumé upload.
const MaxResumeSize = 10 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// ResumeController handles résumé related endpoints
type ResumeController struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
}

// NewResumeController creates a new instance of ResumeController
func NewResumeController(db *database.DBinstanceStruct, store storage.Client) *ResumeController {
	return &ResumeController{
		DB:      db,
		Storage: store,
	}
}

// UploadResponse is returned after a résumé binary is stored.
type UploadResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

// ParseRequest names the stored résumé to extract text from.
type ParseRequest struct {
	FileURL string `json:"fileUrl"`
}

// ParseResponse carries the extracted résumé text.
type ParseResponse struct {
	Text string `json:"text"`
}

// SaveRequest records a parsed résumé.
type SaveRequest struct {
	Filename    string `json:"filename" binding:"required"`
	URL         string `json:"url" binding:"required"`
	TextContent string `json:"text_content"`
}

// ResumeResponse wraps a single résumé.
type ResumeResponse struct {
	Resume model.Resume `json:"resume"`
}

// ResumesResponse lists résumés.
type ResumesResponse struct {
	Resumes []model.Resume `json:"resumes"`
}

// FilesResponse lists stored résumé binaries.
type FilesResponse struct {
	Files []storage.ObjectInfo `json:"files"`
}

// Upload stores a résumé binary under "<user_id>/<uuid>.<ext>".
// @Summary Upload resume file
// @Description Only files smaller than 10 MB with .pdf, .docx, .doc or .txt extension are permitted
// @Tags Resume
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param resume formData file true "Upload your resume file"
// @Success 200 {object} UploadResponse "Resume uploaded successfully"
// @Failure 400 {object} utilities.ErrorResponse "No file uploaded"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 413 {object} utilities.ErrorResponse "File size is larger than 10 MB"
// @Failure 415 {object} utilities.ErrorResponse "File extension is not allowed"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /upload-resume [post]
func (rc *ResumeController) Upload(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: fmt.Sprintf("File size is larger than %d MB", MaxResumeSize>>20),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "No file uploaded"})
		return
	}
	if rawFile.Size > MaxResumeSize {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: fmt.Sprintf("File size is larger than %d MB", MaxResumeSize>>20),
		})
		return
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	if !allowedExtensions[extension] {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", extension),
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	contentType := rawFile.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = extract.ContentType(fileBytes, rawFile.Filename)
	}

	key := fmt.Sprintf("%s/%s%s", user.ID, uuid.NewString(), extension)
	if err := rc.Storage.Upload(c.Request.Context(), key, contentType, bytes.NewReader(fileBytes)); err != nil {
		log.Printf("Upload failed for %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message: "Resume uploaded successfully",
		Path:    key,
		URL:     rc.Storage.URL(key),
	})
}

// Parse downloads a stored résumé and returns its plain text.
// @Summary Extract resume text
// @Description fileUrl is a storage key or a URL returned by the upload endpoint
// @Tags Resume
// @Accept json
// @Produce json
// @Param request body ParseRequest true "Stored resume reference"
// @Success 200 {object} ParseResponse "Extracted text"
// @Failure 400 {object} utilities.ErrorResponse "File URL is required"
// @Failure 500 {object} utilities.ErrorResponse "Failed to parse resume"
// @Router /parse-resume [post]
func (rc *ResumeController) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.FileURL) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "File URL is required"})
		return
	}

	key, err := storage.ResolveKey(rc.Storage, req.FileURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "File URL does not reference an uploaded resume"})
		return
	}

	reader, _, err := rc.Storage.Download(c.Request.Context(), key)
	if err != nil {
		log.Printf("Error parsing resume %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to parse resume"})
		return
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(io.LimitReader(reader, MaxResumeSize+1))
	if err == nil && len(data) > MaxResumeSize {
		err = fmt.Errorf("object %s exceeds %d bytes", key, MaxResumeSize)
	}
	if err != nil {
		log.Printf("Error parsing resume %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to parse resume"})
		return
	}

	text, err := extract.Text(data, key)
	if err != nil {
		log.Printf("Error parsing resume %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to parse resume"})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{Text: text})
}

// Save records a parsed résumé for the caller.
// @Summary Save resume record
// @Tags Resume
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param resume body SaveRequest true "Resume record"
// @Success 201 {object} ResumeResponse "Saved resume"
// @Failure 400 {object} utilities.ErrorResponse "Filename and URL are required"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to store resume"
// @Router /resumes [post]
func (rc *ResumeController) Save(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Filename) == "" || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Filename and URL are required"})
		return
	}

	resume := model.Resume{
		UserID:      user.ID,
		Filename:    req.Filename,
		URL:         req.URL,
		TextContent: req.TextContent,
	}
	if err := rc.DB.WithContext(c.Request.Context()).Create(&resume).Error; err != nil {
		log.Printf("failed to store resume for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to store resume"})
		return
	}

	c.JSON(http.StatusCreated, ResumeResponse{Resume: resume})
}

// List returns the caller's résumés, newest first.
// @Summary List my resumes
// @Tags Resume
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} ResumesResponse "Resumes of the caller"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to load resumes"
// @Router /resumes [get]
func (rc *ResumeController) List(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resumes := []model.Resume{}
	if err := rc.userResumes(c, user).Find(&resumes).Error; err != nil {
		log.Printf("failed to load resumes for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to load resumes"})
		return
	}

	c.JSON(http.StatusOK, ResumesResponse{Resumes: resumes})
}

// Current returns the caller's most recent résumé.
// @Summary Get my current resume
// @Tags Resume
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} ResumeResponse "Most recent resume"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 404 {object} utilities.ErrorResponse "No resume found"
// @Failure 500 {object} utilities.ErrorResponse "Failed to load resume"
// @Router /resumes/current [get]
func (rc *ResumeController) Current(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var resume model.Resume
	if err := rc.userResumes(c, user).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "No resume found"})
			return
		}
		log.Printf("failed to load resume for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to load resume"})
		return
	}

	c.JSON(http.StatusOK, ResumeResponse{Resume: resume})
}

// Files lists the résumé binaries the caller has uploaded.
// @Summary List my uploaded resume files
// @Tags Resume
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} FilesResponse "Stored files"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 500 {object} utilities.ErrorResponse "Failed to list files"
// @Router /resumes/files [get]
func (rc *ResumeController) Files(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Unauthorized"})
		return
	}

	files, err := rc.Storage.List(c.Request.Context(), user.ID.String()+"/")
	if err != nil {
		log.Printf("failed to list files for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to list files"})
		return
	}
	if files == nil {
		files = []storage.ObjectInfo{}
	}

	c.JSON(http.StatusOK, FilesResponse{Files: files})
}

func (rc *ResumeController) userResumes(c *gin.Context, user model.User) *gorm.DB {
	return rc.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Order("created_at DESC")
}
