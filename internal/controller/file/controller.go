// Package file provides HTTP handlers for file-related operations.
package file

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jawadkoroth/Jobpilotai/internal/storage"
	"github.com/jawadkoroth/Jobpilotai/internal/utilities"
)

// FileController serves stored objects
type FileController struct {
	Storage storage.Client
}

// NewFileController creates a new instance of FileController
func NewFileController(store storage.Client) *FileController {
	return &FileController{
		Storage: store,
	}
}

// GetFile streams a stored object. This is the retrievable URL of the database storage backend.
// @Summary Retrieve stored file
// @Tags File
// @Produce octet-stream
// @Param key path string true "Storage key of wanted file"
// @Success 200 {string} binary "Successfully retrieve file"
// @Failure 400 {object} utilities.ErrorResponse "Invalid file key"
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /file/{key} [get]
func (fc *FileController) GetFile(c *gin.Context) {
	key, err := storage.ResolveKey(fc.Storage, strings.TrimPrefix(c.Param("key"), "/"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid file key"})
		return
	}

	reader, info, err := fc.Storage.Download(c.Request.Context(), key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "File not found"})
		return
	}
	if err != nil {
		log.Printf("failed to download %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to download file from storage",
		})
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close storage reader: %v", err)
		}
	}()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Writer.Header().Set("Content-Type", contentType)
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", path.Base(key)))
	if info.Size > 0 {
		c.Writer.Header().Set("Content-Length", fmt.Sprint(info.Size))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		fc.handleWriterError(c, err)
	}
}

func (fc *FileController) handleWriterError(c *gin.Context, err error) {
	log.Printf("failed to send file content: %v", err)
	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to send file content",
		})
	} else {
		c.Abort()
	}
}
