package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hr-dashboard/config"
)

// allowedUploadExtensions lists the file types accepted for resumes, cover
// letters and profile photos.
var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadHandler stores uploaded documents on local disk
type UploadHandler struct {
	cfg config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler with the given upload configuration
func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload godoc
// @Summary      Upload a document
// @Description  Accepts a single multipart file (resume, cover letter or image) and stores it under a generated name.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file  true  "File to upload"
// @Success      201  {object}  map[string]string "Stored file details"
// @Failure      400  {object}  map[string]string "Bad Request - missing, oversized or disallowed file"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if file.Size > h.cfg.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File exceeds the maximum size of %d bytes", h.cfg.MaxSize)})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	storedName := uuid.New().String() + ext
	dst := filepath.Join(h.cfg.Dir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("Error saving uploaded file %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"filename":     storedName,
		"originalName": file.Filename,
		"path":         "/uploads/" + storedName,
		"size":         file.Size,
	})
}
