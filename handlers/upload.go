package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"manyar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	// UploadDir is created lazily on the first upload.
	UploadDir string
}

func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !utils.AllowedFile(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		return
	}
	if fileHeader.Size > utils.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds maximum size of 16MB"})
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Sanitized name plus a short random suffix to avoid collisions.
	filename := utils.SecureFilename(fileHeader.Filename)
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	uniqueFilename := fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.UploadDir, uniqueFilename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_url": "/uploads/" + uniqueFilename})
}
