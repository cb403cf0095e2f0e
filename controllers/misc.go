package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Home is the service banner.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "NSS Portal API Server",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": gin.H{
			"admin":   "/admin/*",
			"api":     "/api/*",
			"auth":    "/auth/*",
			"uploads": "/uploads/*",
		},
	})
}

// ServeUpload serves a stored file by name. Only bare filenames are
// accepted, so a crafted path cannot reach outside the upload root.
func (h *Handler) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || filepath.Base(filename) != filename {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	path := filepath.Join(h.UploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.File(path)
}
