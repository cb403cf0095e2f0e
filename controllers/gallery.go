package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
)

// galleryPhoto is one entry in the gallery listings.
type galleryPhoto struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Size         int64  `json:"size,omitempty"`
	UploadedAt   string `json:"uploaded_at,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	ID           string `json:"id,omitempty"`
}

// UploadPhotos stores a multipart batch of gallery images. Files failing
// extension or MIME checks are skipped; an oversized file fails the whole
// request so the client learns the limit.
func (h *Handler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["photos"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos provided"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uploaded := []galleryPhoto{}
	for _, fh := range form.File["photos"] {
		if fh.Filename == "" || !storage.AllowedImage(fh.Filename) {
			continue
		}
		err := storage.ValidateUpload(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, storage.KindImage)
		if errors.Is(err, storage.ErrTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			log.Printf("upload-photos: open %s: %v", fh.Filename, err)
			continue
		}
		saved, err := h.Photos.Save(ctx, fh.Filename, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			log.Printf("upload-photos: save %s: %v", fh.Filename, err)
			continue
		}

		uploaded = append(uploaded, galleryPhoto{
			ID:           uuid.New().String(),
			Filename:     saved.Identifier,
			OriginalName: saved.OriginalName,
			Name:         saved.Identifier,
			URL:          saved.URL,
			Size:         fh.Size,
			UploadedAt:   time.Now().UTC().Format(time.RFC3339),
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid photos uploaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Photos uploaded",
		"count":   len(uploaded),
		"photos":  uploaded,
	})
}

// listUploadDir walks the upload root and returns entries whose names pass
// the given filter.
func (h *Handler) listUploadDir(allowed func(string) bool) ([]galleryPhoto, error) {
	photos := []galleryPhoto{}
	entries, err := os.ReadDir(h.UploadDir)
	if os.IsNotExist(err) {
		return photos, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !allowed(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		photos = append(photos, galleryPhoto{
			Filename: entry.Name(),
			Name:     entry.Name(),
			URL:      h.BaseURL + "/uploads/" + entry.Name(),
			Size:     info.Size(),
		})
	}
	return photos, nil
}

// GetPhotos lists every stored upload, images and documents.
func (h *Handler) GetPhotos(c *gin.Context) {
	photos, err := h.listUploadDir(storage.AllowedFile)
	if err != nil {
		log.Printf("get-photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetGallery lists stored images only.
func (h *Handler) GetGallery(c *gin.Context) {
	photos, err := h.listUploadDir(storage.AllowedImage)
	if err != nil {
		log.Printf("get-gallery: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list gallery"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// DeletePhoto removes one stored file by name.
func (h *Handler) DeletePhoto(c *gin.Context) {
	var input struct {
		Filename string `json:"filename"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filename required"})
		return
	}
	if filepath.Base(input.Filename) != input.Filename {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	path := filepath.Join(h.UploadDir, input.Filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Photos.Remove(ctx, input.Filename); err != nil {
		log.Printf("delete-photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// UploadReports stores report documents for activities. Reports go to the
// configured report backend (the object store in production) so they
// survive redeploys.
func (h *Handler) UploadReports(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["reports"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reports provided"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uploaded := []models.ReportRef{}
	for _, fh := range form.File["reports"] {
		if fh.Filename == "" || !storage.AllowedDocument(fh.Filename) {
			continue
		}
		err := storage.ValidateUpload(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, storage.KindDocument)
		if errors.Is(err, storage.ErrTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			log.Printf("upload-reports: open %s: %v", fh.Filename, err)
			continue
		}
		saved, err := h.Reports.Save(ctx, fh.Filename, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			log.Printf("upload-reports: save %s: %v", fh.Filename, err)
			continue
		}

		uploaded = append(uploaded, models.ReportRef{
			URL:          saved.URL,
			PublicID:     saved.Identifier,
			OriginalName: fh.Filename,
			UploadedAt:   time.Now().UTC().Format(time.RFC3339),
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid reports uploaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reports uploaded",
		"count":   len(uploaded),
		"reports": uploaded,
	})
}

// DownloadReport proxies a stored report so the browser gets an
// attachment disposition instead of rendering the document inline.
func (h *Handler) DownloadReport(c *gin.Context) {
	url := c.Query("url")
	filename := c.Query("filename")
	if url == "" || filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		log.Printf("download-report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch file"})
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch file"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, map[string]string{
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	})
}
