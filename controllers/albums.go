package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
)

// GetAlbums returns every album name plus a name→photos map, the shape the
// gallery page renders from.
func (h *Handler) GetAlbums(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	albums, err := h.Albums.List(ctx)
	if err != nil {
		log.Printf("get-albums: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch albums"})
		return
	}

	names := []string{}
	photos := map[string][]models.PhotoRef{}
	for _, album := range albums {
		names = append(names, album.Name)
		if album.Photos == nil {
			album.Photos = []models.PhotoRef{}
		}
		photos[album.Name] = album.Photos
	}

	c.JSON(http.StatusOK, gin.H{"albums": names, "photos": photos})
}

// CreateAlbum makes a new empty album. Album names are unique.
func (h *Handler) CreateAlbum(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Album name is required"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Albums.Create(ctx, input.Name)
	if errors.Is(err, repo.ErrConflict) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Album already exists"})
		return
	}
	if err != nil {
		log.Printf("create-album: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create album"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Album created"})
}

// DeleteAlbum removes an album and every photo file it owns. File removal
// is best-effort: failures are logged and the album record goes away
// regardless.
func (h *Handler) DeleteAlbum(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := reqCtx(c)
	defer cancel()

	album, err := h.Albums.DeleteByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	if err != nil {
		log.Printf("delete-album: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete album"})
		return
	}

	var identifiers []string
	for _, p := range album.Photos {
		identifiers = append(identifiers, p.Filename)
	}
	if res := storage.RemoveAll(ctx, h.Photos, identifiers); !res.OK() {
		log.Printf("delete-album %q: %d photo(s) left in storage", name, len(res.Failed))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Album deleted"})
}

// UploadAlbumPhotos accepts a multipart batch under the "photos" field
// ("photo" also accepted). Files failing validation are skipped; the
// response lists only the photos that were stored. A batch where nothing
// survives is a 400.
func (h *Handler) UploadAlbumPhotos(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Albums.GetByName(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}
		log.Printf("upload-album-photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch album"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos uploaded"})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		files = form.File["photo"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos uploaded"})
		return
	}

	uploaded := []models.PhotoRef{}
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		if err := storage.ValidateUpload(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, storage.KindImage); err != nil {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			log.Printf("upload-album-photos: open %s: %v", fh.Filename, err)
			continue
		}
		saved, err := h.Photos.Save(ctx, fh.Filename, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			log.Printf("upload-album-photos: save %s: %v", fh.Filename, err)
			continue
		}

		uploaded = append(uploaded, models.PhotoRef{
			ID:           uuid.New().String(),
			Filename:     saved.Identifier,
			OriginalName: saved.OriginalName,
			URL:          saved.URL,
		})
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid photos provided"})
		return
	}

	if err := h.Albums.AddPhotos(ctx, name, uploaded); err != nil {
		log.Printf("upload-album-photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photos uploaded", "uploadedPhotos": uploaded})
}

// DeleteAlbumPhoto removes one photo by its id. The pull is atomic on the
// database side, so concurrent deletions cannot shift each other's
// targets.
func (h *Handler) DeleteAlbumPhoto(c *gin.Context) {
	name := c.Param("name")
	photoID := c.Param("photoId")

	ctx, cancel := reqCtx(c)
	defer cancel()

	removed, err := h.Albums.RemovePhoto(ctx, name, photoID)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}
	if err != nil {
		log.Printf("delete-album-photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	if err := h.Photos.Remove(ctx, removed.Filename); err != nil {
		log.Printf("delete-album-photo: remove %s: %v", removed.Filename, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}
