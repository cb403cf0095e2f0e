package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
)

// GetHighlights lists trending highlights. Public.
func (h *Handler) GetHighlights(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	highlights, err := h.Highlights.List(ctx)
	if err != nil {
		log.Printf("get-trending: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch highlights"})
		return
	}

	c.JSON(http.StatusOK, highlights)
}

// AddHighlight creates a trending highlight. Admin only.
func (h *Handler) AddHighlight(c *gin.Context) {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Highlights.Create(ctx, input.Title, input.Description); err != nil {
		log.Printf("add-trending: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add highlight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Highlight added"})
}

// UpdateHighlight rewrites a highlight located by its current title; a
// case-insensitive match is tried when the exact title misses. Admin only.
func (h *Handler) UpdateHighlight(c *gin.Context) {
	var input struct {
		OldTitle       string `json:"oldTitle"`
		NewTitle       string `json:"newTitle"`
		NewDescription string `json:"newDescription"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Highlights.UpdateByTitle(ctx, input.OldTitle, input.NewTitle, input.NewDescription)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No highlight updated. Check old title."})
		return
	}
	if err != nil {
		log.Printf("update-trending: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update highlight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Highlight updated"})
}

// DeleteHighlight removes a highlight, by id when the client supplies one
// (legacy path), otherwise by title with the case-insensitive fallback.
// Admin only.
func (h *Handler) DeleteHighlight(c *gin.Context) {
	var input struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if input.ID != "" {
		err := h.Highlights.DeleteByID(ctx, input.ID)
		switch {
		case errors.Is(err, repo.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		case errors.Is(err, repo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No highlight deleted. Check id."})
		case err != nil:
			log.Printf("delete-trending: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete highlight"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Highlight deleted"})
		}
		return
	}

	err := h.Highlights.DeleteByTitle(ctx, input.Title)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No highlight deleted. Check title."})
		return
	}
	if err != nil {
		log.Printf("delete-trending: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete highlight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Highlight deleted"})
}

// DeleteHighlightByID is the explicit id-only deletion endpoint. Admin
// only.
func (h *Handler) DeleteHighlightByID(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Highlights.DeleteByID(ctx, input.ID)
	switch {
	case errors.Is(err, repo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No highlight deleted. Check id."})
	case err != nil:
		log.Printf("delete-trending-by-id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete highlight"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Highlight deleted"})
	}
}
