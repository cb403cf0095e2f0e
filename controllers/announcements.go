package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
)

// AddAnnouncement creates an announcement. Admin only.
func (h *Handler) AddAnnouncement(c *gin.Context) {
	var input struct {
		ActivityName        string `json:"ActivityName"`
		ActivityDescription string `json:"ActivityDescription"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if input.ActivityName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ActivityName is required"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Announcements.Create(ctx, input.ActivityName, input.ActivityDescription); err != nil {
		log.Printf("add-announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add announcement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Announcement added"})
}

// UpdateAnnouncement renames/rewrites an announcement, located by its
// current name. Admin only.
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	var input struct {
		OldName string `json:"oldName"`
		NewName string `json:"newName"`
		NewText string `json:"newText"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Announcements.UpdateByName(ctx, input.OldName, input.NewName, input.NewText)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No announcement updated. Check name."})
		return
	}
	if err != nil {
		log.Printf("update-announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement updated"})
}

// DeleteAnnouncement removes an announcement by name. Admin only.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	var input struct {
		Activity string `json:"Activity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Announcements.DeleteByName(ctx, input.Activity)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No announcement deleted. Check name."})
		return
	}
	if err != nil {
		log.Printf("delete-announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

// GetAnnouncements lists all announcements. Admin only.
func (h *Handler) GetAnnouncements(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	anns, err := h.Announcements.List(ctx)
	if err != nil {
		log.Printf("get-announcements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, anns)
}
