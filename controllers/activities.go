package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

// ActivityInput is the request body for creating an activity.
type ActivityInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	Location    string             `json:"location"`
	Status      string             `json:"status"`
	Photos      []models.PhotoRef  `json:"photos"`
	Reports     []models.ReportRef `json:"reports"`
}

// UpdateActivityInput addresses an activity by its current title; the id
// path is legacy and only consulted when no title is given.
type UpdateActivityInput struct {
	OldTitle       string `json:"oldTitle"`
	ID             string `json:"id"`
	NewTitle       string `json:"newTitle"`
	NewDescription string `json:"newDescription"`
	NewDate        string `json:"newDate"`
	NewImageURL    string `json:"newImageUrl"`
}

// ListActivities returns all activities, most recent first. Public.
func (h *Handler) ListActivities(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	activities, err := h.Activities.List(ctx)
	if err != nil {
		log.Printf("list-activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// LatestActivities returns the three most recent activities. Public.
func (h *Handler) LatestActivities(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	activities, err := h.Activities.Latest(ctx, repo.DefaultLatestLimit)
	if err != nil {
		log.Printf("latest-activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivity fetches one activity by id. Public.
func (h *Handler) GetActivity(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	activity, err := h.Activities.GetByID(ctx, c.Param("id"))
	switch {
	case errors.Is(err, repo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
	case err != nil:
		log.Printf("get-activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
	default:
		c.JSON(http.StatusOK, activity)
	}
}

// CreateActivity adds a new activity with the campus defaults. Admin only.
func (h *Handler) CreateActivity(c *gin.Context) {
	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := utils.ValidateActivity(map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"date":        input.Date,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	activity, err := h.Activities.Create(ctx, models.Activity{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Status:      input.Status,
		Photos:      input.Photos,
		Reports:     input.Reports,
	})
	if err != nil {
		log.Printf("add-activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add activity"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Activity added successfully",
		"activity_id": activity.ID.Hex(),
		"activity":    activity,
	})
}

// UpdateActivity patches an activity, resolved by title first, by id as a
// legacy fallback. Admin only.
func (h *Handler) UpdateActivity(c *gin.Context) {
	var input UpdateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	patch := repo.ActivityPatch{}
	if input.NewTitle != "" {
		patch.Title = &input.NewTitle
	}
	if input.NewDescription != "" {
		patch.Description = &input.NewDescription
	}
	if input.NewDate != "" {
		patch.Date = &input.NewDate
	}
	if input.NewImageURL != "" {
		patch.ImageURL = &input.NewImageURL
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if input.OldTitle != "" {
		err := h.Activities.UpdateByTitle(ctx, input.OldTitle, patch)
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No activity found with that title"})
			return
		}
		if err != nil {
			log.Printf("update-activity: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Activity updated successfully"})
		return
	}

	if input.ID != "" {
		err := h.Activities.UpdateByID(ctx, input.ID, patch)
		switch {
		case errors.Is(err, repo.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		case errors.Is(err, repo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No activity updated. Check ID."})
		case err != nil:
			log.Printf("update-activity: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Activity updated"})
		}
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either oldTitle or id to update activity"})
}

// DeleteActivity removes an activity and cleans up its owned photos and
// reports. Storage failures are logged, never fatal. Admin only.
func (h *Handler) DeleteActivity(c *gin.Context) {
	var input struct {
		Title string `json:"title"`
		ID    string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		activity models.Activity
		err      error
	)
	switch {
	case input.Title != "":
		activity, err = h.Activities.DeleteByTitle(ctx, input.Title)
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No activity found with that title"})
			return
		}
	case input.ID != "":
		activity, err = h.Activities.DeleteByID(ctx, input.ID)
		if errors.Is(err, repo.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
			return
		}
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No activity deleted. Check ID."})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either title or id to delete activity"})
		return
	}
	if err != nil {
		log.Printf("delete-activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	h.cleanupActivity(c, activity)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// cleanupActivity deletes the stored bytes owned by a removed activity.
func (h *Handler) cleanupActivity(c *gin.Context, activity models.Activity) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	var photoIDs []string
	for _, p := range activity.Photos {
		photoIDs = append(photoIDs, p.Filename)
	}
	if res := storage.RemoveAll(ctx, h.Photos, photoIDs); !res.OK() {
		log.Printf("delete-activity %q: %d photo(s) left in storage", activity.Title, len(res.Failed))
	}

	var reportIDs []string
	for _, r := range activity.Reports {
		reportIDs = append(reportIDs, r.PublicID)
	}
	if res := storage.RemoveAll(ctx, h.Reports, reportIDs); !res.OK() {
		log.Printf("delete-activity %q: %d report(s) left in storage", activity.Title, len(res.Failed))
	}
}

// ClearActivities wipes the collection. Maintenance endpoint, admin only.
func (h *Handler) ClearActivities(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	count, err := h.Activities.Clear(ctx)
	if err != nil {
		log.Printf("clear-activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All activities deleted", "deletedCount": count})
}
