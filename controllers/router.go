package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/middleware"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// Router builds the full route table. Reads are public; writes sit behind
// the JWT middleware, with admin-only writes additionally role-gated.
// Activity write endpoints are registered under both the /admin and /api
// prefixes for older clients, backed by the same handlers.
func (h *Handler) Router() *gin.Engine {
	router := gin.Default()

	adminOnly := []gin.HandlerFunc{middleware.Auth(), middleware.RequireRole(models.RoleAdmin)}

	router.GET("/", h.Home)
	router.GET("/uploads/:filename", h.ServeUpload)

	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/check-user", h.CheckUser)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password/:token", h.ResetPassword)
	}

	admin := router.Group("/admin")
	{
		// user management
		admin.POST("/add-user", append(adminOnly, h.AddUser)...)
		admin.PUT("/update-user", append(adminOnly, h.UpdateUser)...)
		admin.DELETE("/delete-user", append(adminOnly, h.DeleteUser)...)
		admin.GET("/get-users", append(adminOnly, h.GetUsers)...)

		// announcements
		admin.POST("/add-announcement", append(adminOnly, h.AddAnnouncement)...)
		admin.PUT("/update-announcement", append(adminOnly, h.UpdateAnnouncement)...)
		admin.DELETE("/delete-announcement", append(adminOnly, h.DeleteAnnouncement)...)
		admin.GET("/get-announcements", append(adminOnly, h.GetAnnouncements)...)

		// trending highlights; reads are public
		admin.GET("/get-trending", h.GetHighlights)
		admin.POST("/add-trending", append(adminOnly, h.AddHighlight)...)
		admin.PUT("/update-trending", append(adminOnly, h.UpdateHighlight)...)
		admin.DELETE("/delete-trending", append(adminOnly, h.DeleteHighlight)...)
		admin.DELETE("/delete-trending-by-id", append(adminOnly, h.DeleteHighlightByID)...)

		// activities, admin surface
		admin.GET("/get-activities", middleware.Auth(), h.ListActivities)
		admin.POST("/add-activity", append(adminOnly, h.CreateActivity)...)
		admin.PUT("/update-activity", append(adminOnly, h.UpdateActivity)...)
		admin.DELETE("/delete-activity", append(adminOnly, h.DeleteActivity)...)
		admin.DELETE("/clear-activities", append(adminOnly, h.ClearActivities)...)

		// gallery and reports
		admin.POST("/upload-photos", middleware.Auth(), h.UploadPhotos)
		admin.GET("/get-photos", h.GetPhotos)
		admin.GET("/get-gallery", h.GetGallery)
		admin.DELETE("/delete-photo", middleware.Auth(), h.DeletePhoto)
		admin.POST("/upload-reports", middleware.Auth(), h.UploadReports)
	}

	api := router.Group("/api")
	{
		api.GET("/activities", h.ListActivities)
		api.GET("/activities/latest", h.LatestActivities)
		api.GET("/activities/:id", h.GetActivity)
		api.POST("/activities", append(adminOnly, h.CreateActivity)...)

		api.GET("/albums", h.GetAlbums)
		api.POST("/albums", h.CreateAlbum)
		api.DELETE("/albums/:name", h.DeleteAlbum)
		api.POST("/albums/:name/photos", h.UploadAlbumPhotos)
		api.DELETE("/albums/:name/photos/:photoId", h.DeleteAlbumPhoto)

		api.POST("/contact", h.Contact)
	}

	router.GET("/download-report", middleware.Auth(), h.DownloadReport)

	return router
}
