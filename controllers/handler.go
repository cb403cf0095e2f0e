package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
)

// Store interfaces consumed by the handlers. The repo package provides the
// Mongo-backed implementations; tests inject in-memory fakes.

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) error
	UpdateByEmail(ctx context.Context, email string, patch repo.UserPatch) error
	DeleteByEmail(ctx context.Context, email string) error
	SetResetToken(ctx context.Context, email, token string) error
	GetByResetToken(ctx context.Context, token string) (models.User, error)
	ResetPassword(ctx context.Context, token, passwordHash string) error
}

type AnnouncementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, name, description string) error
	UpdateByName(ctx context.Context, oldName, newName, newDescription string) error
	DeleteByName(ctx context.Context, name string) error
}

type HighlightStore interface {
	List(ctx context.Context) ([]models.Highlight, error)
	Create(ctx context.Context, title, description string) error
	UpdateByTitle(ctx context.Context, oldTitle, newTitle, newDescription string) error
	DeleteByTitle(ctx context.Context, title string) error
	DeleteByID(ctx context.Context, id string) error
}

type ActivityStore interface {
	List(ctx context.Context) ([]models.Activity, error)
	Latest(ctx context.Context, n int) ([]models.Activity, error)
	GetByID(ctx context.Context, id string) (models.Activity, error)
	Create(ctx context.Context, a models.Activity) (models.Activity, error)
	UpdateByTitle(ctx context.Context, title string, patch repo.ActivityPatch) error
	UpdateByID(ctx context.Context, id string, patch repo.ActivityPatch) error
	DeleteByTitle(ctx context.Context, title string) (models.Activity, error)
	DeleteByID(ctx context.Context, id string) (models.Activity, error)
	Clear(ctx context.Context) (int64, error)
}

type AlbumStore interface {
	List(ctx context.Context) ([]models.Album, error)
	GetByName(ctx context.Context, name string) (models.Album, error)
	Create(ctx context.Context, name string) error
	AddPhotos(ctx context.Context, name string, photos []models.PhotoRef) error
	RemovePhoto(ctx context.Context, name, photoID string) (models.PhotoRef, error)
	DeleteByName(ctx context.Context, name string) (models.Album, error)
}

// Mailer delivers plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// Handler carries every dependency the route handlers need.
type Handler struct {
	Users         UserStore
	Announcements AnnouncementStore
	Highlights    HighlightStore
	Activities    ActivityStore
	Albums        AlbumStore

	Photos  storage.Backend // images; local disk, served at /uploads
	Reports storage.Backend // report documents; remote when configured

	Mail Mailer

	Verticals    map[string]string // lowercased vertical -> dashboard route
	UploadDir    string
	BaseURL      string
	ResetURLBase string
	ContactEmail string
}

// reqCtx bounds a database or storage operation to 5 seconds, the same
// ceiling the rest of the service uses.
func reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}
