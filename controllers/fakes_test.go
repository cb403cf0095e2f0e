package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

// In-memory fakes standing in for the Mongo repositories, plus request
// helpers. Every endpoint test goes through the real router so the
// middleware chain is exercised too.

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, len(f.users))
	for i, u := range f.users {
		u.Password = ""
		out[i] = u
	}
	return out, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f *fakeUsers) Create(ctx context.Context, user models.User) error {
	if user.Role == models.RoleVerticalHead && user.Vertical == "" {
		return fmt.Errorf("%w: vertical name is required for vertical head", repo.ErrValidation)
	}
	if user.Role != models.RoleVerticalHead {
		user.Vertical = ""
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repo.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) UpdateByEmail(ctx context.Context, email string, patch repo.UserPatch) error {
	for i, u := range f.users {
		if u.Email != email {
			continue
		}
		if patch.Role != nil {
			if *patch.Role == models.RoleVerticalHead {
				if patch.Vertical == nil || *patch.Vertical == "" {
					return fmt.Errorf("%w: vertical name is required for vertical head", repo.ErrValidation)
				}
				u.Vertical = *patch.Vertical
			} else {
				u.Vertical = ""
			}
			u.Role = *patch.Role
		} else if patch.Vertical != nil && *patch.Vertical != "" && u.Role == models.RoleVerticalHead {
			u.Vertical = *patch.Vertical
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.Password = *patch.PasswordHash
		}
		f.users[i] = u
		return nil
	}
	return repo.ErrNotFound
}

func (f *fakeUsers) DeleteByEmail(ctx context.Context, email string) error {
	for i, u := range f.users {
		if u.Email == email {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeUsers) SetResetToken(ctx context.Context, email, token string) error {
	for i, u := range f.users {
		if u.Email == email {
			f.users[i].ResetToken = token
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeUsers) GetByResetToken(ctx context.Context, token string) (models.User, error) {
	for _, u := range f.users {
		if u.ResetToken != "" && u.ResetToken == token {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f *fakeUsers) ResetPassword(ctx context.Context, token, passwordHash string) error {
	for i, u := range f.users {
		if u.ResetToken != "" && u.ResetToken == token {
			f.users[i].Password = passwordHash
			f.users[i].ResetToken = ""
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeAnnouncements struct {
	anns []models.Announcement
}

func (f *fakeAnnouncements) List(ctx context.Context) ([]models.Announcement, error) {
	return append([]models.Announcement{}, f.anns...), nil
}

func (f *fakeAnnouncements) Create(ctx context.Context, name, description string) error {
	f.anns = append(f.anns, models.Announcement{
		ID:                  primitive.NewObjectID(),
		ActivityName:        name,
		ActivityDescription: description,
	})
	return nil
}

func (f *fakeAnnouncements) UpdateByName(ctx context.Context, oldName, newName, newDescription string) error {
	for i, a := range f.anns {
		if a.ActivityName == oldName {
			f.anns[i].ActivityName = newName
			f.anns[i].ActivityDescription = newDescription
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeAnnouncements) DeleteByName(ctx context.Context, name string) error {
	for i, a := range f.anns {
		if a.ActivityName == name {
			f.anns = append(f.anns[:i], f.anns[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeHighlights struct {
	highlights []models.Highlight
}

// resolve mirrors the repository behavior: exact title first, then an
// anchored case-insensitive match on the trimmed title.
func (f *fakeHighlights) resolve(title string) int {
	for i, h := range f.highlights {
		if h.Title == title {
			return i
		}
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return -1
	}
	for i, h := range f.highlights {
		if strings.EqualFold(h.Title, trimmed) {
			return i
		}
	}
	return -1
}

func (f *fakeHighlights) List(ctx context.Context) ([]models.Highlight, error) {
	return append([]models.Highlight{}, f.highlights...), nil
}

func (f *fakeHighlights) Create(ctx context.Context, title, description string) error {
	f.highlights = append(f.highlights, models.Highlight{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
	})
	return nil
}

func (f *fakeHighlights) UpdateByTitle(ctx context.Context, oldTitle, newTitle, newDescription string) error {
	i := f.resolve(oldTitle)
	if i < 0 {
		return repo.ErrNotFound
	}
	f.highlights[i].Title = newTitle
	f.highlights[i].Description = newDescription
	return nil
}

func (f *fakeHighlights) DeleteByTitle(ctx context.Context, title string) error {
	i := f.resolve(title)
	if i < 0 {
		return repo.ErrNotFound
	}
	f.highlights = append(f.highlights[:i], f.highlights[i+1:]...)
	return nil
}

func (f *fakeHighlights) DeleteByID(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: invalid id format", repo.ErrValidation)
	}
	for i, h := range f.highlights {
		if h.ID.Hex() == id {
			f.highlights = append(f.highlights[:i], f.highlights[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeActivities struct {
	activities []models.Activity
}

func applyActivityPatch(a *models.Activity, patch repo.ActivityPatch) {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.ImageURL != nil {
		a.ImageURL = *patch.ImageURL
	}
}

func (f *fakeActivities) List(ctx context.Context) ([]models.Activity, error) {
	out := append([]models.Activity{}, f.activities...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (f *fakeActivities) Latest(ctx context.Context, n int) ([]models.Activity, error) {
	if n <= 0 {
		n = repo.DefaultLatestLimit
	}
	out, _ := f.List(ctx)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakeActivities) GetByID(ctx context.Context, id string) (models.Activity, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Activity{}, fmt.Errorf("%w: invalid activity id", repo.ErrValidation)
	}
	for _, a := range f.activities {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return models.Activity{}, repo.ErrNotFound
}

func (f *fakeActivities) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	if a.Location == "" {
		a.Location = models.DefaultActivityLocation
	}
	if a.Status == "" {
		a.Status = models.DefaultActivityStatus
	}
	if a.Photos == nil {
		a.Photos = []models.PhotoRef{}
	}
	if a.Reports == nil {
		a.Reports = []models.ReportRef{}
	}
	a.ID = primitive.NewObjectID()
	f.activities = append(f.activities, a)
	return a, nil
}

func (f *fakeActivities) UpdateByTitle(ctx context.Context, title string, patch repo.ActivityPatch) error {
	for i := range f.activities {
		if f.activities[i].Title == title {
			applyActivityPatch(&f.activities[i], patch)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeActivities) UpdateByID(ctx context.Context, id string, patch repo.ActivityPatch) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: invalid activity id", repo.ErrValidation)
	}
	for i := range f.activities {
		if f.activities[i].ID.Hex() == id {
			applyActivityPatch(&f.activities[i], patch)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeActivities) DeleteByTitle(ctx context.Context, title string) (models.Activity, error) {
	for i, a := range f.activities {
		if a.Title == title {
			f.activities = append(f.activities[:i], f.activities[i+1:]...)
			return a, nil
		}
	}
	return models.Activity{}, repo.ErrNotFound
}

func (f *fakeActivities) DeleteByID(ctx context.Context, id string) (models.Activity, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Activity{}, fmt.Errorf("%w: invalid activity id", repo.ErrValidation)
	}
	for i, a := range f.activities {
		if a.ID.Hex() == id {
			f.activities = append(f.activities[:i], f.activities[i+1:]...)
			return a, nil
		}
	}
	return models.Activity{}, repo.ErrNotFound
}

func (f *fakeActivities) Clear(ctx context.Context) (int64, error) {
	n := int64(len(f.activities))
	f.activities = nil
	return n, nil
}

type fakeAlbums struct {
	albums []models.Album
}

func (f *fakeAlbums) List(ctx context.Context) ([]models.Album, error) {
	return append([]models.Album{}, f.albums...), nil
}

func (f *fakeAlbums) GetByName(ctx context.Context, name string) (models.Album, error) {
	for _, a := range f.albums {
		if a.Name == name {
			return a, nil
		}
	}
	return models.Album{}, repo.ErrNotFound
}

func (f *fakeAlbums) Create(ctx context.Context, name string) error {
	for _, a := range f.albums {
		if a.Name == name {
			return repo.ErrConflict
		}
	}
	f.albums = append(f.albums, models.Album{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Photos: []models.PhotoRef{},
	})
	return nil
}

func (f *fakeAlbums) AddPhotos(ctx context.Context, name string, photos []models.PhotoRef) error {
	for i, a := range f.albums {
		if a.Name == name {
			f.albums[i].Photos = append(f.albums[i].Photos, photos...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeAlbums) RemovePhoto(ctx context.Context, name, photoID string) (models.PhotoRef, error) {
	for i, a := range f.albums {
		if a.Name != name {
			continue
		}
		for j, p := range a.Photos {
			if p.ID == photoID {
				f.albums[i].Photos = append(a.Photos[:j], a.Photos[j+1:]...)
				return p, nil
			}
		}
		return models.PhotoRef{}, repo.ErrNotFound
	}
	return models.PhotoRef{}, repo.ErrNotFound
}

func (f *fakeAlbums) DeleteByName(ctx context.Context, name string) (models.Album, error) {
	for i, a := range f.albums {
		if a.Name == name {
			f.albums = append(f.albums[:i], f.albums[i+1:]...)
			return a, nil
		}
	}
	return models.Album{}, repo.ErrNotFound
}

var (
	errSMTPDown    = errors.New("smtp connection refused")
	errBackendDown = errors.New("storage backend unavailable")
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

// fakeBackend records saves and removals without touching disk.
type fakeBackend struct {
	n         int
	saved     map[string]string // identifier -> original filename
	removed   []string
	saveErr   error
	removeErr error
}

func (f *fakeBackend) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (storage.SavedFile, error) {
	if f.saveErr != nil {
		return storage.SavedFile{}, f.saveErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return storage.SavedFile{}, err
	}
	f.n++
	id := fmt.Sprintf("%04d_%s", f.n, storage.SafeFilename(filename))
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	f.saved[id] = filename
	return storage.SavedFile{
		Identifier:   id,
		URL:          "/uploads/" + id,
		OriginalName: storage.SafeFilename(filename),
	}, nil
}

func (f *fakeBackend) Remove(ctx context.Context, identifier string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, identifier)
	delete(f.saved, identifier)
	return nil
}

type testEnv struct {
	h       *Handler
	users   *fakeUsers
	anns    *fakeAnnouncements
	highs   *fakeHighlights
	acts    *fakeActivities
	albums  *fakeAlbums
	photos  *fakeBackend
	reports *fakeBackend
	mail    *fakeMailer
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:   &fakeUsers{},
		anns:    &fakeAnnouncements{},
		highs:   &fakeHighlights{},
		acts:    &fakeActivities{},
		albums:  &fakeAlbums{},
		photos:  &fakeBackend{},
		reports: &fakeBackend{},
		mail:    &fakeMailer{},
	}
	env.h = &Handler{
		Users:         env.users,
		Announcements: env.anns,
		Highlights:    env.highs,
		Activities:    env.acts,
		Albums:        env.albums,
		Photos:        env.photos,
		Reports:       env.reports,
		Mail:          env.mail,
		Verticals: map[string]string{
			"events":      "/vertical-dashboard/events",
			"photography": "/vertical-dashboard/photography",
		},
		UploadDir:    t.TempDir(),
		BaseURL:      "http://localhost:8080",
		ResetURLBase: "http://localhost:3000/reset-password",
		ContactEmail: "nss@ssn.edu.in",
	}
	env.router = env.h.Router()
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, password, role, vertical string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	e.users.users = append(e.users.users, models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hash,
		Role:     role,
		Vertical: vertical,
	})
}

func tokenFor(t *testing.T, email, role, vertical string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, role, vertical)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	return tokenFor(t, "admin@ssn.edu.in", models.RoleAdmin, "")
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

type uploadFile struct {
	field, filename, contentType, content string
}

func (e *testEnv) doMultipart(t *testing.T, method, path string, files []uploadFile, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		hdr.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
