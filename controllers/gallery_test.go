package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

func volunteerToken(t *testing.T) string {
	return tokenFor(t, "vol@ssn.edu.in", models.RoleVolunteer, "")
}

func TestUploadPhotos(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, http.MethodPost, "/admin/upload-photos", []uploadFile{
		{field: "photos", filename: "camp.jpg", contentType: "image/jpeg", content: "jpegdata"},
		{field: "photos", filename: "virus.exe", contentType: "application/octet-stream", content: "MZ"},
	}, volunteerToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
	if len(env.photos.saved) != 1 {
		t.Errorf("backend saved %d files, want 1", len(env.photos.saved))
	}
}

func TestUploadPhotosRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.doMultipart(t, http.MethodPost, "/admin/upload-photos", []uploadFile{
		{field: "photos", filename: "camp.jpg", contentType: "image/jpeg", content: "x"},
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUploadPhotosNoneValid(t *testing.T) {
	env := newTestEnv(t)
	w := env.doMultipart(t, http.MethodPost, "/admin/upload-photos", []uploadFile{
		{field: "photos", filename: "doc.pdf", contentType: "application/pdf", content: "%PDF"},
	}, volunteerToken(t))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["error"] != "No valid photos uploaded" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestGetGalleryFiltersImages(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"a.jpg", "b.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(env.h.UploadDir, name), []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	w := env.doJSON(t, http.MethodGet, "/admin/get-gallery", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("gallery: status = %d", w.Code)
	}
	var gallery []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &gallery); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(gallery) != 1 || gallery[0]["filename"] != "a.jpg" {
		t.Errorf("gallery = %v, want only a.jpg", gallery)
	}

	w = env.doJSON(t, http.MethodGet, "/admin/get-photos", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("photos: status = %d", w.Code)
	}
	var photos []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &photos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// images and documents, but not stray text files
	if len(photos) != 2 {
		t.Errorf("photos = %v, want a.jpg and b.pdf", photos)
	}
}

func TestDeletePhoto(t *testing.T) {
	env := newTestEnv(t)
	token := volunteerToken(t)
	if err := os.WriteFile(filepath.Join(env.h.UploadDir, "gone.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := env.doJSON(t, http.MethodDelete, "/admin/delete-photo", map[string]string{
		"filename": "gone.jpg",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(env.photos.removed) != 1 || env.photos.removed[0] != "gone.jpg" {
		t.Errorf("removed = %v", env.photos.removed)
	}

	w = env.doJSON(t, http.MethodDelete, "/admin/delete-photo", map[string]string{
		"filename": "missing.jpg",
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing file: status = %d, want 404", w.Code)
	}

	w = env.doJSON(t, http.MethodDelete, "/admin/delete-photo", map[string]string{
		"filename": "../escape.jpg",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("traversal: status = %d, want 400", w.Code)
	}
}

func TestUploadReports(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, http.MethodPost, "/admin/upload-reports", []uploadFile{
		{field: "reports", filename: "summary.pdf", contentType: "application/pdf", content: "%PDF-1.4"},
		{field: "reports", filename: "photo.jpg", contentType: "image/jpeg", content: "nope"},
	}, volunteerToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
	reports, ok := body["reports"].([]any)
	if !ok || len(reports) != 1 {
		t.Fatalf("reports = %v", body["reports"])
	}
	ref := reports[0].(map[string]any)
	if ref["public_id"] == "" || ref["url"] == "" {
		t.Errorf("report ref = %v", ref)
	}
	if ref["original_name"] != "summary.pdf" {
		t.Errorf("original_name = %v", ref["original_name"])
	}

	// reports go to the report backend, not the photo backend
	if len(env.reports.saved) != 1 || len(env.photos.saved) != 0 {
		t.Errorf("reports saved = %d, photos saved = %d", len(env.reports.saved), len(env.photos.saved))
	}
}

func TestServeUpload(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(filepath.Join(env.h.UploadDir, "pic.jpg"), []byte("jpegdata"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := env.doJSON(t, http.MethodGet, "/uploads/pic.jpg", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "jpegdata" {
		t.Errorf("body = %q", w.Body.String())
	}

	if w := env.doJSON(t, http.MethodGet, "/uploads/missing.jpg", nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d, want 404", w.Code)
	}
}

func TestHome(t *testing.T) {
	env := newTestEnv(t)
	w := env.doJSON(t, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "running" {
		t.Errorf("status field = %v", body["status"])
	}
}
