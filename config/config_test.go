package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGO_URI", "MONGO_DB", "UPLOAD_DIR", "BASE_URL",
		"RESET_URL_BASE", "CONTACT_EMAIL", "SMTP_USER", "STORAGE_BACKEND",
		"MINIO_USE_SSL", "VERTICALS_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MongoDB != "nss_portal" {
		t.Errorf("MongoDB = %q, want nss_portal", cfg.MongoDB)
	}
	if cfg.StorageBackend != "local" {
		t.Errorf("StorageBackend = %q, want local", cfg.StorageBackend)
	}
	if cfg.ResetURLBase != "http://localhost:3000/reset-password" {
		t.Errorf("ResetURLBase = %q", cfg.ResetURLBase)
	}
	if cfg.MinioUseSSL {
		t.Error("MinioUseSSL should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SMTP_USER", "club@ssn.edu.in")
	t.Setenv("CONTACT_EMAIL", "")
	os.Unsetenv("CONTACT_EMAIL")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.StorageBackend != "minio" {
		t.Errorf("StorageBackend = %q, want minio", cfg.StorageBackend)
	}
	if !cfg.MinioUseSSL {
		t.Error("MinioUseSSL = false, want true")
	}
	// contact email falls back to the SMTP account
	if cfg.ContactEmail != "club@ssn.edu.in" {
		t.Errorf("ContactEmail = %q, want club@ssn.edu.in", cfg.ContactEmail)
	}
}

func TestLoadVerticalsDefaults(t *testing.T) {
	verticals, err := LoadVerticals("")
	if err != nil {
		t.Fatalf("LoadVerticals(\"\") = %v", err)
	}
	if verticals["events"] != "/vertical-dashboard/events" {
		t.Errorf("events dashboard = %q", verticals["events"])
	}
	if verticals["photography"] != "/vertical-dashboard/photography" {
		t.Errorf("photography dashboard = %q", verticals["photography"])
	}
}

func TestLoadVerticalsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verticals.yaml")
	content := "verticals:\n  Media: /vertical-dashboard/media\n  Outreach: /vertical-dashboard/outreach\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	verticals, err := LoadVerticals(path)
	if err != nil {
		t.Fatalf("LoadVerticals(%s) = %v", path, err)
	}
	// keys are lowercased for case-insensitive login matching
	if verticals["media"] != "/vertical-dashboard/media" {
		t.Errorf("media dashboard = %q", verticals["media"])
	}
	if _, ok := verticals["Media"]; ok {
		t.Error("key should be lowercased, found original-case key")
	}
}

func TestLoadVerticalsFileErrors(t *testing.T) {
	if _, err := LoadVerticals(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("verticals: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadVerticals(empty); err == nil {
		t.Error("file with no verticals should error")
	}
}
