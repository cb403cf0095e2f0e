package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects the allow-lists used to validate an upload.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// MaxFileSize is the uniform upload ceiling for every kind.
const MaxFileSize = 50 * 1024 * 1024 // 50MB

var (
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrUnsupportedMimeType  = errors.New("unsupported content type")
	ErrTooLarge             = fmt.Errorf("file too large. Maximum size: %dMB", MaxFileSize/(1024*1024))
)

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
}

var documentExtensions = map[string]bool{
	"pdf": true, "docx": true, "doc": true,
}

var imageMimeTypes = map[string]bool{
	"image/png": true, "image/jpeg": true, "image/jpg": true,
	"image/gif": true, "image/webp": true,
}

var documentMimeTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/msword": true,
}

func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// AllowedImage reports whether the filename has an image extension.
func AllowedImage(filename string) bool {
	return imageExtensions[extension(filename)]
}

// AllowedDocument reports whether the filename has a document extension.
func AllowedDocument(filename string) bool {
	return documentExtensions[extension(filename)]
}

// AllowedFile reports whether the filename is an image or a document.
func AllowedFile(filename string) bool {
	return AllowedImage(filename) || AllowedDocument(filename)
}

// ValidateUpload checks extension, declared MIME type and size against the
// allow-lists for the given kind.
func ValidateUpload(filename, contentType string, size int64, kind Kind) error {
	ext := extension(filename)
	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	switch kind {
	case KindImage:
		if !imageExtensions[ext] {
			return ErrUnsupportedExtension
		}
		if !imageMimeTypes[mime] {
			return ErrUnsupportedMimeType
		}
	case KindDocument:
		if !documentExtensions[ext] {
			return ErrUnsupportedExtension
		}
		if !documentMimeTypes[mime] {
			return ErrUnsupportedMimeType
		}
	default:
		return ErrUnsupportedExtension
	}

	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

var unsafeChars = strings.NewReplacer(
	" ", "_", "/", "_", "\\", "_", "..", "_", ":", "_",
)

// SafeFilename reduces an uploaded filename to a safe base name with no
// path components.
func SafeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.Replace(strings.TrimSpace(name))
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
