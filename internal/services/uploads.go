package services

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedImage reports whether filename has an accepted image extension.
func AllowedImage(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedImageExtensions[strings.ToLower(filename[idx+1:])]
}

// UploadName returns a safe, unique on-disk name for an uploaded file.
func UploadName(filename string) string {
	return uuid.NewString() + "_" + sanitizeFilename(filename)
}

// ImageURL is the public path an uploaded file is served from.
func ImageURL(storedName string) string {
	return "/uploads/" + storedName
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	clean := strings.TrimLeft(b.String(), "._")
	if clean == "" {
		return "upload"
	}
	return clean
}
