// Package upload validates inbound file uploads before parsing.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/models"
)

// DefaultMaxSizeMB is the upload size ceiling applied when the
// configuration does not override it.
const DefaultMaxSizeMB = 100

// Validate checks an upload's filename and size before any parsing
// happens. Checks run in order: filename present, extension in the
// supported set, size under the ceiling, no path-traversal sequences.
// It returns ok plus a human-readable reason on failure.
func Validate(filename string, size int64, maxSizeMB int) (bool, string) {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}

	if filename == "" {
		return false, "no filename provided"
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !dataset.IsSupportedExtension(ext) {
		return false, fmt.Sprintf("unsupported file type: %s (allowed types: %s)",
			ext, strings.Join(dataset.SupportedExtensions(), ", "))
	}

	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if size > maxBytes {
		return false, fmt.Sprintf("file size (%s) exceeds maximum allowed size (%d MB)",
			models.FormatFileSize(size), maxSizeMB)
	}

	// The sanitizer already strips separators; this check stays anyway
	// in case a name reaches here unsanitized.
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return false, "invalid filename: path traversal detected"
	}

	return true, ""
}

// SanitizeFilename reduces an arbitrary client-supplied filename to a
// safe basename: path components are dropped and every character
// outside [A-Za-z0-9._-] becomes an underscore. Returns "" when
// nothing safe remains.
func SanitizeFilename(name string) string {
	// Take the last component regardless of which separator the
	// client's OS used.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return strings.Trim(b.String(), "._")
}
