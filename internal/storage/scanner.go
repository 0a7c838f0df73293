// Package storage scans the data directory for loadable files.
package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/models"
)

// ScanDataDir enumerates dir for files with a supported extension and
// returns them sorted case-insensitively by name. A missing directory,
// a non-directory path, or a permission failure all yield an empty
// slice: the scan fails open so callers can fall back to a default.
func ScanDataDir(dir string) []models.DataFile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []models.DataFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !dataset.IsSupportedExtension(ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		files = append(files, models.DataFile{
			Name:          entry.Name(),
			Path:          path,
			Size:          info.Size(),
			SizeFormatted: models.FormatFileSize(info.Size()),
			Extension:     ext,
			Modified:      info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
	return files
}

// ResolveDefault picks the file matching defaultName, falling back to
// the first entry. The caller guarantees files is non-empty.
func ResolveDefault(files []models.DataFile, defaultName string) models.DataFile {
	for _, f := range files {
		if f.Name == defaultName {
			return f
		}
	}
	return files[0]
}
