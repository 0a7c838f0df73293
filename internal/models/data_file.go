package models

import (
	"fmt"
	"time"
)

// DataFile represents a data file discovered in the data directory.
// Entries are immutable once scanned and regenerated on each scan.
type DataFile struct {
	Name          string    `json:"name"`
	Path          string    `json:"path"`
	Size          int64     `json:"size"`
	SizeFormatted string    `json:"size_formatted"`
	Extension     string    `json:"extension"`
	Modified      time.Time `json:"modified"`
}

// FormatFileSize renders a byte count in human-readable form,
// e.g. "1.2 MB" or "890.0 KB".
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f PB", value)
}
