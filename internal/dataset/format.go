package dataset

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported tabular file format. The set is
// closed; dispatch on it is exhaustive and anything outside it is
// rejected up front.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatExcel
	FormatParquet
	FormatJSON
)

// SupportedExtensions lists the accepted file extensions in display order.
func SupportedExtensions() []string {
	return []string{".csv", ".xlsx", ".xls", ".parquet", ".json"}
}

// IsSupportedExtension reports whether ext (with leading dot, any
// case) maps to a known format.
func IsSupportedExtension(ext string) bool {
	return formatForExtension(strings.ToLower(ext)) != FormatUnknown
}

// FormatForName derives the format from a filename's extension.
func FormatForName(name string) Format {
	return formatForExtension(strings.ToLower(filepath.Ext(name)))
}

func formatForExtension(ext string) Format {
	switch ext {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xls":
		return FormatExcel
	case ".parquet":
		return FormatParquet
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "excel"
	case FormatParquet:
		return "parquet"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}
