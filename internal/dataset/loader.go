package dataset

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a data file from disk, dispatching on its extension.
func Load(path string) (*Dataset, error) {
	name := filepath.Base(path)
	format := FormatForName(name)
	if format == FormatUnknown {
		return nil, unsupportedFormatError(strings.ToLower(filepath.Ext(name)))
	}

	switch format {
	case FormatParquet:
		// DuckDB reads parquet directly from the path.
		ds, err := parseParquetFile(path)
		if err != nil {
			return nil, loadError(err)
		}
		return ds, nil
	case FormatCSV, FormatExcel, FormatJSON:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, loadError(err)
		}
		return parseBuffer(format, data)
	default:
		return nil, unsupportedFormatError(strings.ToLower(filepath.Ext(name)))
	}
}

// LoadBytes parses an in-memory buffer, such as an upload. The name is
// used only to derive the format.
func LoadBytes(name string, data []byte) (*Dataset, error) {
	format := FormatForName(name)
	if format == FormatUnknown {
		return nil, unsupportedFormatError(strings.ToLower(filepath.Ext(name)))
	}

	if format == FormatParquet {
		ds, err := parseParquetBuffer(data)
		if err != nil {
			return nil, loadError(err)
		}
		return ds, nil
	}
	return parseBuffer(format, data)
}

func parseBuffer(format Format, data []byte) (*Dataset, error) {
	var (
		ds  *Dataset
		err error
	)
	switch format {
	case FormatCSV:
		ds, err = parseCSV(data)
	case FormatExcel:
		ds, err = parseExcel(data)
	case FormatJSON:
		ds, err = parseJSON(data)
	default:
		return nil, unsupportedFormatError(format.String())
	}
	if err != nil {
		return nil, loadError(err)
	}
	return ds, nil
}
