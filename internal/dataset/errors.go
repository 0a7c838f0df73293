package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat marks files whose extension is outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrEmptyDataset marks files that parsed successfully but yielded no
// usable rows or columns.
var ErrEmptyDataset = errors.New("file contains no data")

func unsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %s (supported formats: %s)",
		ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions(), ", "))
}

// loadError flattens a parser failure into a generic load error that
// carries the original message. Library-specific error types never
// escape this package; our own sentinels pass through untouched.
func loadError(err error) error {
	if errors.Is(err, ErrEmptyDataset) || errors.Is(err, ErrUnsupportedFormat) {
		return err
	}
	return fmt.Errorf("error loading file: %s", err.Error())
}
