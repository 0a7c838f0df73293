package dataset

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// parseExcel reads the first sheet of a workbook, treating the first
// row as the header. Cell values arrive as strings and go through the
// same type inference as CSV.
func parseExcel(data []byte) (*Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	header := rows[0]
	if len(header) == 0 {
		return nil, errors.New("first row has no header cells")
	}
	return fromStringRecords(header, rows[1:])
}
