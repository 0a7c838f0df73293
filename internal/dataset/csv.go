package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// parseCSV reads a comma-separated file with a header row. Column
// types are inferred per column across all rows.
func parseCSV(data []byte) (*Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return fromStringRecords(records[0], records[1:])
}

// fromStringRecords builds a dataset from a header plus string-valued
// rows, inferring one scalar type per column. Shared by the CSV and
// spreadsheet loaders. Blank header cells get positional names.
func fromStringRecords(header []string, records [][]string) (*Dataset, error) {
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			header[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		cells := make([]string, len(records))
		for j, rec := range records {
			if i < len(rec) {
				cells[j] = rec[i]
			}
		}
		typ, values := inferColumn(cells)
		columns[i] = Column{Name: name, Type: typ, Values: values}
	}
	return &Dataset{Columns: columns, rows: len(records)}, nil
}

// inferColumn inspects a column's raw cells and settles on one scalar
// type for the whole column: bool if every non-empty cell is a bool,
// int64 if every one parses as an integer, float64 if every one parses
// as a number, string otherwise. Empty cells become nil.
func inferColumn(cells []string) (ColumnType, []any) {
	nonEmpty, bools, ints, floats := 0, 0, 0, 0
	for _, cell := range cells {
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		nonEmpty++
		if isBool(v) {
			bools++
			continue
		}
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			ints++
			floats++
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			floats++
		}
	}

	typ := TypeString
	switch {
	case nonEmpty == 0:
		typ = TypeString
	case bools == nonEmpty:
		typ = TypeBool
	case ints == nonEmpty:
		typ = TypeInt
	case floats == nonEmpty:
		typ = TypeFloat
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		v := strings.TrimSpace(cell)
		if v == "" {
			values[i] = nil
			continue
		}
		switch typ {
		case TypeBool:
			values[i] = strings.EqualFold(v, "true")
		case TypeInt:
			n, _ := strconv.ParseInt(v, 10, 64)
			values[i] = n
		case TypeFloat:
			f, _ := strconv.ParseFloat(v, 64)
			values[i] = f
		default:
			values[i] = cell
		}
	}
	return typ, values
}

func isBool(v string) bool {
	return strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
}
