// Package dataset loads tabular data files into an in-memory column store.
package dataset

import (
	"github.com/datawalker/backend/internal/models"
)

// ColumnType is the inferred scalar type of a column.
type ColumnType int

const (
	TypeBool ColumnType = iota
	TypeInt
	TypeFloat
	TypeString
)

// String returns the dtype name exposed over the API.
func (t ColumnType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int64"
	case TypeFloat:
		return "float64"
	default:
		return "object"
	}
}

// Column is a named, typed sequence of values. Missing values are nil.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Dataset is an ordered collection of equal-length columns. It is
// built once by a loader and replaced wholesale, never mutated.
type Dataset struct {
	Columns []Column
	rows    int
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return d.rows }

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int { return len(d.Columns) }

// Empty reports whether the dataset has no rows or no columns.
func (d *Dataset) Empty() bool { return d.rows == 0 || len(d.Columns) == 0 }

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// DTypes returns a column-name to dtype-name map.
func (d *Dataset) DTypes() map[string]string {
	types := make(map[string]string, len(d.Columns))
	for _, c := range d.Columns {
		types[c.Name] = c.Type.String()
	}
	return types
}

// Rows materializes up to limit rows as ordered maps for export.
// A limit <= 0 returns all rows.
func (d *Dataset) Rows(limit int) []map[string]any {
	n := d.rows
	if limit > 0 && limit < n {
		n = limit
	}
	rows := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		row := make(map[string]any, len(d.Columns))
		for _, c := range d.Columns {
			row[c.Name] = c.Values[i]
		}
		rows[i] = row
	}
	return rows
}

// Describe builds the FileInfo snapshot for a dataset loaded from the
// given name and path. Uploaded buffers pass a synthetic
// "uploaded:<name>" path.
func Describe(d *Dataset, name, path string) *models.FileInfo {
	return &models.FileInfo{
		Name:        name,
		Path:        path,
		Rows:        d.NumRows(),
		Columns:     d.NumColumns(),
		ColumnNames: d.ColumnNames(),
		DTypes:      d.DTypes(),
	}
}
