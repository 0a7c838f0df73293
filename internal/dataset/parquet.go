package dataset

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"
)

// parseParquetFile reads a parquet file through DuckDB's read_parquet
// scan. DuckDB does the columnar decoding and type resolution; the
// rows are drained generically into columns.
func parseParquetFile(path string) (*Dataset, error) {
	connector, err := duckdb.NewConnector("", nil)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}
	db := sql.OpenDB(connector)
	defer db.Close()

	rows, err := db.Query("SELECT * FROM read_parquet(?)", path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return datasetFromRows(rows)
}

// parseParquetBuffer spools an in-memory parquet buffer to a temp file
// first; DuckDB scans paths, not readers.
func parseParquetBuffer(data []byte) (*Dataset, error) {
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%s.parquet", uuid.New().String()))
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return nil, fmt.Errorf("spooling upload: %w", err)
	}
	defer os.Remove(tmpPath)

	return parseParquetFile(tmpPath)
}

// datasetFromRows drains a generic sql.Rows result into columns,
// mapping DuckDB column types onto the dataset's scalar types.
func datasetFromRows(rows *sql.Rows) (*Dataset, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Type: scalarTypeFor(colTypes[i].DatabaseTypeName())}
	}

	count := 0
	for rows.Next() {
		holders := make([]any, len(names))
		for i := range holders {
			holders[i] = new(any)
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, err
		}
		for i := range columns {
			columns[i].Values = append(columns[i].Values, normalizeDBValue(*(holders[i].(*any)), columns[i].Type))
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Dataset{Columns: columns, rows: count}, nil
}

func scalarTypeFor(dbType string) ColumnType {
	switch strings.ToUpper(dbType) {
	case "BOOLEAN":
		return TypeBool
	case "TINYINT", "SMALLINT", "INTEGER", "BIGINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT":
		return TypeInt
	case "FLOAT", "DOUBLE", "REAL", "DECIMAL":
		return TypeFloat
	default:
		return TypeString
	}
}

// normalizeDBValue converts driver values to the column's scalar
// representation so rows never expose driver-specific types.
func normalizeDBValue(v any, typ ColumnType) any {
	if v == nil {
		return nil
	}
	switch typ {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b
		}
	case TypeInt:
		switch n := v.(type) {
		case int8:
			return int64(n)
		case int16:
			return int64(n)
		case int32:
			return int64(n)
		case int64:
			return n
		case uint8:
			return int64(n)
		case uint16:
			return int64(n)
		case uint32:
			return int64(n)
		case uint64:
			return int64(n)
		}
	case TypeFloat:
		switch f := v.(type) {
		case float32:
			return float64(f)
		case float64:
			return f
		}
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", s)
	}
}
