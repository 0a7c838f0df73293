package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// parseJSON reads an array of flat record objects. Columns are ordered
// by first appearance across the records; a key missing from a record
// yields nil in that row.
func parseJSON(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, errors.New("expected a JSON array of records")
	}

	var (
		order   []string
		seen    = map[string]bool{}
		records []map[string]any
	)
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("record %d is not an object", len(records)+1)
		}

		rec := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("record %d has a non-string key", len(records)+1)
			}
			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, err
			}
			if !seen[key] {
				seen[key] = true
				order = append(order, key)
			}
			rec[key] = value
		}
		if _, err = dec.Token(); err != nil { // closing '}'
			return nil, err
		}
		records = append(records, rec)
	}
	if _, err = dec.Token(); err != nil { // closing ']'
		return nil, err
	}

	if len(records) == 0 || len(order) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := make([]Column, len(order))
	for i, name := range order {
		columns[i] = jsonColumn(name, records)
	}
	return &Dataset{Columns: columns, rows: len(records)}, nil
}

// jsonColumn collects one key across all records and infers its type:
// bool if all booleans, int64 if all integer numbers, float64 if all
// numbers, string otherwise (non-scalar values are re-encoded).
func jsonColumn(name string, records []map[string]any) Column {
	nonNil, bools, ints, floats := 0, 0, 0, 0
	for _, rec := range records {
		v, ok := rec[name]
		if !ok || v == nil {
			continue
		}
		nonNil++
		switch val := v.(type) {
		case bool:
			bools++
		case json.Number:
			floats++
			if _, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
				ints++
			}
		}
	}

	typ := TypeString
	switch {
	case nonNil == 0:
		typ = TypeString
	case bools == nonNil:
		typ = TypeBool
	case ints == nonNil:
		typ = TypeInt
	case floats == nonNil:
		typ = TypeFloat
	}

	values := make([]any, len(records))
	for i, rec := range records {
		v, ok := rec[name]
		if !ok || v == nil {
			continue
		}
		switch typ {
		case TypeBool:
			values[i] = v.(bool)
		case TypeInt:
			n, _ := strconv.ParseInt(v.(json.Number).String(), 10, 64)
			values[i] = n
		case TypeFloat:
			f, _ := v.(json.Number).Float64()
			values[i] = f
		default:
			values[i] = stringifyJSONValue(v)
		}
	}
	return Column{Name: name, Type: typ, Values: values}
}

func stringifyJSONValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}
