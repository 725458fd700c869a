package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Result represents a materialized query result: ordered columns and rows.
// It is produced fresh per Query call and never mutated afterwards.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1.
func (r *Result) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the raw value at (row, column name). ok is false when the
// column does not exist or the row index is out of range.
func (r *Result) Value(row int, column string) (any, bool) {
	i := r.ColumnIndex(column)
	if i < 0 || row < 0 || row >= len(r.Rows) {
		return nil, false
	}
	return r.Rows[row][i], true
}

// MarshalJSON renders the result with driver values normalized first:
// byte slices become strings, timestamps become RFC 3339.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	a := alias(r)

	if len(r.Rows) > 0 {
		normalized := make([][]any, len(r.Rows))
		for i, row := range r.Rows {
			normalized[i] = make([]any, len(row))
			for j, val := range row {
				normalized[i][j] = normalize(val)
			}
		}
		a.Rows = normalized
	}
	return json.Marshal(a)
}

// normalize converts driver-specific values into plain display values.
func normalize(val any) any {
	switch v := val.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return v
	}
}

// DisplayString formats a single cell value for table and CSV output.
func DisplayString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// AsFloat converts a numeric cell value to float64 for charting.
// ok is false for non-numeric values.
func AsFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
