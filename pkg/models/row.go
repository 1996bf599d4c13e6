package models

import (
	"encoding/json"
	"strconv"
)

// Row is a single record returned by the remote row store. The store
// serves JSON, so numeric stats may arrive as float64, json.Number, or
// quoted strings ("0.312"); accessors normalize all three.
type Row map[string]any

// String returns the value at key as a string, or "" when absent or null.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Float returns the value at key as a float64 and whether a numeric
// value was present. Null and unparsable values report false.
func (r Row) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		if t == "" || t == "N/A" {
			return 0, false
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int returns the value at key truncated to an int.
func (r Row) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// SortValue returns the value at key for ordering purposes. A missing
// or null sort key is treated as zero so incomplete rows sink to the
// bottom of a descending sort instead of aborting it.
func (r Row) SortValue(key string) float64 {
	f, _ := r.Float(key)
	return f
}

// IsNull reports whether the value at key is absent, JSON null, or one
// of the store's textual null markers.
func (r Row) IsNull(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr {
		return s == "" || s == "N/A"
	}
	return false
}
