package models

import (
	"encoding/json"
	"testing"
)

func TestRowAccessors(t *testing.T) {
	row := Row{
		"name":    "노시환",
		"hra":     "0.312",
		"hr":      31.0,
		"gamenum": json.Number("120"),
		"era":     nil,
		"note":    "N/A",
	}

	if got := row.String("name"); got != "노시환" {
		t.Errorf("String(name) = %q", got)
	}
	if got := row.String("hr"); got != "31" {
		t.Errorf("String(hr) = %q", got)
	}

	if f, ok := row.Float("hra"); !ok || f != 0.312 {
		t.Errorf("Float(hra) = %v, %v", f, ok)
	}
	if _, ok := row.Float("era"); ok {
		t.Error("Float(era) should report false for null")
	}
	if _, ok := row.Float("note"); ok {
		t.Error("Float(note) should report false for N/A")
	}

	if n, ok := row.Int("gamenum"); !ok || n != 120 {
		t.Errorf("Int(gamenum) = %v, %v", n, ok)
	}
}

func TestRowSortValue_NullIsZero(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want float64
	}{
		{"present", Row{"ops": 0.912}, 0.912},
		{"null", Row{"ops": nil}, 0},
		{"absent", Row{}, 0},
		{"textual null", Row{"ops": "N/A"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.SortValue("ops"); got != tt.want {
				t.Errorf("SortValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowIsNull(t *testing.T) {
	row := Row{"a": "x", "b": nil, "c": "", "d": "N/A", "e": 0.0}
	for key, want := range map[string]bool{"a": false, "b": true, "c": true, "d": true, "e": false, "f": true} {
		if got := row.IsNull(key); got != want {
			t.Errorf("IsNull(%s) = %v, want %v", key, got, want)
		}
	}
}
