package compile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

func TestParseSelect(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want models.ParsedQuery
	}{
		{
			name: "leaderboard query",
			sql:  "SELECT name, hra FROM player_season_stats WHERE team = 'HH' ORDER BY hra DESC LIMIT 1",
			want: models.ParsedQuery{
				Table:   "player_season_stats",
				Columns: []string{"name", "hra"},
				Predicates: []models.Predicate{
					{Column: "team", Values: []string{"HH"}},
				},
				OrderBy:   "hra",
				Direction: models.SortDesc,
				Limit:     1,
			},
		},
		{
			name: "select star",
			sql:  "SELECT * FROM game_schedule WHERE gday = '2025-08-29'",
			want: models.ParsedQuery{
				Table: "game_schedule",
				Predicates: []models.Predicate{
					{Column: "gday", Values: []string{"2025-08-29"}},
				},
				Direction: models.SortAsc,
			},
		},
		{
			name: "in clause",
			sql:  "SELECT name, hr FROM player_season_stats WHERE name IN ('노시환', '김도영') ORDER BY hr ASC",
			want: models.ParsedQuery{
				Table:   "player_season_stats",
				Columns: []string{"name", "hr"},
				Predicates: []models.Predicate{
					{Column: "name", Values: []string{"노시환", "김도영"}},
				},
				OrderBy:   "hr",
				Direction: models.SortAsc,
			},
		},
		{
			name: "mixed equality and in",
			sql:  "SELECT * FROM player_season_stats WHERE season = '2025' AND name IN ('노시환')",
			want: models.ParsedQuery{
				Table: "player_season_stats",
				Predicates: []models.Predicate{
					{Column: "name", Values: []string{"노시환"}},
					{Column: "season", Values: []string{"2025"}},
				},
				Direction: models.SortAsc,
			},
		},
		{
			name: "trailing semicolon stripped",
			sql:  "SELECT era FROM player_season_stats;",
			want: models.ParsedQuery{
				Table:     "player_season_stats",
				Columns:   []string{"era"},
				Direction: models.SortAsc,
			},
		},
		{
			name: "unquoted numeric literal",
			sql:  "SELECT name FROM player_season_stats WHERE season = 2025",
			want: models.ParsedQuery{
				Table:   "player_season_stats",
				Columns: []string{"name"},
				Predicates: []models.Predicate{
					{Column: "season", Values: []string{"2025"}},
				},
				Direction: models.SortAsc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelect(tt.sql)
			if err != nil {
				t.Fatalf("ParseSelect() failed: %v", err)
			}
			got.Raw = "" // raw text is an echo, not part of the comparison
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSelect() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestParseSelect_Failures(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "empty", sql: "   "},
		{name: "not a select", sql: "SHOW TABLES"},
		{name: "update statement", sql: "UPDATE player_season_stats SET hr = 0"},
		{name: "multiple statements", sql: "SELECT 1; SELECT 2"},
		{name: "stacked mutation", sql: "SELECT name FROM t WHERE x = 'a'; DROP TABLE t"},
		{name: "missing from", sql: "SELECT 1 + 1"},
		{name: "delete in subquery", sql: "SELECT name FROM t WHERE id = (DELETE FROM t)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSelect(tt.sql)
			if !errors.Is(err, apperrors.ErrCompile) {
				t.Errorf("expected ErrCompile, got %v", err)
			}
		})
	}
}
