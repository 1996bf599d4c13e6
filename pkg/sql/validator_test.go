package sql

import (
	"errors"
	"testing"
)

func TestValidateAndNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "strips trailing semicolon",
			input: "SELECT name FROM player_season_stats;",
			want:  "SELECT name FROM player_season_stats",
		},
		{
			name:  "strips semicolon with trailing whitespace",
			input: "SELECT name FROM player_season_stats ; \n",
			want:  "SELECT name FROM player_season_stats",
		},
		{
			name:  "empty input",
			input: "   ",
			want:  "",
		},
		{
			name:    "rejects multiple statements",
			input:   "SELECT 1; DROP TABLE game_schedule",
			wantErr: ErrMultipleStatements,
		},
		{
			name:  "semicolon inside string literal is fine",
			input: "SELECT name FROM player_season_stats WHERE team = 'A;B'",
			want:  "SELECT name FROM player_season_stats WHERE team = 'A;B'",
		},
		{
			name:  "escaped quote does not end the literal",
			input: `SELECT name FROM t WHERE nick = 'O\'Neil; Jr'`,
			want:  `SELECT name FROM t WHERE nick = 'O\'Neil; Jr'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAndNormalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(got.Error, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, got.Error)
				}
				return
			}
			if got.Error != nil {
				t.Fatalf("unexpected error: %v", got.Error)
			}
			if got.NormalizedSQL != tt.want {
				t.Errorf("NormalizedSQL = %q, want %q", got.NormalizedSQL, tt.want)
			}
		})
	}
}

func TestExtractSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain statement",
			input: "SELECT name, hra FROM player_season_stats",
			want:  "SELECT name, hra FROM player_season_stats",
		},
		{
			name: "markdown fenced",
			input: "```sql\nSELECT name FROM game_schedule;\n```",
			want: "SELECT name FROM game_schedule",
		},
		{
			name:  "leading prose",
			input: "Here is the query you asked for:\nSELECT hr FROM player_season_stats;",
			want:  "SELECT hr FROM player_season_stats",
		},
		{
			name:  "trailing commentary cut at semicolon",
			input: "SELECT era FROM player_season_stats; This ranks pitchers by ERA.",
			want:  "SELECT era FROM player_season_stats",
		},
		{
			name:  "lowercase select",
			input: "select gamenum from game_schedule",
			want:  "select gamenum from game_schedule",
		},
		{
			name:    "no statement",
			input:   "I cannot answer that question.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSelect(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNoSelect) {
					t.Fatalf("expected ErrNoSelect, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractSelect() = %q, want %q", got, tt.want)
			}
		})
	}
}
