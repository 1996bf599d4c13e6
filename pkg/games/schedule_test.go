package games

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/store"
)

func scheduleRow(id, date, gtime, home, away, status string) models.Row {
	return models.Row{
		"gameId": id, "gday": date, "gtime": gtime,
		"home": home, "visit": away,
		"homeName": home, "visitName": away,
		"hscore": 5.0, "vscore": 3.0,
		"winner": "HOME", "statusCode": status,
		"stadium": "잠실야구장",
	}
}

func TestGamesOn_OrderedByStartTime(t *testing.T) {
	mock := store.NewMockRowStore()
	mock.SelectFunc = func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
		if filters["gday"] != "2025-08-29" {
			return nil, nil
		}
		return []models.Row{
			scheduleRow("g2", "2025-08-29", "18:30", "LG", "HT", "BEFORE"),
			scheduleRow("g1", "2025-08-29", "17:00", "OB", "HH", "BEFORE"),
		}, nil
	}

	s := NewScheduleService(mock, zaptest.NewLogger(t))
	games, err := s.GamesOn(context.Background(), "2025-08-29")
	if err != nil {
		t.Fatalf("GamesOn() failed: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].GameID != "g1" || games[1].GameID != "g2" {
		t.Errorf("games not ordered by start time: %s, %s", games[0].GameID, games[1].GameID)
	}
	if games[0].HomeScore != 5 || games[0].AwayScore != 3 {
		t.Errorf("scores = %d-%d, want 5-3", games[0].HomeScore, games[0].AwayScore)
	}
}

func TestGameFor_MatchesEitherSide(t *testing.T) {
	mock := store.NewMockRowStore()
	mock.SelectFunc = func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
		return []models.Row{
			scheduleRow("g1", filters["gday"], "17:00", "OB", "HH", "BEFORE"),
		}, nil
	}

	s := NewScheduleService(mock, zaptest.NewLogger(t))

	for _, team := range []string{"OB", "HH"} {
		game, err := s.GameFor(context.Background(), "2025-08-29", team)
		if err != nil {
			t.Fatalf("GameFor(%s) failed: %v", team, err)
		}
		if game == nil {
			t.Fatalf("expected a game for %s", team)
		}
	}

	game, err := s.GameFor(context.Background(), "2025-08-29", "NC")
	if err != nil {
		t.Fatalf("GameFor(NC) failed: %v", err)
	}
	if game != nil {
		t.Errorf("expected no game for NC, got %s", game.GameID)
	}
}

func TestNextGameFor_ScansForward(t *testing.T) {
	mock := store.NewMockRowStore()
	mock.SelectFunc = func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
		// Off day until the 31st.
		if filters["gday"] == "2025-08-31" {
			return []models.Row{scheduleRow("g7", "2025-08-31", "14:00", "HH", "SS", "BEFORE")}, nil
		}
		return nil, nil
	}

	s := NewScheduleService(mock, zaptest.NewLogger(t))
	from := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)

	game, err := s.NextGameFor(context.Background(), from, "HH", 7)
	if err != nil {
		t.Fatalf("NextGameFor() failed: %v", err)
	}
	if game == nil || game.GameID != "g7" {
		t.Fatalf("expected g7, got %+v", game)
	}

	game, err = s.NextGameFor(context.Background(), from, "NC", 7)
	if err != nil {
		t.Fatalf("NextGameFor(NC) failed: %v", err)
	}
	if game != nil {
		t.Errorf("expected no game for NC in window")
	}
}

func TestLatestFinishedGameFor_SkipsUnplayed(t *testing.T) {
	mock := store.NewMockRowStore()
	mock.SelectFunc = func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
		switch filters["gday"] {
		case "2025-08-29":
			return []models.Row{scheduleRow("today", "2025-08-29", "18:30", "HH", "OB", "BEFORE")}, nil
		case "2025-08-28":
			return []models.Row{scheduleRow("played", "2025-08-28", "18:30", "HH", "OB", "RESULT")}, nil
		}
		return nil, nil
	}

	s := NewScheduleService(mock, zaptest.NewLogger(t))
	from := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)

	game, err := s.LatestFinishedGameFor(context.Background(), from, "HH", 7)
	if err != nil {
		t.Fatalf("LatestFinishedGameFor() failed: %v", err)
	}
	if game == nil || game.GameID != "played" {
		t.Fatalf("expected the finished game, got %+v", game)
	}
}
