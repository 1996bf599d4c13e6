// Package games provides game-centric lookups: schedule-by-date over
// the row store and the record/preview endpoints of the game API.
package games

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/store"
)

const scheduleTable = "game_schedule"

// ScheduleService reads the schedule table. Safe for concurrent use.
type ScheduleService struct {
	store  store.RowStore
	logger *zap.Logger
}

// NewScheduleService creates a schedule reader over the row store.
func NewScheduleService(rs store.RowStore, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{store: rs, logger: logger.Named("schedule")}
}

// GamesOn returns every game scheduled for the date, ordered by start
// time. An empty slice means no games that day.
func (s *ScheduleService) GamesOn(ctx context.Context, date string) ([]models.ScheduledGame, error) {
	rows, err := s.store.Select(ctx, scheduleTable, map[string]string{"gday": date})
	if err != nil {
		return nil, err
	}

	games := make([]models.ScheduledGame, 0, len(rows))
	for _, row := range rows {
		games = append(games, rowToGame(row))
	}
	sort.Slice(games, func(i, j int) bool { return games[i].DateTime < games[j].DateTime })

	return games, nil
}

// GameFor returns the date's game involving the team, or nil.
func (s *ScheduleService) GameFor(ctx context.Context, date, team string) (*models.ScheduledGame, error) {
	games, err := s.GamesOn(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range games {
		if games[i].HomeTeamCode == team || games[i].AwayTeamCode == team {
			return &games[i], nil
		}
	}
	return nil, nil
}

// NextGameFor scans forward from the date (inclusive) for the team's
// next game within the window. Returns nil when none is scheduled.
func (s *ScheduleService) NextGameFor(ctx context.Context, from time.Time, team string, windowDays int) (*models.ScheduledGame, error) {
	for i := 0; i <= windowDays; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		game, err := s.GameFor(ctx, date, team)
		if err != nil {
			return nil, err
		}
		if game != nil {
			return game, nil
		}
	}
	return nil, nil
}

// LatestFinishedGameFor scans backward from the date (inclusive) for
// the team's most recent finished game within the window.
func (s *ScheduleService) LatestFinishedGameFor(ctx context.Context, from time.Time, team string, windowDays int) (*models.ScheduledGame, error) {
	for i := 0; i <= windowDays; i++ {
		date := from.AddDate(0, 0, -i).Format("2006-01-02")
		game, err := s.GameFor(ctx, date, team)
		if err != nil {
			return nil, err
		}
		if game != nil && game.Finished() {
			return game, nil
		}
	}
	return nil, nil
}

func rowToGame(row models.Row) models.ScheduledGame {
	hscore, _ := row.Int("hscore")
	vscore, _ := row.Int("vscore")
	return models.ScheduledGame{
		GameID:       row.String("gameId"),
		Date:         row.String("gday"),
		DateTime:     row.String("gtime"),
		Stadium:      row.String("stadium"),
		HomeTeamCode: row.String("home"),
		HomeTeamName: row.String("homeName"),
		AwayTeamCode: row.String("visit"),
		AwayTeamName: row.String("visitName"),
		HomeScore:    hscore,
		AwayScore:    vscore,
		Winner:       row.String("winner"),
		StatusCode:   row.String("statusCode"),
	}
}
