package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/logging"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// handleDailySchedule lists the games of the referenced day. No LLM
// call; the schedule renders directly.
func (e *Engine) handleDailySchedule(ctx context.Context, entities models.ResolvedEntities, now time.Time) models.Answer {
	date := dateOrToday(entities.Date, now).Format("2006-01-02")

	list, err := e.schedule.GamesOn(ctx, date)
	if err != nil {
		e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryDailySchedule, msgDataUnavailable)
	}
	if len(list) == 0 {
		return answerText(models.CategoryDailySchedule, fmt.Sprintf(msgNoGames, displayDate(date)))
	}

	return answerText(models.CategoryDailySchedule, renderScheduleList(date, list))
}

// handleDailyResults summarizes every game of the referenced day. A
// failed record fetch degrades that one game to its schedule score line
// instead of failing the whole answer.
func (e *Engine) handleDailyResults(ctx context.Context, entities models.ResolvedEntities, now time.Time) models.Answer {
	date := dateOrToday(entities.Date, now).Format("2006-01-02")

	list, err := e.schedule.GamesOn(ctx, date)
	if err != nil {
		e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryDailyResults, msgDataUnavailable)
	}
	if len(list) == 0 {
		return answerText(models.CategoryDailyResults, fmt.Sprintf(msgNoGames, displayDate(date)))
	}

	var sections []string
	for _, g := range list {
		sections = append(sections, e.resultSection(ctx, g))
	}

	text := fmt.Sprintf("%s 경기 결과예요.\n\n%s", displayDate(date), strings.Join(sections, "\n\n"))
	return answerText(models.CategoryDailyResults, text)
}

func (e *Engine) resultSection(ctx context.Context, g models.ScheduledGame) string {
	if !g.Finished() {
		return fmt.Sprintf("%s 경기는 아직 끝나지 않았어요.", matchupLine(g))
	}

	record, err := e.gameAPI.GetRecord(ctx, g.GameID)
	if err != nil || record == nil {
		if err != nil {
			e.logger.Warn("record fetch failed",
				zap.String("game_id", g.GameID),
				zap.String("error", logging.SanitizeError(err)))
		}
		return scoreLine(g)
	}
	return renderRecord(g, record)
}

// handleGameAnalysis answers about one specific game of a named team.
// Without a resolvable game on the referenced day it falls back to the
// team's latest finished game.
func (e *Engine) handleGameAnalysis(ctx context.Context, entities models.ResolvedEntities, now time.Time) models.Answer {
	team := entities.PrimaryTeam()
	if team == "" {
		return e.handleDailyResults(ctx, entities, now)
	}
	date := dateOrToday(entities.Date, now)

	game, err := e.schedule.GameFor(ctx, date.Format("2006-01-02"), team)
	if err != nil {
		e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGameAnalysis, msgDataUnavailable)
	}
	if game == nil || !game.Finished() {
		latest, lerr := e.schedule.LatestFinishedGameFor(ctx, date, team, e.opts.PredictionWindowDays)
		if lerr != nil {
			e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(lerr)))
			return answerText(models.CategoryGameAnalysis, msgDataUnavailable)
		}
		if latest == nil {
			if game != nil {
				return answerText(models.CategoryGameAnalysis, fmt.Sprintf(msgGameNotFinished, matchupLine(*game)))
			}
			return answerText(models.CategoryGameAnalysis, fmt.Sprintf(msgNoFinishedGame, e.corpus.TeamName(team)))
		}
		game = latest
	}

	return answerText(models.CategoryGameAnalysis, e.resultSection(ctx, *game))
}
