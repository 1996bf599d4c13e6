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

// Detail sub-intents a future-game question can carry.
type detailIntent int

const (
	detailGeneral detailIntent = iota
	detailStarter
	detailLineup
	detailVenueTime
)

var (
	starterTerms   = []string{"선발", "starter", "starting pitcher"}
	lineupTerms    = []string{"라인업", "lineup", "타순"}
	venueTimeTerms = []string{"어디서", "어디야", "어디에서", "장소", "구장", "몇시", "몇 시", "언제", "시간"}
)

func detectDetailIntent(question string) detailIntent {
	lower := strings.ToLower(question)
	for _, term := range starterTerms {
		if strings.Contains(lower, term) {
			return detailStarter
		}
	}
	for _, term := range lineupTerms {
		if strings.Contains(lower, term) {
			return detailLineup
		}
	}
	for _, term := range venueTimeTerms {
		if strings.Contains(lower, term) {
			return detailVenueTime
		}
	}
	return detailGeneral
}

// handleFutureGameDetail answers starter, lineup, and venue questions
// about a team's upcoming game. Without a team there is nothing to pin
// the game to, so the question degrades to a schedule listing.
func (e *Engine) handleFutureGameDetail(ctx context.Context, question string, entities models.ResolvedEntities, now time.Time) models.Answer {
	team := entities.PrimaryTeam()
	if team == "" {
		return e.handleDailySchedule(ctx, entities, now)
	}

	from := dateOrToday(entities.Date, now)
	game, err := e.schedule.NextGameFor(ctx, from, team, e.opts.PredictionWindowDays)
	if err != nil {
		e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryFutureGameDetail, msgDataUnavailable)
	}
	if game == nil {
		return answerText(models.CategoryFutureGameDetail, fmt.Sprintf(msgNoUpcomingGame, e.corpus.TeamName(team)))
	}

	intent := detectDetailIntent(question)

	// Venue and time come straight off the schedule row.
	if intent == detailVenueTime {
		stadium := game.Stadium
		if stadium == "" {
			stadium = e.corpus.Stadium(game.HomeTeamCode)
		}
		text := fmt.Sprintf("%s 경기는 %s %s에 %s에서 열려요.",
			matchupLine(*game), displayDate(game.Date), startClock(game.DateTime), stadium)
		return answerText(models.CategoryFutureGameDetail, text)
	}

	preview, perr := e.gameAPI.GetPreview(ctx, game.GameID)
	if perr != nil || preview == nil {
		if perr != nil {
			e.logger.Warn("preview fetch failed",
				zap.String("game_id", game.GameID),
				zap.String("error", logging.SanitizeError(perr)))
		}
		text := fmt.Sprintf("%s 경기는 %s %s에 예정되어 있어요. %s",
			matchupLine(*game), displayDate(game.Date), startClock(game.DateTime), msgNoPreview)
		return answerText(models.CategoryFutureGameDetail, text)
	}

	switch intent {
	case detailStarter:
		return answerText(models.CategoryFutureGameDetail, renderStarters(*game, preview))
	case detailLineup:
		return answerText(models.CategoryFutureGameDetail, renderLineups(*game, preview))
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%s 경기는 %s %s, %s에서 열려요.\n",
			matchupLine(*game), displayDate(game.Date), startClock(game.DateTime), game.Stadium)
		b.WriteString(renderStarters(*game, preview))
		return answerText(models.CategoryFutureGameDetail, b.String())
	}
}

func renderStarters(g models.ScheduledGame, p *models.GamePreview) string {
	if p.AwayStarter.Name == "" && p.HomeStarter.Name == "" {
		return "선발 투수가 아직 발표되지 않았어요."
	}
	return fmt.Sprintf("선발 투수는 %s %s, %s %s 예정이에요.",
		g.AwayTeamName, starterLine(p.AwayStarter),
		g.HomeTeamName, starterLine(p.HomeStarter))
}

func renderLineups(g models.ScheduledGame, p *models.GamePreview) string {
	if len(p.Lineups) == 0 {
		return "라인업이 아직 발표되지 않았어요."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 경기 예상 라인업이에요.", matchupLine(g))
	writeLineup(&b, g.AwayTeamName, p.Lineups["away"])
	writeLineup(&b, g.HomeTeamName, p.Lineups["home"])
	return b.String()
}

func writeLineup(b *strings.Builder, teamName string, slots []models.LineupSlot) {
	if len(slots) == 0 {
		return
	}
	fmt.Fprintf(b, "\n\n%s\n", teamName)
	for i, slot := range slots {
		fmt.Fprintf(b, "%d. %s(%s)\n", i+1, slot.Name, slot.Position)
	}
}
