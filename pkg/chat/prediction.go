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

// handleGamePrediction predicts the outcome of a team's next game, or
// of every game on the next game day when no team is named.
func (e *Engine) handleGamePrediction(ctx context.Context, entities models.ResolvedEntities, now time.Time) models.Answer {
	from := dateOrToday(entities.Date, now)

	if team := entities.PrimaryTeam(); team != "" {
		game, err := e.schedule.NextGameFor(ctx, from, team, e.opts.PredictionWindowDays)
		if err != nil {
			e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
			return answerText(models.CategoryGamePrediction, msgDataUnavailable)
		}
		if game == nil {
			return answerText(models.CategoryGamePrediction, fmt.Sprintf(msgNoUpcomingGame, e.corpus.TeamName(team)))
		}
		return answerText(models.CategoryGamePrediction, e.predictGame(ctx, *game))
	}

	// No team named: predict every game of the next day that has any.
	for i := 0; i <= e.opts.PredictionWindowDays; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		list, err := e.schedule.GamesOn(ctx, date)
		if err != nil {
			e.logger.Error("schedule lookup failed", zap.String("error", logging.SanitizeError(err)))
			return answerText(models.CategoryGamePrediction, msgDataUnavailable)
		}
		if len(list) == 0 {
			continue
		}

		sections := make([]string, 0, len(list))
		for _, g := range list {
			sections = append(sections, e.predictGame(ctx, g))
		}
		text := fmt.Sprintf("%s 경기 예측이에요.\n\n%s", displayDate(date), strings.Join(sections, "\n\n"))
		return answerText(models.CategoryGamePrediction, text)
	}

	return answerText(models.CategoryGamePrediction, fmt.Sprintf(msgNoGames, "앞으로 일주일간"))
}

// predictGame scores one matchup from its preview. Preview problems
// degrade to the bare schedule line rather than an error.
func (e *Engine) predictGame(ctx context.Context, g models.ScheduledGame) string {
	preview, err := e.gameAPI.GetPreview(ctx, g.GameID)
	if err != nil || preview == nil {
		if err != nil {
			e.logger.Warn("preview fetch failed",
				zap.String("game_id", g.GameID),
				zap.String("error", logging.SanitizeError(err)))
		}
		return fmt.Sprintf("%s: %s", matchupLine(g), msgNoPreview)
	}

	points := comparePoints(preview.HomeStanding, preview.AwayStanding)

	var verdict string
	switch {
	case points >= 3:
		verdict = fmt.Sprintf("%s의 우세가 예상돼요.", g.HomeTeamName)
	case points <= 1:
		verdict = fmt.Sprintf("%s의 우세가 예상돼요.", g.AwayTeamName)
	default:
		verdict = "전력이 팽팽해서 결과를 예측하기 어려운 경기예요."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", matchupLine(g), g.Stadium)
	fmt.Fprintf(&b, "- 순위 %d위 vs %d위, 승률 %.3f vs %.3f\n",
		preview.AwayStanding.Rank, preview.HomeStanding.Rank,
		preview.AwayStanding.WinRate, preview.HomeStanding.WinRate)
	if preview.AwayStarter.Name != "" || preview.HomeStarter.Name != "" {
		fmt.Fprintf(&b, "- 선발: %s vs %s\n", starterLine(preview.AwayStarter), starterLine(preview.HomeStarter))
	}
	if preview.HomeWins+preview.AwayWins > 0 {
		fmt.Fprintf(&b, "- 상대 전적 %d승 %d패 (%s 기준)\n", preview.HomeWins, preview.AwayWins, g.HomeTeamName)
	}
	b.WriteString(verdict)
	return b.String()
}

// comparePoints awards the home side one point per standing category it
// leads in: rank, win rate, OPS, and ERA.
func comparePoints(home, away models.TeamStanding) int {
	points := 0
	if home.Rank > 0 && (away.Rank == 0 || home.Rank < away.Rank) {
		points++
	}
	if home.WinRate > away.WinRate {
		points++
	}
	if home.OPS > away.OPS {
		points++
	}
	if home.ERA > 0 && (away.ERA == 0 || home.ERA < away.ERA) {
		points++
	}
	return points
}

func starterLine(s models.Starter) string {
	if s.Name == "" {
		return "미정"
	}
	if s.ERA == "" {
		return s.Name
	}
	return fmt.Sprintf("%s(평균자책 %s, %d승 %d패)", s.Name, s.ERA, s.Wins, s.Losses)
}
