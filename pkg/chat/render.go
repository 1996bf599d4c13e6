package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// Fixed user-facing messages. Failure paths always answer with one of
// these; raw errors stay in the logs.
const (
	msgCannotUnderstand = "질문을 잘 이해하지 못했어요. 조금 다르게 다시 물어봐 주시겠어요?"
	msgDataUnavailable  = "지금은 데이터를 불러올 수 없어요. 잠시 후 다시 시도해 주세요."
	msgNoData           = "요청하신 조건에 맞는 데이터를 찾지 못했어요."
	msgNoPlayerData     = "해당 선수의 기록을 찾지 못했어요. 이름을 확인해 주시겠어요?"
	msgNoTeamData       = "해당 팀의 기록을 찾지 못했어요."
	msgNoGames          = "%s에는 예정된 경기가 없어요."
	msgNoUpcomingGame   = "%s의 예정된 경기를 찾지 못했어요."
	msgNoFinishedGame   = "%s의 최근 경기 결과를 찾지 못했어요."
	msgGameNotFinished  = "%s 경기는 아직 끝나지 않았어요."
	msgNoPreview        = "경기 정보가 아직 준비되지 않아서 자세한 내용을 알려드리기 어려워요."
)

func answerText(category models.Category, text string) models.Answer {
	return models.Answer{Category: category, Text: text}
}

// displayDate renders an ISO date as the Korean "M월 D일" form.
func displayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
}

// startClock pulls the HH:MM start time out of the schedule's RFC 3339
// timestamp. Falls back to the raw value for anything unparseable.
func startClock(dateTime string) string {
	t, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		return dateTime
	}
	return t.Format("15:04")
}

func matchupLine(g models.ScheduledGame) string {
	return fmt.Sprintf("%s vs %s", g.AwayTeamName, g.HomeTeamName)
}

// renderScheduleList renders a day's schedule as one line per game.
func renderScheduleList(date string, list []models.ScheduledGame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s 경기 일정이에요.\n", displayDate(date))
	for _, g := range list {
		fmt.Fprintf(&b, "- %s %s, %s\n", startClock(g.DateTime), matchupLine(g), g.Stadium)
	}
	return strings.TrimRight(b.String(), "\n")
}

// scoreLine renders the final score from the schedule row alone. Used
// when a full record is not available for a finished game.
func scoreLine(g models.ScheduledGame) string {
	switch g.Winner {
	case models.WinnerHome:
		return fmt.Sprintf("%s이(가) %s을(를) %d:%d로 이겼어요.",
			g.HomeTeamName, g.AwayTeamName, g.HomeScore, g.AwayScore)
	case models.WinnerAway:
		return fmt.Sprintf("%s이(가) %s을(를) %d:%d로 이겼어요.",
			g.AwayTeamName, g.HomeTeamName, g.AwayScore, g.HomeScore)
	default:
		return fmt.Sprintf("%s %d:%d 무승부였어요.", matchupLine(g), g.AwayScore, g.HomeScore)
	}
}

// renderRecord renders a full game record: score, decisive hit when
// present, and the notable player lines.
func renderRecord(g models.ScheduledGame, r *models.GameRecord) string {
	var b strings.Builder
	b.WriteString(scoreLine(g))
	if r.WinningHit != "" {
		fmt.Fprintf(&b, " 결승타는 %s.", r.WinningHit)
	}
	for _, p := range r.TopBatters {
		fmt.Fprintf(&b, "\n- %s(%s): %s", p.Name, teamLabel(g, p.Team), p.Line)
	}
	for _, p := range r.TopPitchers {
		fmt.Fprintf(&b, "\n- %s(%s): %s", p.Name, teamLabel(g, p.Team), p.Line)
	}
	return b.String()
}

// teamLabel maps a record's team code to the display name the schedule
// row already carries.
func teamLabel(g models.ScheduledGame, code string) string {
	switch code {
	case g.HomeTeamCode:
		return g.HomeTeamName
	case g.AwayTeamCode:
		return g.AwayTeamName
	default:
		return code
	}
}
