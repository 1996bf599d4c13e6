package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

func TestBuildSQLGenerationPrompt(t *testing.T) {
	prompt := BuildSQLGenerationPrompt(SQLGenerationInput{
		Question:      "한화에서 타율 제일 높은 선수 누구야?",
		SchemaContext: "TABLE player_season_stats -- season stats\n",
		TableHint:     "player_season_stats",
		Season:        "2025",
		Teams:         []string{"HH"},
		Date:          "2025-08-29",
	})

	assert.Contains(t, prompt, "TABLE player_season_stats")
	assert.Contains(t, prompt, "season = '2025'")
	assert.Contains(t, prompt, "most likely concerns the player_season_stats table")
	assert.Contains(t, prompt, "Teams: HH")
	assert.Contains(t, prompt, "Date: 2025-08-29")
	assert.Contains(t, prompt, "한화에서 타율 제일 높은 선수 누구야?")
}

func TestBuildSQLGenerationPrompt_NoEntities(t *testing.T) {
	prompt := BuildSQLGenerationPrompt(SQLGenerationInput{
		Question:      "홈런 순위",
		SchemaContext: "TABLE player_season_stats\n",
		Season:        "2025",
	})

	assert.Contains(t, prompt, "- none")
	assert.NotContains(t, prompt, "most likely concerns")
}

func TestBuildAnswerPrompt(t *testing.T) {
	rows := []models.Row{
		{"name": "노시환", "hr": 31.0},
		{"name": "김도영", "hr": 35.0},
	}

	prompt := BuildAnswerPrompt("홈런 상위 두 명?", rows)

	assert.Contains(t, prompt, "홈런 상위 두 명?")
	assert.Contains(t, prompt, "노시환")
	assert.Contains(t, prompt, "김도영")
	assert.Contains(t, prompt, "1. ")
	assert.Contains(t, prompt, "2. ")
}

func TestBuildAnswerPrompt_EmptyRows(t *testing.T) {
	prompt := BuildAnswerPrompt("질문", nil)
	assert.Contains(t, prompt, "(no rows)")
}
