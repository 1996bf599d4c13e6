// Package classify assigns each question one of the fixed request
// categories through an ordered rule list evaluated first-match-wins.
package classify

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// Keyword groups feeding the rules. Detail and prediction terms overlap
// lexically with generic schedule/result words, which is why their
// rules run first.
var (
	detailKeywords = []string{
		"선발투수", "선발 투수", "라인업", "선발 라인업", "몇 시", "몇시", "어디서", "구장", "경기장",
		"starting pitcher", "starter", "lineup", "what time", "venue", "stadium",
	}
	predictionKeywords = []string{
		"이길", "이길까", "질까", "승리 예측", "예측", "예상", "승부", "누가 이겨",
		"predict", "prediction", "who will win", "who wins",
	}
	resultKeywords = []string{
		"결과", "이겼", "졌", "스코어", "어땠", "점수",
		"result", "score", "won", "lost", "how did",
	}
	scheduleKeywords = []string{
		"일정", "스케줄", "경기 있", "경기있",
		"schedule", "fixtures", "games on", "games today",
	}
	gameKeywords = []string{
		"경기", "시합", "game", "match",
	}
)

// rule is one classification rule. Rules are evaluated in slice order;
// the first whose predicate holds assigns the category.
type rule struct {
	name     string
	matches  func(q question) bool
	category models.Category
}

// question carries the lowered text and the entities a rule may consult.
type question struct {
	lower    string
	entities models.ResolvedEntities
}

func (q question) hasAny(keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q.lower, kw) {
			return true
		}
	}
	return false
}

// Classifier routes questions to categories. Safe for concurrent use;
// the rule list is immutable after construction.
type Classifier struct {
	rules  []rule
	logger *zap.Logger
}

// NewClassifier builds the ordered rule list.
func NewClassifier(logger *zap.Logger) *Classifier {
	rules := []rule{
		{
			name:     "future_game_detail",
			category: models.CategoryFutureGameDetail,
			matches: func(q question) bool {
				return q.hasAny(detailKeywords) && !q.hasAny(predictionKeywords)
			},
		},
		{
			name:     "game_prediction",
			category: models.CategoryGamePrediction,
			matches: func(q question) bool {
				return q.hasAny(predictionKeywords)
			},
		},
		{
			name:     "daily_results",
			category: models.CategoryDailyResults,
			matches: func(q question) bool {
				return !q.entities.Date.IsZero() && q.hasAny(resultKeywords) && !q.entities.HasTeam()
			},
		},
		{
			name:     "daily_schedule",
			category: models.CategoryDailySchedule,
			matches: func(q question) bool {
				return q.hasAny(scheduleKeywords) && !q.entities.HasTeam()
			},
		},
		{
			name:     "game_analysis",
			category: models.CategoryGameAnalysis,
			matches: func(q question) bool {
				return !q.entities.Date.IsZero() && q.hasAny(gameKeywords) && q.entities.HasTeam()
			},
		},
	}

	return &Classifier{rules: rules, logger: logger.Named("classify")}
}

// Classify assigns a category using the pre-resolved entities.
// Questions no rule claims fall through to the generic query path.
func (c *Classifier) Classify(text string, entities models.ResolvedEntities) models.Category {
	q := question{lower: strings.ToLower(text), entities: entities}

	for _, r := range c.rules {
		if r.matches(q) {
			c.logger.Debug("classified",
				zap.String("rule", r.name),
				zap.String("category", string(r.category)))
			return r.category
		}
	}

	return models.CategoryGeneric
}
