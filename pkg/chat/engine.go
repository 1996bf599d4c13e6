// Package chat orchestrates the question pipeline: entity extraction,
// classification, then either a specialized handler or the generic
// compile-and-execute path. The engine is immutable after construction
// and safe to call from any number of goroutines.
package chat

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/classify"
	"github.com/dugoutlabs/kbochat-engine/pkg/compile"
	"github.com/dugoutlabs/kbochat-engine/pkg/exec"
	"github.com/dugoutlabs/kbochat-engine/pkg/extract"
	"github.com/dugoutlabs/kbochat-engine/pkg/games"
	"github.com/dugoutlabs/kbochat-engine/pkg/llm"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/schema"
)

// Options carries the tunable domain settings of the engine.
type Options struct {
	// Season is the season year stat queries default to.
	Season string
	// Temperature for LLM calls.
	Temperature float64
	// PredictionWindowDays bounds the forward scan for a team's next game.
	PredictionWindowDays int
}

// Engine answers natural-language baseball questions. Answer blocks
// until the answer is complete; the caller owns any timeout racing.
type Engine struct {
	extractor  *extract.Extractor
	classifier *classify.Classifier
	index      *schema.Index
	compiler   *compile.Compiler
	executor   *exec.Executor
	schedule   *games.ScheduleService
	gameAPI    games.GameAPI
	llm        llm.LLMClient
	corpus     *schema.Corpus
	opts       Options
	now        func() time.Time
	logger     *zap.Logger
}

// Option customizes engine construction.
type Option func(*Engine)

// WithClock replaces the engine's clock. Tests inject a fixed clock so
// relative dates resolve deterministically.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires the pipeline together.
func NewEngine(
	extractor *extract.Extractor,
	classifier *classify.Classifier,
	index *schema.Index,
	compiler *compile.Compiler,
	executor *exec.Executor,
	schedule *games.ScheduleService,
	gameAPI games.GameAPI,
	llmClient llm.LLMClient,
	corpus *schema.Corpus,
	opts Options,
	logger *zap.Logger,
	options ...Option,
) *Engine {
	if opts.PredictionWindowDays <= 0 {
		opts.PredictionWindowDays = 7
	}

	e := &Engine{
		extractor:  extractor,
		classifier: classifier,
		index:      index,
		compiler:   compiler,
		executor:   executor,
		schedule:   schedule,
		gameAPI:    gameAPI,
		llm:        llmClient,
		corpus:     corpus,
		opts:       opts,
		now:        time.Now,
		logger:     logger.Named("chat"),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Answer resolves one question to an answer. It never surfaces a raw
// error as answer text: every failure path produces a fixed, polite
// message for its category. The returned error is reserved for context
// cancellation.
func (e *Engine) Answer(ctx context.Context, question string) (models.Answer, error) {
	if err := ctx.Err(); err != nil {
		return models.Answer{}, err
	}

	now := e.now()
	entities := e.extractor.Extract(question, now)
	category := e.classifier.Classify(question, entities)

	e.logger.Info("answering",
		zap.String("category", string(category)),
		zap.Int("question_len", len(question)))

	var answer models.Answer
	switch category {
	case models.CategoryDailySchedule:
		answer = e.handleDailySchedule(ctx, entities, now)
	case models.CategoryDailyResults:
		answer = e.handleDailyResults(ctx, entities, now)
	case models.CategoryGameAnalysis:
		answer = e.handleGameAnalysis(ctx, entities, now)
	case models.CategoryGamePrediction:
		answer = e.handleGamePrediction(ctx, entities, now)
	case models.CategoryFutureGameDetail:
		answer = e.handleFutureGameDetail(ctx, question, entities, now)
	default:
		answer = e.handleGeneric(ctx, question, entities)
	}

	if err := ctx.Err(); err != nil {
		return models.Answer{}, err
	}
	return answer, nil
}

// dateOrToday defaults an unresolved date to the reference day.
func dateOrToday(d models.ResolvedDate, now time.Time) time.Time {
	if d.IsZero() {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return d.Date
}
