package chat

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/compile"
	"github.com/dugoutlabs/kbochat-engine/pkg/logging"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/prompts"
	"github.com/dugoutlabs/kbochat-engine/pkg/sql"
)

// handleGeneric runs the stat pipeline: generate pseudo-SQL, parse it,
// compile it against the corpus, execute against the store, then render
// the rows back into Korean. A compile failure never triggers a second
// LLM call; the user gets a fixed rephrase request.
func (e *Engine) handleGeneric(ctx context.Context, question string, entities models.ResolvedEntities) models.Answer {
	hint := e.index.TableHint(ctx, question)

	in := prompts.SQLGenerationInput{
		Question:      question,
		SchemaContext: e.corpus.PromptContext(""),
		Season:        e.opts.Season,
		Teams:         entities.Teams,
		Players:       entities.Players,
		Date:          entities.Date.ISO(),
	}
	if hint != nil {
		in.TableHint = hint.Table
		in.SchemaContext = e.corpus.PromptContext(hint.Table)
	}

	raw, err := e.llm.GenerateResponse(ctx, prompts.BuildSQLGenerationPrompt(in), prompts.SQLSystemMessage, e.opts.Temperature)
	if err != nil {
		e.logger.Error("sql generation failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGeneric, msgDataUnavailable)
	}

	stmt, err := sql.ExtractSelect(raw)
	if err != nil {
		e.logger.Warn("no statement in model output", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGeneric, msgCannotUnderstand)
	}

	parsed, err := compile.ParseSelect(stmt)
	if err != nil {
		e.logger.Warn("statement rejected",
			zap.String("statement", logging.SanitizeQuery(stmt)),
			zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGeneric, msgCannotUnderstand)
	}

	plan, err := e.compiler.Compile(parsed)
	if err != nil {
		e.logger.Warn("plan rejected", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGeneric, msgCannotUnderstand)
	}

	rows, err := e.executor.Execute(ctx, plan)
	if err != nil {
		if errors.Is(err, apperrors.ErrDataUnavailable) {
			return answerText(models.CategoryGeneric, msgDataUnavailable)
		}
		e.logger.Error("execution failed", zap.String("error", logging.SanitizeError(err)))
		return answerText(models.CategoryGeneric, msgDataUnavailable)
	}

	if len(rows) == 0 {
		return answerText(models.CategoryGeneric, noDataMessage(entities))
	}

	text, err := e.llm.GenerateResponse(ctx, prompts.BuildAnswerPrompt(question, rows), prompts.AnswerSystemMessage, e.opts.Temperature)
	if err != nil {
		// The data round-trip succeeded; hand the rows back raw rather
		// than discarding them over a rendering failure.
		e.logger.Warn("answer rendering failed", zap.String("error", logging.SanitizeError(err)))
		return models.Answer{Category: models.CategoryGeneric, Rows: rows}
	}

	return models.Answer{Category: models.CategoryGeneric, Text: text, Rows: rows}
}

// noDataMessage picks the empty-result message closest to what the
// question actually asked for.
func noDataMessage(entities models.ResolvedEntities) string {
	if len(entities.Players) > 0 {
		return msgNoPlayerData
	}
	if entities.HasTeam() {
		return msgNoTeamData
	}
	return msgNoData
}
