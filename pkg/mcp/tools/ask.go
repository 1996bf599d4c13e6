// Package tools provides the MCP tool implementations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// Answerer resolves one natural-language question to an answer.
type Answerer interface {
	Answer(ctx context.Context, question string) (models.Answer, error)
}

type askResult struct {
	Category string       `json:"category"`
	Text     string       `json:"text,omitempty"`
	Rows     []models.Row `json:"rows,omitempty"`
}

// RegisterAskTool adds the ask_baseball tool, which runs a question
// through the full answering pipeline.
func RegisterAskTool(s *server.MCPServer, engine Answerer, logger *zap.Logger) {
	tool := mcp.NewTool(
		"ask_baseball",
		mcp.WithDescription(
			"Answer a natural-language question about KBO baseball: season stats and leaderboards, "+
				"game schedules, results, predictions, and upcoming-game details. "+
				"Questions may be in Korean or English. "+
				"Example: ask_baseball(question='한화에서 타율 제일 높은 선수 누구야?')",
		),
		mcp.WithString(
			"question",
			mcp.Required(),
			mcp.Description("The question to answer"),
		),
	)

	s.AddTool(tool, askHandler(engine, logger))
}

func askHandler(engine Answerer, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil || strings.TrimSpace(question) == "" {
			return NewErrorResult("missing_question", "question is required"), nil
		}

		answer, aerr := engine.Answer(ctx, question)
		if aerr != nil {
			return nil, fmt.Errorf("answer failed: %w", aerr)
		}

		logger.Debug("ask_baseball answered",
			zap.String("category", string(answer.Category)))

		data, merr := json.Marshal(askResult{
			Category: string(answer.Category),
			Text:     answer.Text,
			Rows:     answer.Rows,
		})
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal answer: %w", merr)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
