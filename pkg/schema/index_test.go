package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/dugoutlabs/kbochat-engine/pkg/llm"
)

func TestTableHint_LexicalFallback(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.CreateEmbeddingFunc = func(ctx context.Context, input string) ([]float32, error) {
		return nil, errors.New("anthropic does not provide embeddings")
	}

	ix := NewIndex(DefaultCorpus(), mock, 0.35, zaptest.NewLogger(t))

	hint := ix.TableHint(context.Background(), "올해 타율 순위 1위 leader top rank 누구야")
	if hint == nil {
		t.Fatal("expected a lexical hint for a leaderboard question")
	}
	if hint.Table != "player_season_stats" {
		t.Errorf("Table = %q, want player_season_stats", hint.Table)
	}
}

func TestTableHint_BelowThresholdReturnsNil(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.CreateEmbeddingFunc = func(ctx context.Context, input string) ([]float32, error) {
		return nil, errors.New("no embeddings")
	}

	ix := NewIndex(DefaultCorpus(), mock, 0.35, zaptest.NewLogger(t))

	if hint := ix.TableHint(context.Background(), "점심 뭐 먹을까"); hint != nil {
		t.Errorf("expected no hint for off-domain question, got %+v", hint)
	}
}

func TestTableHint_EmbeddingSimilarity(t *testing.T) {
	// Embeddings that steer the schedule question to the schedule
	// exemplar: the question vector matches exemplar vectors whose text
	// mentions schedules.
	mock := llm.NewMockLLMClient()
	mock.CreateEmbeddingFunc = func(ctx context.Context, input string) ([]float32, error) {
		if containsAny(input, "schedule", "scheduled", "일정") {
			return []float32{1, 0}, nil
		}
		return []float32{0, 1}, nil
	}

	ix := NewIndex(DefaultCorpus(), mock, 0.35, zaptest.NewLogger(t))

	hint := ix.TableHint(context.Background(), "when is the next scheduled game")
	if hint == nil {
		t.Fatal("expected an embedding hint")
	}
	if hint.Table != "game_schedule" {
		t.Errorf("Table = %q, want game_schedule", hint.Table)
	}
	if hint.Score < 0.99 {
		t.Errorf("Score = %v, want ~1.0 for identical vectors", hint.Score)
	}
}

func TestTableHint_EmbedsExemplarsOnce(t *testing.T) {
	mock := llm.NewMockLLMClient()
	mock.CreateEmbeddingFunc = func(ctx context.Context, input string) ([]float32, error) {
		return []float32{1, 0}, nil
	}

	ix := NewIndex(DefaultCorpus(), mock, 0.1, zaptest.NewLogger(t))
	ix.TableHint(context.Background(), "타율 순위")
	callsAfterFirst := mock.CreateEmbeddingCalls

	ix.TableHint(context.Background(), "홈런 순위")
	// Only one extra call for the second question, none for exemplars
	if mock.CreateEmbeddingCalls != callsAfterFirst+1 {
		t.Errorf("expected exemplars embedded once, calls went %d -> %d",
			callsAfterFirst, mock.CreateEmbeddingCalls)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
