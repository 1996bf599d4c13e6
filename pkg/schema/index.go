package schema

import (
	"context"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/llm"
)

// Hint is a table suggestion produced by similarity search.
type Hint struct {
	Table string
	Score float64
}

// Index performs similarity search over the intent exemplar corpus.
// Exemplar embeddings are computed once on first use; when the LLM
// provider has no embedding endpoint the index degrades to lexical
// keyword overlap.
type Index struct {
	corpus    *Corpus
	client    llm.LLMClient
	threshold float64
	logger    *zap.Logger

	once       sync.Once
	vectors    [][]float32
	embeddings bool
}

// NewIndex creates an intent index over the corpus exemplars.
func NewIndex(corpus *Corpus, client llm.LLMClient, threshold float64, logger *zap.Logger) *Index {
	return &Index{
		corpus:    corpus,
		client:    client,
		threshold: threshold,
		logger:    logger.Named("intent-index"),
	}
}

// TableHint returns a table suggestion for the question, or nil when no
// exemplar scores above the confidence threshold. Never returns an
// error: a failed similarity search is the same as no hint.
func (ix *Index) TableHint(ctx context.Context, question string) *Hint {
	if len(ix.corpus.Exemplars) == 0 {
		return nil
	}

	ix.once.Do(func() { ix.embedExemplars(ctx) })

	var best *Hint
	if ix.embeddings {
		best = ix.embeddingHint(ctx, question)
	}
	if best == nil {
		best = ix.lexicalHint(question)
	}

	if best == nil || best.Score < ix.threshold || best.Table == "" {
		return nil
	}

	ix.logger.Debug("table hint",
		zap.String("table", best.Table),
		zap.Float64("score", best.Score))
	return best
}

func (ix *Index) embedExemplars(ctx context.Context) {
	vectors := make([][]float32, len(ix.corpus.Exemplars))
	for i, ex := range ix.corpus.Exemplars {
		text := ex.Description + " " + strings.Join(ex.Keywords, " ")
		vec, err := ix.client.CreateEmbedding(ctx, text)
		if err != nil {
			ix.logger.Warn("exemplar embedding failed, using lexical matching",
				zap.String("category", ex.Category),
				zap.Error(err))
			return
		}
		vectors[i] = vec
	}
	ix.vectors = vectors
	ix.embeddings = true
}

func (ix *Index) embeddingHint(ctx context.Context, question string) *Hint {
	qv, err := ix.client.CreateEmbedding(ctx, question)
	if err != nil {
		ix.logger.Warn("question embedding failed", zap.Error(err))
		return nil
	}

	bestScore := -1.0
	bestIdx := -1
	for i, vec := range ix.vectors {
		score := cosineSimilarity(qv, vec)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return nil
	}
	return &Hint{Table: ix.corpus.Exemplars[bestIdx].Table, Score: bestScore}
}

// lexicalHint scores exemplars by keyword overlap with the question.
// Scores are normalized to [0,1] by the exemplar's keyword count.
func (ix *Index) lexicalHint(question string) *Hint {
	lower := strings.ToLower(question)

	bestScore := 0.0
	bestIdx := -1
	for i, ex := range ix.corpus.Exemplars {
		if len(ex.Keywords) == 0 {
			continue
		}
		matches := 0
		for _, kw := range ex.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matches++
			}
		}
		score := float64(matches) / float64(len(ex.Keywords))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return nil
	}
	return &Hint{Table: ix.corpus.Exemplars[bestIdx].Table, Score: bestScore}
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
