package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/config"
)

// NewFromConfig builds the LLM client selected by configuration.
func NewFromConfig(cfg *config.LLMConfig, logger *zap.Logger) (LLMClient, error) {
	clientCfg := &Config{
		Endpoint:       cfg.Endpoint,
		Model:          cfg.Model,
		APIKey:         cfg.APIKey,
		EmbeddingModel: cfg.EmbeddingModel,
	}

	switch cfg.Provider {
	case "openai":
		return NewClient(clientCfg, logger)
	case "anthropic":
		return NewAnthropicClient(clientCfg, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
