package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for kbochat-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Remote row store (REST filter/sort/limit surface, no SQL execution)
	Store StoreConfig `yaml:"store"`

	// LLM endpoint used for pseudo-SQL generation and answer rendering
	LLM LLMConfig `yaml:"llm"`

	// Game record/preview API
	Games GamesConfig `yaml:"games"`

	// Baseball domain rules
	Domain DomainConfig `yaml:"domain"`
}

// StoreConfig holds remote row store connection settings.
type StoreConfig struct {
	BaseURL        string `yaml:"base_url" env:"STORE_BASE_URL" env-default:""`
	APIKey         string `yaml:"-" env:"STORE_API_KEY"` // Secret - not in YAML
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"STORE_TIMEOUT_SECONDS" env-default:"10"`
}

// Timeout returns the per-call store timeout.
func (c *StoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LLMConfig holds LLM provider settings.
// Provider selects the client implementation: "openai" (any
// OpenAI-compatible endpoint) or "anthropic".
type LLMConfig struct {
	Provider       string  `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	Endpoint       string  `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model          string  `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey         string  `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	Temperature    float64 `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.1"`
	EmbeddingModel string  `yaml:"embedding_model" env:"LLM_EMBEDDING_MODEL" env-default:"text-embedding-3-small"`
}

// GamesConfig holds the game record/preview API settings.
type GamesConfig struct {
	BaseURL        string `yaml:"base_url" env:"GAMES_BASE_URL" env-default:""`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"GAMES_TIMEOUT_SECONDS" env-default:"10"`
}

// Timeout returns the per-call games API timeout.
func (c *GamesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DomainConfig holds baseball domain rules. These are data, not code:
// the same values apply no matter how a question is phrased.
type DomainConfig struct {
	// Season is the season year stat queries are pinned to.
	Season string `yaml:"season" env:"SEASON" env-default:"2025"`

	// QualifiedPAMultiplier × team games played is the plate-appearance
	// floor for rate-stat leaderboards (league rule: 3.1).
	QualifiedPAMultiplier float64 `yaml:"qualified_pa_multiplier" env:"QUALIFIED_PA_MULTIPLIER" env-default:"3.1"`

	// Role inference weights. An unambiguous ORDER BY column is much
	// stronger evidence than a projected column, so it is weighted far
	// higher. The exact values are tunable, not validated constants.
	RoleOrderByWeight int `yaml:"role_order_by_weight" env:"ROLE_ORDER_BY_WEIGHT" env-default:"10"`
	RoleSelectWeight  int `yaml:"role_select_weight" env:"ROLE_SELECT_WEIGHT" env-default:"3"`

	// SimilarityThreshold is the minimum cosine score for the intent
	// index to supply a table hint to the compiler prompt.
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"SIMILARITY_THRESHOLD" env-default:"0.35"`

	// CorpusPath optionally overrides the compiled-in schema/intent
	// corpus with a YAML file.
	CorpusPath string `yaml:"corpus_path" env:"CORPUS_PATH" env-default:""`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on
// the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Domain.QualifiedPAMultiplier <= 0 {
		return fmt.Errorf("qualified_pa_multiplier must be positive, got %v", c.Domain.QualifiedPAMultiplier)
	}
	if c.Domain.SimilarityThreshold < 0 || c.Domain.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", c.Domain.SimilarityThreshold)
	}
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	return nil
}
