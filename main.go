package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/chat"
	"github.com/dugoutlabs/kbochat-engine/pkg/classify"
	"github.com/dugoutlabs/kbochat-engine/pkg/compile"
	"github.com/dugoutlabs/kbochat-engine/pkg/config"
	"github.com/dugoutlabs/kbochat-engine/pkg/exec"
	"github.com/dugoutlabs/kbochat-engine/pkg/extract"
	"github.com/dugoutlabs/kbochat-engine/pkg/games"
	"github.com/dugoutlabs/kbochat-engine/pkg/handlers"
	"github.com/dugoutlabs/kbochat-engine/pkg/llm"
	"github.com/dugoutlabs/kbochat-engine/pkg/logging"
	"github.com/dugoutlabs/kbochat-engine/pkg/mcp"
	"github.com/dugoutlabs/kbochat-engine/pkg/mcp/tools"
	"github.com/dugoutlabs/kbochat-engine/pkg/middleware"
	"github.com/dugoutlabs/kbochat-engine/pkg/schema"
	"github.com/dugoutlabs/kbochat-engine/pkg/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("store_url", cfg.Store.BaseURL),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.String("llm_api_key", logging.MaskKey(cfg.LLM.APIKey)),
		zap.String("season", cfg.Domain.Season))

	corpus, err := loadCorpus(cfg)
	if err != nil {
		logger.Fatal("Failed to load schema corpus", zap.Error(err))
	}

	rowStore, err := store.NewClient(&store.Config{
		BaseURL: cfg.Store.BaseURL,
		APIKey:  cfg.Store.APIKey,
		Timeout: cfg.Store.Timeout(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create store client", zap.Error(err))
	}

	llmClient, err := llm.NewFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	gameAPI, err := games.NewClient(&games.Config{
		BaseURL: cfg.Games.BaseURL,
		Timeout: cfg.Games.Timeout(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create game API client", zap.Error(err))
	}

	playerNames := loadPlayerNames(rowStore, cfg.Domain.Season, logger)

	engine := chat.NewEngine(
		extract.NewExtractor(corpus, playerNames, logger),
		classify.NewClassifier(logger),
		schema.NewIndex(corpus, llmClient, cfg.Domain.SimilarityThreshold, logger),
		compile.NewCompiler(corpus, compile.Weights{
			OrderBy: cfg.Domain.RoleOrderByWeight,
			Select:  cfg.Domain.RoleSelectWeight,
		}, logger),
		exec.NewExecutor(rowStore, cfg.Domain.QualifiedPAMultiplier, cfg.Domain.Season, logger),
		games.NewScheduleService(rowStore, logger),
		gameAPI,
		llmClient,
		corpus,
		chat.Options{
			Season:      cfg.Domain.Season,
			Temperature: cfg.LLM.Temperature,
		},
		logger,
	)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	answerHandler := handlers.NewAnswerHandler(engine, logger)
	answerHandler.RegisterRoutes(mux)

	mcpServer := mcp.NewServer("kbochat-engine", cfg.Version, logger)
	tools.RegisterHealthTool(mcpServer.MCP(), cfg.Version)
	tools.RegisterAskTool(mcpServer.MCP(), engine, logger)
	mux.Handle("/mcp", mcpServer.NewStreamableHTTPServer())

	handler := middleware.RequestID()(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting kbochat-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// loadCorpus reads the schema corpus from the configured path, falling
// back to the built-in KBO corpus when no path is set.
func loadCorpus(cfg *config.Config) (*schema.Corpus, error) {
	if cfg.Domain.CorpusPath == "" {
		return schema.DefaultCorpus(), nil
	}
	return schema.LoadCorpus(cfg.Domain.CorpusPath)
}

// loadPlayerNames primes the entity extractor with the season's player
// names. A failure here degrades player matching, not the service.
func loadPlayerNames(rs store.RowStore, season string, logger *zap.Logger) []string {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := rs.Select(ctx, "player_season_stats", map[string]string{"season": season})
	if err != nil {
		logger.Warn("player name preload failed, continuing without player matching",
			zap.String("error", logging.SanitizeError(err)))
		return nil
	}

	seen := make(map[string]bool)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		name := row.String("name")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	logger.Info("player names loaded", zap.Int("count", len(names)))
	return names
}
