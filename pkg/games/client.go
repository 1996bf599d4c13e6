package games

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/retry"
)

// GameAPI is the interface for the game record/preview endpoints.
// A nil result with a nil error means the game has no such document
// yet, which is a normal state for unplayed or just-finished games.
type GameAPI interface {
	GetRecord(ctx context.Context, gameID string) (*models.GameRecord, error)
	GetPreview(ctx context.Context, gameID string) (*models.GamePreview, error)
}

// Config holds configuration for creating a game API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the game API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   *retry.Config
	logger     *zap.Logger
}

// NewClient creates a game API client.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.DefaultConfig(),
		logger:     logger.Named("games"),
	}, nil
}

// GetRecord fetches the analyzed record of a played game.
func (c *Client) GetRecord(ctx context.Context, gameID string) (*models.GameRecord, error) {
	var record models.GameRecord
	found, err := c.getJSON(ctx, "/games/"+gameID+"/record", &record)
	if err != nil || !found {
		return nil, err
	}
	record.GameID = gameID
	return &record, nil
}

// GetPreview fetches the pre-game preview of an upcoming game.
func (c *Client) GetPreview(ctx context.Context, gameID string) (*models.GamePreview, error) {
	var preview models.GamePreview
	found, err := c.getJSON(ctx, "/games/"+gameID+"/preview", &preview)
	if err != nil || !found {
		return nil, err
	}
	preview.GameID = gameID
	return &preview, nil
}

// getJSON fetches and decodes one document. A 404 reports found=false
// without an error; transport and server failures map to
// ErrDataUnavailable after retries.
func (c *Client) getJSON(ctx context.Context, path string, out any) (bool, error) {
	u := c.baseURL + path

	found, err := retry.DoWithResult(ctx, c.retryCfg, func() (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return false, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return false, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return false, nil
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return false, err
		}
		if resp.StatusCode != http.StatusOK {
			return false, fmt.Errorf("game api returned %d", resp.StatusCode)
		}
		return true, json.Unmarshal(body, out)
	})
	if err != nil {
		c.logger.Error("game api call failed", zap.String("path", path), zap.Error(err))
		return false, fmt.Errorf("%w: %s: %v", apperrors.ErrDataUnavailable, path, err)
	}

	return found, nil
}

// Ensure implementations satisfy GameAPI at compile time.
var (
	_ GameAPI = (*Client)(nil)
	_ GameAPI = (*MockGameAPI)(nil)
)
