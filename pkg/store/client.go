package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/retry"
)

// Config holds configuration for creating a store client.
type Config struct {
	BaseURL string
	APIKey  string // Optional bearer token
	Timeout time.Duration
}

// Client reads rows from the remote store over REST.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryCfg   *retry.Config
	logger     *zap.Logger
}

// NewClient creates a new row store client.
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
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.DefaultConfig(),
		logger:     logger.Named("store"),
	}, nil
}

// Select fetches all rows of table matching the equality filters.
func (c *Client) Select(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
	return c.get(ctx, table, filters, Ordering{})
}

// SelectOrdered fetches rows with server-side order and limit applied.
func (c *Client) SelectOrdered(ctx context.Context, table string, filters map[string]string, ord Ordering) ([]models.Row, error) {
	return c.get(ctx, table, filters, ord)
}

func (c *Client) get(ctx context.Context, table string, filters map[string]string, ord Ordering) ([]models.Row, error) {
	u, err := c.buildURL(table, filters, ord)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	rows, err := retry.DoWithResult(ctx, c.retryCfg, func() ([]models.Row, error) {
		return c.fetch(ctx, u)
	})
	if err != nil {
		c.logger.Error("store select failed",
			zap.String("table", table),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: select %s: %v", apperrors.ErrDataUnavailable, table, err)
	}

	c.logger.Debug("store select completed",
		zap.String("table", table),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)))

	return rows, nil
}

func (c *Client) buildURL(table string, filters map[string]string, ord Ordering) (string, error) {
	if table == "" {
		return "", fmt.Errorf("table is required")
	}

	q := url.Values{}

	// Deterministic parameter order keeps request logs and tests stable.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, "eq."+filters[k])
	}

	if ord.Column != "" {
		dir := "asc"
		if ord.Descending {
			dir = "desc"
		}
		q.Set("order", ord.Column+"."+dir)
	}
	if ord.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", ord.Limit))
	}

	u := c.baseURL + "/" + url.PathEscape(table)
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u, nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]models.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var rows []models.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	return rows, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
