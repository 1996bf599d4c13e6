package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/dugoutlabs/kbochat-engine/pkg/config"
)

func TestHealth(t *testing.T) {
	h := NewHealthHandler(&config.Config{}, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestPing(t *testing.T) {
	cfg := &config.Config{Version: "1.2.3", Env: "test"}
	h := NewHealthHandler(cfg, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	h.Ping(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp PingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Version != "1.2.3" || resp.Service != "kbochat-engine" || resp.Environment != "test" {
		t.Errorf("resp = %+v", resp)
	}
}
