package mcp

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewServer(t *testing.T) {
	s := NewServer("kbochat-engine", "1.0.0", zaptest.NewLogger(t))
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
	if s.MCP() == nil {
		t.Fatal("underlying MCP server is nil")
	}
	if s.NewStreamableHTTPServer() == nil {
		t.Fatal("HTTP transport is nil")
	}
}
