// Package store provides the read-only client for the remote row store.
// The store exposes tables over REST with equality filters, optional
// server-side ordering and a row limit. It executes no SQL.
package store

import (
	"context"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// Ordering describes optional server-side ordering for a select.
type Ordering struct {
	Column     string
	Descending bool
	Limit      int // 0 means no limit
}

// RowStore is the interface for reading rows from the remote store.
// Use this interface for dependency injection to enable mocking in tests.
type RowStore interface {
	// Select fetches all rows of table matching the equality filters.
	Select(ctx context.Context, table string, filters map[string]string) ([]models.Row, error)

	// SelectOrdered fetches rows with server-side order and limit applied.
	// Only safe when no client-side post-filtering will follow, because
	// the limit truncates the candidate set on the server.
	SelectOrdered(ctx context.Context, table string, filters map[string]string, ord Ordering) ([]models.Row, error)
}

// Ensure implementations satisfy RowStore at compile time.
var (
	_ RowStore = (*Client)(nil)
	_ RowStore = (*MockRowStore)(nil)
)
