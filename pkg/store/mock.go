package store

import (
	"context"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// MockRowStore is a configurable mock for testing store consumers.
// Set the function fields to control behavior in tests.
type MockRowStore struct {
	// SelectFunc is called when Select is invoked.
	// If nil, returns nil rows and nil error.
	SelectFunc func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error)

	// SelectOrderedFunc is called when SelectOrdered is invoked.
	// If nil, falls back to SelectFunc ignoring the ordering.
	SelectOrderedFunc func(ctx context.Context, table string, filters map[string]string, ord Ordering) ([]models.Row, error)

	// Call tracking for verification
	SelectCalls        []MockSelectCall
	SelectOrderedCalls []MockSelectOrderedCall
}

// MockSelectCall records a call to Select.
type MockSelectCall struct {
	Table   string
	Filters map[string]string
}

// MockSelectOrderedCall records a call to SelectOrdered.
type MockSelectOrderedCall struct {
	Table    string
	Filters  map[string]string
	Ordering Ordering
}

// NewMockRowStore creates a new mock row store.
func NewMockRowStore() *MockRowStore {
	return &MockRowStore{}
}

// Select implements RowStore.
func (m *MockRowStore) Select(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
	m.SelectCalls = append(m.SelectCalls, MockSelectCall{Table: table, Filters: filters})
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, table, filters)
	}
	return nil, nil
}

// SelectOrdered implements RowStore.
func (m *MockRowStore) SelectOrdered(ctx context.Context, table string, filters map[string]string, ord Ordering) ([]models.Row, error) {
	m.SelectOrderedCalls = append(m.SelectOrderedCalls, MockSelectOrderedCall{Table: table, Filters: filters, Ordering: ord})
	if m.SelectOrderedFunc != nil {
		return m.SelectOrderedFunc(ctx, table, filters, ord)
	}
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, table, filters)
	}
	return nil, nil
}

// Reset clears call tracking.
func (m *MockRowStore) Reset() {
	m.SelectCalls = nil
	m.SelectOrderedCalls = nil
}
