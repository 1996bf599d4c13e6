package games

import (
	"context"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// MockGameAPI is a configurable mock for testing game API consumers.
// Set the function fields to control behavior in tests.
type MockGameAPI struct {
	// GetRecordFunc is called when GetRecord is invoked.
	// If nil, returns nil record and nil error.
	GetRecordFunc func(ctx context.Context, gameID string) (*models.GameRecord, error)

	// GetPreviewFunc is called when GetPreview is invoked.
	// If nil, returns nil preview and nil error.
	GetPreviewFunc func(ctx context.Context, gameID string) (*models.GamePreview, error)

	// Call tracking for verification
	GetRecordCalls  []string
	GetPreviewCalls []string
}

// NewMockGameAPI creates a new mock game API.
func NewMockGameAPI() *MockGameAPI {
	return &MockGameAPI{}
}

// GetRecord implements GameAPI.
func (m *MockGameAPI) GetRecord(ctx context.Context, gameID string) (*models.GameRecord, error) {
	m.GetRecordCalls = append(m.GetRecordCalls, gameID)
	if m.GetRecordFunc != nil {
		return m.GetRecordFunc(ctx, gameID)
	}
	return nil, nil
}

// GetPreview implements GameAPI.
func (m *MockGameAPI) GetPreview(ctx context.Context, gameID string) (*models.GamePreview, error) {
	m.GetPreviewCalls = append(m.GetPreviewCalls, gameID)
	if m.GetPreviewFunc != nil {
		return m.GetPreviewFunc(ctx, gameID)
	}
	return nil, nil
}

// Reset clears call tracking.
func (m *MockGameAPI) Reset() {
	m.GetRecordCalls = nil
	m.GetPreviewCalls = nil
}
