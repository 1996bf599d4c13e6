package logging

import (
	"go.uber.org/zap"
)

// New builds the root logger for the given environment. Components
// derive their own child loggers with Named().
func New(env string) (*zap.Logger, error) {
	if env == "local" || env == "test" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
