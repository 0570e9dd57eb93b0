// Package testhelpers provides shared fixtures for tests.
package testhelpers

import (
	"github.com/jonesrussell/cortexgate/internal/logger"
)

// NewTestLogger creates a logger suitable for testing (discards output).
func NewTestLogger() logger.Logger {
	return logger.NewNopLogger()
}
