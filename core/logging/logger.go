package logging

import "go.uber.org/zap"

// Logger is the package-level logger used across the SDK.
// It defaults to a no-op logger so that library consumers opt in to output.
var Logger = zap.NewNop()

// SetLogger replaces the package-level logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Logger = logger
}
