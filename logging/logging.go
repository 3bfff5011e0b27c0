package logging

import (
	"github.com/united-manufacturing-hub/umh-utils/logger"
	"go.uber.org/zap"
)

// Setup builds the process logger for the given level ("PRODUCTION" or
// "DEVELOPMENT") and installs it as the zap global, so packages can log
// through zap.S().
func Setup(level string) *zap.SugaredLogger {
	log := logger.New(level)
	zap.ReplaceGlobals(log.Desugar())
	return log
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr on some
// platforms are expected and ignored.
func Sync(log *zap.SugaredLogger) {
	_ = log.Sync()
}
