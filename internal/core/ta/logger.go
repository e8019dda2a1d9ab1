package ta

import (
	"io"

	"github.com/pion/logging"
)

// NewLogger returns a scoped logger, or a disabled one if no factory is configured.
func NewLogger(factory logging.LoggerFactory, scope string) logging.LeveledLogger {
	if factory == nil {
		return logging.NewDefaultLeveledLoggerForScope(scope, logging.LogLevelDisabled, io.Discard)
	}
	return factory.NewLogger(scope)
}
