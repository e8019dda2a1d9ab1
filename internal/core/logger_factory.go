package core

import (
	"os"

	"desta/internal/core/domain"

	"github.com/pion/logging"
)

// ProvideLoggerFactory builds the leveled logger factory used by the trusted
// application and the client. Output goes to stderr so that stdout stays free
// for cipher output.
func ProvideLoggerFactory(config *domain.Config) logging.LoggerFactory {
	factory := logging.NewDefaultLoggerFactory()
	factory.DefaultLogLevel = ParseLogLevel(config.Logging.Level)
	factory.Writer = os.Stderr
	return factory
}

func ParseLogLevel(level string) logging.LogLevel {
	switch level {
	case domain.LogLevelDisabled:
		return logging.LogLevelDisabled
	case domain.LogLevelError:
		return logging.LogLevelError
	case domain.LogLevelWarn:
		return logging.LogLevelWarn
	case domain.LogLevelInfo:
		return logging.LogLevelInfo
	case domain.LogLevelDebug:
		return logging.LogLevelDebug
	case domain.LogLevelTrace:
		return logging.LogLevelTrace
	default:
		return logging.LogLevelWarn
	}
}
