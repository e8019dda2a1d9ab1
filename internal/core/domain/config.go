package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultTrustedAppUUID identifies the DES trusted application.
const DefaultTrustedAppUUID = "d8f2a3c1-6b0e-4e7a-9f5d-3c2b1a0e9f87"

// Log level names accepted in the configuration file
const (
	LogLevelDisabled = "disabled"
	LogLevelError    = "error"
	LogLevelWarn     = "warn"
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelTrace    = "trace"
)

// Config holds the application configuration
type Config struct {
	TrustedApp TrustedAppConfig `yaml:"trustedApp"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type TrustedAppConfig struct {
	UUID        string `yaml:"uuid" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	MaxSessions int    `yaml:"maxSessions" validate:"min=1,max=1024"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=disabled error warn info debug trace"`
}

func CreateDefaultConfig() Config {
	return Config{
		TrustedApp: TrustedAppConfig{
			UUID:        DefaultTrustedAppUUID,
			Name:        "des",
			MaxSessions: 16,
		},
		Logging: LoggingConfig{
			Level: LogLevelWarn,
		},
	}
}

// ParseUUID returns the trusted application identifier. Surrounding whitespace,
// such as a trailing newline copied from a uuid file, is ignored.
func (c *TrustedAppConfig) ParseUUID() (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.UUID))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid trusted application uuid '%s': %w", c.UUID, err)
	}
	return id, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	if _, err := c.TrustedApp.ParseUUID(); err != nil {
		return err
	}
	return nil
}
