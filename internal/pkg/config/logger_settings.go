package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted by LoggerSettings
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// DefaultLogFilePath is the file sink target when none is configured
const DefaultLogFilePath = "signer.log"

// LoggerSettings selects the log sink of the signer binaries.
// The rotation fields are only checked for the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings logs at info level to the console. Switching LogType
// to file writes signer.log rotated at 10 MB, keeping 3 backups for 28 days.
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeConsole,
		FilePath:   DefaultLogFilePath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

type rotationBound struct {
	key      string
	value    int
	min, max int
}

// Validate checks the level and sink, and the rotation bounds of the file sink
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", formatFieldErrors(err))
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	if strings.TrimSpace(s.FilePath) == "" {
		return fmt.Errorf("logger.file_path is required for the file sink")
	}

	for _, b := range []rotationBound{
		{"max_size", s.MaxSize, 1, 100},
		{"max_backups", s.MaxBackups, 1, 10},
		{"max_age", s.MaxAge, 1, 365},
	} {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("logger.%s must be between %d and %d, got %d", b.key, b.min, b.max, b.value)
		}
	}

	return nil
}

func formatFieldErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
