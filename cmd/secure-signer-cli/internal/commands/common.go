package commands

import (
	"fmt"
	"os"

	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// setupLogger initializes the console logger. SIGNER_LOG_LEVEL overrides the default level.
func setupLogger() (logger.Logger, error) {
	settings := config.DefaultLoggerSettings()
	if level := os.Getenv(config.EnvPrefix + "_LOG_LEVEL"); level != "" {
		settings.LogLevel = level
	}

	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
