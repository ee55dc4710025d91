package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/wba6/secure-signer/internal/pkg/validators"
)

// RestConfig holds the settings of the REST service
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	KeysRoot  string            `mapstructure:"keys_root" validate:"required"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Generator GeneratorSettings `mapstructure:"generator"`
}

// Validate checks the REST settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("primebits", validators.PrimeBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	// nested settings are validated through their struct tags
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	return c.Logger.Validate()
}

// InitializeRestConfig reads the REST service settings from a YAML file at path.
// Environment variables prefixed with SIGNER_ override file values,
// e.g. SIGNER_DATABASE_DSN overrides database.dsn.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	generator := DefaultGeneratorSettings()
	logger := DefaultLoggerSettings()

	v.SetDefault("port", "8080")
	v.SetDefault("keys_root", "keys")
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "signer.db")
	v.SetDefault("generator.bit_length", generator.BitLength)
	v.SetDefault("generator.rounds", generator.Rounds)
	v.SetDefault("generator.max_attempts", generator.MaxAttempts)
	v.SetDefault("generator.primality_test", generator.PrimalityTest)
}
