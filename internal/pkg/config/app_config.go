package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. CRYPTOLOGY_LOGGER_LOG_LEVEL.
const EnvPrefix = "CRYPTOLOGY"

// RestConfig configures the REST API front end
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks the REST configuration and its nested settings
func (c *RestConfig) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig.Port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// GrpcConfig configures the gRPC front end
type GrpcConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks the gRPC configuration and its nested settings
func (c *GrpcConfig) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for GrpcConfig.Port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// InitializeRestConfig loads the REST configuration from path. A missing file
// leaves the defaults and environment overrides in effect.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := load(path, func(v *viper.Viper) {
		v.SetDefault("port", "8080")
		setLoggerDefaults(v)
		setDatabaseDefaults(v)
	})
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode rest config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitializeGrpcConfig loads the gRPC configuration from path.
func InitializeGrpcConfig(path string) (*GrpcConfig, error) {
	v, err := load(path, func(v *viper.Viper) {
		v.SetDefault("port", "50051")
		setLoggerDefaults(v)
		setDatabaseDefaults(v)
	})
	if err != nil {
		return nil, err
	}

	var cfg GrpcConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode grpc config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setLoggerDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "cryptology.db")
	v.SetDefault("database.name", "cryptology")
}

func load(path string, defaults func(*viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	defaults(v)

	if path == "" {
		return v, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return v, nil
}
