package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dotcommander/fitcheck/internal/project"
)

// Config represents the fitcheck configuration
type Config struct {
	Format          string       `mapstructure:"format"`
	Output          string       `mapstructure:"output"`
	Quiet           bool         `mapstructure:"quiet"`
	Verbose         bool         `mapstructure:"verbose"`
	MeasurementMode string       `mapstructure:"measurementMode"`
	Concurrency     int          `mapstructure:"concurrency"`
	Log             LogConfig    `mapstructure:"log"`
	Server          ServerConfig `mapstructure:"server"`
}

// LogConfig controls the diagnostic logger. Reports never go through it.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig contains HTTP service configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	AllowedOrigins  []string      `mapstructure:"allowedOrigins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// EnvFile is loaded into the process environment when present. Variables
// already set take precedence.
const EnvFile = ".env"

// LoadConfig loads configuration from defaults, an optional config file,
// .env and FITCHECK_* environment variables, in increasing precedence.
// Without an explicit file, the first .fitcheckrc in the project root is
// used (see project.FindRoot).
// Flags bound with viper.BindPFlag override all of them.
func LoadConfig(configFile string) (*Config, error) {
	// Set default values
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("measurementMode", "auto")
	viper.SetDefault("concurrency", 8)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.allowedOrigins", []string{"*"})
	viper.SetDefault("server.shutdownTimeout", 10*time.Second)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		root, err := project.FindRoot(".")
		if err != nil {
			return nil, fmt.Errorf("error locating project root: %w", err)
		}
		for _, name := range project.ConfigFiles {
			path := filepath.Join(root, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", EnvFile, err)
	}

	// Environment variables
	viper.SetEnvPrefix("FITCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !oneOf(config.Format, "console", "compact", "json", "markdown") {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'compact', 'json', or 'markdown'", config.Format)
	}

	if !oneOf(config.MeasurementMode, "auto", "flat", "circumference") {
		return fmt.Errorf("invalid measurement mode: %s. Must be 'auto', 'flat', or 'circumference'", config.MeasurementMode)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if !oneOf(config.Log.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("invalid log level: %s. Must be 'debug', 'info', 'warn', or 'error'", config.Log.Level)
	}

	if !oneOf(config.Log.Format, "console", "json") {
		return fmt.Errorf("invalid log format: %s. Must be 'console' or 'json'", config.Log.Format)
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}

	// Existing output files are overwritten; only directories are rejected.
	if config.Output != "" {
		if info, err := os.Stat(config.Output); err == nil && info.IsDir() {
			return fmt.Errorf("output path is a directory: %s", config.Output)
		}
	}

	return nil
}
