package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/zra-sdk/zra-demo/internal/logger"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvStage            = "STAGE"
	EnvLogLevel         = "LOG_LEVEL"
	EnvBaseURL          = "ZRA_BASE_URL"
	EnvRequestTimeout   = "ZRA_REQUEST_TIMEOUT"
	EnvQuickActionDelay = "ZRA_QUICK_ACTION_DELAY"
	EnvSequencing       = "ZRA_SEQUENCING"
	EnvConsolePort      = "CONSOLE_PORT"
	EnvCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	EnvCORSMethods      = "CORS_ALLOWED_METHODS"
	EnvCORSHeaders      = "CORS_ALLOWED_HEADERS"
	EnvConsoleRateLimit = "CONSOLE_RATE_LIMIT"
	EnvConsoleRateBurst = "CONSOLE_RATE_BURST"
)

// Load builds the configuration with layered precedence:
// 1. Defaults
// 2. YAML file at path (skipped when path is empty)
// 3. .env file in the working directory, if present
// 4. Environment variables
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	// It's fine for the .env file to be missing; variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	envCfg, err := FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.Merge(envCfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// LoadFromFile reads a YAML configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return &cfg, nil
}

// FromEnv reads overrides through getenv. Unset variables leave fields zero.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Stage:    getenv(EnvStage),
		LogLevel: getenv(EnvLogLevel),
		Service: ServiceConf{
			BaseURL: getenv(EnvBaseURL),
		},
		Workflow: WorkflowConf{
			Sequencing: getenv(EnvSequencing),
		},
		Console: ConsoleConf{
			Port:           getenv(EnvConsolePort),
			AllowedOrigins: splitList(getenv(EnvCORSOrigins)),
			AllowedMethods: splitList(getenv(EnvCORSMethods)),
			AllowedHeaders: splitList(getenv(EnvCORSHeaders)),
		},
	}

	var err error
	if cfg.Service.Timeout, err = parseDuration(getenv(EnvRequestTimeout)); err != nil {
		return nil, errors.Wrap(err, EnvRequestTimeout)
	}
	if cfg.Workflow.QuickActionDelay, err = parseDuration(getenv(EnvQuickActionDelay)); err != nil {
		return nil, errors.Wrap(err, EnvQuickActionDelay)
	}
	if cfg.Console.RateLimit, err = parseInt(getenv(EnvConsoleRateLimit)); err != nil {
		return nil, errors.Wrap(err, EnvConsoleRateLimit)
	}
	if cfg.Console.RateBurst, err = parseInt(getenv(EnvConsoleRateBurst)); err != nil {
		return nil, errors.Wrap(err, EnvConsoleRateBurst)
	}
	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}

func parseInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

// splitList splits a comma separated value and trims each entry
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
