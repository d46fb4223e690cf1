package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/zra-sdk/zra-demo/internal/constants"
)

// Sequencing policies for responses that settle out of issue order.
const (
	// SequencingLastResolved renders every response as it settles; the last one to
	// resolve wins regardless of when it was issued.
	SequencingLastResolved = "last-resolved"
	// SequencingLatestIssued discards responses older than the latest dispatch of
	// the same workflow.
	SequencingLatestIssued = "latest-issued"
)

const (
	DefaultBaseURL          = "http://localhost:5000"
	DefaultQuickActionDelay = 300 * time.Millisecond
	DefaultConsolePort      = "8000"
	DefaultConsoleRateLimit = 10
	DefaultConsoleRateBurst = 20
)

// Config is the runtime configuration shared by the CLI and the console.
type Config struct {
	Stage    string       `yaml:"stage"`
	LogLevel string       `yaml:"log_level"`
	Service  ServiceConf  `yaml:"service"`
	Workflow WorkflowConf `yaml:"workflow"`
	Console  ConsoleConf  `yaml:"console"`
}

// ServiceConf describes the remote tax-authority service.
type ServiceConf struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single request. Zero leaves requests unbounded.
	Timeout time.Duration `yaml:"timeout"`
}

// WorkflowConf tunes the workflow engine.
type WorkflowConf struct {
	QuickActionDelay time.Duration `yaml:"quick_action_delay"`
	Sequencing       string        `yaml:"sequencing"`
}

// ConsoleConf configures the HTTP console.
type ConsoleConf struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	// RateLimit caps dispatching requests per second per client IP. A negative
	// value disables limiting.
	RateLimit int `yaml:"rate_limit"`
	RateBurst int `yaml:"rate_burst"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Stage:    constants.LocalEnvironment,
		LogLevel: constants.InfoLevel,
		Service: ServiceConf{
			BaseURL: DefaultBaseURL,
		},
		Workflow: WorkflowConf{
			QuickActionDelay: DefaultQuickActionDelay,
			Sequencing:       SequencingLastResolved,
		},
		Console: ConsoleConf{
			Port:           DefaultConsolePort,
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Origin", "Content-Type", "Accept", constants.CorrelationIDHeader},
			RateLimit:      DefaultConsoleRateLimit,
			RateBurst:      DefaultConsoleRateBurst,
		},
	}
}

// Merge overlays the non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Stage != "" {
		c.Stage = other.Stage
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Service.BaseURL != "" {
		c.Service.BaseURL = other.Service.BaseURL
	}
	if other.Service.Timeout != 0 {
		c.Service.Timeout = other.Service.Timeout
	}
	if other.Workflow.QuickActionDelay != 0 {
		c.Workflow.QuickActionDelay = other.Workflow.QuickActionDelay
	}
	if other.Workflow.Sequencing != "" {
		c.Workflow.Sequencing = other.Workflow.Sequencing
	}
	if other.Console.Port != "" {
		c.Console.Port = other.Console.Port
	}
	if len(other.Console.AllowedOrigins) > 0 {
		c.Console.AllowedOrigins = other.Console.AllowedOrigins
	}
	if len(other.Console.AllowedMethods) > 0 {
		c.Console.AllowedMethods = other.Console.AllowedMethods
	}
	if len(other.Console.AllowedHeaders) > 0 {
		c.Console.AllowedHeaders = other.Console.AllowedHeaders
	}
	if other.Console.RateLimit != 0 {
		c.Console.RateLimit = other.Console.RateLimit
	}
	if other.Console.RateBurst != 0 {
		c.Console.RateBurst = other.Console.RateBurst
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if !constants.IsValidStage(c.Stage) {
		return fmt.Errorf("invalid stage %q", c.Stage)
	}

	u, err := url.Parse(c.Service.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid service base url %q", c.Service.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported service url scheme %q", u.Scheme)
	}

	if c.Service.Timeout < 0 {
		return fmt.Errorf("service timeout must not be negative")
	}
	if c.Workflow.QuickActionDelay < 0 {
		return fmt.Errorf("quick action delay must not be negative")
	}

	switch c.Workflow.Sequencing {
	case SequencingLastResolved, SequencingLatestIssued:
	default:
		return fmt.Errorf("invalid sequencing policy %q", c.Workflow.Sequencing)
	}

	if strings.TrimSpace(c.Console.Port) == "" {
		return fmt.Errorf("console port is required")
	}
	if c.Console.RateLimit > 0 && c.Console.RateBurst < 0 {
		return fmt.Errorf("console rate burst must not be negative")
	}
	return nil
}
