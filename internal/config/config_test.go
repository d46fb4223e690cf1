package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.Workflow.QuickActionDelay)
	assert.Equal(t, SequencingLastResolved, cfg.Workflow.Sequencing)
	assert.Zero(t, cfg.Service.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad stage",
			mutate:  func(c *Config) { c.Stage = "staging" },
			wantErr: "invalid stage",
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.Service.BaseURL = "/api" },
			wantErr: "invalid service base url",
		},
		{
			name:    "ftp base url",
			mutate:  func(c *Config) { c.Service.BaseURL = "ftp://zra.example" },
			wantErr: "unsupported service url scheme",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Service.Timeout = -time.Second },
			wantErr: "timeout",
		},
		{
			name:    "unknown sequencing",
			mutate:  func(c *Config) { c.Workflow.Sequencing = "first-wins" },
			wantErr: "invalid sequencing policy",
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Console.Port = " " },
			wantErr: "console port",
		},
		{
			name:    "negative burst",
			mutate:  func(c *Config) { c.Console.RateBurst = -1 },
			wantErr: "rate burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvStage:            "dev",
		EnvBaseURL:          "https://zra.example",
		EnvRequestTimeout:   "5s",
		EnvQuickActionDelay: "10ms",
		EnvSequencing:       SequencingLatestIssued,
		EnvCORSOrigins:      "http://a.example, http://b.example ,",
		EnvConsoleRateLimit: "-1",
		EnvConsoleRateBurst: " 5",
	}

	cfg, err := FromEnv(func(key string) string { return env[key] })
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "https://zra.example", cfg.Service.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, 10*time.Millisecond, cfg.Workflow.QuickActionDelay)
	assert.Equal(t, SequencingLatestIssued, cfg.Workflow.Sequencing)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Console.AllowedOrigins)
	assert.Nil(t, cfg.Console.AllowedMethods)
	assert.Equal(t, -1, cfg.Console.RateLimit)
	assert.Equal(t, 5, cfg.Console.RateBurst)
}

func TestFromEnv_BadRateLimit(t *testing.T) {
	_, err := FromEnv(func(key string) string {
		if key == EnvConsoleRateLimit {
			return "lots"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvConsoleRateLimit)
}

func TestFromEnv_BadDuration(t *testing.T) {
	_, err := FromEnv(func(key string) string {
		if key == EnvRequestTimeout {
			return "soon"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRequestTimeout)
}

func TestLoadFromFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zra.yaml")
	content := `
stage: dev
service:
  base_url: https://zra.example
  timeout: 2s
workflow:
  quick_action_delay: 50ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fileCfg, err := LoadFromFile(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Merge(fileCfg)

	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "https://zra.example", cfg.Service.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Service.Timeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Workflow.QuickActionDelay)
	// untouched fields keep their defaults
	assert.Equal(t, SequencingLastResolved, cfg.Workflow.Sequencing)
	assert.Equal(t, DefaultConsolePort, cfg.Console.Port)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  base_url: https://file.example\n"), 0o600))

	t.Setenv(EnvBaseURL, "https://env.example")
	t.Setenv(EnvStage, "test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Service.BaseURL)
	assert.Equal(t, "test", cfg.Stage)
}
