package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv blanks every env var the loader consults so tests are
// hermetic regardless of the developer's shell.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PARLEY_CONFIG", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL",
		"HTTP_PORT", "LOG_LEVEL", "DB_DISABLED",
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_DefaultsWithoutFile(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Initialize("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxTurns, cfg.Discussion.MaxTurns)
	assert.Equal(t, DefaultConsensusThreshold, cfg.Discussion.ConsensusThreshold)
	assert.Equal(t, DefaultSubscriberQueueBound, cfg.Discussion.SubscriberQueueBound)
	assert.Equal(t, DefaultMetaModelID, cfg.LLM.MetaModelID)
	assert.Len(t, cfg.LLM.DefaultPanelModelIDs, 4)
	assert.Equal(t, "anthropic/claude-sonnet-4.5", cfg.LLM.ModelAliases["claude-4.5"])
	assert.Equal(t, DefaultHTTPPort, cfg.Server.HTTPPort)
	assert.False(t, cfg.DBDisabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, `
discussion:
  max_turns: 30
  consensus_threshold: 0.9
llm:
  meta_model_id: google/gemini-2.5-pro
  model_aliases:
    my-model: vendor/my-model
server:
  http_port: 9100
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Discussion.MaxTurns)
	assert.Equal(t, 0.9, cfg.Discussion.ConsensusThreshold)
	assert.Equal(t, "google/gemini-2.5-pro", cfg.LLM.MetaModelID)
	assert.Equal(t, 9100, cfg.Server.HTTPPort)

	// Absent keys inherit defaults
	assert.Equal(t, DefaultPerCallTimeoutSeconds, cfg.Discussion.PerCallTimeoutSeconds)
	assert.Len(t, cfg.LLM.DefaultPanelModelIDs, 4)

	// Alias maps merge: custom entries join the built-in table
	assert.Equal(t, "vendor/my-model", cfg.LLM.ModelAliases["my-model"])
	assert.Equal(t, "openai/gpt-5-chat", cfg.LLM.ModelAliases["gpt-4"])
}

func TestInitialize_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "server:\n  http_port: 9100\n")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("OPENROUTER_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("HTTP_PORT", "9200")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_DISABLED", "true")

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-or-test", cfg.LLM.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 9200, cfg.Server.HTTPPort, "env beats YAML")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DBDisabled)
}

func TestInitialize_PathFromEnv(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "discussion:\n  max_turns: 25\n")
	t.Setenv("PARLEY_CONFIG", path)

	cfg, err := Initialize("")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Discussion.MaxTurns)
}

func TestInitialize_ExplicitMissingFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestInitialize_InvalidYAML(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "discussion: [not: a: mapping\n")

	_, err := Initialize(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_OutOfRangeRejected(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "discussion:\n  max_turns: 100\n")

	_, err := Initialize(path)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "discussion", vErr.Section)
	assert.Equal(t, "max_turns", vErr.Field)
}

func TestInitialize_BadEnvValues(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	t.Run("invalid HTTP_PORT", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := Initialize("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_PORT")
	})

	t.Run("invalid DB_DISABLED", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		t.Setenv("DB_DISABLED", "maybe")
		_, err := Initialize("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_DISABLED")
	})
}

func TestInitialize_EnvExpansionInYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PANEL_META", "openai/gpt-5-chat")
	path := writeConfigFile(t, "llm:\n  meta_model_id: \"{{.PANEL_META}}\"\n")

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-5-chat", cfg.LLM.MetaModelID)
}
