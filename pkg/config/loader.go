package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is consulted when neither the caller nor the
// PARLEY_CONFIG env var names a YAML file.
const DefaultConfigPath = "parley.yaml"

// Initialize loads, merges, and validates configuration. This is the
// primary entry point.
//
// Layering, lowest to highest precedence:
//  1. Built-in defaults (defaults.go)
//  2. parley.yaml (path argument, else PARLEY_CONFIG, else ./parley.yaml)
//  3. Environment overrides (OPENROUTER_API_KEY, OPENROUTER_BASE_URL,
//     HTTP_PORT, LOG_LEVEL, DB_DISABLED)
//
// A missing YAML file is only an error when its path was given
// explicitly.
func Initialize(path string) (*Config, error) {
	explicit := path != "" || os.Getenv("PARLEY_CONFIG") != ""
	if path == "" {
		path = os.Getenv("PARLEY_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
	}
	log := slog.With("config_path", path)

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		fileCfg, err := parseYAML(data)
		if err != nil {
			return nil, NewLoadError(path, err)
		}
		// Non-zero YAML values override defaults; absent keys inherit.
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("failed to merge config: %w", err))
		}
	case os.IsNotExist(err) && !explicit:
		log.Info("No configuration file found, using defaults")
	case os.IsNotExist(err):
		return nil, NewLoadError(path, ErrConfigNotFound)
	default:
		return nil, NewLoadError(path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"max_turns", cfg.Discussion.MaxTurns,
		"consensus_threshold", cfg.Discussion.ConsensusThreshold,
		"meta_model", cfg.LLM.MetaModelID,
		"http_port", cfg.Server.HTTPPort,
		"db_disabled", cfg.DBDisabled)
	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	data = ExpandEnv(data)
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &fileCfg, nil
}

// applyEnvOverrides layers environment variables over the merged config.
func applyEnvOverrides(cfg *Config) error {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if baseURL := os.Getenv("OPENROUTER_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", port, err)
		}
		cfg.Server.HTTPPort = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if disabled := os.Getenv("DB_DISABLED"); disabled != "" {
		v, err := strconv.ParseBool(disabled)
		if err != nil {
			return fmt.Errorf("invalid DB_DISABLED %q: %w", disabled, err)
		}
		cfg.DBDisabled = v
	}
	return nil
}

// ParseLogLevel maps the LOG_LEVEL string to a slog level, defaulting
// to Info for unknown values.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
