// Package config loads and validates application configuration from
// parley.yaml merged over built-in defaults, with environment variables
// layered on top.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Discussion DiscussionConfig `yaml:"discussion"`
	LLM        LLMConfig        `yaml:"llm"`
	Server     ServerConfig     `yaml:"server"`
	Retention  RetentionConfig  `yaml:"retention"`

	// Environment-only switches, never read from YAML.
	DBDisabled bool   `yaml:"-"`
	LogLevel   string `yaml:"-"`
}

// DiscussionConfig controls the turn loop and consensus machinery.
type DiscussionConfig struct {
	// MaxTurns is the default turn cap for new discussions (3..50).
	MaxTurns int `yaml:"max_turns"`

	// ConsensusThreshold is the confidence at or above which the
	// evaluator declares consensus (0..1).
	ConsensusThreshold float64 `yaml:"consensus_threshold"`

	// PerCallTimeoutSeconds bounds a single agent utterance call.
	PerCallTimeoutSeconds int `yaml:"per_call_timeout_seconds"`

	// SpeakerPickTimeoutSeconds bounds the speaker-selection meta call.
	SpeakerPickTimeoutSeconds int `yaml:"speaker_pick_timeout_seconds"`

	// SubscriberQueueBound is the per-subscriber event buffer size.
	SubscriberQueueBound int `yaml:"subscriber_queue_bound"`
}

// PerCallTimeout returns the utterance deadline as a duration.
func (c DiscussionConfig) PerCallTimeout() time.Duration {
	return time.Duration(c.PerCallTimeoutSeconds) * time.Second
}

// SpeakerPickTimeout returns the speaker-pick deadline as a duration.
func (c DiscussionConfig) SpeakerPickTimeout() time.Duration {
	return time.Duration(c.SpeakerPickTimeoutSeconds) * time.Second
}

// LLMConfig holds gateway connection and model-routing settings.
type LLMConfig struct {
	// BaseURL is the OpenRouter-compatible API root.
	BaseURL string `yaml:"base_url"`

	// MetaModelID backs role synthesis, speaker picks, and consensus.
	MetaModelID string `yaml:"meta_model_id"`

	// DefaultPanelModelIDs are cycled across roles when a request
	// carries no preferred models.
	DefaultPanelModelIDs []string `yaml:"default_panel_model_ids"`

	// ModelAliases maps lowercased friendly names to canonical ids.
	// Unknown names pass through unchanged.
	ModelAliases map[string]string `yaml:"model_aliases"`

	// Referrer and AppName are the attribution headers sent on every
	// gateway call (HTTP-Referer / X-Title).
	Referrer string `yaml:"referrer"`
	AppName  string `yaml:"app_name"`

	// APIKey comes from OPENROUTER_API_KEY, never from YAML.
	APIKey string `yaml:"-"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	HTTPPort         int      `yaml:"http_port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// RetentionConfig controls the cleanup loop for old discussions.
type RetentionConfig struct {
	// DiscussionRetentionDays is how many days terminal discussions are
	// kept before deletion. Zero disables the cleanup loop.
	DiscussionRetentionDays int `yaml:"discussion_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}
