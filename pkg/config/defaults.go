package config

import "time"

// Built-in defaults. parley.yaml overrides any of these; absent keys
// inherit them.
const (
	DefaultMaxTurns                  = 20
	DefaultConsensusThreshold        = 0.85
	DefaultPerCallTimeoutSeconds     = 60
	DefaultSpeakerPickTimeoutSeconds = 15
	DefaultSubscriberQueueBound      = 64
	DefaultMetaModelID               = "openai/gpt-5-chat"
	DefaultHTTPPort                  = 8000
	DefaultReferrer                  = "https://github.com/parleyhq/parley"
	DefaultAppName                   = "parley"
)

// DefaultPanelModelIDs are cycled across panel roles when the caller
// expresses no model preference.
func DefaultPanelModelIDs() []string {
	return []string{
		"anthropic/claude-sonnet-4.5",
		"openai/gpt-5-chat",
		"google/gemini-2.5-pro",
		"deepseek/deepseek-v3.2-exp",
	}
}

// DefaultModelAliases maps lowercased friendly model names to canonical
// ids. Ships as the default model_aliases config value.
func DefaultModelAliases() map[string]string {
	return map[string]string{
		"gpt-4":             "openai/gpt-5-chat",
		"gpt-4o":            "openai/gpt-5-chat",
		"gpt-4-turbo":       "openai/gpt-5-chat",
		"gpt-5":             "openai/gpt-5-chat",
		"gpt-5-chat":        "openai/gpt-5-chat",
		"claude-3-opus":     "anthropic/claude-sonnet-4.5",
		"claude-3-sonnet":   "anthropic/claude-sonnet-4.5",
		"claude-3.5-sonnet": "anthropic/claude-sonnet-4.5",
		"claude-4.5":        "anthropic/claude-sonnet-4.5",
		"claude-sonnet-4.5": "anthropic/claude-sonnet-4.5",
		"gemini-pro":        "google/gemini-2.5-pro",
		"gemini-1.5-pro":    "google/gemini-2.5-pro",
		"gemini-2.5-pro":    "google/gemini-2.5-pro",
		"gemini-ultra":      "google/gemini-2.5-pro",
		"deepseek":          "deepseek/deepseek-v3.2-exp",
		"deepseek-chat":     "deepseek/deepseek-v3.2-exp",
		"deepseek-v3.2":     "deepseek/deepseek-v3.2-exp",
		"mistral-large":     "mistralai/mistral-large",
	}
}

// DefaultConfig returns the built-in configuration. Callers get a fresh
// copy; mutating it never affects other callers.
func DefaultConfig() *Config {
	return &Config{
		Discussion: DiscussionConfig{
			MaxTurns:                  DefaultMaxTurns,
			ConsensusThreshold:        DefaultConsensusThreshold,
			PerCallTimeoutSeconds:     DefaultPerCallTimeoutSeconds,
			SpeakerPickTimeoutSeconds: DefaultSpeakerPickTimeoutSeconds,
			SubscriberQueueBound:      DefaultSubscriberQueueBound,
		},
		LLM: LLMConfig{
			BaseURL:              "https://openrouter.ai/api/v1",
			MetaModelID:          DefaultMetaModelID,
			DefaultPanelModelIDs: DefaultPanelModelIDs(),
			ModelAliases:         DefaultModelAliases(),
			Referrer:             DefaultReferrer,
			AppName:              DefaultAppName,
		},
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
		},
		Retention: RetentionConfig{
			DiscussionRetentionDays: 0, // disabled unless configured
			CleanupInterval:         12 * time.Hour,
		},
		LogLevel: "info",
	}
}
