package config

import (
	"fmt"

	"github.com/parleyhq/parley/pkg/models"
)

// Validate rejects out-of-range configuration before the process serves
// traffic. Fail-fast: stops at the first error.
func Validate(cfg *Config) error {
	if err := validateDiscussion(cfg.Discussion); err != nil {
		return err
	}
	if err := validateLLM(cfg.LLM); err != nil {
		return err
	}
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	return validateRetention(cfg.Retention)
}

func validateDiscussion(d DiscussionConfig) error {
	if d.MaxTurns < models.MinTurns || d.MaxTurns > models.MaxTurns {
		return NewValidationError("discussion", "max_turns",
			fmt.Errorf("must be in [%d, %d], got %d", models.MinTurns, models.MaxTurns, d.MaxTurns))
	}
	if d.ConsensusThreshold <= 0 || d.ConsensusThreshold > 1 {
		return NewValidationError("discussion", "consensus_threshold",
			fmt.Errorf("must be in (0, 1], got %g", d.ConsensusThreshold))
	}
	if d.PerCallTimeoutSeconds <= 0 {
		return NewValidationError("discussion", "per_call_timeout_seconds",
			fmt.Errorf("must be positive, got %d", d.PerCallTimeoutSeconds))
	}
	if d.SpeakerPickTimeoutSeconds <= 0 {
		return NewValidationError("discussion", "speaker_pick_timeout_seconds",
			fmt.Errorf("must be positive, got %d", d.SpeakerPickTimeoutSeconds))
	}
	if d.SubscriberQueueBound <= 0 {
		return NewValidationError("discussion", "subscriber_queue_bound",
			fmt.Errorf("must be positive, got %d", d.SubscriberQueueBound))
	}
	return nil
}

func validateLLM(l LLMConfig) error {
	if l.BaseURL == "" {
		return NewValidationError("llm", "base_url", fmt.Errorf("must not be empty"))
	}
	if l.MetaModelID == "" {
		return NewValidationError("llm", "meta_model_id", fmt.Errorf("must not be empty"))
	}
	if len(l.DefaultPanelModelIDs) == 0 {
		return NewValidationError("llm", "default_panel_model_ids",
			fmt.Errorf("at least one model required"))
	}
	for i, id := range l.DefaultPanelModelIDs {
		if id == "" {
			return NewValidationError("llm", "default_panel_model_ids",
				fmt.Errorf("entry %d is empty", i))
		}
	}
	return nil
}

func validateServer(s ServerConfig) error {
	if s.HTTPPort < 1 || s.HTTPPort > 65535 {
		return NewValidationError("server", "http_port",
			fmt.Errorf("must be in [1, 65535], got %d", s.HTTPPort))
	}
	return nil
}

func validateRetention(r RetentionConfig) error {
	if r.DiscussionRetentionDays < 0 {
		return NewValidationError("retention", "discussion_retention_days",
			fmt.Errorf("must not be negative, got %d", r.DiscussionRetentionDays))
	}
	if r.DiscussionRetentionDays > 0 && r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval",
			fmt.Errorf("must be positive when retention is enabled"))
	}
	return nil
}
