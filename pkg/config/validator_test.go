package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:      "max_turns below range",
			mutate:    func(c *Config) { c.Discussion.MaxTurns = 2 },
			wantField: "max_turns",
		},
		{
			name:      "max_turns above range",
			mutate:    func(c *Config) { c.Discussion.MaxTurns = 51 },
			wantField: "max_turns",
		},
		{
			name:      "threshold zero",
			mutate:    func(c *Config) { c.Discussion.ConsensusThreshold = 0 },
			wantField: "consensus_threshold",
		},
		{
			name:      "threshold above one",
			mutate:    func(c *Config) { c.Discussion.ConsensusThreshold = 1.2 },
			wantField: "consensus_threshold",
		},
		{
			name:      "per-call timeout zero",
			mutate:    func(c *Config) { c.Discussion.PerCallTimeoutSeconds = 0 },
			wantField: "per_call_timeout_seconds",
		},
		{
			name:      "speaker-pick timeout negative",
			mutate:    func(c *Config) { c.Discussion.SpeakerPickTimeoutSeconds = -1 },
			wantField: "speaker_pick_timeout_seconds",
		},
		{
			name:      "queue bound zero",
			mutate:    func(c *Config) { c.Discussion.SubscriberQueueBound = 0 },
			wantField: "subscriber_queue_bound",
		},
		{
			name:      "empty base url",
			mutate:    func(c *Config) { c.LLM.BaseURL = "" },
			wantField: "base_url",
		},
		{
			name:      "empty meta model",
			mutate:    func(c *Config) { c.LLM.MetaModelID = "" },
			wantField: "meta_model_id",
		},
		{
			name:      "empty panel",
			mutate:    func(c *Config) { c.LLM.DefaultPanelModelIDs = nil },
			wantField: "default_panel_model_ids",
		},
		{
			name:      "blank panel entry",
			mutate:    func(c *Config) { c.LLM.DefaultPanelModelIDs = []string{"model-a", ""} },
			wantField: "default_panel_model_ids",
		},
		{
			name:      "port out of range",
			mutate:    func(c *Config) { c.Server.HTTPPort = 70000 },
			wantField: "http_port",
		},
		{
			name:      "negative retention days",
			mutate:    func(c *Config) { c.Retention.DiscussionRetentionDays = -1 },
			wantField: "discussion_retention_days",
		},
		{
			name: "retention enabled without interval",
			mutate: func(c *Config) {
				c.Retention.DiscussionRetentionDays = 30
				c.Retention.CleanupInterval = 0
			},
			wantField: "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}
