package models

import "time"

// Bounds enforced on discussion creation.
const (
	MinTopicLength = 10
	MaxTopicLength = 500
	MinAgents      = 2
	MaxAgents      = 8
	MinTurns       = 3
	MaxTurns       = 50

	MinUserMessageLength = 1
	MaxUserMessageLength = 2000
)

// CreateDiscussionRequest contains fields for creating a new discussion
type CreateDiscussionRequest struct {
	Topic           string   `json:"topic"`
	NumAgents       int      `json:"num_agents"`
	PreferredModels []string `json:"preferred_models,omitempty"`
	UserTag         string   `json:"user_tag"`
	MaxTurns        int      `json:"max_turns,omitempty"`
}

// DiscussionSnapshot is a point-in-time copy of a discussion's state,
// safe to read while the turn loop keeps running
type DiscussionSnapshot struct {
	ID                  string           `json:"id"`
	Topic               string           `json:"topic"`
	UserTag             string           `json:"user_tag"`
	Status              DiscussionStatus `json:"status"`
	Roles               []Role           `json:"roles"`
	CurrentTurn         int              `json:"current_turn"`
	MaxTurns            int              `json:"max_turns"`
	ConsensusReached    bool             `json:"consensus_reached"`
	ConsensusConfidence *float64         `json:"consensus_confidence,omitempty"`
	FinalSummary        string           `json:"final_summary,omitempty"`
	MessageCount        int              `json:"message_count"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// DiscussionListItem is the compact per-discussion row returned by list
type DiscussionListItem struct {
	ID               string           `json:"id"`
	Topic            string           `json:"topic"`
	UserTag          string           `json:"user_tag"`
	Status           DiscussionStatus `json:"status"`
	CurrentTurn      int              `json:"current_turn"`
	ConsensusReached bool             `json:"consensus_reached"`
	CreatedAt        time.Time        `json:"created_at"`
}
