package models

// DiscussionStatus defines the lifecycle states of a discussion
type DiscussionStatus string

const (
	// StatusActive means the turn loop is running and messages may still be appended
	StatusActive DiscussionStatus = "active"
	// StatusCompleted means the panel converged before the turn cap
	StatusCompleted DiscussionStatus = "completed"
	// StatusNoConsensus means the discussion exhausted its turns or stalled
	StatusNoConsensus DiscussionStatus = "no_consensus"
	// StatusStopped means a caller stopped the discussion mid-flight
	StatusStopped DiscussionStatus = "stopped"
	// StatusFailed means the turn loop aborted on an unrecoverable error
	StatusFailed DiscussionStatus = "failed"
)

// IsValid checks if the discussion status is valid
func (s DiscussionStatus) IsValid() bool {
	switch s {
	case StatusActive,
		StatusCompleted,
		StatusNoConsensus,
		StatusStopped,
		StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transitions
func (s DiscussionStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusNoConsensus, StatusStopped, StatusFailed:
		return true
	default:
		return false
	}
}

// AuthorKind defines who produced a message
type AuthorKind string

const (
	// AuthorKindSystem is the framing message posted when a discussion starts
	AuthorKindSystem AuthorKind = "system"
	// AuthorKindAgent is an utterance produced by a panel role
	AuthorKindAgent AuthorKind = "agent"
	// AuthorKindUser is an interjection posted by an external caller
	AuthorKindUser AuthorKind = "user"
)

// IsValid checks if the author kind is valid
func (k AuthorKind) IsValid() bool {
	return k == AuthorKindSystem || k == AuthorKindAgent || k == AuthorKindUser
}

// Recommendation defines what the consensus evaluator advises the loop to do
type Recommendation string

const (
	// RecommendationContinue means the panel should keep talking
	RecommendationContinue Recommendation = "continue"
	// RecommendationConclude means the panel converged or ran out of material
	RecommendationConclude Recommendation = "conclude"
	// RecommendationEscalate means the panel is stuck and should be wound down
	RecommendationEscalate Recommendation = "escalate"
)

// IsValid checks if the recommendation is valid
func (r Recommendation) IsValid() bool {
	return r == RecommendationContinue || r == RecommendationConclude || r == RecommendationEscalate
}
