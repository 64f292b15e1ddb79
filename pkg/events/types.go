// Package events provides per-discussion real-time fan-out: typed events
// published by the orchestrator, delivered to every current subscriber.
package events

import "time"

// Type discriminates the event union. Subscribers decode by tag; an
// unknown tag is a protocol error, not something to skip silently.
type Type string

// Event kinds.
const (
	TypeConnected          Type = "connected"
	TypeAgentMessage       Type = "agent_message"
	TypeUserMessage        Type = "user_message"
	TypeConsensusUpdate    Type = "consensus_update"
	TypeDiscussionComplete Type = "discussion_complete"
	TypeDiscussionStopped  Type = "discussion_stopped"
	TypeError              Type = "error"
	TypeKeepalive          Type = "keepalive"
)

// IsValid checks if the event type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeConnected, TypeAgentMessage, TypeUserMessage, TypeConsensusUpdate,
		TypeDiscussionComplete, TypeDiscussionStopped, TypeError, TypeKeepalive:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether this event ends the stream for a discussion.
func (t Type) IsTerminal() bool {
	return t == TypeDiscussionComplete || t == TypeDiscussionStopped || t == TypeError
}

// Event is one fan-out item. Exactly one payload field is set, matching
// Type; keepalive and connected-greeting carry their data inline.
type Event struct {
	Type         Type   `json:"type"`
	DiscussionID string `json:"discussion_id"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano

	Connected          *ConnectedData          `json:"connected,omitempty"`
	AgentMessage       *AgentMessageData       `json:"agent_message,omitempty"`
	UserMessage        *UserMessageData        `json:"user_message,omitempty"`
	ConsensusUpdate    *ConsensusUpdateData    `json:"consensus_update,omitempty"`
	DiscussionComplete *DiscussionCompleteData `json:"discussion_complete,omitempty"`
	DiscussionStopped  *DiscussionStoppedData  `json:"discussion_stopped,omitempty"`
	Error              *ErrorData              `json:"error,omitempty"`
}

// ConnectedData greets a new subscriber before any further events.
type ConnectedData struct {
	SubscriberID string `json:"subscriber_id"`
	Message      string `json:"message"`
}

// AgentMessageData carries one panel utterance.
type AgentMessageData struct {
	RoleName       string `json:"role_name"`
	BackingModelID string `json:"backing_model_id"`
	Body           string `json:"body"`
	Turn           int    `json:"turn"`
}

// UserMessageData carries a user interjection.
type UserMessageData struct {
	Body    string `json:"body"`
	UserTag string `json:"user_tag"`
}

// ConsensusUpdateData carries a mid-discussion consensus snapshot.
type ConsensusUpdateData struct {
	Reached       bool     `json:"reached"`
	Confidence    float64  `json:"confidence"`
	Summary       string   `json:"summary"`
	Agreements    []string `json:"agreements,omitempty"`
	Disagreements []string `json:"disagreements,omitempty"`
}

// DiscussionCompleteData is the terminal event for a discussion that ran
// to convergence, exhaustion, or stalemate.
type DiscussionCompleteData struct {
	TotalTurns       int    `json:"total_turns"`
	ConsensusReached bool   `json:"consensus_reached"`
	FinalSummary     string `json:"final_summary"`
}

// DiscussionStoppedData is the terminal event for a caller-stopped discussion.
type DiscussionStoppedData struct {
	Reason string `json:"reason"`
}

// ErrorData is the terminal event for an unrecoverable failure.
type ErrorData struct {
	Message string `json:"message"`
}

// newEvent stamps the common envelope fields.
func newEvent(t Type, discussionID string) Event {
	return Event{
		Type:         t,
		DiscussionID: discussionID,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// NewConnected builds the greeting delivered synchronously on subscribe.
func NewConnected(discussionID, subscriberID string) Event {
	ev := newEvent(TypeConnected, discussionID)
	ev.Connected = &ConnectedData{
		SubscriberID: subscriberID,
		Message:      "Connected to discussion",
	}
	return ev
}

// NewAgentMessage builds an agent utterance event.
func NewAgentMessage(discussionID, roleName, backingModelID, body string, turn int) Event {
	ev := newEvent(TypeAgentMessage, discussionID)
	ev.AgentMessage = &AgentMessageData{
		RoleName:       roleName,
		BackingModelID: backingModelID,
		Body:           body,
		Turn:           turn,
	}
	return ev
}

// NewUserMessage builds a user interjection event.
func NewUserMessage(discussionID, body, userTag string) Event {
	ev := newEvent(TypeUserMessage, discussionID)
	ev.UserMessage = &UserMessageData{Body: body, UserTag: userTag}
	return ev
}

// NewConsensusUpdate builds a consensus snapshot event.
func NewConsensusUpdate(discussionID string, reached bool, confidence float64, summary string, agreements, disagreements []string) Event {
	ev := newEvent(TypeConsensusUpdate, discussionID)
	ev.ConsensusUpdate = &ConsensusUpdateData{
		Reached:       reached,
		Confidence:    confidence,
		Summary:       summary,
		Agreements:    agreements,
		Disagreements: disagreements,
	}
	return ev
}

// NewDiscussionComplete builds the convergence/exhaustion terminal event.
func NewDiscussionComplete(discussionID string, totalTurns int, consensusReached bool, finalSummary string) Event {
	ev := newEvent(TypeDiscussionComplete, discussionID)
	ev.DiscussionComplete = &DiscussionCompleteData{
		TotalTurns:       totalTurns,
		ConsensusReached: consensusReached,
		FinalSummary:     finalSummary,
	}
	return ev
}

// NewDiscussionStopped builds the caller-stop terminal event.
func NewDiscussionStopped(discussionID, reason string) Event {
	ev := newEvent(TypeDiscussionStopped, discussionID)
	ev.DiscussionStopped = &DiscussionStoppedData{Reason: reason}
	return ev
}

// NewError builds the unrecoverable-failure terminal event.
func NewError(discussionID, message string) Event {
	ev := newEvent(TypeError, discussionID)
	ev.Error = &ErrorData{Message: message}
	return ev
}

// NewKeepalive builds an idle-connection keepalive event.
func NewKeepalive(discussionID string) Event {
	return newEvent(TypeKeepalive, discussionID)
}
