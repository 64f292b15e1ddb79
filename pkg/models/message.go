package models

import "time"

// Sentinel model ids recorded on messages no panel model produced.
const (
	// ModelIDSystem marks the framing message posted at discussion start
	ModelIDSystem = "system"
	// ModelIDUser marks user interjections
	ModelIDUser = "user"
)

// Author names reserved for non-agent messages.
const (
	AuthorNameSystem = "System"
	AuthorNameUser   = "User"
)

// Message is one entry in a discussion transcript, append-only and
// totally ordered by sequence within its discussion
type Message struct {
	ID             string     `json:"id"`
	DiscussionID   string     `json:"discussion_id"`
	Sequence       int        `json:"sequence"`
	AuthorKind     AuthorKind `json:"author_kind"`
	AuthorName     string     `json:"author_name"`
	BackingModelID string     `json:"backing_model_id"`
	Body           string     `json:"body"`
	Turn           int        `json:"turn"`
	CreatedAt      time.Time  `json:"created_at"`
}

// PostUserMessageRequest contains fields for posting a user interjection
type PostUserMessageRequest struct {
	Body    string `json:"body"`
	UserTag string `json:"user_tag"`
}

// MessagePage contains one page of a discussion transcript ordered
// ascending by sequence
type MessagePage struct {
	Messages []Message `json:"messages"`
	Count    int       `json:"count"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
