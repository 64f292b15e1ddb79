package gateway

import "context"

// ChatRole identifies the speaker slot of an outbound transcript entry.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the transcript sent to the gateway.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Request describes a single chat-completion call. Callers own the
// conversation history; the client keeps no state between calls.
type Request struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	// MaxTokens caps the completion length; 0 leaves it to the gateway.
	MaxTokens int
}

// Usage reports token consumption for one call when the gateway supplies it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Result is the outcome of a successful completion call.
type Result struct {
	Text  string
	Usage Usage
}

// Client is the outbound boundary to the chat-completion gateway.
// Implementations are stateless per call; retry policy belongs to the caller.
type Client interface {
	// CompleteText sends the transcript and returns the completion text.
	// Empty completion text is a decode error, never an empty Result.
	CompleteText(ctx context.Context, req Request) (*Result, error)

	// CompleteJSON sends the transcript requesting a JSON object response
	// and unmarshals it into out. The raw text is still returned.
	CompleteJSON(ctx context.Context, req Request, out any) (*Result, error)

	// Normalize maps a user-friendly model name to its canonical id.
	// Unknown names pass through unchanged.
	Normalize(name string) string
}
