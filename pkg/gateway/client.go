package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the OpenRouter-compatible API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)

// Config holds the connection settings for the HTTP gateway client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// Referrer and AppName are opaque attribution headers the gateway
	// expects on every call (HTTP-Referer / X-Title).
	Referrer string
	AppName  string
	// ModelAliases maps lowercased user-friendly names to canonical ids.
	ModelAliases map[string]string
}

// HTTPClient talks to an OpenRouter-compatible chat-completion endpoint.
// It is pure transport: it does not decide what to send or how to retry.
type HTTPClient struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
}

// NewHTTPClient creates a gateway client. Zero-value config fields fall
// back to package defaults.
func NewHTTPClient(cfg Config) *HTTPClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     slog.Default().With("component", "gateway"),
	}
}

// chatRequest is the wire shape of a chat-completion call.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the wire shape of a successful completion.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// errorEnvelope is the structured failure shape some gateways return.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// CompleteText sends the transcript and returns the completion text.
func (c *HTTPClient) CompleteText(ctx context.Context, req Request) (*Result, error) {
	return c.complete(ctx, req, false)
}

// CompleteJSON sends the transcript requesting a JSON object and
// unmarshals the completion into out. Markdown code fences around the
// object are stripped before unmarshaling.
func (c *HTTPClient) CompleteJSON(ctx context.Context, req Request, out any) (*Result, error) {
	res, err := c.complete(ctx, req, true)
	if err != nil {
		return nil, err
	}
	cleaned := stripCodeFences(res.Text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return nil, &Error{Kind: ErrorKindDecode, Model: req.Model, Message: "completion is not a JSON object", Err: err}
	}
	return res, nil
}

// Normalize maps a user-friendly model name to its canonical id using
// the configured alias table. Lookup is case-insensitive; unknown names
// pass through unchanged.
func (c *HTTPClient) Normalize(name string) string {
	if canonical, ok := c.cfg.ModelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return name
}

func (c *HTTPClient) complete(ctx context.Context, req Request, wantJSON bool) (*Result, error) {
	payload := chatRequest{
		Model:       c.Normalize(req.Model),
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if wantJSON {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Kind: ErrorKindDecode, Model: payload.Model, Message: "encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Model: payload.Model, Message: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referrer != "" {
		httpReq.Header.Set("HTTP-Referer", c.cfg.Referrer)
	}
	if c.cfg.AppName != "" {
		httpReq.Header.Set("X-Title", c.cfg.AppName)
	}

	c.logger.Debug("Calling chat completion",
		"model", payload.Model,
		"messages", len(payload.Messages),
		"json_mode", wantJSON)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Model: payload.Model, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Model: payload.Model, Message: "read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		kind := ErrorKindUpstream
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = ErrorKindAuth
		}
		return nil, &Error{
			Kind:       kind,
			Model:      payload.Model,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw),
		}
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &Error{Kind: ErrorKindDecode, Model: payload.Model, Message: "decode response", Err: err}
	}
	if len(decoded.Choices) == 0 {
		return nil, &Error{Kind: ErrorKindDecode, Model: payload.Model, Message: "no choices in response"}
	}

	text := decoded.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Kind: ErrorKindDecode, Model: payload.Model, Message: "empty completion text"}
	}

	result := &Result{Text: text}
	if decoded.Usage != nil {
		result.Usage = *decoded.Usage
	}
	return result, nil
}

// upstreamMessage extracts the error message from a structured failure
// body, falling back to the truncated raw body.
func upstreamMessage(raw []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// stripCodeFences removes a Markdown code fence wrapping, which several
// models add around JSON objects even in JSON mode.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.LastIndex(trimmed, "```"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.TrimSpace(trimmed)
}
