package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}],"usage":{"prompt_tokens":12,"completion_tokens":8,"total_tokens":20}}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestClient(server *httptest.Server) *HTTPClient {
	return NewHTTPClient(Config{
		APIKey:   "test-key-123",
		BaseURL:  server.URL,
		Referrer: "https://parley.example",
		AppName:  "Parley",
	})
}

func TestHTTPClient_CompleteText(t *testing.T) {
	t.Run("successful completion returns text and usage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody("The panel should consider dosage tiers.")))
		}))
		defer server.Close()

		client := newTestClient(server)
		res, err := client.CompleteText(context.Background(), Request{
			Model:       "openai/gpt-5-chat",
			Messages:    []ChatMessage{{Role: RoleUser, Content: "hello"}},
			Temperature: 0.7,
		})
		require.NoError(t, err)
		assert.Equal(t, "The panel should consider dosage tiers.", res.Text)
		assert.Equal(t, 20, res.Usage.TotalTokens)
		assert.Equal(t, 8, res.Usage.CompletionTokens)
	})

	t.Run("sends bearer and attribution headers", func(t *testing.T) {
		var gotAuth, gotReferer, gotTitle, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReferer = r.Header.Get("HTTP-Referer")
			gotTitle = r.Header.Get("X-Title")
			gotContentType = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-key-123", gotAuth)
		assert.Equal(t, "https://parley.example", gotReferer)
		assert.Equal(t, "Parley", gotTitle)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("posts chat completions with request fields", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{
			Model: "anthropic/claude-sonnet-4.5",
			Messages: []ChatMessage{
				{Role: RoleSystem, Content: "You are terse."},
				{Role: RoleUser, Content: "Summarize."},
			},
			Temperature: 0.2,
			MaxTokens:   50,
		})
		require.NoError(t, err)
		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "anthropic/claude-sonnet-4.5", gotBody["model"])
		assert.Equal(t, 0.2, gotBody["temperature"])
		assert.Equal(t, float64(50), gotBody["max_tokens"])
		messages, ok := gotBody["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		_, hasFormat := gotBody["response_format"]
		assert.False(t, hasFormat)
	})

	t.Run("omits max_tokens when zero", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.NoError(t, err)
		_, hasMaxTokens := gotBody["max_tokens"]
		assert.False(t, hasMaxTokens)
	})

	t.Run("normalizes model aliases before sending", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		client := NewHTTPClient(Config{
			APIKey:       "k",
			BaseURL:      server.URL,
			ModelAliases: map[string]string{"gpt-4": "openai/gpt-5-chat"},
		})
		_, err := client.CompleteText(context.Background(), Request{Model: "GPT-4", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.NoError(t, err)
		assert.Equal(t, "openai/gpt-5-chat", gotBody["model"])
	})

	t.Run("HTTP 401 is an auth error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindAuth))
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("HTTP 403 is an auth error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindAuth))
	})

	t.Run("HTTP 500 with envelope is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error","code":500}}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindUpstream))
		assert.Contains(t, err.Error(), "model overloaded")
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("HTTP 429 without envelope keeps raw body detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("rate limited"))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindUpstream))
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("malformed response JSON is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindDecode))
	})

	t.Run("no choices is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindDecode))
	})

	t.Run("empty completion text is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(completionBody("   ")))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindDecode))
		assert.Contains(t, err.Error(), "empty completion")
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		client := newTestClient(server)
		_, err := client.CompleteText(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindTransport))
	})

	t.Run("context cancellation is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(completionBody("late")))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := newTestClient(server)
		_, err := client.CompleteText(ctx, Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindTransport))
	})

	t.Run("deadline exceeded is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(completionBody("late")))
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		client := newTestClient(server)
		_, err := client.CompleteText(ctx, Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindTransport))
	})
}

func TestHTTPClient_CompleteJSON(t *testing.T) {
	t.Run("requests json_object response format", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(completionBody(`{"confidence":0.9}`)))
		}))
		defer server.Close()

		client := newTestClient(server)
		var out struct {
			Confidence float64 `json:"confidence"`
		}
		_, err := client.CompleteJSON(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}}, &out)
		require.NoError(t, err)
		format, ok := gotBody["response_format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "json_object", format["type"])
		assert.Equal(t, 0.9, out.Confidence)
	})

	t.Run("strips json code fences", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(completionBody("```json\n{\"primary_domain\":\"medical\"}\n```")))
		}))
		defer server.Close()

		client := newTestClient(server)
		var out struct {
			PrimaryDomain string `json:"primary_domain"`
		}
		_, err := client.CompleteJSON(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}}, &out)
		require.NoError(t, err)
		assert.Equal(t, "medical", out.PrimaryDomain)
	})

	t.Run("strips bare code fences", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(completionBody("```\n{\"complexity\":3}\n```")))
		}))
		defer server.Close()

		client := newTestClient(server)
		var out struct {
			Complexity int `json:"complexity"`
		}
		_, err := client.CompleteJSON(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}}, &out)
		require.NoError(t, err)
		assert.Equal(t, 3, out.Complexity)
	})

	t.Run("non-JSON completion is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(completionBody("I cannot answer in JSON, sorry.")))
		}))
		defer server.Close()

		client := newTestClient(server)
		var out map[string]any
		_, err := client.CompleteJSON(context.Background(), Request{Model: "m", Messages: []ChatMessage{{Role: RoleUser, Content: "x"}}}, &out)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrorKindDecode))
	})
}

func TestHTTPClient_Normalize(t *testing.T) {
	client := NewHTTPClient(Config{
		APIKey: "k",
		ModelAliases: map[string]string{
			"gpt-4":             "openai/gpt-5-chat",
			"claude-3.5-sonnet": "anthropic/claude-sonnet-4.5",
			"gemini-pro":        "google/gemini-2.5-pro",
		},
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known alias", "gpt-4", "openai/gpt-5-chat"},
		{"case insensitive", "Claude-3.5-Sonnet", "anthropic/claude-sonnet-4.5"},
		{"surrounding whitespace", "  gemini-pro ", "google/gemini-2.5-pro"},
		{"unknown passes through", "mistralai/mistral-large", "mistralai/mistral-large"},
		{"canonical id passes through", "openai/gpt-5-chat", "openai/gpt-5-chat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.Normalize(tt.in))
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"fence without trailing close", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &Error{Kind: ErrorKindTransport, Model: "m", Err: cause}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, IsKind(io.EOF, ErrorKindTransport))
}
