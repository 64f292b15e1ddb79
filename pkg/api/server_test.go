package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
)

const testDiscussionID = "disc-1"

// fakeEngine serves canned data for one known discussion id.
type fakeEngine struct {
	bus     *events.Bus
	snap    models.DiscussionSnapshot
	page    models.MessagePage
	items   []models.DiscussionListItem
	stopErr error
	postErr error

	stopped      []string
	deleted      []string
	postedBodies []string

	lastLimit  int
	lastOffset int
}

func (f *fakeEngine) known(id string) bool { return id == f.snap.ID }

func (f *fakeEngine) Create(_ context.Context, req models.CreateDiscussionRequest) (models.DiscussionSnapshot, error) {
	if len(req.Topic) < models.MinTopicLength {
		return models.DiscussionSnapshot{}, services.NewValidationError("topic", "too short")
	}
	snap := f.snap
	snap.Topic = req.Topic
	return snap, nil
}

func (f *fakeEngine) PostUserMessage(_ context.Context, id, body, _ string) (models.Message, error) {
	if !f.known(id) {
		return models.Message{}, services.ErrNotFound
	}
	if f.postErr != nil {
		return models.Message{}, f.postErr
	}
	f.postedBodies = append(f.postedBodies, body)
	return models.Message{ID: "msg-42", DiscussionID: id, Body: body}, nil
}

func (f *fakeEngine) Inspect(_ context.Context, id string) (models.DiscussionSnapshot, error) {
	if !f.known(id) {
		return models.DiscussionSnapshot{}, services.ErrNotFound
	}
	return f.snap, nil
}

func (f *fakeEngine) Transcript(_ context.Context, id string, limit, offset int) (models.MessagePage, error) {
	if !f.known(id) {
		return models.MessagePage{}, services.ErrNotFound
	}
	f.lastLimit, f.lastOffset = limit, offset
	page := f.page
	page.Limit, page.Offset = limit, offset
	return page, nil
}

func (f *fakeEngine) Stop(_ context.Context, id string) error {
	if !f.known(id) {
		return services.ErrNotFound
	}
	if f.stopErr != nil {
		return f.stopErr
	}
	f.stopped = append(f.stopped, id)
	return nil
}

func (f *fakeEngine) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEngine) Subscribe(id string) (*events.Subscription, error) {
	if !f.known(id) {
		return nil, services.ErrNotFound
	}
	return f.bus.Subscribe(id), nil
}

func (f *fakeEngine) List(context.Context) []models.DiscussionListItem {
	return f.items
}

type fakePerfReader struct {
	perf []models.RolePerformance
	err  error
}

func (f *fakePerfReader) Performance(context.Context, string) ([]models.RolePerformance, error) {
	return f.perf, f.err
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		bus: events.NewBus(0),
		snap: models.DiscussionSnapshot{
			ID:      testDiscussionID,
			Topic:   "Should the city pedestrianize its downtown core?",
			UserTag: "civic-lab",
			Status:  models.StatusActive,
			Roles: []models.Role{
				{Name: "Traffic Engineer", BackingModelID: "model-a"},
				{Name: "Small Business Owner", BackingModelID: "model-b"},
			},
			MaxTurns:  20,
			CreatedAt: time.Now().UTC(),
		},
		page: models.MessagePage{
			Messages: []models.Message{
				{ID: "m1", DiscussionID: testDiscussionID, Sequence: 1, AuthorKind: models.AuthorKindSystem},
				{ID: "m2", DiscussionID: testDiscussionID, Sequence: 2, AuthorKind: models.AuthorKindAgent},
			},
			Count: 2,
		},
		items: []models.DiscussionListItem{
			{ID: testDiscussionID, Status: models.StatusActive},
		},
	}
}

func doRequest(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateDiscussionEndpoint(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

	t.Run("created", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, "/api/v1/discussions", models.CreateDiscussionRequest{
			Topic:   "Should the city pedestrianize its downtown core?",
			UserTag: "civic-lab",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, testDiscussionID, body["id"])
		assert.Equal(t, "/ws/"+testDiscussionID, body["subscription_hint"])
		assert.Equal(t, "active", body["status"])
		assert.Len(t, body["roles"], 2)
	})

	t.Run("validation error is 400", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, "/api/v1/discussions", models.CreateDiscussionRequest{
			Topic:   "short",
			UserTag: "civic-lab",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "topic")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/discussions", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDiscussionEndpoint(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

	rec := doRequest(t, server, http.MethodGet, "/api/v1/discussions/"+testDiscussionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, testDiscussionID, body["id"])
	assert.Equal(t, "civic-lab", body["user_tag"])

	rec = doRequest(t, server, http.MethodGet, "/api/v1/discussions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDiscussionsEndpoint(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

	rec := doRequest(t, server, http.MethodGet, "/api/v1/discussions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["count"])
}

func TestGetMessagesEndpoint(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

	t.Run("defaults", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/discussions/%s/messages", testDiscussionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 50, engine.lastLimit)
		assert.Equal(t, 0, engine.lastOffset)

		body := decodeBody(t, rec)
		assert.Equal(t, testDiscussionID, body["discussion_id"])
		assert.EqualValues(t, 2, body["count"])
	})

	t.Run("explicit paging", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			fmt.Sprintf("/api/v1/discussions/%s/messages?limit=5&offset=10", testDiscussionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, engine.lastLimit)
		assert.Equal(t, 10, engine.lastOffset)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			fmt.Sprintf("/api/v1/discussions/%s/messages?limit=abc", testDiscussionID), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostUserMessageEndpoint(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})
	path := fmt.Sprintf("/api/v1/discussions/%s/messages", testDiscussionID)

	t.Run("accepted", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, path, models.PostUserMessageRequest{
			Body:    "What about accessibility for disabled residents?",
			UserTag: "civic-lab",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "accepted", body["status"])
		assert.Equal(t, "msg-42", body["id"])
		assert.Len(t, engine.postedBodies, 1)
	})

	t.Run("missing user_tag", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, path, models.PostUserMessageRequest{Body: "hello"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("terminated discussion is 409", func(t *testing.T) {
		engine.postErr = services.ErrTerminated
		defer func() { engine.postErr = nil }()

		rec := doRequest(t, server, http.MethodPost, path, models.PostUserMessageRequest{
			Body: "too late", UserTag: "civic-lab",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestStopAndDeleteEndpoints(t *testing.T) {
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

	rec := doRequest(t, server, http.MethodPost, fmt.Sprintf("/api/v1/discussions/%s/stop", testDiscussionID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stopped", decodeBody(t, rec)["status"])
	assert.Equal(t, []string{testDiscussionID}, engine.stopped)

	engine.stopErr = services.ErrTerminated
	rec = doRequest(t, server, http.MethodPost, fmt.Sprintf("/api/v1/discussions/%s/stop", testDiscussionID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, server, http.MethodDelete, "/api/v1/discussions/"+testDiscussionID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{testDiscussionID}, engine.deleted)

	// Idempotent: unknown ids delete fine too
	rec = doRequest(t, server, http.MethodDelete, "/api/v1/discussions/never-existed", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPerformanceEndpoint(t *testing.T) {
	t.Run("with reader", func(t *testing.T) {
		engine := newFakeEngine()
		perf := &fakePerfReader{perf: []models.RolePerformance{
			{RoleName: "Traffic Engineer", BackingModelID: "model-a", Utterances: 3, AvgResponseTimeMS: 900, TotalTokens: 1200},
		}}
		server := NewServer(engine, perf, nil, nil, config.LLMConfig{})

		rec := doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/discussions/%s/performance", testDiscussionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		roles := body["roles"].([]any)
		require.Len(t, roles, 1)
		assert.Equal(t, "Traffic Engineer", roles[0].(map[string]any)["role_name"])
	})

	t.Run("reader miss is 404", func(t *testing.T) {
		engine := newFakeEngine()
		server := NewServer(engine, &fakePerfReader{err: services.ErrNotFound}, nil, nil, config.LLMConfig{})
		rec := doRequest(t, server, http.MethodGet, "/api/v1/discussions/unknown/performance", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("registry-only mode reports empty aggregates", func(t *testing.T) {
		engine := newFakeEngine()
		server := NewServer(engine, nil, nil, nil, config.LLMConfig{})

		rec := doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/discussions/%s/performance", testDiscussionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody(t, rec)["roles"])

		rec = doRequest(t, server, http.MethodGet, "/api/v1/discussions/unknown/performance", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListModelsEndpoint(t *testing.T) {
	server := NewServer(newFakeEngine(), nil, nil, nil, config.LLMConfig{
		MetaModelID:          "openai/gpt-5-chat",
		DefaultPanelModelIDs: []string{"anthropic/claude-sonnet-4", "openai/gpt-5-chat"},
		ModelAliases: map[string]string{
			"claude": "anthropic/claude-sonnet-4",
			"gemini": "google/gemini-2.5-pro",
		},
	})

	rec := doRequest(t, server, http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	assert.Equal(t, "openai/gpt-5-chat", body["meta_model"])
	assert.Equal(t, float64(3), body["count"], "canonical ids are deduplicated")
	assert.Equal(t, []any{
		"anthropic/claude-sonnet-4",
		"google/gemini-2.5-pro",
		"openai/gpt-5-chat",
	}, body["models"])
	assert.Equal(t, "anthropic/claude-sonnet-4", body["aliases"].(map[string]any)["claude"])
	assert.Equal(t, []any{"anthropic/claude-sonnet-4", "openai/gpt-5-chat"}, body["default_panel"])
}

func TestHealthEndpoint_NoDatabase(t *testing.T) {
	server := NewServer(newFakeEngine(), nil, nil, nil, config.LLMConfig{})

	rec := doRequest(t, server, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["database"].(map[string]any)["status"])
}
