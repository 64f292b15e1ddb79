package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/events"
)

func setupWSServer(t *testing.T) (*fakeEngine, *httptest.Server) {
	t.Helper()
	engine := newFakeEngine()
	server := NewServer(engine, nil, nil, nil, config.LLMConfig{})
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return engine, ts
}

func dialWS(t *testing.T, ts *httptest.Server, discussionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + ts.URL[len("http"):] + "/ws/" + discussionID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) events.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var ev events.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestWS_ConnectedGreetingFirst(t *testing.T) {
	_, ts := setupWSServer(t)
	conn := dialWS(t, ts, testDiscussionID)

	ev := readEvent(t, conn)
	assert.Equal(t, events.TypeConnected, ev.Type)
	assert.Equal(t, testDiscussionID, ev.DiscussionID)
	require.NotNil(t, ev.Connected)
	assert.NotEmpty(t, ev.Connected.SubscriberID)
}

func TestWS_PumpsPublishedEvents(t *testing.T) {
	engine, ts := setupWSServer(t)
	conn := dialWS(t, ts, testDiscussionID)

	readEvent(t, conn) // connected

	engine.bus.Publish(testDiscussionID,
		events.NewAgentMessage(testDiscussionID, "Traffic Engineer", "model-a", "Pedestrian zones cut accident rates.", 1))

	ev := readEvent(t, conn)
	assert.Equal(t, events.TypeAgentMessage, ev.Type)
	require.NotNil(t, ev.AgentMessage)
	assert.Equal(t, "Traffic Engineer", ev.AgentMessage.RoleName)
	assert.Equal(t, 1, ev.AgentMessage.Turn)
}

func TestWS_PingPong(t *testing.T) {
	_, ts := setupWSServer(t)
	conn := dialWS(t, ts, testDiscussionID)

	readEvent(t, conn) // connected

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("ping")))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(data))
}

func TestWS_TerminalEventClosesStream(t *testing.T) {
	engine, ts := setupWSServer(t)
	conn := dialWS(t, ts, testDiscussionID)

	readEvent(t, conn) // connected

	engine.bus.Publish(testDiscussionID,
		events.NewDiscussionComplete(testDiscussionID, 6, true, "Panel agreed."))
	engine.bus.Close(testDiscussionID)

	ev := readEvent(t, conn)
	assert.Equal(t, events.TypeDiscussionComplete, ev.Type)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestWS_UnknownDiscussionRejectedBeforeUpgrade(t *testing.T) {
	_, ts := setupWSServer(t)

	url := "ws" + ts.URL[len("http"):] + "/ws/unknown"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
