package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/services"
)

const (
	// wsWriteTimeout bounds one frame write; a client that cannot drain
	// within it is disconnected.
	wsWriteTimeout = 10 * time.Second
	// wsKeepaliveInterval is how often an idle stream emits a keepalive.
	wsKeepaliveInterval = 30 * time.Second
)

// handleWS upgrades the connection and pumps the discussion's event
// stream to the client until the stream ends or the client goes away.
// It is a plain http.HandlerFunc on the raw ResponseWriter because the
// upgrade hijacks the connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	discussionID := strings.TrimPrefix(r.URL.Path, "/ws/")
	if discussionID == "" || strings.Contains(discussionID, "/") {
		writeWSError(w, http.StatusNotFound, "discussion not found")
		return
	}

	// Subscribe before the upgrade so an unknown id still gets a clean
	// HTTP 404 instead of a socket that closes immediately.
	sub, err := s.engine.Subscribe(discussionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeWSError(w, http.StatusNotFound, "discussion not found")
			return
		}
		s.logger.Error("WebSocket subscribe failed",
			"discussion_id", discussionID, "error", err)
		writeWSError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.allowedWSOrigins,
	})
	if err != nil {
		sub.Cancel()
		s.logger.Warn("WebSocket accept failed",
			"discussion_id", discussionID, "error", err)
		return
	}

	log := s.logger.With("discussion_id", discussionID, "subscriber_id", sub.ID())
	log.Debug("WebSocket subscriber connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer sub.Cancel()

	// Read loop: answer ping frames, ignore everything else, and cancel
	// the pump when the client disconnects.
	go func() {
		defer cancel()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if string(data) == "ping" {
				if err := writeRaw(ctx, conn, []byte("pong")); err != nil {
					return
				}
			}
		}
	}()

	keepalive := time.NewTicker(wsKeepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server closing")
			return
		case <-keepalive.C:
			if err := writeEvent(ctx, conn, events.NewKeepalive(discussionID)); err != nil {
				log.Debug("WebSocket keepalive failed", "error", err)
				return
			}
		case ev, ok := <-sub.Events():
			if !ok {
				// End of stream: the discussion reached a terminal state.
				conn.Close(websocket.StatusNormalClosure, "discussion ended")
				return
			}
			if err := writeEvent(ctx, conn, ev); err != nil {
				log.Debug("WebSocket write failed, dropping subscriber", "error", err)
				return
			}
			keepalive.Reset(wsKeepaliveInterval)
		}
	}
}

// writeWSError mirrors the gin error shape for responses sent before
// the upgrade, where no gin context exists.
func writeWSError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev events.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return writeRaw(ctx, conn, data)
}

func writeRaw(ctx context.Context, conn *websocket.Conn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
