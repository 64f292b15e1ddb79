// Package api exposes the REST and WebSocket surface over the
// discussion engine.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/database"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/models"
)

// Engine is the discussion-engine surface the HTTP layer depends on.
// Implemented by orchestrator.Orchestrator.
type Engine interface {
	Create(ctx context.Context, req models.CreateDiscussionRequest) (models.DiscussionSnapshot, error)
	PostUserMessage(ctx context.Context, discussionID, body, userTag string) (models.Message, error)
	Inspect(ctx context.Context, discussionID string) (models.DiscussionSnapshot, error)
	Transcript(ctx context.Context, discussionID string, limit, offset int) (models.MessagePage, error)
	Stop(ctx context.Context, discussionID string) error
	Delete(ctx context.Context, discussionID string) error
	Subscribe(discussionID string) (*events.Subscription, error)
	List(ctx context.Context) []models.DiscussionListItem
}

// PerformanceReader serves per-role utterance aggregates. Implemented by
// services.DiscussionService; nil when the database is disabled.
type PerformanceReader interface {
	Performance(ctx context.Context, discussionID string) ([]models.RolePerformance, error)
}

// Server wires the engine into gin routes.
type Server struct {
	engine           Engine
	perf             PerformanceReader
	db               *database.Client
	allowedWSOrigins []string
	llm              config.LLMConfig
	logger           *slog.Logger
	router           *gin.Engine
}

// NewServer creates the API server and mounts all routes. db and perf
// may be nil when running registry-only.
func NewServer(engine Engine, perf PerformanceReader, db *database.Client, allowedWSOrigins []string, llm config.LLMConfig) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:           engine,
		perf:             perf,
		db:               db,
		allowedWSOrigins: allowedWSOrigins,
		llm:              llm,
		logger:           slog.Default().With("component", "api"),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	v1 := router.Group("/api/v1")
	v1.GET("/health", s.health)
	v1.GET("/models", s.listModels)

	discussions := v1.Group("/discussions")
	discussions.POST("", s.createDiscussion)
	discussions.GET("", s.listDiscussions)
	discussions.GET("/:id", s.getDiscussion)
	discussions.POST("/:id/messages", s.postUserMessage)
	discussions.GET("/:id/messages", s.getMessages)
	discussions.POST("/:id/stop", s.stopDiscussion)
	discussions.DELETE("/:id", s.deleteDiscussion)
	discussions.GET("/:id/performance", s.getPerformance)

	s.router = router
	return s
}

// Handler returns the http.Handler for mounting into an http.Server.
// WebSocket upgrades are served off the root mux rather than through
// gin: gin's wrapped ResponseWriter is marked written during Accept and
// can no longer be hijacked.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/", s.handleWS)
	mux.Handle("/", s.router)
	return mux
}

// health reports liveness plus a bounded database ping.
func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": gin.H{"status": "disabled"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
