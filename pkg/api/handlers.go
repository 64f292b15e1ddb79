package api

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
)

// createDiscussionResponse is the 201 body for a new discussion.
type createDiscussionResponse struct {
	ID               string        `json:"id"`
	Topic            string        `json:"topic"`
	Roles            []models.Role `json:"roles"`
	Status           string        `json:"status"`
	CreatedAt        string        `json:"created_at"`
	SubscriptionHint string        `json:"subscription_hint"`
}

func (s *Server) createDiscussion(c *gin.Context) {
	var req models.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	snap, err := s.engine.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createDiscussionResponse{
		ID:               snap.ID,
		Topic:            snap.Topic,
		Roles:            snap.Roles,
		Status:           string(snap.Status),
		CreatedAt:        snap.CreatedAt.Format(time.RFC3339Nano),
		SubscriptionHint: "/ws/" + snap.ID,
	})
}

func (s *Server) listDiscussions(c *gin.Context) {
	items := s.engine.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"discussions": items,
		"count":       len(items),
	})
}

func (s *Server) getDiscussion(c *gin.Context) {
	snap, err := s.engine.Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) postUserMessage(c *gin.Context) {
	var req models.PostUserMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.UserTag == "" {
		writeServiceError(c, services.NewValidationError("user_tag", "must not be empty"))
		return
	}

	msg, err := s.engine.PostUserMessage(c.Request.Context(), c.Param("id"), req.Body, req.UserTag)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// Accepted, not created: the interjection reaches the panel on the
	// next utterance, asynchronously.
	c.JSON(http.StatusAccepted, gin.H{
		"status": "accepted",
		"id":     msg.ID,
	})
}

func (s *Server) getMessages(c *gin.Context) {
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	discussionID := c.Param("id")
	page, err := s.engine.Transcript(c.Request.Context(), discussionID, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"discussion_id": discussionID,
		"messages":      page.Messages,
		"count":         page.Count,
		"offset":        page.Offset,
		"limit":         page.Limit,
	})
}

func (s *Server) stopDiscussion(c *gin.Context) {
	if err := s.engine.Stop(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stopped"})
}

func (s *Server) deleteDiscussion(c *gin.Context) {
	if err := s.engine.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getPerformance(c *gin.Context) {
	discussionID := c.Param("id")

	if s.perf == nil {
		// Registry-only mode: confirm the discussion exists, then report
		// no aggregates rather than 404 on a live discussion.
		if _, err := s.engine.Inspect(c.Request.Context(), discussionID); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"discussion_id": discussionID,
			"roles":         []models.RolePerformance{},
		})
		return
	}

	perf, err := s.perf.Performance(c.Request.Context(), discussionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"discussion_id": discussionID,
		"roles":         perf,
	})
}

// listModels reports the configured model routing table: every
// canonical model id reachable through the alias table or the default
// panel, plus the friendly-name aliases themselves. Clients use it to
// discover valid preferred_models values.
func (s *Server) listModels(c *gin.Context) {
	canonical := map[string]bool{}
	for _, id := range s.llm.DefaultPanelModelIDs {
		canonical[id] = true
	}
	for _, id := range s.llm.ModelAliases {
		canonical[id] = true
	}
	if s.llm.MetaModelID != "" {
		canonical[s.llm.MetaModelID] = true
	}

	ids := make([]string, 0, len(canonical))
	for id := range canonical {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	c.JSON(http.StatusOK, gin.H{
		"models":        ids,
		"count":         len(ids),
		"aliases":       s.llm.ModelAliases,
		"default_panel": s.llm.DefaultPanelModelIDs,
		"meta_model":    s.llm.MetaModelID,
	})
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
