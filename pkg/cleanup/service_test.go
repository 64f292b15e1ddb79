package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
	"github.com/parleyhq/parley/test/util"
)

func seedDiscussion(t *testing.T, svc *services.DiscussionService, id string, status models.DiscussionStatus, age time.Duration) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, svc.SaveDiscussion(context.Background(), models.DiscussionSnapshot{
		ID:        id,
		Topic:     "Does long-term data retention justify its storage cost?",
		UserTag:   "ops",
		Status:    status,
		Roles:     []models.Role{{Name: "Archivist", BackingModelID: "model-a"}},
		MaxTurns:  20,
		CreatedAt: now.Add(-age),
		UpdatedAt: now,
	}))
}

func TestCleanupService_DeletesExpiredDiscussions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewDiscussionService(client)

	seedDiscussion(t, svc, "expired", models.StatusCompleted, 48*time.Hour)
	seedDiscussion(t, svc, "fresh", models.StatusCompleted, time.Hour)
	seedDiscussion(t, svc, "old-but-active", models.StatusActive, 48*time.Hour)

	cleanup := NewService(config.RetentionConfig{
		DiscussionRetentionDays: 1,
		CleanupInterval:         time.Hour, // first pass runs immediately
	}, svc)
	cleanup.Start(context.Background())
	defer cleanup.Stop()

	require.Eventually(t, func() bool {
		_, err := svc.LoadDiscussion(context.Background(), "expired")
		return err != nil
	}, 5*time.Second, 20*time.Millisecond, "expired discussion should be reaped")

	_, err := svc.LoadDiscussion(context.Background(), "fresh")
	assert.NoError(t, err)
	_, err = svc.LoadDiscussion(context.Background(), "old-but-active")
	assert.NoError(t, err, "active discussions are never reaped")
}

func TestCleanupService_DisabledIsNoop(t *testing.T) {
	cleanup := NewService(config.RetentionConfig{DiscussionRetentionDays: 0}, nil)
	cleanup.Start(context.Background())
	cleanup.Stop() // must not block or panic when never started
}
