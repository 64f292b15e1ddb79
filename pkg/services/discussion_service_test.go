package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/ent/discussion"
	entmessage "github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/test/util"
)

func testSnapshot(id string) models.DiscussionSnapshot {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.DiscussionSnapshot{
		ID:      id,
		Topic:   "Should cities replace parking minimums with transit investment?",
		UserTag: "urban-planning-team",
		Status:  models.StatusActive,
		Roles: []models.Role{
			{Name: "Transit Economist", Expertise: "transport economics", Perspective: "cost-benefit", BackingModelID: "model-a", SystemInstruction: "You are a transit economist."},
			{Name: "City Planner", Expertise: "zoning", Perspective: "land use", BackingModelID: "model-b", SystemInstruction: "You are a city planner."},
		},
		MaxTurns:  20,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testMessage(discussionID string, seq, turn int, kind models.AuthorKind) models.Message {
	return models.Message{
		ID:             fmt.Sprintf("%s-msg-%d", discussionID, seq),
		DiscussionID:   discussionID,
		Sequence:       seq,
		AuthorKind:     kind,
		AuthorName:     "Transit Economist",
		BackingModelID: "model-a",
		Body:           fmt.Sprintf("statement %d", seq),
		Turn:           turn,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestDiscussionService_SaveAndLoad(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	snap := testSnapshot("disc-roundtrip")
	require.NoError(t, service.SaveDiscussion(ctx, snap))
	require.NoError(t, service.SaveMessage(ctx, testMessage(snap.ID, 1, 0, models.AuthorKindSystem), nil))

	t.Run("round trip", func(t *testing.T) {
		loaded, err := service.LoadDiscussion(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, snap.Topic, loaded.Topic)
		assert.Equal(t, snap.UserTag, loaded.UserTag)
		assert.Equal(t, models.StatusActive, loaded.Status)
		assert.Equal(t, snap.MaxTurns, loaded.MaxTurns)
		assert.Nil(t, loaded.ConsensusConfidence)
		assert.Empty(t, loaded.FinalSummary)
		assert.Equal(t, 1, loaded.MessageCount)

		require.Len(t, loaded.Roles, 2)
		assert.Equal(t, "Transit Economist", loaded.Roles[0].Name)
		assert.Equal(t, "model-b", loaded.Roles[1].BackingModelID)
		assert.Equal(t, "You are a city planner.", loaded.Roles[1].SystemInstruction)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := service.SaveDiscussion(ctx, snap)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing discussion", func(t *testing.T) {
		_, err := service.LoadDiscussion(ctx, "no-such-discussion")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDiscussionService_UpdateDiscussion(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	snap := testSnapshot("disc-update")
	require.NoError(t, service.SaveDiscussion(ctx, snap))

	confidence := 0.92
	snap.Status = models.StatusCompleted
	snap.CurrentTurn = 6
	snap.ConsensusReached = true
	snap.ConsensusConfidence = &confidence
	snap.FinalSummary = "The panel agreed transit investment outperforms parking mandates."
	snap.UpdatedAt = time.Now().UTC()
	require.NoError(t, service.UpdateDiscussion(ctx, snap))

	loaded, err := service.LoadDiscussion(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, loaded.Status)
	assert.Equal(t, 6, loaded.CurrentTurn)
	assert.True(t, loaded.ConsensusReached)
	require.NotNil(t, loaded.ConsensusConfidence)
	assert.InDelta(t, 0.92, *loaded.ConsensusConfidence, 0.0001)
	assert.Equal(t, snap.FinalSummary, loaded.FinalSummary)

	missing := testSnapshot("disc-absent")
	assert.ErrorIs(t, service.UpdateDiscussion(ctx, missing), ErrNotFound)
}

func TestDiscussionService_Messages(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	snap := testSnapshot("disc-messages")
	require.NoError(t, service.SaveDiscussion(ctx, snap))

	require.NoError(t, service.SaveMessage(ctx, testMessage(snap.ID, 1, 0, models.AuthorKindSystem), nil))
	for seq := 2; seq <= 5; seq++ {
		require.NoError(t, service.SaveMessage(ctx, testMessage(snap.ID, seq, seq-1, models.AuthorKindAgent), nil))
	}
	interjection := testMessage(snap.ID, 6, 4, models.AuthorKindUser)
	interjection.AuthorName = models.AuthorNameUser
	interjection.BackingModelID = models.ModelIDUser
	require.NoError(t, service.SaveMessage(ctx, interjection, map[string]string{"user_tag": "urban-planning-team"}))

	t.Run("ordered page", func(t *testing.T) {
		page, err := service.LoadMessages(ctx, snap.ID, 50, 0)
		require.NoError(t, err)
		assert.Equal(t, 6, page.Count)
		for i, msg := range page.Messages {
			assert.Equal(t, i+1, msg.Sequence)
		}
		assert.Equal(t, models.AuthorKindSystem, page.Messages[0].AuthorKind)
		assert.Equal(t, models.AuthorKindUser, page.Messages[5].AuthorKind)
	})

	t.Run("limit and offset", func(t *testing.T) {
		page, err := service.LoadMessages(ctx, snap.ID, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Count)
		assert.Equal(t, 4, page.Messages[0].Sequence)
		assert.Equal(t, 5, page.Messages[1].Sequence)
		assert.Equal(t, 2, page.Limit)
		assert.Equal(t, 3, page.Offset)
	})

	t.Run("offset beyond end", func(t *testing.T) {
		page, err := service.LoadMessages(ctx, snap.ID, 10, 100)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Count)
		assert.Empty(t, page.Messages)
	})

	t.Run("extra lands in json column", func(t *testing.T) {
		row, err := client.Message.Query().
			Where(entmessage.ID(interjection.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "urban-planning-team", row.Extra["user_tag"])
	})

	t.Run("duplicate sequence", func(t *testing.T) {
		dup := testMessage(snap.ID, 3, 2, models.AuthorKindAgent)
		dup.ID = "different-id-same-seq"
		assert.ErrorIs(t, service.SaveMessage(ctx, dup, nil), ErrAlreadyExists)
	})

	t.Run("missing discussion", func(t *testing.T) {
		_, err := service.LoadMessages(ctx, "no-such-discussion", 50, 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDiscussionService_Performance(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	snap := testSnapshot("disc-perf")
	require.NoError(t, service.SaveDiscussion(ctx, snap))

	samples := []models.PerformanceSample{
		{DiscussionID: snap.ID, RoleName: "Transit Economist", BackingModelID: "model-a", Turn: 1, ResponseTimeMS: 1200, TokenCount: 300},
		{DiscussionID: snap.ID, RoleName: "City Planner", BackingModelID: "model-b", Turn: 2, ResponseTimeMS: 800, TokenCount: 250},
		{DiscussionID: snap.ID, RoleName: "Transit Economist", BackingModelID: "model-a", Turn: 3, ResponseTimeMS: 1800, TokenCount: 400},
	}
	for _, sample := range samples {
		require.NoError(t, service.SavePerformance(ctx, sample))
	}

	perf, err := service.Performance(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, perf, 2)

	byRole := make(map[string]models.RolePerformance, len(perf))
	for _, p := range perf {
		byRole[p.RoleName] = p
	}

	economist := byRole["Transit Economist"]
	assert.Equal(t, "model-a", economist.BackingModelID)
	assert.Equal(t, 2, economist.Utterances)
	assert.InDelta(t, 1500.0, economist.AvgResponseTimeMS, 0.0001)
	assert.Equal(t, 700, economist.TotalTokens)

	planner := byRole["City Planner"]
	assert.Equal(t, 1, planner.Utterances)
	assert.Equal(t, 250, planner.TotalTokens)

	t.Run("no samples yet", func(t *testing.T) {
		empty := testSnapshot("disc-perf-empty")
		require.NoError(t, service.SaveDiscussion(ctx, empty))
		perf, err := service.Performance(ctx, empty.ID)
		require.NoError(t, err)
		assert.Empty(t, perf)
	})

	t.Run("missing discussion", func(t *testing.T) {
		_, err := service.Performance(ctx, "no-such-discussion")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDiscussionService_DeleteDiscussion(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	snap := testSnapshot("disc-delete")
	require.NoError(t, service.SaveDiscussion(ctx, snap))
	require.NoError(t, service.SaveMessage(ctx, testMessage(snap.ID, 1, 0, models.AuthorKindSystem), nil))
	require.NoError(t, service.SavePerformance(ctx, models.PerformanceSample{
		DiscussionID: snap.ID, RoleName: "Transit Economist", BackingModelID: "model-a", Turn: 1, ResponseTimeMS: 100,
	}))

	require.NoError(t, service.DeleteDiscussion(ctx, snap.ID))

	_, err := service.LoadDiscussion(ctx, snap.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := client.Message.Query().Where(entmessage.DiscussionID(snap.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "messages must cascade with their discussion")

	// Deleting again is a no-op
	assert.NoError(t, service.DeleteDiscussion(ctx, snap.ID))
}

func TestDiscussionService_RecoverOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	for _, id := range []string{"orphan-1", "orphan-2"} {
		require.NoError(t, service.SaveDiscussion(ctx, testSnapshot(id)))
	}
	done := testSnapshot("finished")
	done.Status = models.StatusCompleted
	require.NoError(t, service.SaveDiscussion(ctx, done))

	n, err := service.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	failed, err := client.Discussion.Query().
		Where(discussion.StatusEQ(discussion.StatusFailed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	loaded, err := service.LoadDiscussion(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, loaded.Status, "terminal discussions stay untouched")

	n, err = service.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDiscussionService_DeleteOlderThan(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewDiscussionService(client)
	ctx := context.Background()

	old := testSnapshot("old-completed")
	old.Status = models.StatusCompleted
	old.CreatedAt = time.Now().Add(-72 * time.Hour)
	require.NoError(t, service.SaveDiscussion(ctx, old))

	oldActive := testSnapshot("old-active")
	oldActive.CreatedAt = time.Now().Add(-72 * time.Hour)
	require.NoError(t, service.SaveDiscussion(ctx, oldActive))

	recent := testSnapshot("recent-completed")
	recent.Status = models.StatusCompleted
	require.NoError(t, service.SaveDiscussion(ctx, recent))

	n, err := service.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.LoadDiscussion(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.LoadDiscussion(ctx, oldActive.ID)
	assert.NoError(t, err, "active discussions are never reaped")

	_, err = service.LoadDiscussion(ctx, recent.ID)
	assert.NoError(t, err)
}
