package orchestrator

import (
	"context"

	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
)

// Store is the write-through persistence boundary. The engine never
// fails a session over a store error; implementations log and return,
// and the registry remains the source of truth for live discussions.
// Implemented by services.DiscussionService; NopStore runs the engine
// registry-only.
type Store interface {
	// SaveDiscussion persists a newly created discussion.
	SaveDiscussion(ctx context.Context, snap models.DiscussionSnapshot) error
	// UpdateDiscussion persists a status/consensus/turn transition.
	UpdateDiscussion(ctx context.Context, snap models.DiscussionSnapshot) error
	// SaveMessage persists one appended message. extra lands in the
	// message row's JSON column (user_tag for interjections); nil for
	// agent and system messages.
	SaveMessage(ctx context.Context, msg models.Message, extra map[string]string) error
	// SavePerformance records one agent utterance measurement.
	SavePerformance(ctx context.Context, sample models.PerformanceSample) error
	// DeleteDiscussion removes a discussion and its messages. Deleting
	// an absent discussion is not an error.
	DeleteDiscussion(ctx context.Context, id string) error

	// LoadDiscussion reads a discussion no longer resident in the
	// registry. Returns services.ErrNotFound when absent.
	LoadDiscussion(ctx context.Context, id string) (*models.DiscussionSnapshot, error)
	// LoadMessages reads one transcript page ordered by sequence.
	LoadMessages(ctx context.Context, id string, limit, offset int) (*models.MessagePage, error)
}

// NopStore is the registry-only store used when the database is
// disabled. Writes succeed without effect; reads find nothing.
type NopStore struct{}

func (NopStore) SaveDiscussion(context.Context, models.DiscussionSnapshot) error   { return nil }
func (NopStore) UpdateDiscussion(context.Context, models.DiscussionSnapshot) error { return nil }
func (NopStore) SaveMessage(context.Context, models.Message, map[string]string) error {
	return nil
}
func (NopStore) SavePerformance(context.Context, models.PerformanceSample) error   { return nil }
func (NopStore) DeleteDiscussion(context.Context, string) error                    { return nil }

func (NopStore) LoadDiscussion(context.Context, string) (*models.DiscussionSnapshot, error) {
	return nil, services.ErrNotFound
}

func (NopStore) LoadMessages(context.Context, string, int, int) (*models.MessagePage, error) {
	return nil, services.ErrNotFound
}
