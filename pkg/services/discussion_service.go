package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/parleyhq/parley/ent"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/pkg/models"
)

// DiscussionService persists discussions, transcripts, and performance
// samples. It backs the engine's write-through store and serves reads
// for discussions that are no longer resident in memory.
type DiscussionService struct {
	client *ent.Client
}

// NewDiscussionService creates a new discussion service
func NewDiscussionService(client *ent.Client) *DiscussionService {
	return &DiscussionService{client: client}
}

// SaveDiscussion inserts a newly created discussion row.
func (s *DiscussionService) SaveDiscussion(ctx context.Context, snap models.DiscussionSnapshot) error {
	roles, err := rolesToJSON(snap.Roles)
	if err != nil {
		return err
	}

	create := s.client.Discussion.Create().
		SetID(snap.ID).
		SetTopic(snap.Topic).
		SetUserTag(snap.UserTag).
		SetStatus(discussion.Status(snap.Status)).
		SetCurrentTurn(snap.CurrentTurn).
		SetMaxTurns(snap.MaxTurns).
		SetConsensusReached(snap.ConsensusReached).
		SetRoles(roles).
		SetCreatedAt(snap.CreatedAt).
		SetUpdatedAt(snap.UpdatedAt)
	if snap.ConsensusConfidence != nil {
		create = create.SetConsensusConfidence(*snap.ConsensusConfidence)
	}
	if snap.FinalSummary != "" {
		create = create.SetFinalSummary(snap.FinalSummary)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save discussion: %w", err)
	}
	return nil
}

// UpdateDiscussion writes the mutable fields of a discussion row:
// status, turn counter, consensus outcome, and final summary.
func (s *DiscussionService) UpdateDiscussion(ctx context.Context, snap models.DiscussionSnapshot) error {
	update := s.client.Discussion.UpdateOneID(snap.ID).
		SetStatus(discussion.Status(snap.Status)).
		SetCurrentTurn(snap.CurrentTurn).
		SetConsensusReached(snap.ConsensusReached).
		SetUpdatedAt(snap.UpdatedAt)
	if snap.ConsensusConfidence != nil {
		update = update.SetConsensusConfidence(*snap.ConsensusConfidence)
	}
	if snap.FinalSummary != "" {
		update = update.SetFinalSummary(snap.FinalSummary)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update discussion %s: %w", snap.ID, err)
	}
	return nil
}

// SaveMessage appends one transcript row. extra carries out-of-band
// attributes such as the user_tag on interjections; nil is omitted.
func (s *DiscussionService) SaveMessage(ctx context.Context, msg models.Message, extra map[string]string) error {
	create := s.client.Message.Create().
		SetID(msg.ID).
		SetDiscussionID(msg.DiscussionID).
		SetSequence(msg.Sequence).
		SetAuthorKind(message.AuthorKind(msg.AuthorKind)).
		SetAuthorName(msg.AuthorName).
		SetBackingModelID(msg.BackingModelID).
		SetBody(msg.Body).
		SetTurn(msg.Turn).
		SetCreatedAt(msg.CreatedAt)
	if len(extra) > 0 {
		create = create.SetExtra(extra)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save message %s: %w", msg.ID, err)
	}
	return nil
}

// SavePerformance records one agent utterance measurement.
func (s *DiscussionService) SavePerformance(ctx context.Context, sample models.PerformanceSample) error {
	err := s.client.AgentPerformance.Create().
		SetDiscussionID(sample.DiscussionID).
		SetRoleName(sample.RoleName).
		SetBackingModelID(sample.BackingModelID).
		SetTurn(sample.Turn).
		SetResponseTimeMs(sample.ResponseTimeMS).
		SetTokenCount(sample.TokenCount).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save performance sample: %w", err)
	}
	return nil
}

// DeleteDiscussion removes a discussion row; messages and performance
// samples follow via FK cascade. Deleting an absent row is a no-op.
func (s *DiscussionService) DeleteDiscussion(ctx context.Context, id string) error {
	if err := s.client.Discussion.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete discussion %s: %w", id, err)
	}
	return nil
}

// LoadDiscussion reads one discussion row into a snapshot, including
// its persisted message count.
func (s *DiscussionService) LoadDiscussion(ctx context.Context, id string) (*models.DiscussionSnapshot, error) {
	row, err := s.client.Discussion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load discussion %s: %w", id, err)
	}

	count, err := s.client.Message.Query().
		Where(message.DiscussionID(id)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages for discussion %s: %w", id, err)
	}

	roles, err := rolesFromJSON(row.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roles for discussion %s: %w", id, err)
	}

	snap := &models.DiscussionSnapshot{
		ID:                  row.ID,
		Topic:               row.Topic,
		UserTag:             row.UserTag,
		Status:              models.DiscussionStatus(row.Status),
		Roles:               roles,
		CurrentTurn:         row.CurrentTurn,
		MaxTurns:            row.MaxTurns,
		ConsensusReached:    row.ConsensusReached,
		ConsensusConfidence: row.ConsensusConfidence,
		MessageCount:        count,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	if row.FinalSummary != nil {
		snap.FinalSummary = *row.FinalSummary
	}
	return snap, nil
}

// LoadMessages reads one transcript page ordered ascending by sequence.
// Returns ErrNotFound when the discussion itself does not exist.
func (s *DiscussionService) LoadMessages(ctx context.Context, id string, limit, offset int) (*models.MessagePage, error) {
	exists, err := s.client.Discussion.Query().
		Where(discussion.ID(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check discussion %s: %w", id, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.client.Message.Query().
		Where(message.DiscussionID(id)).
		Order(ent.Asc(message.FieldSequence)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for discussion %s: %w", id, err)
	}

	msgs := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, models.Message{
			ID:             row.ID,
			DiscussionID:   row.DiscussionID,
			Sequence:       row.Sequence,
			AuthorKind:     models.AuthorKind(row.AuthorKind),
			AuthorName:     row.AuthorName,
			BackingModelID: row.BackingModelID,
			Body:           row.Body,
			Turn:           row.Turn,
			CreatedAt:      row.CreatedAt,
		})
	}

	return &models.MessagePage{
		Messages: msgs,
		Count:    len(msgs),
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// Performance aggregates recorded samples per panel role for one
// discussion: utterance count, mean response time, total tokens.
func (s *DiscussionService) Performance(ctx context.Context, id string) ([]models.RolePerformance, error) {
	exists, err := s.client.Discussion.Query().
		Where(discussion.ID(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check discussion %s: %w", id, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	var rows []struct {
		RoleName       string  `json:"role_name"`
		BackingModelID string  `json:"backing_model_id"`
		Utterances     int     `json:"utterances"`
		AvgResponseMS  float64 `json:"avg_response_ms"`
		TotalTokens    int     `json:"total_tokens"`
	}
	err = s.client.AgentPerformance.Query().
		Where(agentperformance.DiscussionID(id)).
		GroupBy(agentperformance.FieldRoleName, agentperformance.FieldBackingModelID).
		Aggregate(
			ent.As(ent.Count(), "utterances"),
			ent.As(ent.Mean(agentperformance.FieldResponseTimeMs), "avg_response_ms"),
			ent.As(ent.Sum(agentperformance.FieldTokenCount), "total_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate performance for discussion %s: %w", id, err)
	}

	out := make([]models.RolePerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.RolePerformance{
			RoleName:          row.RoleName,
			BackingModelID:    row.BackingModelID,
			Utterances:        row.Utterances,
			AvgResponseTimeMS: row.AvgResponseMS,
			TotalTokens:       row.TotalTokens,
		})
	}
	return out, nil
}

// RecoverOrphans marks discussions still 'active' in the database as
// failed. Called once during startup: an active row with no running
// loop means the process died mid-discussion, and loops never resume.
func (s *DiscussionService) RecoverOrphans(ctx context.Context) (int, error) {
	n, err := s.client.Discussion.Update().
		Where(discussion.StatusEQ(discussion.StatusActive)).
		SetStatus(discussion.StatusFailed).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned discussions: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered orphaned discussions from previous run", "count", n)
	}
	return n, nil
}

// DeleteOlderThan removes terminal discussions created before the
// cutoff. Active discussions are never reaped.
func (s *DiscussionService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Discussion.Delete().
		Where(
			discussion.StatusNEQ(discussion.StatusActive),
			discussion.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired discussions: %w", err)
	}
	return n, nil
}

// rolesToJSON converts the panel to the generic shape of the JSONB
// roles column.
func rolesToJSON(roles []models.Role) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(roles)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roles: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to encode roles: %w", err)
	}
	return out, nil
}

func rolesFromJSON(raw []map[string]interface{}) ([]models.Role, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var roles []models.Role
	if err := json.Unmarshal(buf, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
