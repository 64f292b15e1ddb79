// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentperformanceFields := schema.AgentPerformance{}.Fields()
	_ = agentperformanceFields
	// agentperformanceDescTokenCount is the schema descriptor for token_count field.
	agentperformanceDescTokenCount := agentperformanceFields[5].Descriptor()
	// agentperformance.DefaultTokenCount holds the default value on creation for the token_count field.
	agentperformance.DefaultTokenCount = agentperformanceDescTokenCount.Default.(int)
	// agentperformanceDescCreatedAt is the schema descriptor for created_at field.
	agentperformanceDescCreatedAt := agentperformanceFields[6].Descriptor()
	// agentperformance.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentperformance.DefaultCreatedAt = agentperformanceDescCreatedAt.Default.(func() time.Time)
	discussionFields := schema.Discussion{}.Fields()
	_ = discussionFields
	// discussionDescCurrentTurn is the schema descriptor for current_turn field.
	discussionDescCurrentTurn := discussionFields[4].Descriptor()
	// discussion.DefaultCurrentTurn holds the default value on creation for the current_turn field.
	discussion.DefaultCurrentTurn = discussionDescCurrentTurn.Default.(int)
	// discussionDescConsensusReached is the schema descriptor for consensus_reached field.
	discussionDescConsensusReached := discussionFields[6].Descriptor()
	// discussion.DefaultConsensusReached holds the default value on creation for the consensus_reached field.
	discussion.DefaultConsensusReached = discussionDescConsensusReached.Default.(bool)
	// discussionDescCreatedAt is the schema descriptor for created_at field.
	discussionDescCreatedAt := discussionFields[10].Descriptor()
	// discussion.DefaultCreatedAt holds the default value on creation for the created_at field.
	discussion.DefaultCreatedAt = discussionDescCreatedAt.Default.(func() time.Time)
	// discussionDescUpdatedAt is the schema descriptor for updated_at field.
	discussionDescUpdatedAt := discussionFields[11].Descriptor()
	// discussion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	discussion.DefaultUpdatedAt = discussionDescUpdatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
}
