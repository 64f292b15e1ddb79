package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPerformance holds the schema definition for the AgentPerformance
// entity: one latency/token sample per panel utterance. Meta-model calls
// are not sampled.
type AgentPerformance struct {
	ent.Schema
}

// Fields of the AgentPerformance.
func (AgentPerformance) Fields() []ent.Field {
	return []ent.Field{
		field.String("discussion_id").
			Immutable(),
		field.String("role_name"),
		field.String("backing_model_id"),
		field.Int("turn"),
		field.Int64("response_time_ms"),
		field.Int("token_count").
			Default(0).
			Comment("0 when the gateway omits usage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentPerformance.
func (AgentPerformance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("discussion", Discussion.Type).
			Ref("performances").
			Field("discussion_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentPerformance.
func (AgentPerformance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("discussion_id", "role_name"),
	}
}
