package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Discussion holds the schema definition for the Discussion entity: one
// multi-agent session with its panel serialized as JSON.
type Discussion struct {
	ent.Schema
}

// Fields of the Discussion.
func (Discussion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("discussion_id").
			Unique().
			Immutable(),
		field.Text("topic"),
		field.String("user_tag").
			Comment("Opaque creator identifier; not an auth principal"),
		field.Enum("status").
			Values("active", "completed", "no_consensus", "stopped", "failed").
			Default("active"),
		field.Int("current_turn").
			Default(0).
			Comment("Turn of the last agent message"),
		field.Int("max_turns"),
		field.Bool("consensus_reached").
			Default(false),
		field.Float("consensus_confidence").
			Optional().
			Nillable(),
		field.Text("final_summary").
			Optional().
			Nillable(),
		field.JSON("roles", []map[string]interface{}{}).
			Comment("Panel snapshot, fixed at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Discussion.
func (Discussion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("performances", AgentPerformance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Discussion.
func (Discussion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_tag"),
		index.Fields("status", "created_at"),
	}
}
