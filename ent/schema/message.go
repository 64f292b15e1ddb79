package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity: one
// transcript entry, append-only and totally ordered by sequence within
// its discussion.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("discussion_id").
			Immutable(),
		field.Int("sequence").
			Immutable(),
		field.Enum("author_kind").
			Values("agent", "user", "system"),
		field.String("author_name"),
		field.String("backing_model_id").
			Comment("Sentinel 'system'/'user' for non-agent messages"),
		field.Text("body"),
		field.Int("turn"),
		field.JSON("extra", map[string]string{}).
			Optional().
			Comment("user_tag for interjections"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("discussion", Discussion.Type).
			Ref("messages").
			Field("discussion_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("discussion_id", "sequence").
			Unique(),
	}
}
