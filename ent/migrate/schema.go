// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentPerformancesColumns holds the columns for the "agent_performances" table.
	AgentPerformancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role_name", Type: field.TypeString},
		{Name: "backing_model_id", Type: field.TypeString},
		{Name: "turn", Type: field.TypeInt},
		{Name: "response_time_ms", Type: field.TypeInt64},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "discussion_id", Type: field.TypeString},
	}
	// AgentPerformancesTable holds the schema information for the "agent_performances" table.
	AgentPerformancesTable = &schema.Table{
		Name:       "agent_performances",
		Columns:    AgentPerformancesColumns,
		PrimaryKey: []*schema.Column{AgentPerformancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_performances_discussions_performances",
				Columns:    []*schema.Column{AgentPerformancesColumns[7]},
				RefColumns: []*schema.Column{DiscussionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentperformance_discussion_id_role_name",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformancesColumns[7], AgentPerformancesColumns[1]},
			},
		},
	}
	// DiscussionsColumns holds the columns for the "discussions" table.
	DiscussionsColumns = []*schema.Column{
		{Name: "discussion_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString, Size: 2147483647},
		{Name: "user_tag", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "no_consensus", "stopped", "failed"}, Default: "active"},
		{Name: "current_turn", Type: field.TypeInt, Default: 0},
		{Name: "max_turns", Type: field.TypeInt},
		{Name: "consensus_reached", Type: field.TypeBool, Default: false},
		{Name: "consensus_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "final_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "roles", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DiscussionsTable holds the schema information for the "discussions" table.
	DiscussionsTable = &schema.Table{
		Name:       "discussions",
		Columns:    DiscussionsColumns,
		PrimaryKey: []*schema.Column{DiscussionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discussion_status",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[3]},
			},
			{
				Name:    "discussion_user_tag",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[2]},
			},
			{
				Name:    "discussion_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[3], DiscussionsColumns[10]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "author_kind", Type: field.TypeEnum, Enums: []string{"agent", "user", "system"}},
		{Name: "author_name", Type: field.TypeString},
		{Name: "backing_model_id", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "turn", Type: field.TypeInt},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "discussion_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_discussions_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{DiscussionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_discussion_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentPerformancesTable,
		DiscussionsTable,
		MessagesTable,
	}
)

func init() {
	AgentPerformancesTable.ForeignKeys[0].RefTable = DiscussionsTable
	MessagesTable.ForeignKeys[0].RefTable = DiscussionsTable
}
