// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentperformance type in the database.
	Label = "agent_performance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDiscussionID holds the string denoting the discussion_id field in the database.
	FieldDiscussionID = "discussion_id"
	// FieldRoleName holds the string denoting the role_name field in the database.
	FieldRoleName = "role_name"
	// FieldBackingModelID holds the string denoting the backing_model_id field in the database.
	FieldBackingModelID = "backing_model_id"
	// FieldTurn holds the string denoting the turn field in the database.
	FieldTurn = "turn"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDiscussion holds the string denoting the discussion edge name in mutations.
	EdgeDiscussion = "discussion"
	// DiscussionFieldID holds the string denoting the ID field of the Discussion.
	DiscussionFieldID = "discussion_id"
	// Table holds the table name of the agentperformance in the database.
	Table = "agent_performances"
	// DiscussionTable is the table that holds the discussion relation/edge.
	DiscussionTable = "agent_performances"
	// DiscussionInverseTable is the table name for the Discussion entity.
	// It exists in this package in order to avoid circular dependency with the "discussion" package.
	DiscussionInverseTable = "discussions"
	// DiscussionColumn is the table column denoting the discussion relation/edge.
	DiscussionColumn = "discussion_id"
)

// Columns holds all SQL columns for agentperformance fields.
var Columns = []string{
	FieldID,
	FieldDiscussionID,
	FieldRoleName,
	FieldBackingModelID,
	FieldTurn,
	FieldResponseTimeMs,
	FieldTokenCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentPerformance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDiscussionID orders the results by the discussion_id field.
func ByDiscussionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscussionID, opts...).ToFunc()
}

// ByRoleName orders the results by the role_name field.
func ByRoleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleName, opts...).ToFunc()
}

// ByBackingModelID orders the results by the backing_model_id field.
func ByBackingModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackingModelID, opts...).ToFunc()
}

// ByTurn orders the results by the turn field.
func ByTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurn, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDiscussionField orders the results by discussion field.
func ByDiscussionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiscussionStep(), sql.OrderByField(field, opts...))
	}
}
func newDiscussionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiscussionInverseTable, DiscussionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DiscussionTable, DiscussionColumn),
	)
}
