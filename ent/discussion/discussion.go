// Code generated by ent, DO NOT EDIT.

package discussion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the discussion type in the database.
	Label = "discussion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "discussion_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldUserTag holds the string denoting the user_tag field in the database.
	FieldUserTag = "user_tag"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentTurn holds the string denoting the current_turn field in the database.
	FieldCurrentTurn = "current_turn"
	// FieldMaxTurns holds the string denoting the max_turns field in the database.
	FieldMaxTurns = "max_turns"
	// FieldConsensusReached holds the string denoting the consensus_reached field in the database.
	FieldConsensusReached = "consensus_reached"
	// FieldConsensusConfidence holds the string denoting the consensus_confidence field in the database.
	FieldConsensusConfidence = "consensus_confidence"
	// FieldFinalSummary holds the string denoting the final_summary field in the database.
	FieldFinalSummary = "final_summary"
	// FieldRoles holds the string denoting the roles field in the database.
	FieldRoles = "roles"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgePerformances holds the string denoting the performances edge name in mutations.
	EdgePerformances = "performances"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// AgentPerformanceFieldID holds the string denoting the ID field of the AgentPerformance.
	AgentPerformanceFieldID = "id"
	// Table holds the table name of the discussion in the database.
	Table = "discussions"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "discussion_id"
	// PerformancesTable is the table that holds the performances relation/edge.
	PerformancesTable = "agent_performances"
	// PerformancesInverseTable is the table name for the AgentPerformance entity.
	// It exists in this package in order to avoid circular dependency with the "agentperformance" package.
	PerformancesInverseTable = "agent_performances"
	// PerformancesColumn is the table column denoting the performances relation/edge.
	PerformancesColumn = "discussion_id"
)

// Columns holds all SQL columns for discussion fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldUserTag,
	FieldStatus,
	FieldCurrentTurn,
	FieldMaxTurns,
	FieldConsensusReached,
	FieldConsensusConfidence,
	FieldFinalSummary,
	FieldRoles,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCurrentTurn holds the default value on creation for the "current_turn" field.
	DefaultCurrentTurn int
	// DefaultConsensusReached holds the default value on creation for the "consensus_reached" field.
	DefaultConsensusReached bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive      Status = "active"
	StatusCompleted   Status = "completed"
	StatusNoConsensus Status = "no_consensus"
	StatusStopped     Status = "stopped"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusNoConsensus, StatusStopped, StatusFailed:
		return nil
	default:
		return fmt.Errorf("discussion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Discussion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByUserTag orders the results by the user_tag field.
func ByUserTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserTag, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentTurn orders the results by the current_turn field.
func ByCurrentTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTurn, opts...).ToFunc()
}

// ByMaxTurns orders the results by the max_turns field.
func ByMaxTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTurns, opts...).ToFunc()
}

// ByConsensusReached orders the results by the consensus_reached field.
func ByConsensusReached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusReached, opts...).ToFunc()
}

// ByConsensusConfidence orders the results by the consensus_confidence field.
func ByConsensusConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusConfidence, opts...).ToFunc()
}

// ByFinalSummary orders the results by the final_summary field.
func ByFinalSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPerformancesCount orders the results by performances count.
func ByPerformancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPerformancesStep(), opts...)
	}
}

// ByPerformances orders the results by performances terms.
func ByPerformances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPerformancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newPerformancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PerformancesInverseTable, AgentPerformanceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PerformancesTable, PerformancesColumn),
	)
}
