// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldDiscussionID holds the string denoting the discussion_id field in the database.
	FieldDiscussionID = "discussion_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldAuthorKind holds the string denoting the author_kind field in the database.
	FieldAuthorKind = "author_kind"
	// FieldAuthorName holds the string denoting the author_name field in the database.
	FieldAuthorName = "author_name"
	// FieldBackingModelID holds the string denoting the backing_model_id field in the database.
	FieldBackingModelID = "backing_model_id"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldTurn holds the string denoting the turn field in the database.
	FieldTurn = "turn"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDiscussion holds the string denoting the discussion edge name in mutations.
	EdgeDiscussion = "discussion"
	// DiscussionFieldID holds the string denoting the ID field of the Discussion.
	DiscussionFieldID = "discussion_id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// DiscussionTable is the table that holds the discussion relation/edge.
	DiscussionTable = "messages"
	// DiscussionInverseTable is the table name for the Discussion entity.
	// It exists in this package in order to avoid circular dependency with the "discussion" package.
	DiscussionInverseTable = "discussions"
	// DiscussionColumn is the table column denoting the discussion relation/edge.
	DiscussionColumn = "discussion_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldDiscussionID,
	FieldSequence,
	FieldAuthorKind,
	FieldAuthorName,
	FieldBackingModelID,
	FieldBody,
	FieldTurn,
	FieldExtra,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AuthorKind defines the type for the "author_kind" enum field.
type AuthorKind string

// AuthorKind values.
const (
	AuthorKindAgent  AuthorKind = "agent"
	AuthorKindUser   AuthorKind = "user"
	AuthorKindSystem AuthorKind = "system"
)

func (ak AuthorKind) String() string {
	return string(ak)
}

// AuthorKindValidator is a validator for the "author_kind" field enum values. It is called by the builders before save.
func AuthorKindValidator(ak AuthorKind) error {
	switch ak {
	case AuthorKindAgent, AuthorKindUser, AuthorKindSystem:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for author_kind field: %q", ak)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDiscussionID orders the results by the discussion_id field.
func ByDiscussionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscussionID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByAuthorKind orders the results by the author_kind field.
func ByAuthorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorKind, opts...).ToFunc()
}

// ByAuthorName orders the results by the author_name field.
func ByAuthorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorName, opts...).ToFunc()
}

// ByBackingModelID orders the results by the backing_model_id field.
func ByBackingModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackingModelID, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByTurn orders the results by the turn field.
func ByTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurn, opts...).ToFunc()
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
