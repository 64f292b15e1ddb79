// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parleyhq/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// DiscussionID applies equality check predicate on the "discussion_id" field. It's identical to DiscussionIDEQ.
func DiscussionID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDiscussionID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSequence, v))
}

// AuthorName applies equality check predicate on the "author_name" field. It's identical to AuthorNameEQ.
func AuthorName(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAuthorName, v))
}

// BackingModelID applies equality check predicate on the "backing_model_id" field. It's identical to BackingModelIDEQ.
func BackingModelID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBackingModelID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// Turn applies equality check predicate on the "turn" field. It's identical to TurnEQ.
func Turn(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTurn, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// DiscussionIDEQ applies the EQ predicate on the "discussion_id" field.
func DiscussionIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDiscussionID, v))
}

// DiscussionIDNEQ applies the NEQ predicate on the "discussion_id" field.
func DiscussionIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDiscussionID, v))
}

// DiscussionIDIn applies the In predicate on the "discussion_id" field.
func DiscussionIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDiscussionID, vs...))
}

// DiscussionIDNotIn applies the NotIn predicate on the "discussion_id" field.
func DiscussionIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDiscussionID, vs...))
}

// DiscussionIDGT applies the GT predicate on the "discussion_id" field.
func DiscussionIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDiscussionID, v))
}

// DiscussionIDGTE applies the GTE predicate on the "discussion_id" field.
func DiscussionIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDiscussionID, v))
}

// DiscussionIDLT applies the LT predicate on the "discussion_id" field.
func DiscussionIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDiscussionID, v))
}

// DiscussionIDLTE applies the LTE predicate on the "discussion_id" field.
func DiscussionIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDiscussionID, v))
}

// DiscussionIDContains applies the Contains predicate on the "discussion_id" field.
func DiscussionIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDiscussionID, v))
}

// DiscussionIDHasPrefix applies the HasPrefix predicate on the "discussion_id" field.
func DiscussionIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDiscussionID, v))
}

// DiscussionIDHasSuffix applies the HasSuffix predicate on the "discussion_id" field.
func DiscussionIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDiscussionID, v))
}

// DiscussionIDEqualFold applies the EqualFold predicate on the "discussion_id" field.
func DiscussionIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDiscussionID, v))
}

// DiscussionIDContainsFold applies the ContainsFold predicate on the "discussion_id" field.
func DiscussionIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDiscussionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSequence, v))
}

// AuthorKindEQ applies the EQ predicate on the "author_kind" field.
func AuthorKindEQ(v AuthorKind) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAuthorKind, v))
}

// AuthorKindNEQ applies the NEQ predicate on the "author_kind" field.
func AuthorKindNEQ(v AuthorKind) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldAuthorKind, v))
}

// AuthorKindIn applies the In predicate on the "author_kind" field.
func AuthorKindIn(vs ...AuthorKind) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldAuthorKind, vs...))
}

// AuthorKindNotIn applies the NotIn predicate on the "author_kind" field.
func AuthorKindNotIn(vs ...AuthorKind) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldAuthorKind, vs...))
}

// AuthorNameEQ applies the EQ predicate on the "author_name" field.
func AuthorNameEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorNameNEQ applies the NEQ predicate on the "author_name" field.
func AuthorNameNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldAuthorName, v))
}

// AuthorNameIn applies the In predicate on the "author_name" field.
func AuthorNameIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldAuthorName, vs...))
}

// AuthorNameNotIn applies the NotIn predicate on the "author_name" field.
func AuthorNameNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldAuthorName, vs...))
}

// AuthorNameGT applies the GT predicate on the "author_name" field.
func AuthorNameGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldAuthorName, v))
}

// AuthorNameGTE applies the GTE predicate on the "author_name" field.
func AuthorNameGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldAuthorName, v))
}

// AuthorNameLT applies the LT predicate on the "author_name" field.
func AuthorNameLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldAuthorName, v))
}

// AuthorNameLTE applies the LTE predicate on the "author_name" field.
func AuthorNameLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldAuthorName, v))
}

// AuthorNameContains applies the Contains predicate on the "author_name" field.
func AuthorNameContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldAuthorName, v))
}

// AuthorNameHasPrefix applies the HasPrefix predicate on the "author_name" field.
func AuthorNameHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldAuthorName, v))
}

// AuthorNameHasSuffix applies the HasSuffix predicate on the "author_name" field.
func AuthorNameHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldAuthorName, v))
}

// AuthorNameEqualFold applies the EqualFold predicate on the "author_name" field.
func AuthorNameEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldAuthorName, v))
}

// AuthorNameContainsFold applies the ContainsFold predicate on the "author_name" field.
func AuthorNameContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldAuthorName, v))
}

// BackingModelIDEQ applies the EQ predicate on the "backing_model_id" field.
func BackingModelIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBackingModelID, v))
}

// BackingModelIDNEQ applies the NEQ predicate on the "backing_model_id" field.
func BackingModelIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldBackingModelID, v))
}

// BackingModelIDIn applies the In predicate on the "backing_model_id" field.
func BackingModelIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldBackingModelID, vs...))
}

// BackingModelIDNotIn applies the NotIn predicate on the "backing_model_id" field.
func BackingModelIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldBackingModelID, vs...))
}

// BackingModelIDGT applies the GT predicate on the "backing_model_id" field.
func BackingModelIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldBackingModelID, v))
}

// BackingModelIDGTE applies the GTE predicate on the "backing_model_id" field.
func BackingModelIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldBackingModelID, v))
}

// BackingModelIDLT applies the LT predicate on the "backing_model_id" field.
func BackingModelIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldBackingModelID, v))
}

// BackingModelIDLTE applies the LTE predicate on the "backing_model_id" field.
func BackingModelIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldBackingModelID, v))
}

// BackingModelIDContains applies the Contains predicate on the "backing_model_id" field.
func BackingModelIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldBackingModelID, v))
}

// BackingModelIDHasPrefix applies the HasPrefix predicate on the "backing_model_id" field.
func BackingModelIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldBackingModelID, v))
}

// BackingModelIDHasSuffix applies the HasSuffix predicate on the "backing_model_id" field.
func BackingModelIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldBackingModelID, v))
}

// BackingModelIDEqualFold applies the EqualFold predicate on the "backing_model_id" field.
func BackingModelIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldBackingModelID, v))
}

// BackingModelIDContainsFold applies the ContainsFold predicate on the "backing_model_id" field.
func BackingModelIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldBackingModelID, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldBody, v))
}

// TurnEQ applies the EQ predicate on the "turn" field.
func TurnEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTurn, v))
}

// TurnNEQ applies the NEQ predicate on the "turn" field.
func TurnNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTurn, v))
}

// TurnIn applies the In predicate on the "turn" field.
func TurnIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTurn, vs...))
}

// TurnNotIn applies the NotIn predicate on the "turn" field.
func TurnNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTurn, vs...))
}

// TurnGT applies the GT predicate on the "turn" field.
func TurnGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTurn, v))
}

// TurnGTE applies the GTE predicate on the "turn" field.
func TurnGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTurn, v))
}

// TurnLT applies the LT predicate on the "turn" field.
func TurnLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTurn, v))
}

// TurnLTE applies the LTE predicate on the "turn" field.
func TurnLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTurn, v))
}

// ExtraIsNil applies the IsNil predicate on the "extra" field.
func ExtraIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldExtra))
}

// ExtraNotNil applies the NotNil predicate on the "extra" field.
func ExtraNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldExtra))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDiscussion applies the HasEdge predicate on the "discussion" edge.
func HasDiscussion() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DiscussionTable, DiscussionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDiscussionWith applies the HasEdge predicate on the "discussion" edge with a given conditions (other predicates).
func HasDiscussionWith(preds ...predicate.Discussion) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newDiscussionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
