// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parleyhq/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldID, id))
}

// DiscussionID applies equality check predicate on the "discussion_id" field. It's identical to DiscussionIDEQ.
func DiscussionID(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldDiscussionID, v))
}

// RoleName applies equality check predicate on the "role_name" field. It's identical to RoleNameEQ.
func RoleName(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldRoleName, v))
}

// BackingModelID applies equality check predicate on the "backing_model_id" field. It's identical to BackingModelIDEQ.
func BackingModelID(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldBackingModelID, v))
}

// Turn applies equality check predicate on the "turn" field. It's identical to TurnEQ.
func Turn(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTurn, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldResponseTimeMs, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldCreatedAt, v))
}

// DiscussionIDEQ applies the EQ predicate on the "discussion_id" field.
func DiscussionIDEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldDiscussionID, v))
}

// DiscussionIDNEQ applies the NEQ predicate on the "discussion_id" field.
func DiscussionIDNEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldDiscussionID, v))
}

// DiscussionIDIn applies the In predicate on the "discussion_id" field.
func DiscussionIDIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldDiscussionID, vs...))
}

// DiscussionIDNotIn applies the NotIn predicate on the "discussion_id" field.
func DiscussionIDNotIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldDiscussionID, vs...))
}

// DiscussionIDGT applies the GT predicate on the "discussion_id" field.
func DiscussionIDGT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldDiscussionID, v))
}

// DiscussionIDGTE applies the GTE predicate on the "discussion_id" field.
func DiscussionIDGTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldDiscussionID, v))
}

// DiscussionIDLT applies the LT predicate on the "discussion_id" field.
func DiscussionIDLT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldDiscussionID, v))
}

// DiscussionIDLTE applies the LTE predicate on the "discussion_id" field.
func DiscussionIDLTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldDiscussionID, v))
}

// DiscussionIDContains applies the Contains predicate on the "discussion_id" field.
func DiscussionIDContains(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContains(FieldDiscussionID, v))
}

// DiscussionIDHasPrefix applies the HasPrefix predicate on the "discussion_id" field.
func DiscussionIDHasPrefix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasPrefix(FieldDiscussionID, v))
}

// DiscussionIDHasSuffix applies the HasSuffix predicate on the "discussion_id" field.
func DiscussionIDHasSuffix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasSuffix(FieldDiscussionID, v))
}

// DiscussionIDEqualFold applies the EqualFold predicate on the "discussion_id" field.
func DiscussionIDEqualFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldDiscussionID, v))
}

// DiscussionIDContainsFold applies the ContainsFold predicate on the "discussion_id" field.
func DiscussionIDContainsFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldDiscussionID, v))
}

// RoleNameEQ applies the EQ predicate on the "role_name" field.
func RoleNameEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldRoleName, v))
}

// RoleNameNEQ applies the NEQ predicate on the "role_name" field.
func RoleNameNEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldRoleName, v))
}

// RoleNameIn applies the In predicate on the "role_name" field.
func RoleNameIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldRoleName, vs...))
}

// RoleNameNotIn applies the NotIn predicate on the "role_name" field.
func RoleNameNotIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldRoleName, vs...))
}

// RoleNameGT applies the GT predicate on the "role_name" field.
func RoleNameGT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldRoleName, v))
}

// RoleNameGTE applies the GTE predicate on the "role_name" field.
func RoleNameGTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldRoleName, v))
}

// RoleNameLT applies the LT predicate on the "role_name" field.
func RoleNameLT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldRoleName, v))
}

// RoleNameLTE applies the LTE predicate on the "role_name" field.
func RoleNameLTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldRoleName, v))
}

// RoleNameContains applies the Contains predicate on the "role_name" field.
func RoleNameContains(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContains(FieldRoleName, v))
}

// RoleNameHasPrefix applies the HasPrefix predicate on the "role_name" field.
func RoleNameHasPrefix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasPrefix(FieldRoleName, v))
}

// RoleNameHasSuffix applies the HasSuffix predicate on the "role_name" field.
func RoleNameHasSuffix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasSuffix(FieldRoleName, v))
}

// RoleNameEqualFold applies the EqualFold predicate on the "role_name" field.
func RoleNameEqualFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldRoleName, v))
}

// RoleNameContainsFold applies the ContainsFold predicate on the "role_name" field.
func RoleNameContainsFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldRoleName, v))
}

// BackingModelIDEQ applies the EQ predicate on the "backing_model_id" field.
func BackingModelIDEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldBackingModelID, v))
}

// BackingModelIDNEQ applies the NEQ predicate on the "backing_model_id" field.
func BackingModelIDNEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldBackingModelID, v))
}

// BackingModelIDIn applies the In predicate on the "backing_model_id" field.
func BackingModelIDIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldBackingModelID, vs...))
}

// BackingModelIDNotIn applies the NotIn predicate on the "backing_model_id" field.
func BackingModelIDNotIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldBackingModelID, vs...))
}

// BackingModelIDGT applies the GT predicate on the "backing_model_id" field.
func BackingModelIDGT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldBackingModelID, v))
}

// BackingModelIDGTE applies the GTE predicate on the "backing_model_id" field.
func BackingModelIDGTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldBackingModelID, v))
}

// BackingModelIDLT applies the LT predicate on the "backing_model_id" field.
func BackingModelIDLT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldBackingModelID, v))
}

// BackingModelIDLTE applies the LTE predicate on the "backing_model_id" field.
func BackingModelIDLTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldBackingModelID, v))
}

// BackingModelIDContains applies the Contains predicate on the "backing_model_id" field.
func BackingModelIDContains(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContains(FieldBackingModelID, v))
}

// BackingModelIDHasPrefix applies the HasPrefix predicate on the "backing_model_id" field.
func BackingModelIDHasPrefix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasPrefix(FieldBackingModelID, v))
}

// BackingModelIDHasSuffix applies the HasSuffix predicate on the "backing_model_id" field.
func BackingModelIDHasSuffix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasSuffix(FieldBackingModelID, v))
}

// BackingModelIDEqualFold applies the EqualFold predicate on the "backing_model_id" field.
func BackingModelIDEqualFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldBackingModelID, v))
}

// BackingModelIDContainsFold applies the ContainsFold predicate on the "backing_model_id" field.
func BackingModelIDContainsFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldBackingModelID, v))
}

// TurnEQ applies the EQ predicate on the "turn" field.
func TurnEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTurn, v))
}

// TurnNEQ applies the NEQ predicate on the "turn" field.
func TurnNEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldTurn, v))
}

// TurnIn applies the In predicate on the "turn" field.
func TurnIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldTurn, vs...))
}

// TurnNotIn applies the NotIn predicate on the "turn" field.
func TurnNotIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldTurn, vs...))
}

// TurnGT applies the GT predicate on the "turn" field.
func TurnGT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldTurn, v))
}

// TurnGTE applies the GTE predicate on the "turn" field.
func TurnGTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldTurn, v))
}

// TurnLT applies the LT predicate on the "turn" field.
func TurnLT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldTurn, v))
}

// TurnLTE applies the LTE predicate on the "turn" field.
func TurnLTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldTurn, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldResponseTimeMs, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldTokenCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDiscussion applies the HasEdge predicate on the "discussion" edge.
func HasDiscussion() predicate.AgentPerformance {
	return predicate.AgentPerformance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DiscussionTable, DiscussionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDiscussionWith applies the HasEdge predicate on the "discussion" edge with a given conditions (other predicates).
func HasDiscussionWith(preds ...predicate.Discussion) predicate.AgentPerformance {
	return predicate.AgentPerformance(func(s *sql.Selector) {
		step := newDiscussionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.NotPredicates(p))
}
