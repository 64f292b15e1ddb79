// Code generated by ent, DO NOT EDIT.

package discussion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parleyhq/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTopic, v))
}

// UserTag applies equality check predicate on the "user_tag" field. It's identical to UserTagEQ.
func UserTag(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUserTag, v))
}

// CurrentTurn applies equality check predicate on the "current_turn" field. It's identical to CurrentTurnEQ.
func CurrentTurn(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCurrentTurn, v))
}

// MaxTurns applies equality check predicate on the "max_turns" field. It's identical to MaxTurnsEQ.
func MaxTurns(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldMaxTurns, v))
}

// ConsensusReached applies equality check predicate on the "consensus_reached" field. It's identical to ConsensusReachedEQ.
func ConsensusReached(v bool) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldConsensusReached, v))
}

// ConsensusConfidence applies equality check predicate on the "consensus_confidence" field. It's identical to ConsensusConfidenceEQ.
func ConsensusConfidence(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldConsensusConfidence, v))
}

// FinalSummary applies equality check predicate on the "final_summary" field. It's identical to FinalSummaryEQ.
func FinalSummary(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldFinalSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldTopic, v))
}

// UserTagEQ applies the EQ predicate on the "user_tag" field.
func UserTagEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUserTag, v))
}

// UserTagNEQ applies the NEQ predicate on the "user_tag" field.
func UserTagNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUserTag, v))
}

// UserTagIn applies the In predicate on the "user_tag" field.
func UserTagIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUserTag, vs...))
}

// UserTagNotIn applies the NotIn predicate on the "user_tag" field.
func UserTagNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUserTag, vs...))
}

// UserTagGT applies the GT predicate on the "user_tag" field.
func UserTagGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUserTag, v))
}

// UserTagGTE applies the GTE predicate on the "user_tag" field.
func UserTagGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUserTag, v))
}

// UserTagLT applies the LT predicate on the "user_tag" field.
func UserTagLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUserTag, v))
}

// UserTagLTE applies the LTE predicate on the "user_tag" field.
func UserTagLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUserTag, v))
}

// UserTagContains applies the Contains predicate on the "user_tag" field.
func UserTagContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldUserTag, v))
}

// UserTagHasPrefix applies the HasPrefix predicate on the "user_tag" field.
func UserTagHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldUserTag, v))
}

// UserTagHasSuffix applies the HasSuffix predicate on the "user_tag" field.
func UserTagHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldUserTag, v))
}

// UserTagEqualFold applies the EqualFold predicate on the "user_tag" field.
func UserTagEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldUserTag, v))
}

// UserTagContainsFold applies the ContainsFold predicate on the "user_tag" field.
func UserTagContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldUserTag, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentTurnEQ applies the EQ predicate on the "current_turn" field.
func CurrentTurnEQ(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCurrentTurn, v))
}

// CurrentTurnNEQ applies the NEQ predicate on the "current_turn" field.
func CurrentTurnNEQ(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldCurrentTurn, v))
}

// CurrentTurnIn applies the In predicate on the "current_turn" field.
func CurrentTurnIn(vs ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldCurrentTurn, vs...))
}

// CurrentTurnNotIn applies the NotIn predicate on the "current_turn" field.
func CurrentTurnNotIn(vs ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldCurrentTurn, vs...))
}

// CurrentTurnGT applies the GT predicate on the "current_turn" field.
func CurrentTurnGT(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldCurrentTurn, v))
}

// CurrentTurnGTE applies the GTE predicate on the "current_turn" field.
func CurrentTurnGTE(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldCurrentTurn, v))
}

// CurrentTurnLT applies the LT predicate on the "current_turn" field.
func CurrentTurnLT(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldCurrentTurn, v))
}

// CurrentTurnLTE applies the LTE predicate on the "current_turn" field.
func CurrentTurnLTE(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldCurrentTurn, v))
}

// MaxTurnsEQ applies the EQ predicate on the "max_turns" field.
func MaxTurnsEQ(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldMaxTurns, v))
}

// MaxTurnsNEQ applies the NEQ predicate on the "max_turns" field.
func MaxTurnsNEQ(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldMaxTurns, v))
}

// MaxTurnsIn applies the In predicate on the "max_turns" field.
func MaxTurnsIn(vs ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldMaxTurns, vs...))
}

// MaxTurnsNotIn applies the NotIn predicate on the "max_turns" field.
func MaxTurnsNotIn(vs ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldMaxTurns, vs...))
}

// MaxTurnsGT applies the GT predicate on the "max_turns" field.
func MaxTurnsGT(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldMaxTurns, v))
}

// MaxTurnsGTE applies the GTE predicate on the "max_turns" field.
func MaxTurnsGTE(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldMaxTurns, v))
}

// MaxTurnsLT applies the LT predicate on the "max_turns" field.
func MaxTurnsLT(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldMaxTurns, v))
}

// MaxTurnsLTE applies the LTE predicate on the "max_turns" field.
func MaxTurnsLTE(v int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldMaxTurns, v))
}

// ConsensusReachedEQ applies the EQ predicate on the "consensus_reached" field.
func ConsensusReachedEQ(v bool) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldConsensusReached, v))
}

// ConsensusReachedNEQ applies the NEQ predicate on the "consensus_reached" field.
func ConsensusReachedNEQ(v bool) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldConsensusReached, v))
}

// ConsensusConfidenceEQ applies the EQ predicate on the "consensus_confidence" field.
func ConsensusConfidenceEQ(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldConsensusConfidence, v))
}

// ConsensusConfidenceNEQ applies the NEQ predicate on the "consensus_confidence" field.
func ConsensusConfidenceNEQ(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldConsensusConfidence, v))
}

// ConsensusConfidenceIn applies the In predicate on the "consensus_confidence" field.
func ConsensusConfidenceIn(vs ...float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldConsensusConfidence, vs...))
}

// ConsensusConfidenceNotIn applies the NotIn predicate on the "consensus_confidence" field.
func ConsensusConfidenceNotIn(vs ...float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldConsensusConfidence, vs...))
}

// ConsensusConfidenceGT applies the GT predicate on the "consensus_confidence" field.
func ConsensusConfidenceGT(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldConsensusConfidence, v))
}

// ConsensusConfidenceGTE applies the GTE predicate on the "consensus_confidence" field.
func ConsensusConfidenceGTE(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldConsensusConfidence, v))
}

// ConsensusConfidenceLT applies the LT predicate on the "consensus_confidence" field.
func ConsensusConfidenceLT(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldConsensusConfidence, v))
}

// ConsensusConfidenceLTE applies the LTE predicate on the "consensus_confidence" field.
func ConsensusConfidenceLTE(v float64) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldConsensusConfidence, v))
}

// ConsensusConfidenceIsNil applies the IsNil predicate on the "consensus_confidence" field.
func ConsensusConfidenceIsNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldIsNull(FieldConsensusConfidence))
}

// ConsensusConfidenceNotNil applies the NotNil predicate on the "consensus_confidence" field.
func ConsensusConfidenceNotNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldNotNull(FieldConsensusConfidence))
}

// FinalSummaryEQ applies the EQ predicate on the "final_summary" field.
func FinalSummaryEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldFinalSummary, v))
}

// FinalSummaryNEQ applies the NEQ predicate on the "final_summary" field.
func FinalSummaryNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldFinalSummary, v))
}

// FinalSummaryIn applies the In predicate on the "final_summary" field.
func FinalSummaryIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldFinalSummary, vs...))
}

// FinalSummaryNotIn applies the NotIn predicate on the "final_summary" field.
func FinalSummaryNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldFinalSummary, vs...))
}

// FinalSummaryGT applies the GT predicate on the "final_summary" field.
func FinalSummaryGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldFinalSummary, v))
}

// FinalSummaryGTE applies the GTE predicate on the "final_summary" field.
func FinalSummaryGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldFinalSummary, v))
}

// FinalSummaryLT applies the LT predicate on the "final_summary" field.
func FinalSummaryLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldFinalSummary, v))
}

// FinalSummaryLTE applies the LTE predicate on the "final_summary" field.
func FinalSummaryLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldFinalSummary, v))
}

// FinalSummaryContains applies the Contains predicate on the "final_summary" field.
func FinalSummaryContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldFinalSummary, v))
}

// FinalSummaryHasPrefix applies the HasPrefix predicate on the "final_summary" field.
func FinalSummaryHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldFinalSummary, v))
}

// FinalSummaryHasSuffix applies the HasSuffix predicate on the "final_summary" field.
func FinalSummaryHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldFinalSummary, v))
}

// FinalSummaryIsNil applies the IsNil predicate on the "final_summary" field.
func FinalSummaryIsNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldIsNull(FieldFinalSummary))
}

// FinalSummaryNotNil applies the NotNil predicate on the "final_summary" field.
func FinalSummaryNotNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldNotNull(FieldFinalSummary))
}

// FinalSummaryEqualFold applies the EqualFold predicate on the "final_summary" field.
func FinalSummaryEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldFinalSummary, v))
}

// FinalSummaryContainsFold applies the ContainsFold predicate on the "final_summary" field.
func FinalSummaryContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldFinalSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Discussion {
	return predicate.Discussion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Discussion {
	return predicate.Discussion(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPerformances applies the HasEdge predicate on the "performances" edge.
func HasPerformances() predicate.Discussion {
	return predicate.Discussion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PerformancesTable, PerformancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPerformancesWith applies the HasEdge predicate on the "performances" edge with a given conditions (other predicates).
func HasPerformancesWith(preds ...predicate.AgentPerformance) predicate.Discussion {
	return predicate.Discussion(func(s *sql.Selector) {
		step := newPerformancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.NotPredicates(p))
}
