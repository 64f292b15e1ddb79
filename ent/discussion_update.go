// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/ent/predicate"
)

// DiscussionUpdate is the builder for updating Discussion entities.
type DiscussionUpdate struct {
	config
	hooks    []Hook
	mutation *DiscussionMutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdate) Where(ps ...predicate.Discussion) *DiscussionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DiscussionUpdate) SetTopic(v string) *DiscussionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableTopic(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetUserTag sets the "user_tag" field.
func (_u *DiscussionUpdate) SetUserTag(v string) *DiscussionUpdate {
	_u.mutation.SetUserTag(v)
	return _u
}

// SetNillableUserTag sets the "user_tag" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableUserTag(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetUserTag(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscussionUpdate) SetStatus(v discussion.Status) *DiscussionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableStatus(v *discussion.Status) *DiscussionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTurn sets the "current_turn" field.
func (_u *DiscussionUpdate) SetCurrentTurn(v int) *DiscussionUpdate {
	_u.mutation.ResetCurrentTurn()
	_u.mutation.SetCurrentTurn(v)
	return _u
}

// SetNillableCurrentTurn sets the "current_turn" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableCurrentTurn(v *int) *DiscussionUpdate {
	if v != nil {
		_u.SetCurrentTurn(*v)
	}
	return _u
}

// AddCurrentTurn adds value to the "current_turn" field.
func (_u *DiscussionUpdate) AddCurrentTurn(v int) *DiscussionUpdate {
	_u.mutation.AddCurrentTurn(v)
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *DiscussionUpdate) SetMaxTurns(v int) *DiscussionUpdate {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableMaxTurns(v *int) *DiscussionUpdate {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *DiscussionUpdate) AddMaxTurns(v int) *DiscussionUpdate {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetConsensusReached sets the "consensus_reached" field.
func (_u *DiscussionUpdate) SetConsensusReached(v bool) *DiscussionUpdate {
	_u.mutation.SetConsensusReached(v)
	return _u
}

// SetNillableConsensusReached sets the "consensus_reached" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableConsensusReached(v *bool) *DiscussionUpdate {
	if v != nil {
		_u.SetConsensusReached(*v)
	}
	return _u
}

// SetConsensusConfidence sets the "consensus_confidence" field.
func (_u *DiscussionUpdate) SetConsensusConfidence(v float64) *DiscussionUpdate {
	_u.mutation.ResetConsensusConfidence()
	_u.mutation.SetConsensusConfidence(v)
	return _u
}

// SetNillableConsensusConfidence sets the "consensus_confidence" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableConsensusConfidence(v *float64) *DiscussionUpdate {
	if v != nil {
		_u.SetConsensusConfidence(*v)
	}
	return _u
}

// AddConsensusConfidence adds value to the "consensus_confidence" field.
func (_u *DiscussionUpdate) AddConsensusConfidence(v float64) *DiscussionUpdate {
	_u.mutation.AddConsensusConfidence(v)
	return _u
}

// ClearConsensusConfidence clears the value of the "consensus_confidence" field.
func (_u *DiscussionUpdate) ClearConsensusConfidence() *DiscussionUpdate {
	_u.mutation.ClearConsensusConfidence()
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *DiscussionUpdate) SetFinalSummary(v string) *DiscussionUpdate {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableFinalSummary(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetFinalSummary(*v)
	}
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *DiscussionUpdate) ClearFinalSummary() *DiscussionUpdate {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *DiscussionUpdate) SetRoles(v []map[string]interface{}) *DiscussionUpdate {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *DiscussionUpdate) AppendRoles(v []map[string]interface{}) *DiscussionUpdate {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscussionUpdate) SetUpdatedAt(v time.Time) *DiscussionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableUpdatedAt(v *time.Time) *DiscussionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *DiscussionUpdate) AddMessageIDs(ids ...string) *DiscussionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *DiscussionUpdate) AddMessages(v ...*Message) *DiscussionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddPerformanceIDs adds the "performances" edge to the AgentPerformance entity by IDs.
func (_u *DiscussionUpdate) AddPerformanceIDs(ids ...int) *DiscussionUpdate {
	_u.mutation.AddPerformanceIDs(ids...)
	return _u
}

// AddPerformances adds the "performances" edges to the AgentPerformance entity.
func (_u *DiscussionUpdate) AddPerformances(v ...*AgentPerformance) *DiscussionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPerformanceIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdate) Mutation() *DiscussionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *DiscussionUpdate) ClearMessages() *DiscussionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *DiscussionUpdate) RemoveMessageIDs(ids ...string) *DiscussionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *DiscussionUpdate) RemoveMessages(v ...*Message) *DiscussionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearPerformances clears all "performances" edges to the AgentPerformance entity.
func (_u *DiscussionUpdate) ClearPerformances() *DiscussionUpdate {
	_u.mutation.ClearPerformances()
	return _u
}

// RemovePerformanceIDs removes the "performances" edge to AgentPerformance entities by IDs.
func (_u *DiscussionUpdate) RemovePerformanceIDs(ids ...int) *DiscussionUpdate {
	_u.mutation.RemovePerformanceIDs(ids...)
	return _u
}

// RemovePerformances removes "performances" edges to AgentPerformance entities.
func (_u *DiscussionUpdate) RemovePerformances(v ...*AgentPerformance) *DiscussionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePerformanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscussionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscussionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := discussion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discussion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserTag(); ok {
		_spec.SetField(discussion.FieldUserTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discussion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTurn(); ok {
		_spec.SetField(discussion.FieldCurrentTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentTurn(); ok {
		_spec.AddField(discussion.FieldCurrentTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(discussion.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(discussion.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsensusReached(); ok {
		_spec.SetField(discussion.FieldConsensusReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsensusConfidence(); ok {
		_spec.SetField(discussion.FieldConsensusConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsensusConfidence(); ok {
		_spec.AddField(discussion.FieldConsensusConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConsensusConfidenceCleared() {
		_spec.ClearField(discussion.FieldConsensusConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(discussion.FieldFinalSummary, field.TypeString, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(discussion.FieldFinalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(discussion.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, discussion.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PerformancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPerformancesIDs(); len(nodes) > 0 && !_u.mutation.PerformancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PerformancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscussionUpdateOne is the builder for updating a single Discussion entity.
type DiscussionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscussionMutation
}

// SetTopic sets the "topic" field.
func (_u *DiscussionUpdateOne) SetTopic(v string) *DiscussionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableTopic(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetUserTag sets the "user_tag" field.
func (_u *DiscussionUpdateOne) SetUserTag(v string) *DiscussionUpdateOne {
	_u.mutation.SetUserTag(v)
	return _u
}

// SetNillableUserTag sets the "user_tag" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableUserTag(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetUserTag(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscussionUpdateOne) SetStatus(v discussion.Status) *DiscussionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableStatus(v *discussion.Status) *DiscussionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTurn sets the "current_turn" field.
func (_u *DiscussionUpdateOne) SetCurrentTurn(v int) *DiscussionUpdateOne {
	_u.mutation.ResetCurrentTurn()
	_u.mutation.SetCurrentTurn(v)
	return _u
}

// SetNillableCurrentTurn sets the "current_turn" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableCurrentTurn(v *int) *DiscussionUpdateOne {
	if v != nil {
		_u.SetCurrentTurn(*v)
	}
	return _u
}

// AddCurrentTurn adds value to the "current_turn" field.
func (_u *DiscussionUpdateOne) AddCurrentTurn(v int) *DiscussionUpdateOne {
	_u.mutation.AddCurrentTurn(v)
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *DiscussionUpdateOne) SetMaxTurns(v int) *DiscussionUpdateOne {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableMaxTurns(v *int) *DiscussionUpdateOne {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *DiscussionUpdateOne) AddMaxTurns(v int) *DiscussionUpdateOne {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetConsensusReached sets the "consensus_reached" field.
func (_u *DiscussionUpdateOne) SetConsensusReached(v bool) *DiscussionUpdateOne {
	_u.mutation.SetConsensusReached(v)
	return _u
}

// SetNillableConsensusReached sets the "consensus_reached" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableConsensusReached(v *bool) *DiscussionUpdateOne {
	if v != nil {
		_u.SetConsensusReached(*v)
	}
	return _u
}

// SetConsensusConfidence sets the "consensus_confidence" field.
func (_u *DiscussionUpdateOne) SetConsensusConfidence(v float64) *DiscussionUpdateOne {
	_u.mutation.ResetConsensusConfidence()
	_u.mutation.SetConsensusConfidence(v)
	return _u
}

// SetNillableConsensusConfidence sets the "consensus_confidence" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableConsensusConfidence(v *float64) *DiscussionUpdateOne {
	if v != nil {
		_u.SetConsensusConfidence(*v)
	}
	return _u
}

// AddConsensusConfidence adds value to the "consensus_confidence" field.
func (_u *DiscussionUpdateOne) AddConsensusConfidence(v float64) *DiscussionUpdateOne {
	_u.mutation.AddConsensusConfidence(v)
	return _u
}

// ClearConsensusConfidence clears the value of the "consensus_confidence" field.
func (_u *DiscussionUpdateOne) ClearConsensusConfidence() *DiscussionUpdateOne {
	_u.mutation.ClearConsensusConfidence()
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *DiscussionUpdateOne) SetFinalSummary(v string) *DiscussionUpdateOne {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableFinalSummary(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetFinalSummary(*v)
	}
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *DiscussionUpdateOne) ClearFinalSummary() *DiscussionUpdateOne {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *DiscussionUpdateOne) SetRoles(v []map[string]interface{}) *DiscussionUpdateOne {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *DiscussionUpdateOne) AppendRoles(v []map[string]interface{}) *DiscussionUpdateOne {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscussionUpdateOne) SetUpdatedAt(v time.Time) *DiscussionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableUpdatedAt(v *time.Time) *DiscussionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *DiscussionUpdateOne) AddMessageIDs(ids ...string) *DiscussionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *DiscussionUpdateOne) AddMessages(v ...*Message) *DiscussionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddPerformanceIDs adds the "performances" edge to the AgentPerformance entity by IDs.
func (_u *DiscussionUpdateOne) AddPerformanceIDs(ids ...int) *DiscussionUpdateOne {
	_u.mutation.AddPerformanceIDs(ids...)
	return _u
}

// AddPerformances adds the "performances" edges to the AgentPerformance entity.
func (_u *DiscussionUpdateOne) AddPerformances(v ...*AgentPerformance) *DiscussionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPerformanceIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdateOne) Mutation() *DiscussionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *DiscussionUpdateOne) ClearMessages() *DiscussionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *DiscussionUpdateOne) RemoveMessageIDs(ids ...string) *DiscussionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *DiscussionUpdateOne) RemoveMessages(v ...*Message) *DiscussionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearPerformances clears all "performances" edges to the AgentPerformance entity.
func (_u *DiscussionUpdateOne) ClearPerformances() *DiscussionUpdateOne {
	_u.mutation.ClearPerformances()
	return _u
}

// RemovePerformanceIDs removes the "performances" edge to AgentPerformance entities by IDs.
func (_u *DiscussionUpdateOne) RemovePerformanceIDs(ids ...int) *DiscussionUpdateOne {
	_u.mutation.RemovePerformanceIDs(ids...)
	return _u
}

// RemovePerformances removes "performances" edges to AgentPerformance entities.
func (_u *DiscussionUpdateOne) RemovePerformances(v ...*AgentPerformance) *DiscussionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePerformanceIDs(ids...)
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdateOne) Where(ps ...predicate.Discussion) *DiscussionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscussionUpdateOne) Select(field string, fields ...string) *DiscussionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Discussion entity.
func (_u *DiscussionUpdateOne) Save(ctx context.Context) (*Discussion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdateOne) SaveX(ctx context.Context) *Discussion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscussionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := discussion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discussion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdateOne) sqlSave(ctx context.Context) (_node *Discussion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Discussion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussion.FieldID)
		for _, f := range fields {
			if !discussion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discussion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserTag(); ok {
		_spec.SetField(discussion.FieldUserTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discussion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTurn(); ok {
		_spec.SetField(discussion.FieldCurrentTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentTurn(); ok {
		_spec.AddField(discussion.FieldCurrentTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(discussion.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(discussion.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsensusReached(); ok {
		_spec.SetField(discussion.FieldConsensusReached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsensusConfidence(); ok {
		_spec.SetField(discussion.FieldConsensusConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsensusConfidence(); ok {
		_spec.AddField(discussion.FieldConsensusConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConsensusConfidenceCleared() {
		_spec.ClearField(discussion.FieldConsensusConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(discussion.FieldFinalSummary, field.TypeString, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(discussion.FieldFinalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(discussion.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, discussion.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.MessagesTable,
			Columns: []string{discussion.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PerformancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPerformancesIDs(); len(nodes) > 0 && !_u.mutation.PerformancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PerformancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   discussion.PerformancesTable,
			Columns: []string{discussion.PerformancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Discussion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
