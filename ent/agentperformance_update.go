// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/predicate"
)

// AgentPerformanceUpdate is the builder for updating AgentPerformance entities.
type AgentPerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdate) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoleName sets the "role_name" field.
func (_u *AgentPerformanceUpdate) SetRoleName(v string) *AgentPerformanceUpdate {
	_u.mutation.SetRoleName(v)
	return _u
}

// SetNillableRoleName sets the "role_name" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableRoleName(v *string) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetRoleName(*v)
	}
	return _u
}

// SetBackingModelID sets the "backing_model_id" field.
func (_u *AgentPerformanceUpdate) SetBackingModelID(v string) *AgentPerformanceUpdate {
	_u.mutation.SetBackingModelID(v)
	return _u
}

// SetNillableBackingModelID sets the "backing_model_id" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableBackingModelID(v *string) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetBackingModelID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *AgentPerformanceUpdate) SetTurn(v int) *AgentPerformanceUpdate {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableTurn(v *int) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *AgentPerformanceUpdate) AddTurn(v int) *AgentPerformanceUpdate {
	_u.mutation.AddTurn(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AgentPerformanceUpdate) SetResponseTimeMs(v int64) *AgentPerformanceUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableResponseTimeMs(v *int64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AgentPerformanceUpdate) AddResponseTimeMs(v int64) *AgentPerformanceUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *AgentPerformanceUpdate) SetTokenCount(v int) *AgentPerformanceUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableTokenCount(v *int) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *AgentPerformanceUpdate) AddTokenCount(v int) *AgentPerformanceUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdate) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPerformanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentPerformanceUpdate) check() error {
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentPerformance.discussion"`)
	}
	return nil
}

func (_u *AgentPerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoleName(); ok {
		_spec.SetField(agentperformance.FieldRoleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackingModelID(); ok {
		_spec.SetField(agentperformance.FieldBackingModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(agentperformance.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(agentperformance.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(agentperformance.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(agentperformance.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(agentperformance.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(agentperformance.FieldTokenCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPerformanceUpdateOne is the builder for updating a single AgentPerformance entity.
type AgentPerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// SetRoleName sets the "role_name" field.
func (_u *AgentPerformanceUpdateOne) SetRoleName(v string) *AgentPerformanceUpdateOne {
	_u.mutation.SetRoleName(v)
	return _u
}

// SetNillableRoleName sets the "role_name" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableRoleName(v *string) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetRoleName(*v)
	}
	return _u
}

// SetBackingModelID sets the "backing_model_id" field.
func (_u *AgentPerformanceUpdateOne) SetBackingModelID(v string) *AgentPerformanceUpdateOne {
	_u.mutation.SetBackingModelID(v)
	return _u
}

// SetNillableBackingModelID sets the "backing_model_id" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableBackingModelID(v *string) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetBackingModelID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *AgentPerformanceUpdateOne) SetTurn(v int) *AgentPerformanceUpdateOne {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableTurn(v *int) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *AgentPerformanceUpdateOne) AddTurn(v int) *AgentPerformanceUpdateOne {
	_u.mutation.AddTurn(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AgentPerformanceUpdateOne) SetResponseTimeMs(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableResponseTimeMs(v *int64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AgentPerformanceUpdateOne) AddResponseTimeMs(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *AgentPerformanceUpdateOne) SetTokenCount(v int) *AgentPerformanceUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableTokenCount(v *int) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *AgentPerformanceUpdateOne) AddTokenCount(v int) *AgentPerformanceUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdateOne) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdateOne) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPerformanceUpdateOne) Select(field string, fields ...string) *AgentPerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPerformance entity.
func (_u *AgentPerformanceUpdateOne) Save(ctx context.Context) (*AgentPerformance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) SaveX(ctx context.Context) *AgentPerformance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentPerformanceUpdateOne) check() error {
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentPerformance.discussion"`)
	}
	return nil
}

func (_u *AgentPerformanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentPerformance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPerformance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentperformance.FieldID)
		for _, f := range fields {
			if !agentperformance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentperformance.FieldID {
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
	if value, ok := _u.mutation.RoleName(); ok {
		_spec.SetField(agentperformance.FieldRoleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackingModelID(); ok {
		_spec.SetField(agentperformance.FieldBackingModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(agentperformance.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(agentperformance.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(agentperformance.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(agentperformance.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(agentperformance.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(agentperformance.FieldTokenCount, field.TypeInt, value)
	}
	_node = &AgentPerformance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
