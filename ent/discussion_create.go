// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
)

// DiscussionCreate is the builder for creating a Discussion entity.
type DiscussionCreate struct {
	config
	mutation *DiscussionMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *DiscussionCreate) SetTopic(v string) *DiscussionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetUserTag sets the "user_tag" field.
func (_c *DiscussionCreate) SetUserTag(v string) *DiscussionCreate {
	_c.mutation.SetUserTag(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiscussionCreate) SetStatus(v discussion.Status) *DiscussionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableStatus(v *discussion.Status) *DiscussionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentTurn sets the "current_turn" field.
func (_c *DiscussionCreate) SetCurrentTurn(v int) *DiscussionCreate {
	_c.mutation.SetCurrentTurn(v)
	return _c
}

// SetNillableCurrentTurn sets the "current_turn" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableCurrentTurn(v *int) *DiscussionCreate {
	if v != nil {
		_c.SetCurrentTurn(*v)
	}
	return _c
}

// SetMaxTurns sets the "max_turns" field.
func (_c *DiscussionCreate) SetMaxTurns(v int) *DiscussionCreate {
	_c.mutation.SetMaxTurns(v)
	return _c
}

// SetConsensusReached sets the "consensus_reached" field.
func (_c *DiscussionCreate) SetConsensusReached(v bool) *DiscussionCreate {
	_c.mutation.SetConsensusReached(v)
	return _c
}

// SetNillableConsensusReached sets the "consensus_reached" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableConsensusReached(v *bool) *DiscussionCreate {
	if v != nil {
		_c.SetConsensusReached(*v)
	}
	return _c
}

// SetConsensusConfidence sets the "consensus_confidence" field.
func (_c *DiscussionCreate) SetConsensusConfidence(v float64) *DiscussionCreate {
	_c.mutation.SetConsensusConfidence(v)
	return _c
}

// SetNillableConsensusConfidence sets the "consensus_confidence" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableConsensusConfidence(v *float64) *DiscussionCreate {
	if v != nil {
		_c.SetConsensusConfidence(*v)
	}
	return _c
}

// SetFinalSummary sets the "final_summary" field.
func (_c *DiscussionCreate) SetFinalSummary(v string) *DiscussionCreate {
	_c.mutation.SetFinalSummary(v)
	return _c
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableFinalSummary(v *string) *DiscussionCreate {
	if v != nil {
		_c.SetFinalSummary(*v)
	}
	return _c
}

// SetRoles sets the "roles" field.
func (_c *DiscussionCreate) SetRoles(v []map[string]interface{}) *DiscussionCreate {
	_c.mutation.SetRoles(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiscussionCreate) SetCreatedAt(v time.Time) *DiscussionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableCreatedAt(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiscussionCreate) SetUpdatedAt(v time.Time) *DiscussionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableUpdatedAt(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiscussionCreate) SetID(v string) *DiscussionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *DiscussionCreate) AddMessageIDs(ids ...string) *DiscussionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *DiscussionCreate) AddMessages(v ...*Message) *DiscussionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddPerformanceIDs adds the "performances" edge to the AgentPerformance entity by IDs.
func (_c *DiscussionCreate) AddPerformanceIDs(ids ...int) *DiscussionCreate {
	_c.mutation.AddPerformanceIDs(ids...)
	return _c
}

// AddPerformances adds the "performances" edges to the AgentPerformance entity.
func (_c *DiscussionCreate) AddPerformances(v ...*AgentPerformance) *DiscussionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPerformanceIDs(ids...)
}

// Mutation returns the DiscussionMutation object of the builder.
func (_c *DiscussionCreate) Mutation() *DiscussionMutation {
	return _c.mutation
}

// Save creates the Discussion in the database.
func (_c *DiscussionCreate) Save(ctx context.Context) (*Discussion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscussionCreate) SaveX(ctx context.Context) *Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscussionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := discussion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentTurn(); !ok {
		v := discussion.DefaultCurrentTurn
		_c.mutation.SetCurrentTurn(v)
	}
	if _, ok := _c.mutation.ConsensusReached(); !ok {
		v := discussion.DefaultConsensusReached
		_c.mutation.SetConsensusReached(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := discussion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := discussion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscussionCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Discussion.topic"`)}
	}
	if _, ok := _c.mutation.UserTag(); !ok {
		return &ValidationError{Name: "user_tag", err: errors.New(`ent: missing required field "Discussion.user_tag"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Discussion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := discussion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discussion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentTurn(); !ok {
		return &ValidationError{Name: "current_turn", err: errors.New(`ent: missing required field "Discussion.current_turn"`)}
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		return &ValidationError{Name: "max_turns", err: errors.New(`ent: missing required field "Discussion.max_turns"`)}
	}
	if _, ok := _c.mutation.ConsensusReached(); !ok {
		return &ValidationError{Name: "consensus_reached", err: errors.New(`ent: missing required field "Discussion.consensus_reached"`)}
	}
	if _, ok := _c.mutation.Roles(); !ok {
		return &ValidationError{Name: "roles", err: errors.New(`ent: missing required field "Discussion.roles"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Discussion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Discussion.updated_at"`)}
	}
	return nil
}

func (_c *DiscussionCreate) sqlSave(ctx context.Context) (*Discussion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Discussion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiscussionCreate) createSpec() (*Discussion, *sqlgraph.CreateSpec) {
	var (
		_node = &Discussion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discussion.Table, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.UserTag(); ok {
		_spec.SetField(discussion.FieldUserTag, field.TypeString, value)
		_node.UserTag = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(discussion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentTurn(); ok {
		_spec.SetField(discussion.FieldCurrentTurn, field.TypeInt, value)
		_node.CurrentTurn = value
	}
	if value, ok := _c.mutation.MaxTurns(); ok {
		_spec.SetField(discussion.FieldMaxTurns, field.TypeInt, value)
		_node.MaxTurns = value
	}
	if value, ok := _c.mutation.ConsensusReached(); ok {
		_spec.SetField(discussion.FieldConsensusReached, field.TypeBool, value)
		_node.ConsensusReached = value
	}
	if value, ok := _c.mutation.ConsensusConfidence(); ok {
		_spec.SetField(discussion.FieldConsensusConfidence, field.TypeFloat64, value)
		_node.ConsensusConfidence = &value
	}
	if value, ok := _c.mutation.FinalSummary(); ok {
		_spec.SetField(discussion.FieldFinalSummary, field.TypeString, value)
		_node.FinalSummary = &value
	}
	if value, ok := _c.mutation.Roles(); ok {
		_spec.SetField(discussion.FieldRoles, field.TypeJSON, value)
		_node.Roles = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(discussion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PerformancesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DiscussionCreateBulk is the builder for creating many Discussion entities in bulk.
type DiscussionCreateBulk struct {
	config
	err      error
	builders []*DiscussionCreate
}

// Save creates the Discussion entities in the database.
func (_c *DiscussionCreateBulk) Save(ctx context.Context) ([]*Discussion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Discussion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscussionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiscussionCreateBulk) SaveX(ctx context.Context) []*Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
