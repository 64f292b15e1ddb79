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
)

// AgentPerformanceCreate is the builder for creating a AgentPerformance entity.
type AgentPerformanceCreate struct {
	config
	mutation *AgentPerformanceMutation
	hooks    []Hook
}

// SetDiscussionID sets the "discussion_id" field.
func (_c *AgentPerformanceCreate) SetDiscussionID(v string) *AgentPerformanceCreate {
	_c.mutation.SetDiscussionID(v)
	return _c
}

// SetRoleName sets the "role_name" field.
func (_c *AgentPerformanceCreate) SetRoleName(v string) *AgentPerformanceCreate {
	_c.mutation.SetRoleName(v)
	return _c
}

// SetBackingModelID sets the "backing_model_id" field.
func (_c *AgentPerformanceCreate) SetBackingModelID(v string) *AgentPerformanceCreate {
	_c.mutation.SetBackingModelID(v)
	return _c
}

// SetTurn sets the "turn" field.
func (_c *AgentPerformanceCreate) SetTurn(v int) *AgentPerformanceCreate {
	_c.mutation.SetTurn(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AgentPerformanceCreate) SetResponseTimeMs(v int64) *AgentPerformanceCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *AgentPerformanceCreate) SetTokenCount(v int) *AgentPerformanceCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableTokenCount(v *int) *AgentPerformanceCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentPerformanceCreate) SetCreatedAt(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableCreatedAt(v *time.Time) *AgentPerformanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDiscussion sets the "discussion" edge to the Discussion entity.
func (_c *AgentPerformanceCreate) SetDiscussion(v *Discussion) *AgentPerformanceCreate {
	return _c.SetDiscussionID(v.ID)
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_c *AgentPerformanceCreate) Mutation() *AgentPerformanceMutation {
	return _c.mutation
}

// Save creates the AgentPerformance in the database.
func (_c *AgentPerformanceCreate) Save(ctx context.Context) (*AgentPerformance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPerformanceCreate) SaveX(ctx context.Context) *AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPerformanceCreate) defaults() {
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := agentperformance.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentperformance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPerformanceCreate) check() error {
	if _, ok := _c.mutation.DiscussionID(); !ok {
		return &ValidationError{Name: "discussion_id", err: errors.New(`ent: missing required field "AgentPerformance.discussion_id"`)}
	}
	if _, ok := _c.mutation.RoleName(); !ok {
		return &ValidationError{Name: "role_name", err: errors.New(`ent: missing required field "AgentPerformance.role_name"`)}
	}
	if _, ok := _c.mutation.BackingModelID(); !ok {
		return &ValidationError{Name: "backing_model_id", err: errors.New(`ent: missing required field "AgentPerformance.backing_model_id"`)}
	}
	if _, ok := _c.mutation.Turn(); !ok {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required field "AgentPerformance.turn"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AgentPerformance.response_time_ms"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "AgentPerformance.token_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentPerformance.created_at"`)}
	}
	if len(_c.mutation.DiscussionIDs()) == 0 {
		return &ValidationError{Name: "discussion", err: errors.New(`ent: missing required edge "AgentPerformance.discussion"`)}
	}
	return nil
}

func (_c *AgentPerformanceCreate) sqlSave(ctx context.Context) (*AgentPerformance, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPerformanceCreate) createSpec() (*AgentPerformance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPerformance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentperformance.Table, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RoleName(); ok {
		_spec.SetField(agentperformance.FieldRoleName, field.TypeString, value)
		_node.RoleName = value
	}
	if value, ok := _c.mutation.BackingModelID(); ok {
		_spec.SetField(agentperformance.FieldBackingModelID, field.TypeString, value)
		_node.BackingModelID = value
	}
	if value, ok := _c.mutation.Turn(); ok {
		_spec.SetField(agentperformance.FieldTurn, field.TypeInt, value)
		_node.Turn = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(agentperformance.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(agentperformance.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentperformance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DiscussionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentperformance.DiscussionTable,
			Columns: []string{agentperformance.DiscussionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DiscussionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentPerformanceCreateBulk is the builder for creating many AgentPerformance entities in bulk.
type AgentPerformanceCreateBulk struct {
	config
	err      error
	builders []*AgentPerformanceCreate
}

// Save creates the AgentPerformance entities in the database.
func (_c *AgentPerformanceCreateBulk) Save(ctx context.Context) ([]*AgentPerformance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPerformance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPerformanceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AgentPerformanceCreateBulk) SaveX(ctx context.Context) []*AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
