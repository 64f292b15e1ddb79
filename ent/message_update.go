// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuthorKind sets the "author_kind" field.
func (_u *MessageUpdate) SetAuthorKind(v message.AuthorKind) *MessageUpdate {
	_u.mutation.SetAuthorKind(v)
	return _u
}

// SetNillableAuthorKind sets the "author_kind" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAuthorKind(v *message.AuthorKind) *MessageUpdate {
	if v != nil {
		_u.SetAuthorKind(*v)
	}
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *MessageUpdate) SetAuthorName(v string) *MessageUpdate {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAuthorName(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetBackingModelID sets the "backing_model_id" field.
func (_u *MessageUpdate) SetBackingModelID(v string) *MessageUpdate {
	_u.mutation.SetBackingModelID(v)
	return _u
}

// SetNillableBackingModelID sets the "backing_model_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBackingModelID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBackingModelID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdate) SetBody(v string) *MessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBody(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *MessageUpdate) SetTurn(v int) *MessageUpdate {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTurn(v *int) *MessageUpdate {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *MessageUpdate) AddTurn(v int) *MessageUpdate {
	_u.mutation.AddTurn(v)
	return _u
}

// SetExtra sets the "extra" field.
func (_u *MessageUpdate) SetExtra(v map[string]string) *MessageUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *MessageUpdate) ClearExtra() *MessageUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.AuthorKind(); ok {
		if err := message.AuthorKindValidator(v); err != nil {
			return &ValidationError{Name: "author_kind", err: fmt.Errorf(`ent: validator failed for field "Message.author_kind": %w`, err)}
		}
	}
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.discussion"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AuthorKind(); ok {
		_spec.SetField(message.FieldAuthorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(message.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackingModelID(); ok {
		_spec.SetField(message.FieldBackingModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(message.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(message.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(message.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(message.FieldExtra, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetAuthorKind sets the "author_kind" field.
func (_u *MessageUpdateOne) SetAuthorKind(v message.AuthorKind) *MessageUpdateOne {
	_u.mutation.SetAuthorKind(v)
	return _u
}

// SetNillableAuthorKind sets the "author_kind" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAuthorKind(v *message.AuthorKind) *MessageUpdateOne {
	if v != nil {
		_u.SetAuthorKind(*v)
	}
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *MessageUpdateOne) SetAuthorName(v string) *MessageUpdateOne {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAuthorName(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetBackingModelID sets the "backing_model_id" field.
func (_u *MessageUpdateOne) SetBackingModelID(v string) *MessageUpdateOne {
	_u.mutation.SetBackingModelID(v)
	return _u
}

// SetNillableBackingModelID sets the "backing_model_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBackingModelID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBackingModelID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdateOne) SetBody(v string) *MessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBody(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *MessageUpdateOne) SetTurn(v int) *MessageUpdateOne {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTurn(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *MessageUpdateOne) AddTurn(v int) *MessageUpdateOne {
	_u.mutation.AddTurn(v)
	return _u
}

// SetExtra sets the "extra" field.
func (_u *MessageUpdateOne) SetExtra(v map[string]string) *MessageUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *MessageUpdateOne) ClearExtra() *MessageUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.AuthorKind(); ok {
		if err := message.AuthorKindValidator(v); err != nil {
			return &ValidationError{Name: "author_kind", err: fmt.Errorf(`ent: validator failed for field "Message.author_kind": %w`, err)}
		}
	}
	if _u.mutation.DiscussionCleared() && len(_u.mutation.DiscussionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.discussion"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.AuthorKind(); ok {
		_spec.SetField(message.FieldAuthorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(message.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackingModelID(); ok {
		_spec.SetField(message.FieldBackingModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(message.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(message.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(message.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(message.FieldExtra, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
