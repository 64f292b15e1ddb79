// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentPerformance = "AgentPerformance"
	TypeDiscussion       = "Discussion"
	TypeMessage          = "Message"
)

// AgentPerformanceMutation represents an operation that mutates the AgentPerformance nodes in the graph.
type AgentPerformanceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	role_name           *string
	backing_model_id    *string
	turn                *int
	addturn             *int
	response_time_ms    *int64
	addresponse_time_ms *int64
	token_count         *int
	addtoken_count      *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	discussion          *string
	cleareddiscussion   bool
	done                bool
	oldValue            func(context.Context) (*AgentPerformance, error)
	predicates          []predicate.AgentPerformance
}

var _ ent.Mutation = (*AgentPerformanceMutation)(nil)

// agentperformanceOption allows management of the mutation configuration using functional options.
type agentperformanceOption func(*AgentPerformanceMutation)

// newAgentPerformanceMutation creates new mutation for the AgentPerformance entity.
func newAgentPerformanceMutation(c config, op Op, opts ...agentperformanceOption) *AgentPerformanceMutation {
	m := &AgentPerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPerformanceID sets the ID field of the mutation.
func withAgentPerformanceID(id int) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPerformance
		)
		m.oldValue = func(ctx context.Context) (*AgentPerformance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPerformance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPerformance sets the old AgentPerformance of the mutation.
func withAgentPerformance(node *AgentPerformance) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		m.oldValue = func(context.Context) (*AgentPerformance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPerformanceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPerformanceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPerformance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDiscussionID sets the "discussion_id" field.
func (m *AgentPerformanceMutation) SetDiscussionID(s string) {
	m.discussion = &s
}

// DiscussionID returns the value of the "discussion_id" field in the mutation.
func (m *AgentPerformanceMutation) DiscussionID() (r string, exists bool) {
	v := m.discussion
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionID returns the old "discussion_id" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldDiscussionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionID: %w", err)
	}
	return oldValue.DiscussionID, nil
}

// ResetDiscussionID resets all changes to the "discussion_id" field.
func (m *AgentPerformanceMutation) ResetDiscussionID() {
	m.discussion = nil
}

// SetRoleName sets the "role_name" field.
func (m *AgentPerformanceMutation) SetRoleName(s string) {
	m.role_name = &s
}

// RoleName returns the value of the "role_name" field in the mutation.
func (m *AgentPerformanceMutation) RoleName() (r string, exists bool) {
	v := m.role_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleName returns the old "role_name" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldRoleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleName: %w", err)
	}
	return oldValue.RoleName, nil
}

// ResetRoleName resets all changes to the "role_name" field.
func (m *AgentPerformanceMutation) ResetRoleName() {
	m.role_name = nil
}

// SetBackingModelID sets the "backing_model_id" field.
func (m *AgentPerformanceMutation) SetBackingModelID(s string) {
	m.backing_model_id = &s
}

// BackingModelID returns the value of the "backing_model_id" field in the mutation.
func (m *AgentPerformanceMutation) BackingModelID() (r string, exists bool) {
	v := m.backing_model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBackingModelID returns the old "backing_model_id" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldBackingModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackingModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackingModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackingModelID: %w", err)
	}
	return oldValue.BackingModelID, nil
}

// ResetBackingModelID resets all changes to the "backing_model_id" field.
func (m *AgentPerformanceMutation) ResetBackingModelID() {
	m.backing_model_id = nil
}

// SetTurn sets the "turn" field.
func (m *AgentPerformanceMutation) SetTurn(i int) {
	m.turn = &i
	m.addturn = nil
}

// Turn returns the value of the "turn" field in the mutation.
func (m *AgentPerformanceMutation) Turn() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurn returns the old "turn" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurn: %w", err)
	}
	return oldValue.Turn, nil
}

// AddTurn adds i to the "turn" field.
func (m *AgentPerformanceMutation) AddTurn(i int) {
	if m.addturn != nil {
		*m.addturn += i
	} else {
		m.addturn = &i
	}
}

// AddedTurn returns the value that was added to the "turn" field in this mutation.
func (m *AgentPerformanceMutation) AddedTurn() (r int, exists bool) {
	v := m.addturn
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurn resets all changes to the "turn" field.
func (m *AgentPerformanceMutation) ResetTurn() {
	m.turn = nil
	m.addturn = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AgentPerformanceMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AgentPerformanceMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AgentPerformanceMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AgentPerformanceMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AgentPerformanceMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetTokenCount sets the "token_count" field.
func (m *AgentPerformanceMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *AgentPerformanceMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *AgentPerformanceMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *AgentPerformanceMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *AgentPerformanceMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentPerformanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentPerformanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentPerformanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDiscussion clears the "discussion" edge to the Discussion entity.
func (m *AgentPerformanceMutation) ClearDiscussion() {
	m.cleareddiscussion = true
	m.clearedFields[agentperformance.FieldDiscussionID] = struct{}{}
}

// DiscussionCleared reports if the "discussion" edge to the Discussion entity was cleared.
func (m *AgentPerformanceMutation) DiscussionCleared() bool {
	return m.cleareddiscussion
}

// DiscussionIDs returns the "discussion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DiscussionID instead. It exists only for internal usage by the builders.
func (m *AgentPerformanceMutation) DiscussionIDs() (ids []string) {
	if id := m.discussion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDiscussion resets all changes to the "discussion" edge.
func (m *AgentPerformanceMutation) ResetDiscussion() {
	m.discussion = nil
	m.cleareddiscussion = false
}

// Where appends a list predicates to the AgentPerformanceMutation builder.
func (m *AgentPerformanceMutation) Where(ps ...predicate.AgentPerformance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPerformance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPerformance).
func (m *AgentPerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPerformanceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.discussion != nil {
		fields = append(fields, agentperformance.FieldDiscussionID)
	}
	if m.role_name != nil {
		fields = append(fields, agentperformance.FieldRoleName)
	}
	if m.backing_model_id != nil {
		fields = append(fields, agentperformance.FieldBackingModelID)
	}
	if m.turn != nil {
		fields = append(fields, agentperformance.FieldTurn)
	}
	if m.response_time_ms != nil {
		fields = append(fields, agentperformance.FieldResponseTimeMs)
	}
	if m.token_count != nil {
		fields = append(fields, agentperformance.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, agentperformance.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldDiscussionID:
		return m.DiscussionID()
	case agentperformance.FieldRoleName:
		return m.RoleName()
	case agentperformance.FieldBackingModelID:
		return m.BackingModelID()
	case agentperformance.FieldTurn:
		return m.Turn()
	case agentperformance.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case agentperformance.FieldTokenCount:
		return m.TokenCount()
	case agentperformance.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentperformance.FieldDiscussionID:
		return m.OldDiscussionID(ctx)
	case agentperformance.FieldRoleName:
		return m.OldRoleName(ctx)
	case agentperformance.FieldBackingModelID:
		return m.OldBackingModelID(ctx)
	case agentperformance.FieldTurn:
		return m.OldTurn(ctx)
	case agentperformance.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case agentperformance.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case agentperformance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPerformance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldDiscussionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionID(v)
		return nil
	case agentperformance.FieldRoleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleName(v)
		return nil
	case agentperformance.FieldBackingModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackingModelID(v)
		return nil
	case agentperformance.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurn(v)
		return nil
	case agentperformance.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case agentperformance.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case agentperformance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPerformanceMutation) AddedFields() []string {
	var fields []string
	if m.addturn != nil {
		fields = append(fields, agentperformance.FieldTurn)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, agentperformance.FieldResponseTimeMs)
	}
	if m.addtoken_count != nil {
		fields = append(fields, agentperformance.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPerformanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldTurn:
		return m.AddedTurn()
	case agentperformance.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case agentperformance.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurn(v)
		return nil
	case agentperformance.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case agentperformance.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPerformanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentPerformance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ResetField(name string) error {
	switch name {
	case agentperformance.FieldDiscussionID:
		m.ResetDiscussionID()
		return nil
	case agentperformance.FieldRoleName:
		m.ResetRoleName()
		return nil
	case agentperformance.FieldBackingModelID:
		m.ResetBackingModelID()
		return nil
	case agentperformance.FieldTurn:
		m.ResetTurn()
		return nil
	case agentperformance.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case agentperformance.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case agentperformance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.discussion != nil {
		edges = append(edges, agentperformance.EdgeDiscussion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPerformanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentperformance.EdgeDiscussion:
		if id := m.discussion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddiscussion {
		edges = append(edges, agentperformance.EdgeDiscussion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPerformanceMutation) EdgeCleared(name string) bool {
	switch name {
	case agentperformance.EdgeDiscussion:
		return m.cleareddiscussion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPerformanceMutation) ClearEdge(name string) error {
	switch name {
	case agentperformance.EdgeDiscussion:
		m.ClearDiscussion()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPerformanceMutation) ResetEdge(name string) error {
	switch name {
	case agentperformance.EdgeDiscussion:
		m.ResetDiscussion()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance edge %s", name)
}

// DiscussionMutation represents an operation that mutates the Discussion nodes in the graph.
type DiscussionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	topic                   *string
	user_tag                *string
	status                  *discussion.Status
	current_turn            *int
	addcurrent_turn         *int
	max_turns               *int
	addmax_turns            *int
	consensus_reached       *bool
	consensus_confidence    *float64
	addconsensus_confidence *float64
	final_summary           *string
	roles                   *[]map[string]interface{}
	appendroles             []map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	messages                map[string]struct{}
	removedmessages         map[string]struct{}
	clearedmessages         bool
	performances            map[int]struct{}
	removedperformances     map[int]struct{}
	clearedperformances     bool
	done                    bool
	oldValue                func(context.Context) (*Discussion, error)
	predicates              []predicate.Discussion
}

var _ ent.Mutation = (*DiscussionMutation)(nil)

// discussionOption allows management of the mutation configuration using functional options.
type discussionOption func(*DiscussionMutation)

// newDiscussionMutation creates new mutation for the Discussion entity.
func newDiscussionMutation(c config, op Op, opts ...discussionOption) *DiscussionMutation {
	m := &DiscussionMutation{
		config:        c,
		op:            op,
		typ:           TypeDiscussion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiscussionID sets the ID field of the mutation.
func withDiscussionID(id string) discussionOption {
	return func(m *DiscussionMutation) {
		var (
			err   error
			once  sync.Once
			value *Discussion
		)
		m.oldValue = func(ctx context.Context) (*Discussion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Discussion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiscussion sets the old Discussion of the mutation.
func withDiscussion(node *Discussion) discussionOption {
	return func(m *DiscussionMutation) {
		m.oldValue = func(context.Context) (*Discussion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiscussionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiscussionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Discussion entities.
func (m *DiscussionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiscussionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiscussionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Discussion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *DiscussionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *DiscussionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *DiscussionMutation) ResetTopic() {
	m.topic = nil
}

// SetUserTag sets the "user_tag" field.
func (m *DiscussionMutation) SetUserTag(s string) {
	m.user_tag = &s
}

// UserTag returns the value of the "user_tag" field in the mutation.
func (m *DiscussionMutation) UserTag() (r string, exists bool) {
	v := m.user_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldUserTag returns the old "user_tag" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldUserTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserTag: %w", err)
	}
	return oldValue.UserTag, nil
}

// ResetUserTag resets all changes to the "user_tag" field.
func (m *DiscussionMutation) ResetUserTag() {
	m.user_tag = nil
}

// SetStatus sets the "status" field.
func (m *DiscussionMutation) SetStatus(d discussion.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DiscussionMutation) Status() (r discussion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldStatus(ctx context.Context) (v discussion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiscussionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentTurn sets the "current_turn" field.
func (m *DiscussionMutation) SetCurrentTurn(i int) {
	m.current_turn = &i
	m.addcurrent_turn = nil
}

// CurrentTurn returns the value of the "current_turn" field in the mutation.
func (m *DiscussionMutation) CurrentTurn() (r int, exists bool) {
	v := m.current_turn
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTurn returns the old "current_turn" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldCurrentTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTurn: %w", err)
	}
	return oldValue.CurrentTurn, nil
}

// AddCurrentTurn adds i to the "current_turn" field.
func (m *DiscussionMutation) AddCurrentTurn(i int) {
	if m.addcurrent_turn != nil {
		*m.addcurrent_turn += i
	} else {
		m.addcurrent_turn = &i
	}
}

// AddedCurrentTurn returns the value that was added to the "current_turn" field in this mutation.
func (m *DiscussionMutation) AddedCurrentTurn() (r int, exists bool) {
	v := m.addcurrent_turn
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentTurn resets all changes to the "current_turn" field.
func (m *DiscussionMutation) ResetCurrentTurn() {
	m.current_turn = nil
	m.addcurrent_turn = nil
}

// SetMaxTurns sets the "max_turns" field.
func (m *DiscussionMutation) SetMaxTurns(i int) {
	m.max_turns = &i
	m.addmax_turns = nil
}

// MaxTurns returns the value of the "max_turns" field in the mutation.
func (m *DiscussionMutation) MaxTurns() (r int, exists bool) {
	v := m.max_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTurns returns the old "max_turns" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldMaxTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTurns: %w", err)
	}
	return oldValue.MaxTurns, nil
}

// AddMaxTurns adds i to the "max_turns" field.
func (m *DiscussionMutation) AddMaxTurns(i int) {
	if m.addmax_turns != nil {
		*m.addmax_turns += i
	} else {
		m.addmax_turns = &i
	}
}

// AddedMaxTurns returns the value that was added to the "max_turns" field in this mutation.
func (m *DiscussionMutation) AddedMaxTurns() (r int, exists bool) {
	v := m.addmax_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTurns resets all changes to the "max_turns" field.
func (m *DiscussionMutation) ResetMaxTurns() {
	m.max_turns = nil
	m.addmax_turns = nil
}

// SetConsensusReached sets the "consensus_reached" field.
func (m *DiscussionMutation) SetConsensusReached(b bool) {
	m.consensus_reached = &b
}

// ConsensusReached returns the value of the "consensus_reached" field in the mutation.
func (m *DiscussionMutation) ConsensusReached() (r bool, exists bool) {
	v := m.consensus_reached
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusReached returns the old "consensus_reached" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldConsensusReached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusReached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusReached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusReached: %w", err)
	}
	return oldValue.ConsensusReached, nil
}

// ResetConsensusReached resets all changes to the "consensus_reached" field.
func (m *DiscussionMutation) ResetConsensusReached() {
	m.consensus_reached = nil
}

// SetConsensusConfidence sets the "consensus_confidence" field.
func (m *DiscussionMutation) SetConsensusConfidence(f float64) {
	m.consensus_confidence = &f
	m.addconsensus_confidence = nil
}

// ConsensusConfidence returns the value of the "consensus_confidence" field in the mutation.
func (m *DiscussionMutation) ConsensusConfidence() (r float64, exists bool) {
	v := m.consensus_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusConfidence returns the old "consensus_confidence" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldConsensusConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusConfidence: %w", err)
	}
	return oldValue.ConsensusConfidence, nil
}

// AddConsensusConfidence adds f to the "consensus_confidence" field.
func (m *DiscussionMutation) AddConsensusConfidence(f float64) {
	if m.addconsensus_confidence != nil {
		*m.addconsensus_confidence += f
	} else {
		m.addconsensus_confidence = &f
	}
}

// AddedConsensusConfidence returns the value that was added to the "consensus_confidence" field in this mutation.
func (m *DiscussionMutation) AddedConsensusConfidence() (r float64, exists bool) {
	v := m.addconsensus_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConsensusConfidence clears the value of the "consensus_confidence" field.
func (m *DiscussionMutation) ClearConsensusConfidence() {
	m.consensus_confidence = nil
	m.addconsensus_confidence = nil
	m.clearedFields[discussion.FieldConsensusConfidence] = struct{}{}
}

// ConsensusConfidenceCleared returns if the "consensus_confidence" field was cleared in this mutation.
func (m *DiscussionMutation) ConsensusConfidenceCleared() bool {
	_, ok := m.clearedFields[discussion.FieldConsensusConfidence]
	return ok
}

// ResetConsensusConfidence resets all changes to the "consensus_confidence" field.
func (m *DiscussionMutation) ResetConsensusConfidence() {
	m.consensus_confidence = nil
	m.addconsensus_confidence = nil
	delete(m.clearedFields, discussion.FieldConsensusConfidence)
}

// SetFinalSummary sets the "final_summary" field.
func (m *DiscussionMutation) SetFinalSummary(s string) {
	m.final_summary = &s
}

// FinalSummary returns the value of the "final_summary" field in the mutation.
func (m *DiscussionMutation) FinalSummary() (r string, exists bool) {
	v := m.final_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSummary returns the old "final_summary" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldFinalSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSummary: %w", err)
	}
	return oldValue.FinalSummary, nil
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (m *DiscussionMutation) ClearFinalSummary() {
	m.final_summary = nil
	m.clearedFields[discussion.FieldFinalSummary] = struct{}{}
}

// FinalSummaryCleared returns if the "final_summary" field was cleared in this mutation.
func (m *DiscussionMutation) FinalSummaryCleared() bool {
	_, ok := m.clearedFields[discussion.FieldFinalSummary]
	return ok
}

// ResetFinalSummary resets all changes to the "final_summary" field.
func (m *DiscussionMutation) ResetFinalSummary() {
	m.final_summary = nil
	delete(m.clearedFields, discussion.FieldFinalSummary)
}

// SetRoles sets the "roles" field.
func (m *DiscussionMutation) SetRoles(value []map[string]interface{}) {
	m.roles = &value
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *DiscussionMutation) Roles() (r []map[string]interface{}, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldRoles(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds value to the "roles" field.
func (m *DiscussionMutation) AppendRoles(value []map[string]interface{}) {
	m.appendroles = append(m.appendroles, value...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *DiscussionMutation) AppendedRoles() ([]map[string]interface{}, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ResetRoles resets all changes to the "roles" field.
func (m *DiscussionMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DiscussionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiscussionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiscussionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiscussionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiscussionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiscussionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *DiscussionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *DiscussionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *DiscussionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *DiscussionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *DiscussionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *DiscussionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *DiscussionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddPerformanceIDs adds the "performances" edge to the AgentPerformance entity by ids.
func (m *DiscussionMutation) AddPerformanceIDs(ids ...int) {
	if m.performances == nil {
		m.performances = make(map[int]struct{})
	}
	for i := range ids {
		m.performances[ids[i]] = struct{}{}
	}
}

// ClearPerformances clears the "performances" edge to the AgentPerformance entity.
func (m *DiscussionMutation) ClearPerformances() {
	m.clearedperformances = true
}

// PerformancesCleared reports if the "performances" edge to the AgentPerformance entity was cleared.
func (m *DiscussionMutation) PerformancesCleared() bool {
	return m.clearedperformances
}

// RemovePerformanceIDs removes the "performances" edge to the AgentPerformance entity by IDs.
func (m *DiscussionMutation) RemovePerformanceIDs(ids ...int) {
	if m.removedperformances == nil {
		m.removedperformances = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.performances, ids[i])
		m.removedperformances[ids[i]] = struct{}{}
	}
}

// RemovedPerformances returns the removed IDs of the "performances" edge to the AgentPerformance entity.
func (m *DiscussionMutation) RemovedPerformancesIDs() (ids []int) {
	for id := range m.removedperformances {
		ids = append(ids, id)
	}
	return
}

// PerformancesIDs returns the "performances" edge IDs in the mutation.
func (m *DiscussionMutation) PerformancesIDs() (ids []int) {
	for id := range m.performances {
		ids = append(ids, id)
	}
	return
}

// ResetPerformances resets all changes to the "performances" edge.
func (m *DiscussionMutation) ResetPerformances() {
	m.performances = nil
	m.clearedperformances = false
	m.removedperformances = nil
}

// Where appends a list predicates to the DiscussionMutation builder.
func (m *DiscussionMutation) Where(ps ...predicate.Discussion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiscussionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiscussionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Discussion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiscussionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiscussionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Discussion).
func (m *DiscussionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiscussionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.topic != nil {
		fields = append(fields, discussion.FieldTopic)
	}
	if m.user_tag != nil {
		fields = append(fields, discussion.FieldUserTag)
	}
	if m.status != nil {
		fields = append(fields, discussion.FieldStatus)
	}
	if m.current_turn != nil {
		fields = append(fields, discussion.FieldCurrentTurn)
	}
	if m.max_turns != nil {
		fields = append(fields, discussion.FieldMaxTurns)
	}
	if m.consensus_reached != nil {
		fields = append(fields, discussion.FieldConsensusReached)
	}
	if m.consensus_confidence != nil {
		fields = append(fields, discussion.FieldConsensusConfidence)
	}
	if m.final_summary != nil {
		fields = append(fields, discussion.FieldFinalSummary)
	}
	if m.roles != nil {
		fields = append(fields, discussion.FieldRoles)
	}
	if m.created_at != nil {
		fields = append(fields, discussion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, discussion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiscussionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case discussion.FieldTopic:
		return m.Topic()
	case discussion.FieldUserTag:
		return m.UserTag()
	case discussion.FieldStatus:
		return m.Status()
	case discussion.FieldCurrentTurn:
		return m.CurrentTurn()
	case discussion.FieldMaxTurns:
		return m.MaxTurns()
	case discussion.FieldConsensusReached:
		return m.ConsensusReached()
	case discussion.FieldConsensusConfidence:
		return m.ConsensusConfidence()
	case discussion.FieldFinalSummary:
		return m.FinalSummary()
	case discussion.FieldRoles:
		return m.Roles()
	case discussion.FieldCreatedAt:
		return m.CreatedAt()
	case discussion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiscussionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case discussion.FieldTopic:
		return m.OldTopic(ctx)
	case discussion.FieldUserTag:
		return m.OldUserTag(ctx)
	case discussion.FieldStatus:
		return m.OldStatus(ctx)
	case discussion.FieldCurrentTurn:
		return m.OldCurrentTurn(ctx)
	case discussion.FieldMaxTurns:
		return m.OldMaxTurns(ctx)
	case discussion.FieldConsensusReached:
		return m.OldConsensusReached(ctx)
	case discussion.FieldConsensusConfidence:
		return m.OldConsensusConfidence(ctx)
	case discussion.FieldFinalSummary:
		return m.OldFinalSummary(ctx)
	case discussion.FieldRoles:
		return m.OldRoles(ctx)
	case discussion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case discussion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Discussion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case discussion.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case discussion.FieldUserTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserTag(v)
		return nil
	case discussion.FieldStatus:
		v, ok := value.(discussion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case discussion.FieldCurrentTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTurn(v)
		return nil
	case discussion.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTurns(v)
		return nil
	case discussion.FieldConsensusReached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusReached(v)
		return nil
	case discussion.FieldConsensusConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusConfidence(v)
		return nil
	case discussion.FieldFinalSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSummary(v)
		return nil
	case discussion.FieldRoles:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case discussion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case discussion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Discussion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiscussionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_turn != nil {
		fields = append(fields, discussion.FieldCurrentTurn)
	}
	if m.addmax_turns != nil {
		fields = append(fields, discussion.FieldMaxTurns)
	}
	if m.addconsensus_confidence != nil {
		fields = append(fields, discussion.FieldConsensusConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiscussionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case discussion.FieldCurrentTurn:
		return m.AddedCurrentTurn()
	case discussion.FieldMaxTurns:
		return m.AddedMaxTurns()
	case discussion.FieldConsensusConfidence:
		return m.AddedConsensusConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case discussion.FieldCurrentTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentTurn(v)
		return nil
	case discussion.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTurns(v)
		return nil
	case discussion.FieldConsensusConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsensusConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Discussion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiscussionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(discussion.FieldConsensusConfidence) {
		fields = append(fields, discussion.FieldConsensusConfidence)
	}
	if m.FieldCleared(discussion.FieldFinalSummary) {
		fields = append(fields, discussion.FieldFinalSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiscussionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiscussionMutation) ClearField(name string) error {
	switch name {
	case discussion.FieldConsensusConfidence:
		m.ClearConsensusConfidence()
		return nil
	case discussion.FieldFinalSummary:
		m.ClearFinalSummary()
		return nil
	}
	return fmt.Errorf("unknown Discussion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiscussionMutation) ResetField(name string) error {
	switch name {
	case discussion.FieldTopic:
		m.ResetTopic()
		return nil
	case discussion.FieldUserTag:
		m.ResetUserTag()
		return nil
	case discussion.FieldStatus:
		m.ResetStatus()
		return nil
	case discussion.FieldCurrentTurn:
		m.ResetCurrentTurn()
		return nil
	case discussion.FieldMaxTurns:
		m.ResetMaxTurns()
		return nil
	case discussion.FieldConsensusReached:
		m.ResetConsensusReached()
		return nil
	case discussion.FieldConsensusConfidence:
		m.ResetConsensusConfidence()
		return nil
	case discussion.FieldFinalSummary:
		m.ResetFinalSummary()
		return nil
	case discussion.FieldRoles:
		m.ResetRoles()
		return nil
	case discussion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case discussion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Discussion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiscussionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, discussion.EdgeMessages)
	}
	if m.performances != nil {
		edges = append(edges, discussion.EdgePerformances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiscussionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case discussion.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case discussion.EdgePerformances:
		ids := make([]ent.Value, 0, len(m.performances))
		for id := range m.performances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiscussionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, discussion.EdgeMessages)
	}
	if m.removedperformances != nil {
		edges = append(edges, discussion.EdgePerformances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiscussionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case discussion.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case discussion.EdgePerformances:
		ids := make([]ent.Value, 0, len(m.removedperformances))
		for id := range m.removedperformances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiscussionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, discussion.EdgeMessages)
	}
	if m.clearedperformances {
		edges = append(edges, discussion.EdgePerformances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiscussionMutation) EdgeCleared(name string) bool {
	switch name {
	case discussion.EdgeMessages:
		return m.clearedmessages
	case discussion.EdgePerformances:
		return m.clearedperformances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiscussionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Discussion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiscussionMutation) ResetEdge(name string) error {
	switch name {
	case discussion.EdgeMessages:
		m.ResetMessages()
		return nil
	case discussion.EdgePerformances:
		m.ResetPerformances()
		return nil
	}
	return fmt.Errorf("unknown Discussion edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	sequence          *int
	addsequence       *int
	author_kind       *message.AuthorKind
	author_name       *string
	backing_model_id  *string
	body              *string
	turn              *int
	addturn           *int
	extra             *map[string]string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	discussion        *string
	cleareddiscussion bool
	done              bool
	oldValue          func(context.Context) (*Message, error)
	predicates        []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDiscussionID sets the "discussion_id" field.
func (m *MessageMutation) SetDiscussionID(s string) {
	m.discussion = &s
}

// DiscussionID returns the value of the "discussion_id" field in the mutation.
func (m *MessageMutation) DiscussionID() (r string, exists bool) {
	v := m.discussion
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionID returns the old "discussion_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDiscussionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionID: %w", err)
	}
	return oldValue.DiscussionID, nil
}

// ResetDiscussionID resets all changes to the "discussion_id" field.
func (m *MessageMutation) ResetDiscussionID() {
	m.discussion = nil
}

// SetSequence sets the "sequence" field.
func (m *MessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetAuthorKind sets the "author_kind" field.
func (m *MessageMutation) SetAuthorKind(mk message.AuthorKind) {
	m.author_kind = &mk
}

// AuthorKind returns the value of the "author_kind" field in the mutation.
func (m *MessageMutation) AuthorKind() (r message.AuthorKind, exists bool) {
	v := m.author_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorKind returns the old "author_kind" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAuthorKind(ctx context.Context) (v message.AuthorKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorKind: %w", err)
	}
	return oldValue.AuthorKind, nil
}

// ResetAuthorKind resets all changes to the "author_kind" field.
func (m *MessageMutation) ResetAuthorKind() {
	m.author_kind = nil
}

// SetAuthorName sets the "author_name" field.
func (m *MessageMutation) SetAuthorName(s string) {
	m.author_name = &s
}

// AuthorName returns the value of the "author_name" field in the mutation.
func (m *MessageMutation) AuthorName() (r string, exists bool) {
	v := m.author_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorName returns the old "author_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAuthorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorName: %w", err)
	}
	return oldValue.AuthorName, nil
}

// ResetAuthorName resets all changes to the "author_name" field.
func (m *MessageMutation) ResetAuthorName() {
	m.author_name = nil
}

// SetBackingModelID sets the "backing_model_id" field.
func (m *MessageMutation) SetBackingModelID(s string) {
	m.backing_model_id = &s
}

// BackingModelID returns the value of the "backing_model_id" field in the mutation.
func (m *MessageMutation) BackingModelID() (r string, exists bool) {
	v := m.backing_model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBackingModelID returns the old "backing_model_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBackingModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackingModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackingModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackingModelID: %w", err)
	}
	return oldValue.BackingModelID, nil
}

// ResetBackingModelID resets all changes to the "backing_model_id" field.
func (m *MessageMutation) ResetBackingModelID() {
	m.backing_model_id = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
}

// SetTurn sets the "turn" field.
func (m *MessageMutation) SetTurn(i int) {
	m.turn = &i
	m.addturn = nil
}

// Turn returns the value of the "turn" field in the mutation.
func (m *MessageMutation) Turn() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurn returns the old "turn" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurn: %w", err)
	}
	return oldValue.Turn, nil
}

// AddTurn adds i to the "turn" field.
func (m *MessageMutation) AddTurn(i int) {
	if m.addturn != nil {
		*m.addturn += i
	} else {
		m.addturn = &i
	}
}

// AddedTurn returns the value that was added to the "turn" field in this mutation.
func (m *MessageMutation) AddedTurn() (r int, exists bool) {
	v := m.addturn
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurn resets all changes to the "turn" field.
func (m *MessageMutation) ResetTurn() {
	m.turn = nil
	m.addturn = nil
}

// SetExtra sets the "extra" field.
func (m *MessageMutation) SetExtra(value map[string]string) {
	m.extra = &value
}

// Extra returns the value of the "extra" field in the mutation.
func (m *MessageMutation) Extra() (r map[string]string, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldExtra(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// ClearExtra clears the value of the "extra" field.
func (m *MessageMutation) ClearExtra() {
	m.extra = nil
	m.clearedFields[message.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *MessageMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[message.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *MessageMutation) ResetExtra() {
	m.extra = nil
	delete(m.clearedFields, message.FieldExtra)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDiscussion clears the "discussion" edge to the Discussion entity.
func (m *MessageMutation) ClearDiscussion() {
	m.cleareddiscussion = true
	m.clearedFields[message.FieldDiscussionID] = struct{}{}
}

// DiscussionCleared reports if the "discussion" edge to the Discussion entity was cleared.
func (m *MessageMutation) DiscussionCleared() bool {
	return m.cleareddiscussion
}

// DiscussionIDs returns the "discussion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DiscussionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) DiscussionIDs() (ids []string) {
	if id := m.discussion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDiscussion resets all changes to the "discussion" edge.
func (m *MessageMutation) ResetDiscussion() {
	m.discussion = nil
	m.cleareddiscussion = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.discussion != nil {
		fields = append(fields, message.FieldDiscussionID)
	}
	if m.sequence != nil {
		fields = append(fields, message.FieldSequence)
	}
	if m.author_kind != nil {
		fields = append(fields, message.FieldAuthorKind)
	}
	if m.author_name != nil {
		fields = append(fields, message.FieldAuthorName)
	}
	if m.backing_model_id != nil {
		fields = append(fields, message.FieldBackingModelID)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.turn != nil {
		fields = append(fields, message.FieldTurn)
	}
	if m.extra != nil {
		fields = append(fields, message.FieldExtra)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldDiscussionID:
		return m.DiscussionID()
	case message.FieldSequence:
		return m.Sequence()
	case message.FieldAuthorKind:
		return m.AuthorKind()
	case message.FieldAuthorName:
		return m.AuthorName()
	case message.FieldBackingModelID:
		return m.BackingModelID()
	case message.FieldBody:
		return m.Body()
	case message.FieldTurn:
		return m.Turn()
	case message.FieldExtra:
		return m.Extra()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldDiscussionID:
		return m.OldDiscussionID(ctx)
	case message.FieldSequence:
		return m.OldSequence(ctx)
	case message.FieldAuthorKind:
		return m.OldAuthorKind(ctx)
	case message.FieldAuthorName:
		return m.OldAuthorName(ctx)
	case message.FieldBackingModelID:
		return m.OldBackingModelID(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldTurn:
		return m.OldTurn(ctx)
	case message.FieldExtra:
		return m.OldExtra(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldDiscussionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionID(v)
		return nil
	case message.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case message.FieldAuthorKind:
		v, ok := value.(message.AuthorKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorKind(v)
		return nil
	case message.FieldAuthorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorName(v)
		return nil
	case message.FieldBackingModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackingModelID(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurn(v)
		return nil
	case message.FieldExtra:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, message.FieldSequence)
	}
	if m.addturn != nil {
		fields = append(fields, message.FieldTurn)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSequence:
		return m.AddedSequence()
	case message.FieldTurn:
		return m.AddedTurn()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case message.FieldTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurn(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldExtra) {
		fields = append(fields, message.FieldExtra)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldExtra:
		m.ClearExtra()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldDiscussionID:
		m.ResetDiscussionID()
		return nil
	case message.FieldSequence:
		m.ResetSequence()
		return nil
	case message.FieldAuthorKind:
		m.ResetAuthorKind()
		return nil
	case message.FieldAuthorName:
		m.ResetAuthorName()
		return nil
	case message.FieldBackingModelID:
		m.ResetBackingModelID()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldTurn:
		m.ResetTurn()
		return nil
	case message.FieldExtra:
		m.ResetExtra()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.discussion != nil {
		edges = append(edges, message.EdgeDiscussion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeDiscussion:
		if id := m.discussion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddiscussion {
		edges = append(edges, message.EdgeDiscussion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeDiscussion:
		return m.cleareddiscussion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeDiscussion:
		m.ClearDiscussion()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeDiscussion:
		m.ResetDiscussion()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}
