// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
)

// AgentPerformance is the model entity for the AgentPerformance schema.
type AgentPerformance struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DiscussionID holds the value of the "discussion_id" field.
	DiscussionID string `json:"discussion_id,omitempty"`
	// RoleName holds the value of the "role_name" field.
	RoleName string `json:"role_name,omitempty"`
	// BackingModelID holds the value of the "backing_model_id" field.
	BackingModelID string `json:"backing_model_id,omitempty"`
	// Turn holds the value of the "turn" field.
	Turn int `json:"turn,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	// 0 when the gateway omits usage
	TokenCount int `json:"token_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentPerformanceQuery when eager-loading is set.
	Edges        AgentPerformanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentPerformanceEdges holds the relations/edges for other nodes in the graph.
type AgentPerformanceEdges struct {
	// Discussion holds the value of the discussion edge.
	Discussion *Discussion `json:"discussion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DiscussionOrErr returns the Discussion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentPerformanceEdges) DiscussionOrErr() (*Discussion, error) {
	if e.Discussion != nil {
		return e.Discussion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: discussion.Label}
	}
	return nil, &NotLoadedError{edge: "discussion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentPerformance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldID, agentperformance.FieldTurn, agentperformance.FieldResponseTimeMs, agentperformance.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case agentperformance.FieldDiscussionID, agentperformance.FieldRoleName, agentperformance.FieldBackingModelID:
			values[i] = new(sql.NullString)
		case agentperformance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentPerformance fields.
func (_m *AgentPerformance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentperformance.FieldDiscussionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discussion_id", values[i])
			} else if value.Valid {
				_m.DiscussionID = value.String
			}
		case agentperformance.FieldRoleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_name", values[i])
			} else if value.Valid {
				_m.RoleName = value.String
			}
		case agentperformance.FieldBackingModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backing_model_id", values[i])
			} else if value.Valid {
				_m.BackingModelID = value.String
			}
		case agentperformance.FieldTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn", values[i])
			} else if value.Valid {
				_m.Turn = int(value.Int64)
			}
		case agentperformance.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = value.Int64
			}
		case agentperformance.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case agentperformance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentPerformance.
// This includes values selected through modifiers, order, etc.
func (_m *AgentPerformance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDiscussion queries the "discussion" edge of the AgentPerformance entity.
func (_m *AgentPerformance) QueryDiscussion() *DiscussionQuery {
	return NewAgentPerformanceClient(_m.config).QueryDiscussion(_m)
}

// Update returns a builder for updating this AgentPerformance.
// Note that you need to call AgentPerformance.Unwrap() before calling this method if this AgentPerformance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentPerformance) Update() *AgentPerformanceUpdateOne {
	return NewAgentPerformanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentPerformance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentPerformance) Unwrap() *AgentPerformance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentPerformance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentPerformance) String() string {
	var builder strings.Builder
	builder.WriteString("AgentPerformance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("discussion_id=")
	builder.WriteString(_m.DiscussionID)
	builder.WriteString(", ")
	builder.WriteString("role_name=")
	builder.WriteString(_m.RoleName)
	builder.WriteString(", ")
	builder.WriteString("backing_model_id=")
	builder.WriteString(_m.BackingModelID)
	builder.WriteString(", ")
	builder.WriteString("turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turn))
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentPerformances is a parsable slice of AgentPerformance.
type AgentPerformances []*AgentPerformance
