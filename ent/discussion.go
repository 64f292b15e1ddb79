// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parleyhq/parley/ent/discussion"
)

// Discussion is the model entity for the Discussion schema.
type Discussion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Opaque creator identifier; not an auth principal
	UserTag string `json:"user_tag,omitempty"`
	// Status holds the value of the "status" field.
	Status discussion.Status `json:"status,omitempty"`
	// Turn of the last agent message
	CurrentTurn int `json:"current_turn,omitempty"`
	// MaxTurns holds the value of the "max_turns" field.
	MaxTurns int `json:"max_turns,omitempty"`
	// ConsensusReached holds the value of the "consensus_reached" field.
	ConsensusReached bool `json:"consensus_reached,omitempty"`
	// ConsensusConfidence holds the value of the "consensus_confidence" field.
	ConsensusConfidence *float64 `json:"consensus_confidence,omitempty"`
	// FinalSummary holds the value of the "final_summary" field.
	FinalSummary *string `json:"final_summary,omitempty"`
	// Panel snapshot, fixed at creation
	Roles []map[string]interface{} `json:"roles,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiscussionQuery when eager-loading is set.
	Edges        DiscussionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiscussionEdges holds the relations/edges for other nodes in the graph.
type DiscussionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Performances holds the value of the performances edge.
	Performances []*AgentPerformance `json:"performances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e DiscussionEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// PerformancesOrErr returns the Performances value or an error if the edge
// was not loaded in eager-loading.
func (e DiscussionEdges) PerformancesOrErr() ([]*AgentPerformance, error) {
	if e.loadedTypes[1] {
		return e.Performances, nil
	}
	return nil, &NotLoadedError{edge: "performances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Discussion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case discussion.FieldRoles:
			values[i] = new([]byte)
		case discussion.FieldConsensusReached:
			values[i] = new(sql.NullBool)
		case discussion.FieldConsensusConfidence:
			values[i] = new(sql.NullFloat64)
		case discussion.FieldCurrentTurn, discussion.FieldMaxTurns:
			values[i] = new(sql.NullInt64)
		case discussion.FieldID, discussion.FieldTopic, discussion.FieldUserTag, discussion.FieldStatus, discussion.FieldFinalSummary:
			values[i] = new(sql.NullString)
		case discussion.FieldCreatedAt, discussion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Discussion fields.
func (_m *Discussion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case discussion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case discussion.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case discussion.FieldUserTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_tag", values[i])
			} else if value.Valid {
				_m.UserTag = value.String
			}
		case discussion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = discussion.Status(value.String)
			}
		case discussion.FieldCurrentTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_turn", values[i])
			} else if value.Valid {
				_m.CurrentTurn = int(value.Int64)
			}
		case discussion.FieldMaxTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_turns", values[i])
			} else if value.Valid {
				_m.MaxTurns = int(value.Int64)
			}
		case discussion.FieldConsensusReached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_reached", values[i])
			} else if value.Valid {
				_m.ConsensusReached = value.Bool
			}
		case discussion.FieldConsensusConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_confidence", values[i])
			} else if value.Valid {
				_m.ConsensusConfidence = new(float64)
				*_m.ConsensusConfidence = value.Float64
			}
		case discussion.FieldFinalSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_summary", values[i])
			} else if value.Valid {
				_m.FinalSummary = new(string)
				*_m.FinalSummary = value.String
			}
		case discussion.FieldRoles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field roles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Roles); err != nil {
					return fmt.Errorf("unmarshal field roles: %w", err)
				}
			}
		case discussion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case discussion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Discussion.
// This includes values selected through modifiers, order, etc.
func (_m *Discussion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the Discussion entity.
func (_m *Discussion) QueryMessages() *MessageQuery {
	return NewDiscussionClient(_m.config).QueryMessages(_m)
}

// QueryPerformances queries the "performances" edge of the Discussion entity.
func (_m *Discussion) QueryPerformances() *AgentPerformanceQuery {
	return NewDiscussionClient(_m.config).QueryPerformances(_m)
}

// Update returns a builder for updating this Discussion.
// Note that you need to call Discussion.Unwrap() before calling this method if this Discussion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Discussion) Update() *DiscussionUpdateOne {
	return NewDiscussionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Discussion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Discussion) Unwrap() *Discussion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Discussion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Discussion) String() string {
	var builder strings.Builder
	builder.WriteString("Discussion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("user_tag=")
	builder.WriteString(_m.UserTag)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentTurn))
	builder.WriteString(", ")
	builder.WriteString("max_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTurns))
	builder.WriteString(", ")
	builder.WriteString("consensus_reached=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsensusReached))
	builder.WriteString(", ")
	if v := _m.ConsensusConfidence; v != nil {
		builder.WriteString("consensus_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalSummary; v != nil {
		builder.WriteString("final_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("roles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Roles))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Discussions is a parsable slice of Discussion.
type Discussions []*Discussion
