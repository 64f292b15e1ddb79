// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentPerformance is the predicate function for agentperformance builders.
type AgentPerformance func(*sql.Selector)

// Discussion is the predicate function for discussion builders.
type Discussion func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)
