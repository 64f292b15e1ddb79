package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statementsFromBodies(bodies ...string) []Statement {
	statements := make([]Statement, 0, len(bodies))
	for i, body := range bodies {
		statements = append(statements, Statement{RoleName: "R", Body: body, Turn: i})
	}
	return statements
}

func TestDetectStalemate(t *testing.T) {
	t.Run("fewer than six statements never stalls", func(t *testing.T) {
		statements := statementsFromBodies("same words here", "same words here", "same words here", "same words here", "same words here")
		assert.False(t, detectStalemate(statements))
	})

	t.Run("six identical statements stall", func(t *testing.T) {
		bodies := make([]string, 6)
		for i := range bodies {
			bodies[i] = "we must migrate to the new queue"
		}
		assert.True(t, detectStalemate(statementsFromBodies(bodies...)))
	})

	t.Run("three identical among six is enough", func(t *testing.T) {
		// Three identical bodies form exactly 3 similar pairs (> 2).
		statements := statementsFromBodies(
			"completely different opening thoughts",
			"the budget favors a staged rollout this quarter",
			"the budget favors a staged rollout this quarter",
			"the budget favors a staged rollout this quarter",
			"unrelated operational commentary entirely",
			"yet another distinct viewpoint on tooling",
		)
		assert.True(t, detectStalemate(statements))
	})

	t.Run("two similar pairs are tolerated", func(t *testing.T) {
		// Two identical pairs => 2 similar pairs, not more than 2.
		statements := statementsFromBodies(
			"alpha beta gamma delta",
			"alpha beta gamma delta",
			"epsilon zeta eta theta",
			"epsilon zeta eta theta",
			"iota kappa lambda mu",
			"nu xi omicron pi",
		)
		assert.False(t, detectStalemate(statements))
	})

	t.Run("only the trailing six are inspected", func(t *testing.T) {
		bodies := []string{
			"repeat me exactly", "repeat me exactly", "repeat me exactly",
			"repeat me exactly", "repeat me exactly", "repeat me exactly",
			// Six fresh distinct statements push the repeats out of the window.
			"one two three", "four five six", "seven eight nine",
			"ten eleven twelve", "thirteen fourteen fifteen", "sixteen seventeen eighteen",
		}
		assert.False(t, detectStalemate(statementsFromBodies(bodies...)))
	})

	t.Run("empty bodies are skipped", func(t *testing.T) {
		statements := statementsFromBodies("", "", "", "", "", "")
		assert.False(t, detectStalemate(statements))
	})

	t.Run("case differences do not defeat the heuristic", func(t *testing.T) {
		bodies := make([]string, 6)
		for i := range bodies {
			if i%2 == 0 {
				bodies[i] = "THE REGION FAILOVER IS MANDATORY"
			} else {
				bodies[i] = "the region failover is mandatory"
			}
		}
		assert.True(t, detectStalemate(statementsFromBodies(bodies...)))
	})
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "a b c d", "a b c d", 1.0},
		{"disjoint", "a b c", "x y z", 0.0},
		{"half overlap", "a b c d", "c d e f", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jaccard(wordSet(tt.a), wordSet(tt.b))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestWordSet(t *testing.T) {
	set := wordSet("The quick the QUICK fox")
	assert.Len(t, set, 3)
	assert.True(t, set["the"])
	assert.True(t, set["quick"])
	assert.True(t, set["fox"])
}
