package consensus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

const testTopic = "Should the service adopt event sourcing?"

// fakeGateway answers CompleteJSON with one canned response and records calls.
type fakeGateway struct {
	jsonResponse string
	jsonErr      error
	textResponse string
	textErr      error
	jsonCalls    []gateway.Request
	textCalls    []gateway.Request
}

func (f *fakeGateway) CompleteText(_ context.Context, req gateway.Request) (*gateway.Result, error) {
	f.textCalls = append(f.textCalls, req)
	if f.textErr != nil {
		return nil, f.textErr
	}
	return &gateway.Result{Text: f.textResponse}, nil
}

func (f *fakeGateway) CompleteJSON(_ context.Context, req gateway.Request, out any) (*gateway.Result, error) {
	f.jsonCalls = append(f.jsonCalls, req)
	if f.jsonErr != nil {
		return nil, f.jsonErr
	}
	if err := json.Unmarshal([]byte(f.jsonResponse), out); err != nil {
		return nil, &gateway.Error{Kind: gateway.ErrorKindDecode, Err: err}
	}
	return &gateway.Result{Text: f.jsonResponse}, nil
}

func (f *fakeGateway) Normalize(name string) string { return name }

func analysisJSON(confidence float64, disagreements ...string) string {
	resp := map[string]any{
		"confidence":    confidence,
		"summary":       "panel is converging",
		"agreements":    []string{"shared premise"},
		"disagreements": disagreements,
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

// distinctStatements builds n statements with disjoint word sets so the
// stalemate heuristic stays quiet.
func distinctStatements(n int) []Statement {
	statements := make([]Statement, 0, n)
	for i := 0; i < n; i++ {
		statements = append(statements, Statement{
			RoleName: fmt.Sprintf("Role%d", i),
			Body:     fmt.Sprintf("argument%d point%d detail%d", i*3, i*3+1, i*3+2),
			Turn:     i,
		})
	}
	return statements
}

func TestEvaluator_Evaluate(t *testing.T) {
	t.Run("fewer than three statements skips analysis", func(t *testing.T) {
		gw := &fakeGateway{}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(2), testTopic, 2, 20)
		assert.False(t, snapshot.Reached)
		assert.Equal(t, 0.0, snapshot.Confidence)
		assert.Equal(t, summaryJustStarted, snapshot.Summary)
		assert.Equal(t, models.RecommendationContinue, snapshot.Recommendation)
		assert.Empty(t, gw.jsonCalls, "no meta-model call expected")
	})

	t.Run("stalemate short-circuits without LLM", func(t *testing.T) {
		gw := &fakeGateway{}
		e := NewEvaluator(gw, "meta", 0.85)

		statements := make([]Statement, 6)
		for i := range statements {
			statements[i] = Statement{RoleName: "A", Body: "we should adopt event sourcing immediately", Turn: i}
		}

		snapshot := e.Evaluate(context.Background(), statements, testTopic, 6, 20)
		assert.False(t, snapshot.Reached)
		assert.Equal(t, 0.3, snapshot.Confidence)
		assert.Equal(t, summaryStalemate, snapshot.Summary)
		assert.Equal(t, []string{disagreementStalemate}, snapshot.Disagreements)
		assert.Equal(t, models.RecommendationEscalate, snapshot.Recommendation)
		assert.Empty(t, gw.jsonCalls, "stalemate must not invoke the meta-model")
	})

	t.Run("threshold defines reached", func(t *testing.T) {
		tests := []struct {
			name        string
			confidence  float64
			wantReached bool
		}{
			{"below threshold", 0.84, false},
			{"exactly threshold", 0.85, true},
			{"above threshold", 0.95, true},
			{"zero", 0.0, false},
			{"one", 1.0, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gw := &fakeGateway{jsonResponse: analysisJSON(tt.confidence, "open issue")}
				e := NewEvaluator(gw, "meta", 0.85)

				snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
				assert.Equal(t, tt.wantReached, snapshot.Reached)
				assert.Equal(t, tt.confidence, snapshot.Confidence)
				assert.Equal(t, tt.wantReached, snapshot.Confidence >= 0.85)
			})
		}
	})

	t.Run("reached recommends conclude", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.95, "minor nit")}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
		assert.True(t, snapshot.Reached)
		assert.Equal(t, models.RecommendationConclude, snapshot.Recommendation)
	})

	t.Run("turn cap recommends conclude", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.4, "still arguing")}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 20, 20)
		assert.False(t, snapshot.Reached)
		assert.Equal(t, models.RecommendationConclude, snapshot.Recommendation)
	})

	t.Run("no disagreements recommends conclude", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.6)}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
		assert.False(t, snapshot.Reached)
		assert.Equal(t, models.RecommendationConclude, snapshot.Recommendation)
	})

	t.Run("open disagreements recommend continue", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.5, "latency concerns", "cost concerns")}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
		assert.Equal(t, models.RecommendationContinue, snapshot.Recommendation)
		assert.Len(t, snapshot.Disagreements, 2)
	})

	t.Run("analysis failure yields neutral snapshot", func(t *testing.T) {
		gw := &fakeGateway{jsonErr: &gateway.Error{Kind: gateway.ErrorKindTransport}}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
		assert.False(t, snapshot.Reached)
		assert.Equal(t, 0.5, snapshot.Confidence)
		assert.Equal(t, summaryUnanalyzable, snapshot.Summary)
		assert.Equal(t, []string{disagreementAnalysisError}, snapshot.Disagreements)
		assert.Equal(t, models.RecommendationContinue, snapshot.Recommendation)
	})

	t.Run("failure at turn cap still recommends continue", func(t *testing.T) {
		gw := &fakeGateway{jsonErr: &gateway.Error{Kind: gateway.ErrorKindDecode}}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 20, 20)
		assert.Equal(t, models.RecommendationContinue, snapshot.Recommendation)
	})

	t.Run("out-of-range confidence treated as failure", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: `{"confidence":1.4,"summary":"overconfident","agreements":[],"disagreements":[]}`}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := e.Evaluate(context.Background(), distinctStatements(4), testTopic, 4, 20)
		assert.Equal(t, 0.5, snapshot.Confidence)
		assert.Equal(t, summaryUnanalyzable, snapshot.Summary)
	})

	t.Run("analysis sees only the last ten statements", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.5, "open")}
		e := NewEvaluator(gw, "meta", 0.85)

		statements := distinctStatements(12)
		e.Evaluate(context.Background(), statements, testTopic, 12, 20)
		require.Len(t, gw.jsonCalls, 1)

		prompt := gw.jsonCalls[0].Messages[0].Content
		assert.NotContains(t, prompt, "**Role0**")
		assert.NotContains(t, prompt, "**Role1**")
		assert.Contains(t, prompt, "**Role2**")
		assert.Contains(t, prompt, "**Role11**")
	})

	t.Run("analysis call shape", func(t *testing.T) {
		gw := &fakeGateway{jsonResponse: analysisJSON(0.5, "open")}
		e := NewEvaluator(gw, "meta-model-x", 0.85)

		statements := []Statement{
			{RoleName: "System", Body: "Discussion started", Turn: 0},
			{RoleName: "Architect", Body: "Event sourcing fits audit needs", Turn: 1},
			{RoleName: "Operator", Body: "Replays worry me", Turn: 2},
		}
		e.Evaluate(context.Background(), statements, testTopic, 3, 20)
		require.Len(t, gw.jsonCalls, 1)

		call := gw.jsonCalls[0]
		assert.Equal(t, "meta-model-x", call.Model)
		assert.InDelta(t, 0.2, call.Temperature, 0.001)
		assert.Contains(t, call.Messages[0].Content, testTopic)
		assert.Contains(t, call.Messages[0].Content, "**Architect** (Turn 1):\nEvent sourcing fits audit needs")
	})
}

func TestEvaluator_FinalSummary(t *testing.T) {
	t.Run("returns generated digest", func(t *testing.T) {
		gw := &fakeGateway{textResponse: "The panel agreed on a phased rollout."}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := models.ConsensusSnapshot{Reached: true, Confidence: 0.92, Summary: "fallback", Agreements: []string{"phased rollout"}}
		got := e.FinalSummary(context.Background(), distinctStatements(4), testTopic, snapshot)
		assert.Equal(t, "The panel agreed on a phased rollout.", got)

		require.Len(t, gw.textCalls, 1)
		call := gw.textCalls[0]
		assert.InDelta(t, 0.3, call.Temperature, 0.001)
		assert.Contains(t, call.Messages[0].Content, "✅ Reached")
		assert.Contains(t, call.Messages[0].Content, "92%")
		assert.Contains(t, call.Messages[0].Content, "- phased rollout")
		assert.Contains(t, call.Messages[0].Content, "None")
	})

	t.Run("not reached renders warning status", func(t *testing.T) {
		gw := &fakeGateway{textResponse: "summary"}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := models.ConsensusSnapshot{Reached: false, Confidence: 0.4, Disagreements: []string{"cost"}}
		e.FinalSummary(context.Background(), distinctStatements(4), testTopic, snapshot)
		require.Len(t, gw.textCalls, 1)
		prompt := gw.textCalls[0].Messages[0].Content
		assert.Contains(t, prompt, "⚠️ Not fully reached")
		assert.Contains(t, prompt, "- cost")
		assert.NotContains(t, strings.Split(prompt, "**Remaining disagreements**:")[1], "None")
	})

	t.Run("failure reuses snapshot summary", func(t *testing.T) {
		gw := &fakeGateway{textErr: &gateway.Error{Kind: gateway.ErrorKindUpstream, StatusCode: 502}}
		e := NewEvaluator(gw, "meta", 0.85)

		snapshot := models.ConsensusSnapshot{Reached: false, Confidence: 0.5, Summary: "state as analyzed"}
		got := e.FinalSummary(context.Background(), distinctStatements(4), testTopic, snapshot)
		assert.Equal(t, "state as analyzed", got)
	})
}
