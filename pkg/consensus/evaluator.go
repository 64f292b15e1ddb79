// Package consensus judges whether a discussion panel has converged,
// combining a lexical stalemate heuristic with meta-model analysis.
package consensus

import (
	"context"
	"log/slog"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

const (
	// minStatements is the floor below which evaluation is skipped.
	minStatements = 3
	// recentWindow is how many trailing statements the meta-model sees.
	recentWindow = 10
)

// Statement is one evaluator input record. Callers convert from full
// messages and must filter user interjections out first.
type Statement struct {
	RoleName string
	Body     string
	Turn     int
}

// Evaluator analyzes discussion transcripts for consensus. All LLM
// failures degrade to a neutral snapshot; Evaluate never fails upward.
type Evaluator struct {
	gateway   gateway.Client
	metaModel string
	threshold float64
	logger    *slog.Logger
}

// NewEvaluator creates a consensus evaluator. Consensus is reached when
// the judged confidence is at least threshold.
func NewEvaluator(gw gateway.Client, metaModel string, threshold float64) *Evaluator {
	return &Evaluator{
		gateway:   gw,
		metaModel: metaModel,
		threshold: threshold,
		logger:    slog.Default().With("component", "consensus-evaluator"),
	}
}

// analysisResponse is the wire shape of the meta-model's judgment.
type analysisResponse struct {
	Confidence    float64  `json:"confidence"`
	Summary       string   `json:"summary"`
	Agreements    []string `json:"agreements"`
	Disagreements []string `json:"disagreements"`
}

// Evaluate judges the current consensus level. statements must be the
// discussion's non-user messages in order; currentTurn and maxTurns
// steer the recommendation.
func (e *Evaluator) Evaluate(ctx context.Context, statements []Statement, topic string, currentTurn, maxTurns int) models.ConsensusSnapshot {
	e.logger.Info("Checking consensus", "turn", currentTurn, "max_turns", maxTurns)

	if len(statements) < minStatements {
		return models.ConsensusSnapshot{
			Reached:        false,
			Confidence:     0.0,
			Summary:        summaryJustStarted,
			Recommendation: models.RecommendationContinue,
		}
	}

	if detectStalemate(statements) {
		e.logger.Warn("Stalemate detected", "turn", currentTurn)
		return models.ConsensusSnapshot{
			Reached:        false,
			Confidence:     0.3,
			Summary:        summaryStalemate,
			Disagreements:  []string{disagreementStalemate},
			Recommendation: models.RecommendationEscalate,
		}
	}

	snapshot, ok := e.analyze(ctx, statements, topic)
	if !ok {
		return snapshot
	}

	switch {
	case snapshot.Reached:
		snapshot.Recommendation = models.RecommendationConclude
	case currentTurn >= maxTurns:
		snapshot.Recommendation = models.RecommendationConclude
	case len(snapshot.Disagreements) == 0:
		snapshot.Recommendation = models.RecommendationConclude
	default:
		snapshot.Recommendation = models.RecommendationContinue
	}

	e.logger.Info("Consensus evaluated",
		"reached", snapshot.Reached,
		"confidence", snapshot.Confidence,
		"recommendation", snapshot.Recommendation)
	return snapshot
}

// analyze runs the meta-model judgment over the recent window. The
// second return is false when analysis failed and the neutral snapshot
// must be returned untouched.
func (e *Evaluator) analyze(ctx context.Context, statements []Statement, topic string) (models.ConsensusSnapshot, bool) {
	recent := statements
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	req := gateway.Request{
		Model:       e.metaModel,
		Messages:    []gateway.ChatMessage{{Role: gateway.RoleUser, Content: buildAnalysisPrompt(topic, recent)}},
		Temperature: 0.2,
	}

	var resp analysisResponse
	if _, err := e.gateway.CompleteJSON(ctx, req, &resp); err != nil {
		e.logger.Warn("Consensus analysis failed, using neutral snapshot", "error", err)
		return neutralSnapshot(), false
	}
	if resp.Confidence < 0 || resp.Confidence > 1 {
		e.logger.Warn("Consensus analysis returned out-of-range confidence, using neutral snapshot",
			"confidence", resp.Confidence)
		return neutralSnapshot(), false
	}

	return models.ConsensusSnapshot{
		Reached:       resp.Confidence >= e.threshold,
		Confidence:    resp.Confidence,
		Summary:       resp.Summary,
		Agreements:    resp.Agreements,
		Disagreements: resp.Disagreements,
	}, true
}

// FinalSummary produces the wrap-up digest for a finished discussion.
// On failure the snapshot's own summary is reused.
func (e *Evaluator) FinalSummary(ctx context.Context, statements []Statement, topic string, snapshot models.ConsensusSnapshot) string {
	req := gateway.Request{
		Model: e.metaModel,
		Messages: []gateway.ChatMessage{{
			Role:    gateway.RoleUser,
			Content: buildFinalSummaryPrompt(topic, statements, snapshot.Reached, snapshot.Confidence, snapshot.Agreements, snapshot.Disagreements),
		}},
		Temperature: 0.3,
	}

	res, err := e.gateway.CompleteText(ctx, req)
	if err != nil {
		e.logger.Warn("Final summary generation failed, reusing snapshot summary", "error", err)
		return snapshot.Summary
	}
	return res.Text
}

func neutralSnapshot() models.ConsensusSnapshot {
	return models.ConsensusSnapshot{
		Reached:        false,
		Confidence:     0.5,
		Summary:        summaryUnanalyzable,
		Disagreements:  []string{disagreementAnalysisError},
		Recommendation: models.RecommendationContinue,
	}
}
