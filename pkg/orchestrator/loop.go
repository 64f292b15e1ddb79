package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parleyhq/parley/pkg/consensus"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

const (
	utteranceTemperature = 0.7
	utteranceMaxTokens   = 500

	// consensusCheckStart is the first turn eligible for a consensus
	// check; checks run on even turns only, so the first happens at 4.
	consensusCheckStart = 3
)

// runLoop drives one discussion to a terminal state: pick a speaker,
// elicit an utterance, append + publish, check consensus on the even-turn
// cadence, until convergence, escalation, the turn cap, or a stop.
func (o *Orchestrator) runLoop(d *Discussion) {
	defer o.wg.Done()
	defer d.clearRunning()

	logger := o.logger.With("discussion_id", d.ID())
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Turn loop panicked", "panic", r)
			o.fail(d, logger, fmt.Sprintf("internal error: %v", r))
		}
	}()

	logger.Info("Turn loop started", "max_turns", d.MaxTurns())

	for {
		if d.stopPending() {
			o.finishStopped(d, logger)
			return
		}
		if o.loopCtx.Err() != nil {
			o.fail(d, logger, "process shutting down")
			return
		}

		t := d.CurrentTurn() + 1
		role := o.selectSpeaker(o.loopCtx, d)
		body, sample := o.elicit(o.loopCtx, d, role, t)

		msg, err := d.appendAgentMessage(role, body, t)
		if err != nil {
			// Stop won the race while the LLM call was in flight; the
			// result is discarded and the next check finishes the loop.
			logger.Info("In-flight utterance discarded", "role", role.Name, "turn", t)
			continue
		}
		o.persist(func(ctx context.Context) error { return o.store.SaveMessage(ctx, msg, nil) },
			"save agent message", d.ID())
		o.persist(func(ctx context.Context) error { return o.store.SavePerformance(ctx, sample) },
			"save performance sample", d.ID())
		o.bus.Publish(d.ID(), events.NewAgentMessage(d.ID(), role.Name, role.BackingModelID, body, t))

		snap := d.snapshot()
		o.persist(func(ctx context.Context) error { return o.store.UpdateDiscussion(ctx, snap) },
			"update discussion", d.ID())

		if t >= consensusCheckStart && t%2 == 0 {
			verdict := o.evaluator.Evaluate(o.loopCtx, o.statements(d), d.Topic(), t, d.MaxTurns())
			if verdict.Reached {
				logger.Info("Consensus reached", "turn", t, "confidence", verdict.Confidence)
				o.finish(d, logger, &verdict)
				return
			}
			if verdict.Recommendation == models.RecommendationEscalate {
				logger.Warn("Stalemate escalation, concluding without consensus", "turn", t)
				o.finish(d, logger, &verdict)
				return
			}
			o.bus.Publish(d.ID(), events.NewConsensusUpdate(d.ID(),
				verdict.Reached, verdict.Confidence, verdict.Summary,
				verdict.Agreements, verdict.Disagreements))
		}

		if t >= d.MaxTurns() {
			logger.Info("Turn cap reached", "turn", t)
			o.finish(d, logger, nil)
			return
		}
	}
}

// elicit asks the speaking role's backing model for its utterance. LLM
// failure never fails the turn: the message body carries the error marker
// instead, so the discussion keeps moving.
func (o *Orchestrator) elicit(ctx context.Context, d *Discussion, role models.Role, turn int) (string, models.PerformanceSample) {
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.PerCallTimeout)
	defer cancel()

	sample := models.PerformanceSample{
		DiscussionID:   d.ID(),
		RoleName:       role.Name,
		BackingModelID: role.BackingModelID,
		Turn:           turn,
	}

	start := time.Now()
	res, err := o.gateway.CompleteText(callCtx, gateway.Request{
		Model:       role.BackingModelID,
		Messages:    buildAgentTranscript(role, d.messagesSnapshot()),
		Temperature: utteranceTemperature,
		MaxTokens:   utteranceMaxTokens,
	})
	sample.ResponseTimeMS = time.Since(start).Milliseconds()

	if err != nil {
		o.logger.Warn("Utterance failed, recording error marker",
			"discussion_id", d.ID(), "role", role.Name, "model", role.BackingModelID, "error", err)
		return fmt.Sprintf("[Error generating response: %v]", err), sample
	}
	sample.TokenCount = res.Usage.TotalTokens
	return res.Text, sample
}

// statements converts the transcript into evaluator input, filtering user
// interjections out. The framing message stays in: it counts toward the
// evaluator's minimum-statement guard.
func (o *Orchestrator) statements(d *Discussion) []consensus.Statement {
	msgs := d.messagesSnapshot()
	stmts := make([]consensus.Statement, 0, len(msgs))
	for _, msg := range msgs {
		if msg.AuthorKind == models.AuthorKindUser {
			continue
		}
		stmts = append(stmts, consensus.Statement{
			RoleName: msg.AuthorName,
			Body:     msg.Body,
			Turn:     msg.Turn,
		})
	}
	return stmts
}

// finish concludes a discussion that ran its course. verdict is the
// snapshot that broke the loop, or nil at the turn cap, in which case one
// final evaluation runs. Status follows the verdict: completed when
// consensus was reached, no_consensus otherwise.
func (o *Orchestrator) finish(d *Discussion, logger *slog.Logger, verdict *models.ConsensusSnapshot) {
	stmts := o.statements(d)
	if verdict == nil {
		v := o.evaluator.Evaluate(o.loopCtx, stmts, d.Topic(), d.CurrentTurn(), d.MaxTurns())
		verdict = &v
	}
	if verdict.Reached {
		d.markConsensus(verdict.Confidence)
	}
	summary := o.evaluator.FinalSummary(o.loopCtx, stmts, d.Topic(), *verdict)

	status := models.StatusNoConsensus
	if verdict.Reached {
		status = models.StatusCompleted
	}
	d.finalize(status, &verdict.Confidence, summary)

	final := d.snapshot()
	o.persist(func(ctx context.Context) error { return o.store.UpdateDiscussion(ctx, final) },
		"record terminal state", d.ID())
	logger.Info("Discussion finished",
		"status", final.Status, "total_turns", final.CurrentTurn, "consensus_reached", final.ConsensusReached)

	o.bus.Publish(d.ID(), events.NewDiscussionComplete(d.ID(),
		final.CurrentTurn, final.ConsensusReached, summary))
	o.bus.Close(d.ID())
}

// finishStopped concludes a caller-stopped discussion: no further LLM
// calls, just the terminal event and the write-through.
func (o *Orchestrator) finishStopped(d *Discussion, logger *slog.Logger) {
	d.finalize(models.StatusStopped, nil, "")

	final := d.snapshot()
	o.persist(func(ctx context.Context) error { return o.store.UpdateDiscussion(ctx, final) },
		"record stop", d.ID())
	logger.Info("Discussion stopped", "total_turns", final.CurrentTurn)

	o.bus.Publish(d.ID(), events.NewDiscussionStopped(d.ID(), "stopped by user"))
	o.bus.Close(d.ID())
}

// fail records an unrecoverable loop failure and ends the stream with an
// error event.
func (o *Orchestrator) fail(d *Discussion, logger *slog.Logger, message string) {
	if !d.markFailed() {
		// Already terminal; nothing to record, but the stream still ends.
		o.bus.Close(d.ID())
		return
	}
	final := d.snapshot()
	o.persist(func(ctx context.Context) error { return o.store.UpdateDiscussion(ctx, final) },
		"record failure", d.ID())
	logger.Error("Discussion failed", "reason", message, "total_turns", final.CurrentTurn)

	o.bus.Publish(d.ID(), events.NewError(d.ID(), message))
	o.bus.Close(d.ID())
}
