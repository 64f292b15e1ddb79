package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/consensus"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
)

const (
	testMetaModel = "meta"
	testTopic     = "What are the best strategies for treating chronic migraine?"
)

// scriptedGateway is the per-test LLM stand-in. Calls routed to the meta
// model and to panel models draw from separate reply sources; a nil
// channel answers immediately with the fixed text, a non-nil channel
// blocks until the test feeds a reply, giving tests a pacing handle.
type scriptedGateway struct {
	metaReplies chan string
	metaText    string
	replies     chan string
	text        string

	mu        sync.Mutex
	textCalls []gateway.Request
	jsonCalls []gateway.Request
}

func (g *scriptedGateway) CompleteText(ctx context.Context, req gateway.Request) (*gateway.Result, error) {
	g.mu.Lock()
	g.textCalls = append(g.textCalls, req)
	g.mu.Unlock()

	src, fallback := g.replies, g.text
	if req.Model == testMetaModel {
		src, fallback = g.metaReplies, g.metaText
	}
	if src == nil {
		return &gateway.Result{Text: fallback, Usage: gateway.Usage{TotalTokens: 7}}, nil
	}
	select {
	case body := <-src:
		return &gateway.Result{Text: body, Usage: gateway.Usage{TotalTokens: 7}}, nil
	case <-ctx.Done():
		return nil, &gateway.Error{Kind: gateway.ErrorKindTransport, Err: ctx.Err()}
	}
}

func (g *scriptedGateway) CompleteJSON(ctx context.Context, req gateway.Request, out any) (*gateway.Result, error) {
	g.mu.Lock()
	g.jsonCalls = append(g.jsonCalls, req)
	g.mu.Unlock()
	return nil, &gateway.Error{Kind: gateway.ErrorKindDecode, Message: "not scripted"}
}

func (g *scriptedGateway) Normalize(name string) string { return name }

func (g *scriptedGateway) recordedTextCalls() []gateway.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	calls := make([]gateway.Request, len(g.textCalls))
	copy(calls, g.textCalls)
	return calls
}

// scriptedEvaluator returns canned verdicts in order; the last one repeats.
type scriptedEvaluator struct {
	mu       sync.Mutex
	verdicts []models.ConsensusSnapshot
	summary  string
	turns    []int
}

func (e *scriptedEvaluator) Evaluate(_ context.Context, _ []consensus.Statement, _ string, currentTurn, _ int) models.ConsensusSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.turns = append(e.turns, currentTurn)
	v := e.verdicts[0]
	if len(e.verdicts) > 1 {
		e.verdicts = e.verdicts[1:]
	}
	return v
}

func (e *scriptedEvaluator) FinalSummary(_ context.Context, _ []consensus.Statement, _ string, snapshot models.ConsensusSnapshot) string {
	if e.summary != "" {
		return e.summary
	}
	return snapshot.Summary
}

func (e *scriptedEvaluator) evaluatedTurns() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	turns := make([]int, len(e.turns))
	copy(turns, e.turns)
	return turns
}

// fixedSynth returns a pre-built panel, sized to the request.
type fixedSynth struct{ roles []models.Role }

func (s fixedSynth) Synthesize(_ context.Context, _ string, numRoles int, _ []string) []models.Role {
	if numRoles > len(s.roles) {
		numRoles = len(s.roles)
	}
	return s.roles[:numRoles]
}

func testPanel() []models.Role {
	return []models.Role{
		{Name: "Neurologist", Expertise: "clinical neurology", Perspective: "evidence first", BackingModelID: "model-a", SystemInstruction: "You are a Neurologist."},
		{Name: "Pharmacologist", Expertise: "drug interactions", Perspective: "pharmacokinetics", BackingModelID: "model-b", SystemInstruction: "You are a Pharmacologist."},
		{Name: "Patient Advocate", Expertise: "lived experience", Perspective: "quality of life", BackingModelID: "model-c", SystemInstruction: "You are a Patient Advocate."},
	}
}

func newTestOrchestrator(t *testing.T, gw gateway.Client, evaluator ConsensusEvaluator) *Orchestrator {
	t.Helper()
	o := New(Config{MetaModelID: testMetaModel, PerCallTimeout: 5 * time.Second, SpeakerPickTimeout: time.Second},
		gw, fixedSynth{roles: testPanel()}, evaluator, events.NewBus(64), nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.Shutdown(ctx)
	})
	return o
}

func createRequest(maxTurns int) models.CreateDiscussionRequest {
	return models.CreateDiscussionRequest{
		Topic:     testTopic,
		NumAgents: 3,
		UserTag:   "tester",
		MaxTurns:  maxTurns,
	}
}

// feed delivers one scripted reply, failing the test instead of hanging.
func feed(t *testing.T, ch chan string, body string) {
	t.Helper()
	select {
	case ch <- body:
	case <-time.After(5 * time.Second):
		t.Fatalf("turn loop never consumed scripted reply %q", body)
	}
}

// nextEvent receives one event or fails.
func nextEvent(t *testing.T, sub *events.Subscription) events.Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "event stream ended early")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

// drainEvents collects everything until end-of-stream.
func drainEvents(t *testing.T, sub *events.Subscription) []events.Event {
	t.Helper()
	var got []events.Event
	deadline := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-deadline:
			t.Fatal("timed out waiting for event stream to end")
		}
	}
}

func eventTypes(evs []events.Event) []events.Type {
	types := make([]events.Type, len(evs))
	for i, ev := range evs {
		types[i] = ev.Type
	}
	return types
}

func TestCreate_Validation(t *testing.T) {
	o := newTestOrchestrator(t, &scriptedGateway{}, &scriptedEvaluator{verdicts: []models.ConsensusSnapshot{{}}})

	tests := []struct {
		name  string
		req   models.CreateDiscussionRequest
		field string
	}{
		{"topic too short", models.CreateDiscussionRequest{Topic: "short", NumAgents: 3, UserTag: "u"}, "topic"},
		{"topic too long", models.CreateDiscussionRequest{Topic: strings.Repeat("x", 501), NumAgents: 3, UserTag: "u"}, "topic"},
		{"missing user tag", models.CreateDiscussionRequest{Topic: testTopic, NumAgents: 3, UserTag: "  "}, "user_tag"},
		{"too few agents", models.CreateDiscussionRequest{Topic: testTopic, NumAgents: 1, UserTag: "u"}, "num_agents"},
		{"too many agents", models.CreateDiscussionRequest{Topic: testTopic, NumAgents: 9, UserTag: "u"}, "num_agents"},
		{"max turns below range", models.CreateDiscussionRequest{Topic: testTopic, NumAgents: 3, UserTag: "u", MaxTurns: 2}, "max_turns"},
		{"max turns above range", models.CreateDiscussionRequest{Topic: testTopic, NumAgents: 3, UserTag: "u", MaxTurns: 51}, "max_turns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.Create(context.Background(), tt.req)
			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestOrchestrator_NotFound(t *testing.T) {
	o := newTestOrchestrator(t, &scriptedGateway{}, &scriptedEvaluator{verdicts: []models.ConsensusSnapshot{{}}})
	ctx := context.Background()

	_, err := o.Inspect(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = o.Transcript(ctx, "missing", 10, 0)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = o.PostUserMessage(ctx, "missing", "hello there", "u1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, o.Stop(ctx, "missing"), services.ErrNotFound)
	assert.ErrorIs(t, o.Run("missing"), services.ErrNotFound)

	_, err = o.Subscribe("missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// Happy path: a converging panel terminates at turn 4, the first even
// turn eligible for a consensus check.
func TestOrchestrator_HappyPathConsensus(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{
			Reached:        true,
			Confidence:     0.95,
			Summary:        "full agreement",
			Recommendation: models.RecommendationConclude,
		}},
		summary: "Unanimous agreement on combination therapy.",
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(20))
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, snap.Status)
	assert.Len(t, snap.Roles, 3)

	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		feed(t, gw.replies, "I concur.")
	}
	evs := drainEvents(t, sub)

	require.Equal(t, []events.Type{
		events.TypeConnected,
		events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage,
		events.TypeDiscussionComplete,
	}, eventTypes(evs))

	for i, ev := range evs[1:5] {
		assert.Equal(t, i+1, ev.AgentMessage.Turn)
	}
	terminal := evs[len(evs)-1]
	assert.Equal(t, 4, terminal.DiscussionComplete.TotalTurns)
	assert.True(t, terminal.DiscussionComplete.ConsensusReached)
	assert.Equal(t, "Unanimous agreement on combination therapy.", terminal.DiscussionComplete.FinalSummary)

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.True(t, final.ConsensusReached)
	require.NotNil(t, final.ConsensusConfidence)
	assert.Equal(t, 0.95, *final.ConsensusConfidence)
	assert.Equal(t, 4, final.CurrentTurn)
	assert.Equal(t, 5, final.MessageCount) // framing + 4 utterances

	assert.Equal(t, []int{4}, evaluator.evaluatedTurns(), "first check happens at turn 4 and concludes")
}

// Turn cap: a never-converging panel halts at max_turns as no_consensus.
func TestOrchestrator_TurnCap(t *testing.T) {
	gw := &scriptedGateway{metaText: "Pharmacologist", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{
			Reached:        false,
			Confidence:     0.2,
			Summary:        "positions far apart",
			Disagreements:  []string{"first-line therapy"},
			Recommendation: models.RecommendationContinue,
		}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(5))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		feed(t, gw.replies, "I still disagree.")
	}
	evs := drainEvents(t, sub)

	require.Equal(t, []events.Type{
		events.TypeConnected,
		events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage,
		events.TypeConsensusUpdate,
		events.TypeAgentMessage,
		events.TypeDiscussionComplete,
	}, eventTypes(evs))

	update := evs[5]
	assert.False(t, update.ConsensusUpdate.Reached)
	assert.Equal(t, 0.2, update.ConsensusUpdate.Confidence)

	terminal := evs[len(evs)-1]
	assert.Equal(t, 5, terminal.DiscussionComplete.TotalTurns)
	assert.False(t, terminal.DiscussionComplete.ConsensusReached)

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNoConsensus, final.Status)
	assert.False(t, final.ConsensusReached)

	// The mid-loop check at 4, then the terminal evaluation at the cap.
	assert.Equal(t, []int{4, 5}, evaluator.evaluatedTurns())
}

// Stalemate: identical utterances trip the lexical heuristic inside the
// real evaluator once its trailing window fills. The turn-4 check still
// runs an analysis call (only five statements so far, counting the
// framing message); the turn-6 check sees six repeated statements,
// short-circuits without analysis, and escalates.
func TestOrchestrator_Stalemate(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	evaluator := consensus.NewEvaluator(gw, testMetaModel, 0.85)
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(20))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		feed(t, gw.replies, "We must treat the underlying cause of the migraines.")
	}
	evs := drainEvents(t, sub)

	require.Equal(t, []events.Type{
		events.TypeConnected,
		events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage, events.TypeAgentMessage,
		events.TypeConsensusUpdate,
		events.TypeAgentMessage, events.TypeAgentMessage,
		events.TypeDiscussionComplete,
	}, eventTypes(evs))

	// The turn-4 analysis is unscripted, so the check degrades to the
	// neutral snapshot and the loop continues.
	update := evs[5]
	assert.False(t, update.ConsensusUpdate.Reached)
	assert.Equal(t, 0.5, update.ConsensusUpdate.Confidence)

	terminal := evs[len(evs)-1]
	require.Equal(t, events.TypeDiscussionComplete, terminal.Type)
	assert.False(t, terminal.DiscussionComplete.ConsensusReached)
	assert.Equal(t, 6, terminal.DiscussionComplete.TotalTurns)

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNoConsensus, final.Status)
	assert.Equal(t, 6, final.CurrentTurn)
	require.NotNil(t, final.ConsensusConfidence)
	assert.Equal(t, 0.3, *final.ConsensusConfidence, "stalemate verdict carries low confidence")
	assert.Len(t, gw.jsonCalls, 1, "only the turn-4 check reaches the analysis call")
}

// User interjection: posted after the first agent message, visible to the
// next transcript build, recorded at the preceding agent turn.
func TestOrchestrator_UserInterjection(t *testing.T) {
	gw := &scriptedGateway{
		metaReplies: make(chan string),
		replies:     make(chan string),
	}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Confidence: 0.2, Recommendation: models.RecommendationContinue}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(3))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	require.Equal(t, events.TypeConnected, nextEvent(t, sub).Type)

	// Turn 1: bootstrap skips the speaker pick; the first role opens.
	feed(t, gw.replies, "Start with a headache diary.")
	first := nextEvent(t, sub)
	require.Equal(t, events.TypeAgentMessage, first.Type)
	assert.Equal(t, "Neurologist", first.AgentMessage.RoleName)

	// Turn 2's speaker pick is now blocked, so the interjection lands
	// between turns.
	msg, err := o.PostUserMessage(context.Background(), snap.ID, "Please consider cost-effectiveness.", "u1")
	require.NoError(t, err)
	assert.Equal(t, models.AuthorKindUser, msg.AuthorKind)
	assert.Equal(t, 1, msg.Turn, "interjection carries the preceding agent turn")
	assert.Equal(t, 3, msg.Sequence)

	userEv := nextEvent(t, sub)
	require.Equal(t, events.TypeUserMessage, userEv.Type)
	assert.Equal(t, "u1", userEv.UserMessage.UserTag)

	// Turn 2: the chosen role's transcript must include the interjection.
	feed(t, gw.metaReplies, "Pharmacologist")
	feed(t, gw.replies, "Generic triptans are cost-effective.")
	require.Equal(t, events.TypeAgentMessage, nextEvent(t, sub).Type)

	// Turn 3 hits the cap.
	feed(t, gw.metaReplies, "Neurologist")
	feed(t, gw.replies, "Agreed on generics first.")

	evs := drainEvents(t, sub)
	require.Equal(t, events.TypeDiscussionComplete, evs[len(evs)-1].Type)

	var turnTwo *gateway.Request
	for _, call := range gw.recordedTextCalls() {
		if call.Model == "model-b" {
			c := call
			turnTwo = &c
		}
	}
	require.NotNil(t, turnTwo, "turn 2 utterance call not recorded")
	var sawAgent, sawUser bool
	for _, entry := range turnTwo.Messages {
		if strings.Contains(entry.Content, "[Neurologist]: Start with a headache diary.") {
			sawAgent = true
		}
		if strings.Contains(entry.Content, "[User]: Please consider cost-effectiveness.") {
			assert.True(t, sawAgent, "interjection must follow the turn-1 message")
			assert.Equal(t, gateway.RoleUser, entry.Role)
			sawUser = true
		}
	}
	assert.True(t, sawUser, "interjection missing from the turn-2 transcript")
}

// Stop mid-flight: the in-flight utterance is discarded, no message with a
// higher turn appears, and the stream ends with discussion_stopped.
func TestOrchestrator_StopMidFlight(t *testing.T) {
	gw := &scriptedGateway{
		metaReplies: make(chan string),
		replies:     make(chan string),
	}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Confidence: 0.2, Recommendation: models.RecommendationContinue}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(10))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	require.Equal(t, events.TypeConnected, nextEvent(t, sub).Type)

	feed(t, gw.replies, "Opening statement.")
	require.Equal(t, 1, nextEvent(t, sub).AgentMessage.Turn)

	feed(t, gw.metaReplies, "Pharmacologist")
	feed(t, gw.replies, "Second statement.")
	require.Equal(t, 2, nextEvent(t, sub).AgentMessage.Turn)

	// Turn 3 is blocked at the speaker pick; stop now, then let the
	// in-flight calls complete so the loop can observe the stop.
	require.NoError(t, o.Stop(context.Background(), snap.ID))
	feed(t, gw.metaReplies, "Neurologist")
	feed(t, gw.replies, "This must never appear.")

	evs := drainEvents(t, sub)
	require.NotEmpty(t, evs)
	terminal := evs[len(evs)-1]
	require.Equal(t, events.TypeDiscussionStopped, terminal.Type)
	for _, ev := range evs {
		require.NotEqual(t, events.TypeAgentMessage, ev.Type, "no agent message after stop")
	}

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStopped, final.Status)
	assert.Equal(t, 2, final.CurrentTurn)
	assert.Equal(t, 3, final.MessageCount, "message log frozen at stop time")

	// Mutations on a stopped discussion are terminated.
	_, err = o.PostUserMessage(context.Background(), snap.ID, "too late", "u1")
	assert.ErrorIs(t, err, services.ErrTerminated)
	assert.ErrorIs(t, o.Stop(context.Background(), snap.ID), services.ErrTerminated)
}

// Transcript monotonicity and turn monotonicity over a finished run.
func TestOrchestrator_TranscriptInvariants(t *testing.T) {
	gw := &scriptedGateway{metaText: "Patient Advocate", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Reached: true, Confidence: 0.9, Summary: "done", Recommendation: models.RecommendationConclude}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(20))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		feed(t, gw.replies, "Shared ground found.")
	}
	drainEvents(t, sub)

	page, err := o.Transcript(context.Background(), snap.ID, 100, 0)
	require.NoError(t, err)
	require.Equal(t, 5, page.Count)

	lastAgentTurn := 0
	for i, msg := range page.Messages {
		assert.Equal(t, i+1, msg.Sequence)
		if i > 0 {
			assert.False(t, msg.CreatedAt.Before(page.Messages[i-1].CreatedAt))
			assert.GreaterOrEqual(t, msg.Turn, page.Messages[i-1].Turn)
		}
		if msg.AuthorKind == models.AuthorKindAgent {
			lastAgentTurn = msg.Turn
		}
	}

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, lastAgentTurn, final.CurrentTurn)

	// Paging respects limit/offset and stays ordered.
	paged, err := o.Transcript(context.Background(), snap.ID, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, paged.Count)
	assert.Equal(t, 2, paged.Messages[0].Sequence)
	assert.Equal(t, 3, paged.Messages[1].Sequence)
	assert.Equal(t, 1, paged.Offset)

	beyond, err := o.Transcript(context.Background(), snap.ID, 10, 50)
	require.NoError(t, err)
	assert.Empty(t, beyond.Messages)
	assert.Equal(t, 0, beyond.Count)
}

func TestOrchestrator_DeleteIsIdempotent(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Reached: true, Confidence: 0.9, Recommendation: models.RecommendationConclude}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	snap, err := o.Create(context.Background(), createRequest(20))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		feed(t, gw.replies, "Agreed.")
	}
	drainEvents(t, sub)

	require.NoError(t, o.Delete(context.Background(), snap.ID))
	require.NoError(t, o.Delete(context.Background(), snap.ID), "second delete succeeds")
	require.NoError(t, o.Delete(context.Background(), "never-existed"))

	_, err = o.Inspect(context.Background(), snap.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, o.List(context.Background()))
}

func TestOrchestrator_List(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Confidence: 0.2, Recommendation: models.RecommendationContinue}},
	}
	o := newTestOrchestrator(t, gw, evaluator)

	first, err := o.Create(context.Background(), createRequest(10))
	require.NoError(t, err)
	second, err := o.Create(context.Background(), createRequest(10))
	require.NoError(t, err)

	items := o.List(context.Background())
	require.Len(t, items, 2)
	ids := []string{items[0].ID, items[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	for _, item := range items {
		assert.Equal(t, models.StatusActive, item.Status)
		assert.Equal(t, testTopic, item.Topic)
	}
}

// Shutdown aborts in-flight LLM calls, drives active discussions to
// failed, and ends every subscriber stream.
func TestOrchestrator_Shutdown(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Confidence: 0.2, Recommendation: models.RecommendationContinue}},
	}
	o := New(Config{MetaModelID: testMetaModel, PerCallTimeout: 5 * time.Second, SpeakerPickTimeout: time.Second},
		gw, fixedSynth{roles: testPanel()}, evaluator, events.NewBus(64), nil)

	snap, err := o.Create(context.Background(), createRequest(10))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	require.Equal(t, events.TypeConnected, nextEvent(t, sub).Type)

	// The loop is blocked inside the first utterance call; shutdown
	// cancels it and the loop exits through the failure path.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, o.Shutdown(ctx))

	evs := drainEvents(t, sub)
	if len(evs) > 0 {
		last := evs[len(evs)-1]
		assert.True(t, last.Type.IsTerminal(), "stream must end terminally, got %s", last.Type)
	}

	final := snap
	if d, ok := o.lookup(snap.ID); ok {
		final = d.snapshot()
	}
	assert.Equal(t, models.StatusFailed, final.Status)

	_, err = o.Create(context.Background(), createRequest(10))
	require.Error(t, err)

	require.NoError(t, o.Shutdown(context.Background()), "second shutdown is a no-op")
}

// Utterance failure never fails the turn: the error marker becomes the
// message body and the loop keeps moving.
func TestOrchestrator_UtteranceFailureBecomesMarker(t *testing.T) {
	gw := &scriptedGateway{metaText: "Neurologist", replies: make(chan string)}
	gwErr := &failingOnceGateway{scriptedGateway: gw}
	evaluator := &scriptedEvaluator{
		verdicts: []models.ConsensusSnapshot{{Reached: true, Confidence: 0.9, Recommendation: models.RecommendationConclude}},
	}
	o := newTestOrchestrator(t, gwErr, evaluator)

	snap, err := o.Create(context.Background(), createRequest(20))
	require.NoError(t, err)
	sub, err := o.Subscribe(snap.ID)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		feed(t, gw.replies, "Symptom control first.")
	}
	evs := drainEvents(t, sub)

	var firstAgent *events.Event
	for i := range evs {
		if evs[i].Type == events.TypeAgentMessage {
			firstAgent = &evs[i]
			break
		}
	}
	require.NotNil(t, firstAgent)
	assert.Contains(t, firstAgent.AgentMessage.Body, "[Error generating response:")

	final, err := o.Inspect(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, final.Status, "one failed utterance must not fail the session")
}

// failingOnceGateway consumes the scripted reply like any call, but turns
// the first panel completion into an upstream error.
type failingOnceGateway struct {
	*scriptedGateway
	mu     sync.Mutex
	failed bool
}

func (g *failingOnceGateway) CompleteText(ctx context.Context, req gateway.Request) (*gateway.Result, error) {
	res, err := g.scriptedGateway.CompleteText(ctx, req)
	if req.Model != testMetaModel {
		g.mu.Lock()
		first := !g.failed
		g.failed = true
		g.mu.Unlock()
		if first {
			return nil, &gateway.Error{Kind: gateway.ErrorKindUpstream, StatusCode: 502, Message: "bad gateway", Err: errors.New("bad gateway")}
		}
	}
	return res, err
}
