// Package orchestrator owns the discussion registry and the per-discussion
// turn loop: speaker selection, agent utterances, consensus checks, and
// lifecycle transitions, with events fanned out through the bus and state
// written through to the store.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/parleyhq/parley/pkg/consensus"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
	"github.com/parleyhq/parley/pkg/services"
)

// Defaults applied when Config leaves a field zero.
const (
	DefaultMaxTurns           = 20
	DefaultNumAgents          = 4
	DefaultPerCallTimeout     = 60 * time.Second
	DefaultSpeakerPickTimeout = 15 * time.Second

	// persistTimeout bounds write-through store calls so a slow database
	// never stalls the turn loop for long.
	persistTimeout = 5 * time.Second
)

// RoleSynthesizer builds a discussion panel from a topic. It never fails;
// the worst outcome is a panel of generic experts.
type RoleSynthesizer interface {
	Synthesize(ctx context.Context, topic string, numRoles int, preferredModels []string) []models.Role
}

// ConsensusEvaluator judges convergence and produces the final digest.
// Both methods degrade internally instead of failing.
type ConsensusEvaluator interface {
	Evaluate(ctx context.Context, statements []consensus.Statement, topic string, currentTurn, maxTurns int) models.ConsensusSnapshot
	FinalSummary(ctx context.Context, statements []consensus.Statement, topic string, snapshot models.ConsensusSnapshot) string
}

// Config carries the orchestrator's tunables.
type Config struct {
	// MetaModelID drives speaker selection.
	MetaModelID string
	// DefaultMaxTurns applies when a create request omits max_turns.
	DefaultMaxTurns int
	// PerCallTimeout bounds each agent utterance call.
	PerCallTimeout time.Duration
	// SpeakerPickTimeout bounds the speaker-selection meta call.
	SpeakerPickTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.DefaultMaxTurns == 0 {
		c.DefaultMaxTurns = DefaultMaxTurns
	}
	if c.PerCallTimeout == 0 {
		c.PerCallTimeout = DefaultPerCallTimeout
	}
	if c.SpeakerPickTimeout == 0 {
		c.SpeakerPickTimeout = DefaultSpeakerPickTimeout
	}
	return c
}

// Orchestrator is the process-scoped discussion registry plus the machinery
// that runs each discussion's turn loop. Registry lookups are the only
// cross-discussion coordination; each loop runs on its own goroutine.
type Orchestrator struct {
	cfg       Config
	gateway   gateway.Client
	synth     RoleSynthesizer
	evaluator ConsensusEvaluator
	bus       *events.Bus
	store     Store
	logger    *slog.Logger

	mu          sync.RWMutex
	discussions map[string]*Discussion
	closed      bool

	// loopCtx is cancelled on shutdown so in-flight LLM calls abort and
	// every loop exits at its next between-turn check.
	loopCtx    context.Context
	cancelLoop context.CancelFunc
	wg         sync.WaitGroup
}

// New creates an orchestrator. A nil store runs registry-only.
func New(cfg Config, gw gateway.Client, synth RoleSynthesizer, evaluator ConsensusEvaluator, bus *events.Bus, store Store) *Orchestrator {
	if store == nil {
		store = NopStore{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		cfg:         cfg.withDefaults(),
		gateway:     gw,
		synth:       synth,
		evaluator:   evaluator,
		bus:         bus,
		store:       store,
		logger:      slog.Default().With("component", "orchestrator"),
		discussions: make(map[string]*Discussion),
		loopCtx:     ctx,
		cancelLoop:  cancel,
	}
}

// Create validates the request, synthesizes the panel, registers the
// discussion, and starts its turn loop in the background.
func (o *Orchestrator) Create(ctx context.Context, req models.CreateDiscussionRequest) (models.DiscussionSnapshot, error) {
	topic := strings.TrimSpace(req.Topic)
	if len(topic) < models.MinTopicLength || len(topic) > models.MaxTopicLength {
		return models.DiscussionSnapshot{}, services.NewValidationError("topic",
			fmt.Sprintf("must be %d-%d characters", models.MinTopicLength, models.MaxTopicLength))
	}
	if strings.TrimSpace(req.UserTag) == "" {
		return models.DiscussionSnapshot{}, services.NewValidationError("user_tag", "must not be empty")
	}
	numAgents := req.NumAgents
	if numAgents == 0 {
		numAgents = DefaultNumAgents
	}
	if numAgents < models.MinAgents || numAgents > models.MaxAgents {
		return models.DiscussionSnapshot{}, services.NewValidationError("num_agents",
			fmt.Sprintf("must be %d-%d", models.MinAgents, models.MaxAgents))
	}
	maxTurns := req.MaxTurns
	if maxTurns == 0 {
		maxTurns = o.cfg.DefaultMaxTurns
	}
	if maxTurns < models.MinTurns || maxTurns > models.MaxTurns {
		return models.DiscussionSnapshot{}, services.NewValidationError("max_turns",
			fmt.Sprintf("must be %d-%d", models.MinTurns, models.MaxTurns))
	}

	preferred := make([]string, 0, len(req.PreferredModels))
	for _, name := range req.PreferredModels {
		preferred = append(preferred, o.gateway.Normalize(name))
	}

	roles := o.synth.Synthesize(ctx, topic, numAgents, preferred)
	d := newDiscussion(topic, strings.TrimSpace(req.UserTag), roles, maxTurns)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return models.DiscussionSnapshot{}, fmt.Errorf("orchestrator is shutting down")
	}
	o.discussions[d.ID()] = d
	o.mu.Unlock()

	o.logger.Info("Discussion created",
		"discussion_id", d.ID(), "topic", topic, "num_agents", len(roles), "max_turns", maxTurns)

	snap := d.snapshot()
	o.persist(func(ctx context.Context) error { return o.store.SaveDiscussion(ctx, snap) },
		"save discussion", d.ID())
	for _, msg := range d.messagesSnapshot() {
		m := msg
		o.persist(func(ctx context.Context) error { return o.store.SaveMessage(ctx, m, nil) },
			"save framing message", d.ID())
	}

	if err := o.Run(d.ID()); err != nil {
		return models.DiscussionSnapshot{}, err
	}
	return snap, nil
}

// Run starts the turn loop for a registered discussion. At most one loop
// runs per discussion; starting an already-running or terminal discussion
// is an error.
func (o *Orchestrator) Run(discussionID string) error {
	d, ok := o.lookup(discussionID)
	if !ok {
		return fmt.Errorf("run %s: %w", discussionID, services.ErrNotFound)
	}
	if !d.setRunning() {
		return fmt.Errorf("run %s: %w", discussionID, services.ErrTerminated)
	}
	o.wg.Add(1)
	go o.runLoop(d)
	return nil
}

// PostUserMessage appends a user interjection to an active discussion and
// publishes it to subscribers. The interjection lands at the current turn
// and is visible to agents from the next utterance on.
func (o *Orchestrator) PostUserMessage(ctx context.Context, discussionID, body, userTag string) (models.Message, error) {
	if len(body) < models.MinUserMessageLength || len(body) > models.MaxUserMessageLength {
		return models.Message{}, services.NewValidationError("body",
			fmt.Sprintf("must be %d-%d characters", models.MinUserMessageLength, models.MaxUserMessageLength))
	}
	d, ok := o.lookup(discussionID)
	if !ok {
		return models.Message{}, fmt.Errorf("post message to %s: %w", discussionID, services.ErrNotFound)
	}

	msg, err := d.appendUserMessage(body)
	if err != nil {
		return models.Message{}, fmt.Errorf("post message to %s: %w", discussionID, services.ErrTerminated)
	}

	o.logger.Info("User message posted",
		"discussion_id", discussionID, "user_tag", userTag, "turn", msg.Turn)
	o.persist(func(ctx context.Context) error {
		return o.store.SaveMessage(ctx, msg, map[string]string{"user_tag": userTag})
	}, "save user message", discussionID)
	o.bus.Publish(discussionID, events.NewUserMessage(discussionID, body, userTag))
	return msg, nil
}

// Inspect returns a point-in-time snapshot; resident discussions come from
// the registry, evicted ones from the store.
func (o *Orchestrator) Inspect(ctx context.Context, discussionID string) (models.DiscussionSnapshot, error) {
	if d, ok := o.lookup(discussionID); ok {
		return d.snapshot(), nil
	}
	snap, err := o.store.LoadDiscussion(ctx, discussionID)
	if err != nil {
		return models.DiscussionSnapshot{}, fmt.Errorf("inspect %s: %w", discussionID, err)
	}
	return *snap, nil
}

// Transcript returns one page of the discussion's message log, ordered
// ascending by sequence.
func (o *Orchestrator) Transcript(ctx context.Context, discussionID string, limit, offset int) (models.MessagePage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if d, ok := o.lookup(discussionID); ok {
		return d.page(limit, offset), nil
	}
	page, err := o.store.LoadMessages(ctx, discussionID, limit, offset)
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("transcript %s: %w", discussionID, err)
	}
	return *page, nil
}

// Stop marks an active discussion stopped. A running loop observes the
// request between turns and publishes the terminal event; a discussion
// with no live loop is finalized here.
func (o *Orchestrator) Stop(ctx context.Context, discussionID string) error {
	d, ok := o.lookup(discussionID)
	if !ok {
		return fmt.Errorf("stop %s: %w", discussionID, services.ErrNotFound)
	}
	wasActive, loopRunning := d.requestStop()
	if !wasActive {
		return fmt.Errorf("stop %s: %w", discussionID, services.ErrTerminated)
	}
	o.logger.Info("Stop requested", "discussion_id", discussionID, "loop_running", loopRunning)
	if !loopRunning {
		o.finishStopped(d, o.logger.With("discussion_id", discussionID))
	}
	return nil
}

// Delete removes a discussion from the registry and the store. Idempotent:
// deleting an absent discussion succeeds.
func (o *Orchestrator) Delete(ctx context.Context, discussionID string) error {
	o.mu.Lock()
	d, resident := o.discussions[discussionID]
	delete(o.discussions, discussionID)
	o.mu.Unlock()

	if resident {
		if wasActive, loopRunning := d.requestStop(); wasActive && !loopRunning {
			o.bus.Close(discussionID)
		}
		// A running loop notices the stop, publishes its terminal event,
		// and closes the topic itself.
	}
	if err := o.store.DeleteDiscussion(ctx, discussionID); err != nil {
		return fmt.Errorf("delete %s: %w", discussionID, err)
	}
	o.logger.Info("Discussion deleted", "discussion_id", discussionID, "was_resident", resident)
	return nil
}

// Subscribe attaches a new event-stream subscriber to a resident discussion.
func (o *Orchestrator) Subscribe(discussionID string) (*events.Subscription, error) {
	if _, ok := o.lookup(discussionID); !ok {
		return nil, fmt.Errorf("subscribe %s: %w", discussionID, services.ErrNotFound)
	}
	return o.bus.Subscribe(discussionID), nil
}

// List returns the resident discussions, newest first.
func (o *Orchestrator) List(ctx context.Context) []models.DiscussionListItem {
	o.mu.RLock()
	snaps := make([]models.DiscussionSnapshot, 0, len(o.discussions))
	for _, d := range o.discussions {
		snaps = append(snaps, d.snapshot())
	}
	o.mu.RUnlock()

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].CreatedAt.After(snaps[j].CreatedAt) })

	items := make([]models.DiscussionListItem, len(snaps))
	for i, s := range snaps {
		items[i] = models.DiscussionListItem{
			ID:               s.ID,
			Topic:            s.Topic,
			UserTag:          s.UserTag,
			Status:           s.Status,
			CurrentTurn:      s.CurrentTurn,
			ConsensusReached: s.ConsensusReached,
			CreatedAt:        s.CreatedAt,
		}
	}
	return items
}

// Shutdown stops accepting work, signals every loop, and waits for them
// within ctx's deadline. Discussions still active after the grace window
// are marked failed; every subscriber observes end-of-stream.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	o.mu.Unlock()

	o.logger.Info("Orchestrator shutting down")
	o.cancelLoop()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = fmt.Errorf("orchestrator shutdown: %w", ctx.Err())
	}

	o.mu.RLock()
	residents := make([]*Discussion, 0, len(o.discussions))
	for _, d := range o.discussions {
		residents = append(residents, d)
	}
	o.mu.RUnlock()

	for _, d := range residents {
		if d.markFailed() {
			o.logger.Warn("Discussion failed at shutdown", "discussion_id", d.ID())
			snap := d.snapshot()
			o.persist(func(ctx context.Context) error { return o.store.UpdateDiscussion(ctx, snap) },
				"record shutdown failure", d.ID())
		}
	}
	o.bus.Shutdown()
	return err
}

func (o *Orchestrator) lookup(discussionID string) (*Discussion, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	d, ok := o.discussions[discussionID]
	return d, ok
}

// persist runs one write-through store call on a fresh bounded context so
// loop cancellation never loses state. Failures are logged, never surfaced:
// the registry stays authoritative for live discussions.
func (o *Orchestrator) persist(fn func(context.Context) error, op, discussionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		o.logger.Warn("Write-through failed",
			"op", op, "discussion_id", discussionID, "error", err)
	}
}
