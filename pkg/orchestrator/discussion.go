package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parleyhq/parley/pkg/models"
)

// Discussion is one live session: topic, panel, transcript, status. The
// message log is owned by the turn loop; every external reader gets a
// snapshot, and the only external writer is the user-message path, which
// serializes with the loop's appends through the same mutex.
type Discussion struct {
	mu sync.RWMutex

	id      string
	topic   string
	userTag string
	roles   []models.Role

	status      models.DiscussionStatus
	currentTurn int
	maxTurns    int

	consensusReached    bool
	consensusConfidence *float64
	finalSummary        string

	messages []models.Message

	createdAt time.Time
	updatedAt time.Time

	running       bool
	stopRequested bool
}

func newDiscussion(topic, userTag string, roles []models.Role, maxTurns int) *Discussion {
	now := time.Now().UTC()
	d := &Discussion{
		id:        uuid.New().String(),
		topic:     topic,
		userTag:   userTag,
		roles:     roles,
		status:    models.StatusActive,
		maxTurns:  maxTurns,
		createdAt: now,
		updatedAt: now,
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	d.messages = append(d.messages, models.Message{
		ID:             uuid.New().String(),
		DiscussionID:   d.id,
		Sequence:       1,
		AuthorKind:     models.AuthorKindSystem,
		AuthorName:     models.AuthorNameSystem,
		BackingModelID: models.ModelIDSystem,
		Body:           framingBody(topic, names),
		Turn:           0,
		CreatedAt:      now,
	})
	return d
}

// ID returns the discussion id.
func (d *Discussion) ID() string { return d.id }

// Topic returns the discussion topic.
func (d *Discussion) Topic() string { return d.topic }

// Roles returns the panel in discussion-defined order. The slice is
// fixed at creation and safe to read without a lock.
func (d *Discussion) Roles() []models.Role { return d.roles }

// MaxTurns returns the turn cap.
func (d *Discussion) MaxTurns() int { return d.maxTurns }

// CurrentTurn returns the turn of the last agent message, or 0.
func (d *Discussion) CurrentTurn() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.currentTurn
}

// Status returns the current lifecycle status.
func (d *Discussion) Status() models.DiscussionStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// stopPending reports whether the loop should exit at the next
// between-turn check.
func (d *Discussion) stopPending() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stopRequested || d.status != models.StatusActive
}

// requestStop marks the discussion stopped. The running loop observes
// this between turns; a discussion that never ran is finalized by the
// caller. Returns false when the discussion was already terminal.
func (d *Discussion) requestStop() (wasActive, loopRunning bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status != models.StatusActive {
		return false, d.running
	}
	d.stopRequested = true
	d.status = models.StatusStopped
	d.updatedAt = time.Now().UTC()
	return true, d.running
}

// setRunning flips the single-runner flag. Returns false if a runner is
// already active or the discussion is terminal.
func (d *Discussion) setRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running || d.status != models.StatusActive {
		return false
	}
	d.running = true
	return true
}

func (d *Discussion) clearRunning() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
}

// appendAgentMessage appends a panel utterance produced for turn. It
// fails when the discussion is no longer active, which is how in-flight
// LLM results are discarded after a stop won the race.
func (d *Discussion) appendAgentMessage(role models.Role, body string, turn int) (models.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status != models.StatusActive || d.stopRequested {
		return models.Message{}, fmt.Errorf("discussion %s is %s: agent append discarded", d.id, d.status)
	}
	msg := models.Message{
		ID:             uuid.New().String(),
		DiscussionID:   d.id,
		Sequence:       len(d.messages) + 1,
		AuthorKind:     models.AuthorKindAgent,
		AuthorName:     role.Name,
		BackingModelID: role.BackingModelID,
		Body:           body,
		Turn:           turn,
		CreatedAt:      time.Now().UTC(),
	}
	d.messages = append(d.messages, msg)
	d.currentTurn = turn
	d.updatedAt = msg.CreatedAt
	return msg, nil
}

// appendUserMessage appends a user interjection at the current turn.
// The user tag travels on the event and the persisted extra column, not
// the message row itself.
func (d *Discussion) appendUserMessage(body string) (models.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status != models.StatusActive {
		return models.Message{}, fmt.Errorf("discussion %s is %s", d.id, d.status)
	}
	msg := models.Message{
		ID:             uuid.New().String(),
		DiscussionID:   d.id,
		Sequence:       len(d.messages) + 1,
		AuthorKind:     models.AuthorKindUser,
		AuthorName:     models.AuthorNameUser,
		BackingModelID: models.ModelIDUser,
		Body:           body,
		Turn:           d.currentTurn,
		CreatedAt:      time.Now().UTC(),
	}
	d.messages = append(d.messages, msg)
	d.updatedAt = msg.CreatedAt
	return msg, nil
}

// markConsensus records a reached consensus. The flag is sticky: once
// true it never reverts, and only the first confidence is kept.
func (d *Discussion) markConsensus(confidence float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.consensusReached {
		return
	}
	d.consensusReached = true
	c := confidence
	d.consensusConfidence = &c
	d.updatedAt = time.Now().UTC()
}

// finalize records the terminal outcome. Status transitions are sticky:
// a discussion that already left active (e.g. stopped) keeps its status,
// but the summary and confidence are still recorded.
func (d *Discussion) finalize(status models.DiscussionStatus, confidence *float64, summary string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status == models.StatusActive {
		d.status = status
	}
	if d.consensusConfidence == nil && confidence != nil {
		c := *confidence
		d.consensusConfidence = &c
	}
	d.finalSummary = summary
	d.updatedAt = time.Now().UTC()
}

// markFailed transitions an active discussion to failed.
func (d *Discussion) markFailed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status != models.StatusActive {
		return false
	}
	d.status = models.StatusFailed
	d.updatedAt = time.Now().UTC()
	return true
}

// messagesSnapshot copies the current message log.
func (d *Discussion) messagesSnapshot() []models.Message {
	d.mu.RLock()
	defer d.mu.RUnlock()
	msgs := make([]models.Message, len(d.messages))
	copy(msgs, d.messages)
	return msgs
}

// page returns one transcript page ordered ascending by sequence.
func (d *Discussion) page(limit, offset int) models.MessagePage {
	d.mu.RLock()
	defer d.mu.RUnlock()

	msgs := []models.Message{}
	if offset < len(d.messages) {
		end := offset + limit
		if end > len(d.messages) {
			end = len(d.messages)
		}
		msgs = append(msgs, d.messages[offset:end]...)
	}
	return models.MessagePage{
		Messages: msgs,
		Count:    len(msgs),
		Limit:    limit,
		Offset:   offset,
	}
}

// snapshot returns a point-in-time copy of the discussion state.
func (d *Discussion) snapshot() models.DiscussionSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	roles := make([]models.Role, len(d.roles))
	copy(roles, d.roles)

	var confidence *float64
	if d.consensusConfidence != nil {
		c := *d.consensusConfidence
		confidence = &c
	}
	return models.DiscussionSnapshot{
		ID:                  d.id,
		Topic:               d.topic,
		UserTag:             d.userTag,
		Status:              d.status,
		Roles:               roles,
		CurrentTurn:         d.currentTurn,
		MaxTurns:            d.maxTurns,
		ConsensusReached:    d.consensusReached,
		ConsensusConfidence: confidence,
		FinalSummary:        d.finalSummary,
		MessageCount:        len(d.messages),
		CreatedAt:           d.createdAt,
		UpdatedAt:           d.updatedAt,
	}
}
