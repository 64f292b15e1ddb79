package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// DefaultQueueBound is the per-subscriber event queue size. A subscriber
// that falls this far behind is considered dead and dropped.
const DefaultQueueBound = 64

// Subscription is one subscriber's view of a discussion's event stream.
// Events() is closed when the discussion ends, the subscription is
// cancelled, or the bus shuts down.
type Subscription struct {
	id           string
	discussionID string
	ch           chan Event
	once         sync.Once
	bus          *Bus
}

// ID returns the unique subscriber id.
func (s *Subscription) ID() string { return s.id }

// Events returns the receive channel. End-of-stream is a closed channel.
func (s *Subscription) Events() <-chan Event { return s.ch }

// Cancel removes the subscription from the fan-out set and closes the
// channel. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.bus.remove(s.discussionID, s.id)
	s.close()
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// topic is the subscriber set for one discussion. Membership mutation is
// serialized per-discussion so distinct discussions never contend.
type topic struct {
	mu     sync.Mutex
	subs   map[string]*Subscription
	closed bool
}

// Bus is the per-discussion publish/subscribe fan-out. Publishers never
// block: each subscriber has a bounded queue, and overflow drops the
// subscriber rather than stalling the turn loop.
type Bus struct {
	mu         sync.RWMutex
	topics     map[string]*topic
	queueBound int
	shutdown   bool
	logger     *slog.Logger
}

// NewBus creates an event bus. queueBound <= 0 uses DefaultQueueBound.
func NewBus(queueBound int) *Bus {
	if queueBound <= 0 {
		queueBound = DefaultQueueBound
	}
	return &Bus{
		topics:     make(map[string]*topic),
		queueBound: queueBound,
		logger:     slog.Default().With("component", "event-bus"),
	}
}

// Subscribe registers a new subscriber for a discussion and delivers the
// connected greeting before any further events can be observed.
func (b *Bus) Subscribe(discussionID string) *Subscription {
	sub := &Subscription{
		id:           uuid.New().String(),
		discussionID: discussionID,
		ch:           make(chan Event, b.queueBound),
		bus:          b,
	}

	b.mu.Lock()
	if b.shutdown {
		b.mu.Unlock()
		sub.close()
		return sub
	}
	t, ok := b.topics[discussionID]
	if !ok {
		t = &topic{subs: make(map[string]*Subscription)}
		b.topics[discussionID] = t
	}
	b.mu.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		sub.close()
		return sub
	}
	// The greeting goes into the queue before the subscription joins the
	// fan-out set, so it is always the first event observed.
	sub.ch <- NewConnected(discussionID, sub.id)
	t.subs[sub.id] = sub
	return sub
}

// Publish delivers an event to every current subscriber of the
// discussion. Delivery is at-most-once: a subscriber whose queue is full
// is dropped, and the publisher moves on.
func (b *Bus) Publish(discussionID string, ev Event) {
	b.mu.RLock()
	t, ok := b.topics[discussionID]
	b.mu.RUnlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	for id, sub := range t.subs {
		select {
		case sub.ch <- ev:
		default:
			b.logger.Warn("Dropping slow subscriber",
				"discussion_id", discussionID, "subscriber_id", id)
			delete(t.subs, id)
			sub.close()
		}
	}
}

// Close ends the stream for a discussion: every subscriber observes
// end-of-stream after draining its queue.
func (b *Bus) Close(discussionID string) {
	b.mu.Lock()
	t, ok := b.topics[discussionID]
	delete(b.topics, discussionID)
	b.mu.Unlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	for _, sub := range t.subs {
		sub.close()
	}
	t.subs = nil
}

// Shutdown closes every subscription on the bus. Subsequent Subscribe
// calls return an already-closed subscription.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	b.shutdown = true
	topics := b.topics
	b.topics = make(map[string]*topic)
	b.mu.Unlock()

	for _, t := range topics {
		t.mu.Lock()
		t.closed = true
		for _, sub := range t.subs {
			sub.close()
		}
		t.subs = nil
		t.mu.Unlock()
	}
}

// SubscriberCount returns the current number of subscribers for a
// discussion. Used by tests to poll instead of sleeping.
func (b *Bus) SubscriberCount(discussionID string) int {
	b.mu.RLock()
	t, ok := b.topics[discussionID]
	b.mu.RUnlock()
	if !ok {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// remove deletes one subscriber from a topic without closing the topic.
func (b *Bus) remove(discussionID, subID string) {
	b.mu.RLock()
	t, ok := b.topics[discussionID]
	b.mu.RUnlock()
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.subs, subID)
}
