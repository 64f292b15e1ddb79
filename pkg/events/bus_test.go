package events

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_ConnectedGreetingFirst(t *testing.T) {
	bus := NewBus(8)
	defer bus.Shutdown()

	// Publish before subscribing — at-most-once means the late subscriber
	// never sees it.
	bus.Publish("disc-1", NewKeepalive("disc-1"))

	sub := bus.Subscribe("disc-1")
	bus.Publish("disc-1", NewUserMessage("disc-1", "hello", "u1"))

	first := <-sub.Events()
	assert.Equal(t, TypeConnected, first.Type)
	require.NotNil(t, first.Connected)
	assert.Equal(t, sub.ID(), first.Connected.SubscriberID)

	second := <-sub.Events()
	assert.Equal(t, TypeUserMessage, second.Type)
}

func TestBus_PerSubscriberOrdering(t *testing.T) {
	bus := NewBus(64)
	defer bus.Shutdown()

	sub := bus.Subscribe("disc-1")
	for i := 1; i <= 20; i++ {
		bus.Publish("disc-1", NewAgentMessage("disc-1", "Expert", "model", fmt.Sprintf("turn %d", i), i))
	}
	bus.Close("disc-1")

	<-sub.Events() // connected
	turn := 0
	for ev := range sub.Events() {
		require.Equal(t, TypeAgentMessage, ev.Type)
		turn++
		assert.Equal(t, turn, ev.AgentMessage.Turn)
	}
	assert.Equal(t, 20, turn)
}

func TestBus_SlowSubscriberDropped(t *testing.T) {
	bus := NewBus(4)
	defer bus.Shutdown()

	slow := bus.Subscribe("disc-1")
	fast := bus.Subscribe("disc-1")
	require.Equal(t, 2, bus.SubscriberCount("disc-1"))

	// The connected greeting occupies one slot; overflow the rest without
	// draining the slow subscriber.
	for i := 0; i < 10; i++ {
		bus.Publish("disc-1", NewKeepalive("disc-1"))
		// Keep the fast subscriber drained so only the slow one overflows.
		for len(fast.Events()) > 0 {
			<-fast.Events()
		}
	}

	assert.Equal(t, 1, bus.SubscriberCount("disc-1"))

	// The dropped subscriber observes end-of-stream after its queue drains.
	n := 0
	for range slow.Events() {
		n++
	}
	assert.Equal(t, 4, n, "slow subscriber keeps only what fit in its queue")

	// The surviving subscriber still receives events.
	bus.Publish("disc-1", NewUserMessage("disc-1", "still here", "u1"))
	ev := <-fast.Events()
	assert.Equal(t, TypeUserMessage, ev.Type)
}

func TestBus_CloseEndsStream(t *testing.T) {
	bus := NewBus(8)
	sub := bus.Subscribe("disc-1")

	bus.Publish("disc-1", NewDiscussionComplete("disc-1", 4, true, "done"))
	bus.Close("disc-1")

	// Publishing after close is a no-op.
	bus.Publish("disc-1", NewKeepalive("disc-1"))

	var got []Type
	for ev := range sub.Events() {
		got = append(got, ev.Type)
	}
	require.Equal(t, []Type{TypeConnected, TypeDiscussionComplete}, got)
}

func TestBus_TerminalEventIsLast(t *testing.T) {
	bus := NewBus(64)
	defer bus.Shutdown()

	subs := make([]*Subscription, 3)
	for i := range subs {
		subs[i] = bus.Subscribe("disc-1")
	}

	bus.Publish("disc-1", NewAgentMessage("disc-1", "Expert", "model", "a", 1))
	bus.Publish("disc-1", NewDiscussionStopped("disc-1", "stopped by user"))
	bus.Close("disc-1")

	for _, sub := range subs {
		var last Type
		for ev := range sub.Events() {
			last = ev.Type
		}
		assert.Equal(t, TypeDiscussionStopped, last)
	}
}

func TestBus_CancelIsIdempotent(t *testing.T) {
	bus := NewBus(8)
	defer bus.Shutdown()

	sub := bus.Subscribe("disc-1")
	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 0, bus.SubscriberCount("disc-1"))

	// Remaining events in a cancelled subscription drain, then close.
	for range sub.Events() {
	}
}

func TestBus_ShutdownClosesAllSubscribers(t *testing.T) {
	bus := NewBus(8)

	a := bus.Subscribe("disc-1")
	b := bus.Subscribe("disc-2")
	bus.Shutdown()

	for range a.Events() {
	}
	for range b.Events() {
	}

	// Subscribing after shutdown yields an already-closed stream.
	late := bus.Subscribe("disc-3")
	_, open := <-late.Events()
	assert.False(t, open)
}

func TestBus_CrossDiscussionIsolation(t *testing.T) {
	bus := NewBus(8)
	defer bus.Shutdown()

	sub1 := bus.Subscribe("disc-1")
	sub2 := bus.Subscribe("disc-2")

	bus.Publish("disc-1", NewUserMessage("disc-1", "only for one", "u1"))

	<-sub1.Events() // connected
	ev := <-sub1.Events()
	assert.Equal(t, TypeUserMessage, ev.Type)

	<-sub2.Events() // connected
	assert.Empty(t, sub2.Events())
}

func TestEvent_DecodeByTag(t *testing.T) {
	ev := NewAgentMessage("disc-1", "Neurologist", "anthropic/claude-sonnet-4.5", "Migraines respond to...", 3)
	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Type.IsValid())
	assert.Equal(t, TypeAgentMessage, decoded.Type)
	assert.Equal(t, "disc-1", decoded.DiscussionID)
	require.NotNil(t, decoded.AgentMessage)
	assert.Equal(t, "Neurologist", decoded.AgentMessage.RoleName)
	assert.Equal(t, 3, decoded.AgentMessage.Turn)
	assert.Nil(t, decoded.ConsensusUpdate)
	assert.NotEmpty(t, decoded.Timestamp)
}

func TestType_IsTerminal(t *testing.T) {
	assert.True(t, TypeDiscussionComplete.IsTerminal())
	assert.True(t, TypeDiscussionStopped.IsTerminal())
	assert.True(t, TypeError.IsTerminal())
	assert.False(t, TypeAgentMessage.IsTerminal())
	assert.False(t, TypeKeepalive.IsTerminal())
	assert.False(t, Type("bogus").IsValid())
}
