package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/models"
)

func TestNewDiscussion_FramingMessage(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	msgs := d.messagesSnapshot()
	require.Len(t, msgs, 1)
	framing := msgs[0]
	assert.Equal(t, 1, framing.Sequence)
	assert.Equal(t, 0, framing.Turn)
	assert.Equal(t, models.AuthorKindSystem, framing.AuthorKind)
	assert.Equal(t, models.AuthorNameSystem, framing.AuthorName)
	assert.Equal(t, models.ModelIDSystem, framing.BackingModelID)
	assert.Equal(t, "Discussion started: "+testTopic+"\nParticipants: Neurologist, Pharmacologist, Patient Advocate", framing.Body)

	assert.Equal(t, models.StatusActive, d.Status())
	assert.Equal(t, 0, d.CurrentTurn())
	assert.NotEmpty(t, d.ID())
}

func TestDiscussion_AppendAfterStopRejected(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	_, err := d.appendAgentMessage(testPanel()[0], "before stop", 1)
	require.NoError(t, err)

	wasActive, loopRunning := d.requestStop()
	assert.True(t, wasActive)
	assert.False(t, loopRunning)

	before := len(d.messagesSnapshot())
	_, err = d.appendAgentMessage(testPanel()[1], "after stop", 2)
	require.Error(t, err)
	_, err = d.appendUserMessage("after stop")
	require.Error(t, err)

	assert.Equal(t, before, len(d.messagesSnapshot()), "message log frozen at stop time")
	assert.Equal(t, 1, d.CurrentTurn())
	assert.Equal(t, models.StatusStopped, d.Status())
}

func TestDiscussion_StopIsNotRepeatable(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	wasActive, _ := d.requestStop()
	assert.True(t, wasActive)
	wasActive, _ = d.requestStop()
	assert.False(t, wasActive, "second stop finds a terminal discussion")
}

func TestDiscussion_ConsensusIsSticky(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	d.markConsensus(0.9)
	d.markConsensus(0.4)

	snap := d.snapshot()
	assert.True(t, snap.ConsensusReached)
	require.NotNil(t, snap.ConsensusConfidence)
	assert.Equal(t, 0.9, *snap.ConsensusConfidence, "first confidence wins")
}

func TestDiscussion_TerminalStatusIsSticky(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	wasActive, _ := d.requestStop()
	require.True(t, wasActive)

	// A later finalize keeps the stopped status but still records the digest.
	c := 0.7
	d.finalize(models.StatusCompleted, &c, "late summary")
	snap := d.snapshot()
	assert.Equal(t, models.StatusStopped, snap.Status)
	assert.Equal(t, "late summary", snap.FinalSummary)

	assert.False(t, d.markFailed(), "failed never overwrites a terminal status")
	assert.Equal(t, models.StatusStopped, d.Status())
}

func TestDiscussion_UserMessageCarriesCurrentTurn(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	_, err := d.appendAgentMessage(testPanel()[0], "turn three context", 3)
	require.NoError(t, err)

	msg, err := d.appendUserMessage("a thought from the floor")
	require.NoError(t, err)
	assert.Equal(t, 3, msg.Turn)
	assert.Equal(t, models.AuthorKindUser, msg.AuthorKind)
	assert.Equal(t, models.AuthorNameUser, msg.AuthorName)
	assert.Equal(t, models.ModelIDUser, msg.BackingModelID)
	assert.Equal(t, 3, msg.Sequence)

	assert.Equal(t, 3, d.CurrentTurn(), "user messages never advance the turn")
}

func TestDiscussion_SingleRunner(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)

	require.True(t, d.setRunning())
	assert.False(t, d.setRunning(), "second runner rejected")
	d.clearRunning()
	assert.True(t, d.setRunning())

	d.clearRunning()
	d.requestStop()
	assert.False(t, d.setRunning(), "terminal discussion never runs")
}

func TestDiscussion_Page(t *testing.T) {
	d := newDiscussion(testTopic, "u1", testPanel(), 10)
	for i := 1; i <= 4; i++ {
		_, err := d.appendAgentMessage(testPanel()[i%3], "statement", i)
		require.NoError(t, err)
	}

	page := d.page(2, 1)
	require.Len(t, page.Messages, 2)
	assert.Equal(t, 2, page.Messages[0].Sequence)
	assert.Equal(t, 3, page.Messages[1].Sequence)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 1, page.Offset)

	tail := d.page(10, 4)
	require.Len(t, tail.Messages, 1)
	assert.Equal(t, 5, tail.Messages[0].Sequence)

	empty := d.page(10, 99)
	assert.Empty(t, empty.Messages)
	assert.Equal(t, 0, empty.Count)
}

func TestBuildAgentTranscript(t *testing.T) {
	role := testPanel()[0]
	msgs := []models.Message{
		{AuthorKind: models.AuthorKindSystem, AuthorName: "System", Body: "Discussion started"},
		{AuthorKind: models.AuthorKindAgent, AuthorName: "Neurologist", Body: "My opening view"},
		{AuthorKind: models.AuthorKindAgent, AuthorName: "Pharmacologist", Body: "A rebuttal"},
		{AuthorKind: models.AuthorKindUser, AuthorName: "User", Body: "Please consider cost"},
	}

	transcript := buildAgentTranscript(role, msgs)
	require.Len(t, transcript, 5)

	assert.Equal(t, role.SystemInstruction, transcript[0].Content)
	assert.Equal(t, "[System]: Discussion started", transcript[1].Content)
	assert.Equal(t, "[Neurologist]: My opening view", transcript[2].Content)
	assert.Equal(t, "[Pharmacologist]: A rebuttal", transcript[3].Content)
	assert.Equal(t, "[User]: Please consider cost", transcript[4].Content)

	// Only the speaking role's own messages map to assistant turns.
	for i, want := range []string{"system", "user", "assistant", "user", "user"} {
		assert.Equal(t, want, string(transcript[i].Role), "entry %d", i)
	}
}
