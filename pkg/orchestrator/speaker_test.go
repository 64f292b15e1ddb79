package orchestrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/models"
)

func TestMatchRole(t *testing.T) {
	roles := testPanel()

	tests := []struct {
		name      string
		selection string
		want      string
		ok        bool
	}{
		{"exact", "Neurologist", "Neurologist", true},
		{"exact case-insensitive", "pharmacologist", "Pharmacologist", true},
		{"surrounding whitespace", "  Patient Advocate \n", "Patient Advocate", true},
		{"wrapped in prose", "The Neurologist should respond next.", "Neurologist", true},
		{"wrapped in punctuation", "\"Pharmacologist\".", "Pharmacologist", true},
		{"partial of role name", "Advocate", "Patient Advocate", true},
		{"empty", "   ", "", false},
		{"unknown name", "Cardiologist", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := matchRole(tt.selection, roles)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, role.Name)
			}
		})
	}

	// Exact match wins over substring containment.
	ambiguous := []models.Role{
		{Name: "Economist"},
		{Name: "Labor Economist"},
	}
	role, ok := matchRole("economist", ambiguous)
	require.True(t, ok)
	assert.Equal(t, "Economist", role.Name)
}

func TestLeastRecentlyActive(t *testing.T) {
	roles := testPanel()
	agent := func(name string, turn int) models.Message {
		return models.Message{AuthorKind: models.AuthorKindAgent, AuthorName: name, Turn: turn}
	}

	t.Run("quietest role wins", func(t *testing.T) {
		msgs := []models.Message{
			agent("Neurologist", 1),
			agent("Pharmacologist", 2),
			agent("Neurologist", 3),
		}
		assert.Equal(t, "Patient Advocate", leastRecentlyActive(roles, msgs).Name)
	})

	t.Run("ties break by panel order", func(t *testing.T) {
		msgs := []models.Message{
			agent("Neurologist", 1),
			agent("Pharmacologist", 2),
			agent("Patient Advocate", 3),
		}
		assert.Equal(t, "Neurologist", leastRecentlyActive(roles, msgs).Name)
	})

	t.Run("no agent activity picks first role", func(t *testing.T) {
		msgs := []models.Message{
			{AuthorKind: models.AuthorKindSystem, AuthorName: models.AuthorNameSystem},
			{AuthorKind: models.AuthorKindUser, AuthorName: models.AuthorNameUser},
		}
		assert.Equal(t, "Neurologist", leastRecentlyActive(roles, msgs).Name)
	})

	t.Run("only the trailing window counts", func(t *testing.T) {
		// Neurologist spoke heavily long ago; inside the last 10 messages
		// everyone else spoke more.
		var msgs []models.Message
		for i := 0; i < 5; i++ {
			msgs = append(msgs, agent("Patient Advocate", i))
		}
		for i := 5; i < 15; i++ {
			name := "Neurologist"
			if i%2 == 0 {
				name = "Pharmacologist"
			}
			msgs = append(msgs, agent(name, i))
		}
		assert.Equal(t, "Patient Advocate", leastRecentlyActive(roles, msgs).Name)
	})

	t.Run("stable across calls", func(t *testing.T) {
		msgs := []models.Message{agent("Pharmacologist", 1)}
		first := leastRecentlyActive(roles, msgs)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first.Name, leastRecentlyActive(roles, msgs).Name)
		}
	})
}

func TestSelectSpeaker(t *testing.T) {
	newOrch := func(gw *scriptedGateway) *Orchestrator {
		return New(Config{MetaModelID: testMetaModel, SpeakerPickTimeout: time.Second},
			gw, fixedSynth{roles: testPanel()}, &scriptedEvaluator{verdicts: []models.ConsensusSnapshot{{}}}, nil, nil)
	}

	t.Run("bootstrap picks the first role without a meta call", func(t *testing.T) {
		gw := &scriptedGateway{}
		o := newOrch(gw)
		d := newDiscussion(testTopic, "u", testPanel(), 10)

		role := o.selectSpeaker(t.Context(), d)
		assert.Equal(t, "Neurologist", role.Name)
		assert.Empty(t, gw.recordedTextCalls())
	})

	t.Run("meta choice wins", func(t *testing.T) {
		gw := &scriptedGateway{metaText: "Patient Advocate"}
		o := newOrch(gw)
		d := newDiscussion(testTopic, "u", testPanel(), 10)
		_, err := d.appendAgentMessage(testPanel()[0], "opening", 1)
		require.NoError(t, err)

		role := o.selectSpeaker(t.Context(), d)
		assert.Equal(t, "Patient Advocate", role.Name)

		calls := gw.recordedTextCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, testMetaModel, calls[0].Model)
		assert.InDelta(t, 0.5, calls[0].Temperature, 0.001)
		assert.Equal(t, 50, calls[0].MaxTokens)
		assert.Contains(t, calls[0].Messages[0].Content, testTopic)
		assert.Contains(t, calls[0].Messages[0].Content, "- Pharmacologist: drug interactions")
	})

	t.Run("unmatchable answer falls back deterministically", func(t *testing.T) {
		gw := &scriptedGateway{metaText: "I think the cardiologist is best placed."}
		o := newOrch(gw)
		d := newDiscussion(testTopic, "u", testPanel(), 10)
		_, err := d.appendAgentMessage(testPanel()[0], "opening", 1)
		require.NoError(t, err)

		role := o.selectSpeaker(t.Context(), d)
		assert.Equal(t, "Pharmacologist", role.Name, "least-recently-active after Neurologist spoke")
	})
}
