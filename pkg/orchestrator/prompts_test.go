package orchestrator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/parleyhq/parley/pkg/models"
)

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int
		want string
	}{
		{"short body unchanged", "brief remark", 100, "brief remark"},
		{"ascii cut at the limit", strings.Repeat("a", 120), 100, strings.Repeat("a", 100)},
		{"exactly at the limit", strings.Repeat("a", 100), 100, strings.Repeat("a", 100)},
		// "a" + 60 two-byte runes puts byte 100 inside a rune; the cut
		// must back up to the rune start instead of splitting it.
		{"two-byte rune straddles the limit", "a" + strings.Repeat("é", 60), 100, "a" + strings.Repeat("é", 49)},
		{"four-byte rune straddles the limit", strings.Repeat("x", 98) + "🧠🧠", 100, strings.Repeat("x", 98)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.body, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.max)
		})
	}
}

func TestBuildSpeakerPrompt_TruncatedContextStaysValidUTF8(t *testing.T) {
	recent := []models.Message{{
		AuthorKind: models.AuthorKindAgent,
		AuthorName: "Neurologist",
		Body:       "a" + strings.Repeat("偏頭痛の治療", 30),
		Turn:       1,
	}}

	prompt := buildSpeakerPrompt(testTopic, testPanel(), recent)
	assert.True(t, utf8.ValidString(prompt), "truncation must not split a rune")
	assert.NotContains(t, prompt, string(utf8.RuneError))
}
