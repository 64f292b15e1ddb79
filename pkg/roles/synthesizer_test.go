package roles

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

var defaultTestPanel = []string{
	"anthropic/claude-sonnet-4.5",
	"openai/gpt-5-chat",
	"google/gemini-2.5-pro",
	"deepseek/deepseek-v3.2-exp",
}

// fakeGateway scripts CompleteJSON responses in call order.
type fakeGateway struct {
	responses []string
	errs      []error
	calls     []gateway.Request
}

func (f *fakeGateway) CompleteText(_ context.Context, req gateway.Request) (*gateway.Result, error) {
	f.calls = append(f.calls, req)
	return &gateway.Result{Text: "ok"}, nil
}

func (f *fakeGateway) CompleteJSON(_ context.Context, req gateway.Request, out any) (*gateway.Result, error) {
	i := len(f.calls)
	f.calls = append(f.calls, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.responses) {
		return nil, fmt.Errorf("unexpected gateway call %d", i)
	}
	resp := f.responses[i]
	if err := json.Unmarshal([]byte(resp), out); err != nil {
		return nil, &gateway.Error{Kind: gateway.ErrorKindDecode, Err: err}
	}
	return &gateway.Result{Text: resp}, nil
}

func (f *fakeGateway) Normalize(name string) string { return name }

const migraineTopic = "What are the best strategies for treating chronic migraine?"

const medicalAnalysis = `{"primary_domain":"medical","sub_domains":["neurology"],"complexity":4,"key_aspects":["diagnosis","treatment"],"recommended_expert_types":["Neurologist"]}`

const medicalPanel = `{"roles":[
	{"name":"Neurologist","expertise":"Brain disorders","perspective":"Clinical diagnosis"},
	{"name":"Pharmacologist","expertise":"Drug interactions","perspective":"Pharmaceutical safety"},
	{"name":"Patient Advocate","expertise":"Patient experience","perspective":"Quality of life"}
]}`

func TestSynthesizer_Synthesize(t *testing.T) {
	t.Run("panel synthesis from topic", func(t *testing.T) {
		gw := &fakeGateway{responses: []string{medicalAnalysis, medicalPanel}}
		s := NewSynthesizer(gw, "openai/gpt-5-chat", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 3, nil)
		require.Len(t, panel, 3)

		assert.Equal(t, "Neurologist", panel[0].Name)
		assert.Equal(t, "Pharmacologist", panel[1].Name)
		assert.Equal(t, "Patient Advocate", panel[2].Name)

		// Backing models cycle through the default panel in order.
		assert.Equal(t, "anthropic/claude-sonnet-4.5", panel[0].BackingModelID)
		assert.Equal(t, "openai/gpt-5-chat", panel[1].BackingModelID)
		assert.Equal(t, "google/gemini-2.5-pro", panel[2].BackingModelID)

		for _, role := range panel {
			assert.Contains(t, role.SystemInstruction, role.Name)
			assert.Contains(t, role.SystemInstruction, migraineTopic)
			assert.Contains(t, role.SystemInstruction, role.Expertise)
		}
	})

	t.Run("two meta calls with expected temperatures", func(t *testing.T) {
		gw := &fakeGateway{responses: []string{medicalAnalysis, medicalPanel}}
		s := NewSynthesizer(gw, "meta-model", defaultTestPanel)

		s.Synthesize(context.Background(), migraineTopic, 3, nil)
		require.Len(t, gw.calls, 2)

		analysis := gw.calls[0]
		assert.Equal(t, "meta-model", analysis.Model)
		assert.InDelta(t, 0.3, analysis.Temperature, 0.001)
		assert.Contains(t, analysis.Messages[0].Content, migraineTopic)

		generation := gw.calls[1]
		assert.InDelta(t, 0.7, generation.Temperature, 0.001)
		assert.Contains(t, generation.Messages[0].Content, "create 3 expert roles")
		assert.Contains(t, generation.Messages[0].Content, "Domain: medical")
	})

	t.Run("preferred models cycle with wraparound", func(t *testing.T) {
		fivePanel := `{"roles":[
			{"name":"A","expertise":"a","perspective":"pa"},
			{"name":"B","expertise":"b","perspective":"pb"},
			{"name":"C","expertise":"c","perspective":"pc"},
			{"name":"D","expertise":"d","perspective":"pd"},
			{"name":"E","expertise":"e","perspective":"pe"}
		]}`
		gw := &fakeGateway{responses: []string{medicalAnalysis, fivePanel}}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 5, []string{"model-x", "model-y"})
		require.Len(t, panel, 5)
		got := make([]string, len(panel))
		for i, r := range panel {
			got[i] = r.BackingModelID
		}
		assert.Equal(t, []string{"model-x", "model-y", "model-x", "model-y", "model-x"}, got)
	})

	t.Run("fills missing personas with generic experts", func(t *testing.T) {
		short := `{"roles":[{"name":"Neurologist","expertise":"Brains","perspective":"Clinical"}]}`
		gw := &fakeGateway{responses: []string{medicalAnalysis, short}}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 3, nil)
		require.Len(t, panel, 3)
		assert.Equal(t, "Neurologist", panel[0].Name)
		assert.Equal(t, "Expert 2", panel[1].Name)
		assert.Equal(t, "Expert 3", panel[2].Name)
		assert.Equal(t, "General expertise in medical", panel[1].Expertise)
		assert.Len(t, gw.calls, 2, "missing personas must not trigger a re-call")
	})

	t.Run("truncates surplus personas", func(t *testing.T) {
		gw := &fakeGateway{responses: []string{medicalAnalysis, medicalPanel}}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 2, nil)
		require.Len(t, panel, 2)
		assert.Equal(t, "Neurologist", panel[0].Name)
		assert.Equal(t, "Pharmacologist", panel[1].Name)
	})

	t.Run("disambiguates colliding names in stable order", func(t *testing.T) {
		dupes := `{"roles":[
			{"name":"Analyst","expertise":"x","perspective":"p1"},
			{"name":"Analyst","expertise":"y","perspective":"p2"},
			{"name":"Analyst","expertise":"z","perspective":"p3"}
		]}`
		gw := &fakeGateway{responses: []string{medicalAnalysis, dupes}}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 3, nil)
		require.Len(t, panel, 3)
		assert.Equal(t, "Analyst", panel[0].Name)
		assert.Equal(t, "Analyst 2", panel[1].Name)
		assert.Equal(t, "Analyst 3", panel[2].Name)
		// Expertise order untouched by renaming.
		assert.Equal(t, "x", panel[0].Expertise)
		assert.Equal(t, "y", panel[1].Expertise)
		assert.Equal(t, "z", panel[2].Expertise)
	})

	t.Run("analysis failure still generates topical personas", func(t *testing.T) {
		gw := &fakeGateway{
			errs:      []error{&gateway.Error{Kind: gateway.ErrorKindTransport}},
			responses: []string{"", medicalPanel},
		}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 3, nil)
		require.Len(t, panel, 3)
		assert.Equal(t, "Neurologist", panel[0].Name)
		// The generation prompt ran against the generic fallback analysis.
		assert.Contains(t, gw.calls[1].Messages[0].Content, "Domain: general")
	})

	t.Run("total failure degrades to generic panel", func(t *testing.T) {
		gw := &fakeGateway{
			errs: []error{
				&gateway.Error{Kind: gateway.ErrorKindTransport},
				&gateway.Error{Kind: gateway.ErrorKindUpstream},
			},
			responses: []string{"", ""},
		}
		s := NewSynthesizer(gw, "meta", defaultTestPanel)

		panel := s.Synthesize(context.Background(), migraineTopic, 4, nil)
		require.Len(t, panel, 4)
		for i, role := range panel {
			assert.Equal(t, fmt.Sprintf("Expert %d", i+1), role.Name)
			assert.Equal(t, "General expertise in general", role.Expertise)
			assert.NotEmpty(t, role.SystemInstruction)
			assert.NotEmpty(t, role.BackingModelID)
		}
	})

	t.Run("every valid cardinality yields that many unique names", func(t *testing.T) {
		for n := models.MinAgents; n <= models.MaxAgents; n++ {
			gw := &fakeGateway{
				errs:      []error{nil, &gateway.Error{Kind: gateway.ErrorKindDecode}},
				responses: []string{medicalAnalysis, ""},
			}
			s := NewSynthesizer(gw, "meta", defaultTestPanel)

			panel := s.Synthesize(context.Background(), migraineTopic, n, nil)
			require.Len(t, panel, n, "num_roles=%d", n)

			seen := make(map[string]bool)
			for _, role := range panel {
				assert.False(t, seen[role.Name], "duplicate name %q for num_roles=%d", role.Name, n)
				seen[role.Name] = true
			}
		}
	})
}

func TestPersonaList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"object with roles key", `{"roles":[{"name":"A","expertise":"x","perspective":"p"}]}`, 1},
		{"bare array", `[{"name":"A","expertise":"x","perspective":"p"},{"name":"B","expertise":"y","perspective":"q"}]`, 2},
		{"single persona object", `{"name":"A","expertise":"x","perspective":"p"}`, 1},
		{"unrelated object", `{"foo":"bar"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var personas personaList
			err := json.Unmarshal([]byte(tt.in), &personas)
			require.NoError(t, err)
			assert.Len(t, personas, tt.want)
		})
	}
}

func TestBuildSystemInstruction(t *testing.T) {
	instruction := BuildSystemInstruction("Neurologist", "Brain disorders", "Clinical diagnosis", migraineTopic)
	assert.True(t, strings.HasPrefix(instruction, "You are a Neurologist with deep expertise in Brain disorders."))
	assert.Contains(t, instruction, "Your unique perspective: Clinical diagnosis")
	assert.Contains(t, instruction, migraineTopic)
	assert.Contains(t, instruction, "@Name")
}
