package roles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

// Synthesizer builds a discussion panel from a topic via two meta-model
// calls: topic analysis, then persona generation. It never fails upward;
// the worst outcome is a panel of generic experts.
type Synthesizer struct {
	gateway      gateway.Client
	metaModel    string
	defaultPanel []string
	logger       *slog.Logger
}

// NewSynthesizer creates a role synthesizer. defaultPanel is cycled for
// backing models when the caller supplies no preferences.
func NewSynthesizer(gw gateway.Client, metaModel string, defaultPanel []string) *Synthesizer {
	return &Synthesizer{
		gateway:      gw,
		metaModel:    metaModel,
		defaultPanel: defaultPanel,
		logger:       slog.Default().With("component", "role-synthesizer"),
	}
}

// persona is the wire shape of one generated role record.
type persona struct {
	Name        string `json:"name"`
	Expertise   string `json:"expertise"`
	Perspective string `json:"perspective"`
}

// personaList tolerates the response shapes models actually produce for
// the generation prompt: an object with a "roles" array, a bare array,
// or a single persona object.
type personaList []persona

func (p *personaList) UnmarshalJSON(data []byte) error {
	var arr []persona
	if err := json.Unmarshal(data, &arr); err == nil {
		*p = arr
		return nil
	}

	var envelope struct {
		Roles []persona `json:"roles"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Roles) > 0 {
		*p = envelope.Roles
		return nil
	}

	var single persona
	if err := json.Unmarshal(data, &single); err == nil && single.Name != "" {
		*p = personaList{single}
		return nil
	}

	*p = nil
	return nil
}

// Synthesize produces exactly numRoles personas for the topic, each with
// a backing model cycled from preferredModels (or the default panel) and
// a tailored system instruction. LLM failures degrade to generic experts
// instead of surfacing.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, numRoles int, preferredModels []string) []models.Role {
	s.logger.Info("Synthesizing panel", "topic", topic, "num_roles", numRoles)

	analysis := s.analyzeTopic(ctx, topic)
	s.logger.Debug("Topic analyzed",
		"primary_domain", analysis.PrimaryDomain,
		"complexity", analysis.Complexity)

	panel := preferredModels
	if len(panel) == 0 {
		panel = s.defaultPanel
	}

	personas := s.generatePersonas(ctx, analysis, numRoles)
	personas = fitToCount(personas, numRoles, analysis.PrimaryDomain)
	disambiguateNames(personas)

	result := make([]models.Role, 0, numRoles)
	for i, p := range personas {
		result = append(result, models.Role{
			Name:              p.Name,
			Expertise:         p.Expertise,
			Perspective:       p.Perspective,
			BackingModelID:    panel[i%len(panel)],
			SystemInstruction: BuildSystemInstruction(p.Name, p.Expertise, p.Perspective, topic),
		})
	}

	names := make([]string, len(result))
	for i, r := range result {
		names[i] = r.Name
	}
	s.logger.Info("Panel ready", "roles", names)
	return result
}

// analyzeTopic classifies the topic with a low-temperature structured
// call. On failure it returns a generic analysis so synthesis proceeds.
func (s *Synthesizer) analyzeTopic(ctx context.Context, topic string) models.TopicAnalysis {
	req := gateway.Request{
		Model:       s.metaModel,
		Messages:    []gateway.ChatMessage{{Role: gateway.RoleUser, Content: buildTopicAnalysisPrompt(topic)}},
		Temperature: 0.3,
	}

	var analysis models.TopicAnalysis
	if _, err := s.gateway.CompleteJSON(ctx, req, &analysis); err != nil {
		s.logger.Warn("Topic analysis failed, using generic analysis", "topic", topic, "error", err)
		return genericAnalysis()
	}
	if analysis.PrimaryDomain == "" {
		analysis.PrimaryDomain = "general"
	}
	return analysis
}

// generatePersonas asks the meta-model for persona records at a higher
// temperature. On failure it returns generic experts for the analyzed
// domain.
func (s *Synthesizer) generatePersonas(ctx context.Context, analysis models.TopicAnalysis, numRoles int) personaList {
	req := gateway.Request{
		Model:       s.metaModel,
		Messages:    []gateway.ChatMessage{{Role: gateway.RoleUser, Content: buildRoleGenerationPrompt(analysis, numRoles)}},
		Temperature: 0.7,
	}

	var personas personaList
	if _, err := s.gateway.CompleteJSON(ctx, req, &personas); err != nil {
		s.logger.Warn("Role generation failed, using generic experts",
			"domain", analysis.PrimaryDomain, "error", err)
		return genericPersonas(numRoles, analysis.PrimaryDomain, 0)
	}
	return personas
}

// fitToCount truncates surplus personas and fills missing slots with
// generic experts carrying the analyzed domain. No re-call is made.
func fitToCount(personas personaList, numRoles int, domain string) personaList {
	if len(personas) > numRoles {
		return personas[:numRoles]
	}
	if len(personas) < numRoles {
		personas = append(personas, genericPersonas(numRoles-len(personas), domain, len(personas))...)
	}
	return personas
}

// genericPersonas builds count fallback experts numbered from offset+1.
func genericPersonas(count int, domain string, offset int) personaList {
	personas := make(personaList, 0, count)
	for i := 0; i < count; i++ {
		k := offset + i + 1
		personas = append(personas, persona{
			Name:        fmt.Sprintf("Expert %d", k),
			Expertise:   fmt.Sprintf("General expertise in %s", domain),
			Perspective: fmt.Sprintf("Perspective %d", k),
		})
	}
	return personas
}

// disambiguateNames appends a numeric suffix to duplicate role names,
// preserving order. Names must be unique within a discussion.
func disambiguateNames(personas personaList) {
	used := make(map[string]bool, len(personas))
	for i := range personas {
		name := personas[i].Name
		if used[strings.ToLower(name)] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s %d", name, n)
				if !used[strings.ToLower(candidate)] {
					name = candidate
					break
				}
			}
		}
		personas[i].Name = name
		used[strings.ToLower(name)] = true
	}
}

// genericAnalysis is the fallback when topic analysis fails.
func genericAnalysis() models.TopicAnalysis {
	return models.TopicAnalysis{
		PrimaryDomain:    "general",
		Complexity:       3,
		KeyAspects:       []string{"analysis", "discussion", "consensus"},
		RecommendedTypes: []string{"Expert 1", "Expert 2", "Expert 3", "Expert 4"},
	}
}
