package orchestrator

import (
	"context"
	"strings"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

const (
	// speakerContextWindow is how many trailing messages the meta-model
	// sees when picking the next speaker.
	speakerContextWindow = 5
	// activityWindow is how many trailing messages the least-recently-
	// active fallback counts over.
	activityWindow = 10
)

// selectSpeaker picks the role that should respond next. The meta-model
// choice is preferred; any mismatch or failure falls back to the
// deterministic least-recently-active rule.
func (o *Orchestrator) selectSpeaker(ctx context.Context, d *Discussion) models.Role {
	roles := d.Roles()
	msgs := d.messagesSnapshot()

	// Bootstrap: only the framing message exists, the first role opens.
	if len(msgs) <= 1 {
		return roles[0]
	}

	recent := msgs
	if len(recent) > speakerContextWindow {
		recent = recent[len(recent)-speakerContextWindow:]
	}

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.SpeakerPickTimeout)
	defer cancel()

	res, err := o.gateway.CompleteText(callCtx, gateway.Request{
		Model:       o.cfg.MetaModelID,
		Messages:    []gateway.ChatMessage{{Role: gateway.RoleUser, Content: buildSpeakerPrompt(d.Topic(), roles, recent)}},
		Temperature: 0.5,
		MaxTokens:   50,
	})
	if err != nil {
		o.logger.Warn("Speaker selection failed, using least-recently-active fallback",
			"discussion_id", d.ID(), "error", err)
		return leastRecentlyActive(roles, msgs)
	}

	if role, ok := matchRole(res.Text, roles); ok {
		o.logger.Debug("Speaker selected", "discussion_id", d.ID(), "role", role.Name)
		return role
	}

	o.logger.Warn("Speaker selection returned unmatchable name, using fallback",
		"discussion_id", d.ID(), "selection", strings.TrimSpace(res.Text))
	return leastRecentlyActive(roles, msgs)
}

// matchRole resolves the meta-model's answer against the panel: exact
// case-insensitive equality first, then substring containment either
// way (the model may wrap the name in punctuation or prose).
func matchRole(selection string, roles []models.Role) (models.Role, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(selection))
	if cleaned == "" {
		return models.Role{}, false
	}

	for _, role := range roles {
		if strings.ToLower(role.Name) == cleaned {
			return role, true
		}
	}
	for _, role := range roles {
		name := strings.ToLower(role.Name)
		if strings.Contains(cleaned, name) || strings.Contains(name, cleaned) {
			return role, true
		}
	}
	return models.Role{}, false
}

// leastRecentlyActive picks the role with the fewest agent messages in
// the trailing window; ties break by panel order, which is fixed at
// creation and therefore stable across calls.
func leastRecentlyActive(roles []models.Role, msgs []models.Message) models.Role {
	counts := make(map[string]int, len(roles))
	for _, role := range roles {
		counts[role.Name] = 0
	}

	recent := msgs
	if len(recent) > activityWindow {
		recent = recent[len(recent)-activityWindow:]
	}
	for _, msg := range recent {
		if msg.AuthorKind != models.AuthorKindAgent {
			continue
		}
		if _, ok := counts[msg.AuthorName]; ok {
			counts[msg.AuthorName]++
		}
	}

	selected := roles[0]
	minCount := counts[selected.Name]
	for _, role := range roles[1:] {
		if counts[role.Name] < minCount {
			selected = role
			minCount = counts[role.Name]
		}
	}
	return selected
}
