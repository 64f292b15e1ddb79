package orchestrator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/models"
)

// speakerContextChars truncates each recent message shown to the
// speaker-pick prompt.
const speakerContextChars = 100

// speakerPromptTemplate asks the meta-model for the single role name
// that should respond next. %s = topic, participant list, recent context.
const speakerPromptTemplate = `This is a multi-expert discussion. Based on the recent conversation, who should speak next?

**Topic**: %s

**Available participants**:
%s

**Recent conversation**:
%s

Who should logically respond next based on:
1. What was just discussed
2. Whose expertise is most relevant
3. Natural conversation flow

Return ONLY the name of the participant (exactly as listed above).`

// framingBody builds the turn-0 system message posted at creation.
func framingBody(topic string, roleNames []string) string {
	return fmt.Sprintf("Discussion started: %s\nParticipants: %s",
		topic, strings.Join(roleNames, ", "))
}

func buildSpeakerPrompt(topic string, roles []models.Role, recent []models.Message) string {
	participants := make([]string, len(roles))
	for i, r := range roles {
		participants[i] = fmt.Sprintf("- %s: %s", r.Name, r.Expertise)
	}

	context := make([]string, len(recent))
	for i, msg := range recent {
		context[i] = fmt.Sprintf("%s: %s...", msg.AuthorName, truncateBody(msg.Body, speakerContextChars))
	}

	return fmt.Sprintf(speakerPromptTemplate,
		topic,
		strings.Join(participants, "\n"),
		strings.Join(context, "\n"))
}

// truncateBody cuts body to at most max bytes without splitting a
// multi-byte rune.
func truncateBody(body string, max int) string {
	if len(body) <= max {
		return body
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}

// buildAgentTranscript maps the discussion history into the two-role
// chat shape the gateway understands: the speaking role's own messages
// become assistant turns, everything else becomes user turns with an
// in-line [AuthorName]: prefix so multi-speaker awareness survives.
func buildAgentTranscript(role models.Role, msgs []models.Message) []gateway.ChatMessage {
	transcript := make([]gateway.ChatMessage, 0, len(msgs)+1)
	transcript = append(transcript, gateway.ChatMessage{
		Role:    gateway.RoleSystem,
		Content: role.SystemInstruction,
	})

	for _, msg := range msgs {
		speaker := gateway.RoleUser
		if msg.AuthorKind == models.AuthorKindAgent && msg.AuthorName == role.Name {
			speaker = gateway.RoleAssistant
		}
		transcript = append(transcript, gateway.ChatMessage{
			Role:    speaker,
			Content: fmt.Sprintf("[%s]: %s", msg.AuthorName, msg.Body),
		})
	}
	return transcript
}
