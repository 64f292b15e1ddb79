package consensus

import (
	"fmt"
	"strings"
)

// Canned summaries and disagreement markers for the non-LLM paths.
const (
	summaryJustStarted  = "Discussion just started, need more exchanges"
	summaryStalemate    = "Discussion appears stuck in circular arguments"
	summaryUnanalyzable = "Unable to analyze consensus reliably"

	disagreementStalemate     = "Repeated arguments without progress"
	disagreementAnalysisError = "Analysis error"
)

// analysisTemplate asks the meta-model to judge convergence.
// %s = topic, %s = formatted recent statements.
const analysisTemplate = `Analyze this multi-agent discussion and determine the consensus level.

**Topic**: %s

**Recent conversation**:
%s

Evaluate:
1. Are participants converging on shared understanding?
2. What are the key points of agreement?
3. What disagreements (if any) remain?
4. Overall confidence level that consensus has been reached (0.0 to 1.0)

Return JSON with:
{
  "confidence": <float 0-1>,
  "summary": "<brief summary of current state>",
  "agreements": ["point 1", "point 2", ...],
  "disagreements": ["issue 1", "issue 2", ...]
}

Consider consensus reached if:
- Participants explicitly agree on core points
- No significant disagreements remain
- Discussion has converged (not diverged)`

// finalSummaryTemplate asks for the wrap-up digest.
// %s = topic, status, confidence percent, transcript, agreements, disagreements.
const finalSummaryTemplate = `Create a comprehensive summary of this multi-agent discussion.

**Topic**: %s

**Consensus Status**: %s
**Confidence**: %s

**Full conversation**:
%s

**Key agreements**:
%s

**Remaining disagreements**:
%s

Provide:
1. Executive summary (2-3 sentences)
2. Main conclusions
3. Recommended next steps (if any)

Keep it concise and actionable.`

func buildAnalysisPrompt(topic string, statements []Statement) string {
	return fmt.Sprintf(analysisTemplate, topic, formatStatements(statements))
}

func buildFinalSummaryPrompt(topic string, statements []Statement, reached bool, confidence float64, agreements, disagreements []string) string {
	status := "⚠️ Not fully reached"
	if reached {
		status = "✅ Reached"
	}

	disagreementBlock := bulletList(disagreements)
	if disagreementBlock == "" {
		disagreementBlock = "None"
	}

	return fmt.Sprintf(finalSummaryTemplate,
		topic,
		status,
		fmt.Sprintf("%.0f%%", confidence*100),
		formatStatements(statements),
		bulletList(agreements),
		disagreementBlock)
}

// formatStatements renders evaluator input for the meta-model.
func formatStatements(statements []Statement) string {
	formatted := make([]string, 0, len(statements))
	for _, s := range statements {
		formatted = append(formatted, fmt.Sprintf("**%s** (Turn %d):\n%s\n", s.RoleName, s.Turn, s.Body))
	}
	return strings.Join(formatted, "\n")
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
