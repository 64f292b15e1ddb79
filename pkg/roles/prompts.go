// Package roles turns a free-text topic into a panel of distinct expert
// personas, each with a backing model and a tailored system instruction.
package roles

import (
	"fmt"
	"strings"

	"github.com/parleyhq/parley/pkg/models"
)

// topicAnalysisTemplate asks the meta-model to classify a topic.
// %s = topic.
const topicAnalysisTemplate = `Analyze this discussion topic and determine:
1. Primary domain (medical, technical, business, scientific, social, etc.)
2. Sub-domains involved
3. Complexity level (1-5, where 1=simple, 5=highly complex)
4. Key aspects that should be covered
5. What types of experts would be valuable

Topic: "%s"

Return your analysis as a JSON object with these exact keys:
- primary_domain (string)
- sub_domains (array of strings)
- complexity (number 1-5)
- key_aspects (array of strings)
- recommended_expert_types (array of strings)

Example:
{
  "primary_domain": "medical",
  "sub_domains": ["neurology", "pharmacology", "pain_management"],
  "complexity": 4,
  "key_aspects": ["diagnosis", "treatment options", "side effects", "patient quality of life"],
  "recommended_expert_types": ["Neurologist", "Pharmacologist", "Pain Management Specialist", "Patient Advocate"]
}`

// roleGenerationTemplate asks the meta-model for persona records.
// %d = number of roles, then domain, sub-domains, complexity, key aspects.
const roleGenerationTemplate = `Based on this topic analysis, create %d expert roles for a discussion.

Domain: %s
Sub-domains: %s
Complexity: %d/5
Key aspects: %s

For each role, provide:
- name: Role title (e.g., "Neurologist", "Cloud Architect", "Financial Analyst")
- expertise: Specific area of expertise
- perspective: Unique perspective this role brings to the discussion

Return a JSON object with a "roles" array.

Example:
{
  "roles": [
    {
      "name": "Neurologist",
      "expertise": "Brain disorders and nervous system treatment",
      "perspective": "Clinical diagnosis and evidence-based treatment protocols"
    },
    {
      "name": "Pharmacologist",
      "expertise": "Drug interactions and medication management",
      "perspective": "Pharmaceutical safety and efficacy"
    }
  ]
}`

// systemInstructionTemplate is the per-role system prompt skeleton.
// %s = name, expertise, perspective, topic.
const systemInstructionTemplate = `You are a %s with deep expertise in %s.

Your unique perspective: %s

You are participating in a multi-agent discussion about: "%s"

Guidelines for your participation:
1. **Expertise-driven**: Contribute based on your specific knowledge and experience
2. **Respectful challenge**: When you disagree, explain why from your expertise
3. **Acknowledge others**: Recognize good points made by other participants
4. **Seek consensus**: Work toward agreement while maintaining professional standards
5. **Direct addressing**: Use @Name to address specific participants when relevant
6. **Natural conversation**: Don't use "Round X" or structured formats - just contribute naturally

Example interaction:
"@Pharmacologist, I appreciate your point about beta-blocker efficacy. However, from a neurological perspective, we must also consider the impact on cerebral blood flow..."

Remember: You are a real expert in your field. Be confident, be professional, and contribute meaningfully to reach the best solution.`

func buildTopicAnalysisPrompt(topic string) string {
	return fmt.Sprintf(topicAnalysisTemplate, topic)
}

func buildRoleGenerationPrompt(analysis models.TopicAnalysis, numRoles int) string {
	return fmt.Sprintf(roleGenerationTemplate,
		numRoles,
		analysis.PrimaryDomain,
		strings.Join(analysis.SubDomains, ", "),
		analysis.Complexity,
		strings.Join(analysis.KeyAspects, ", "))
}

// BuildSystemInstruction templates a persona and topic into the system
// prompt an agent carries for the whole discussion.
func BuildSystemInstruction(name, expertise, perspective, topic string) string {
	return fmt.Sprintf(systemInstructionTemplate, name, expertise, perspective, topic)
}
