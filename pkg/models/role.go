package models

// TopicAnalysis is the transient first-stage output of role synthesis
type TopicAnalysis struct {
	PrimaryDomain    string   `json:"primary_domain"`
	SubDomains       []string `json:"sub_domains,omitempty"`
	Complexity       int      `json:"complexity"`
	KeyAspects       []string `json:"key_aspects,omitempty"`
	RecommendedTypes []string `json:"recommended_expert_types,omitempty"`
}

// Role is one expert persona on a discussion panel, fixed at creation
type Role struct {
	Name              string `json:"name"`
	Expertise         string `json:"expertise"`
	Perspective       string `json:"perspective"`
	BackingModelID    string `json:"backing_model_id"`
	SystemInstruction string `json:"system_instruction"`
}
