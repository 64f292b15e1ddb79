package models

// ConsensusSnapshot is the result of a single consensus evaluation
type ConsensusSnapshot struct {
	Reached        bool           `json:"reached"`
	Confidence     float64        `json:"confidence"`
	Summary        string         `json:"summary"`
	Agreements     []string       `json:"agreements,omitempty"`
	Disagreements  []string       `json:"disagreements,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
}
