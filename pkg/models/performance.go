package models

// PerformanceSample is one recorded measurement for an agent utterance
type PerformanceSample struct {
	DiscussionID   string `json:"discussion_id"`
	RoleName       string `json:"role_name"`
	BackingModelID string `json:"backing_model_id"`
	Turn           int    `json:"turn"`
	ResponseTimeMS int64  `json:"response_time_ms"`
	TokenCount     int    `json:"token_count"`
}

// RolePerformance aggregates recorded samples for one panel role
type RolePerformance struct {
	RoleName          string  `json:"role_name"`
	BackingModelID    string  `json:"backing_model_id"`
	Utterances        int     `json:"utterances"`
	AvgResponseTimeMS float64 `json:"avg_response_time_ms"`
	TotalTokens       int     `json:"total_tokens"`
}
