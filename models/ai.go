package models

// Chat roles, matching the OpenAI-style wire format.
const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is a single turn in a diagnosis conversation. The caller
// supplies prior turns on every call; the server keeps no session state.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Analysis is the structured triage result for a free-text problem
// description. When the model output cannot be parsed, a degraded value is
// returned instead: Category "Unsure" with RawResponse holding the cleaned
// model text.
type Analysis struct {
	Category              string   `json:"category"`
	ConfidenceScore       int      `json:"confidence_score"`
	ProblemType           string   `json:"problem_type"`
	UrgencyLevel          int      `json:"urgency_level"`
	EstimatedDuration     string   `json:"estimated_duration"`
	EstimatedPriceRange   string   `json:"estimated_price_range"`
	SuggestedPackage      string   `json:"suggested_package"`
	PossibleComplications []string `json:"possible_complications"`
	SafetyInstructions    *string  `json:"safety_instructions"`
	RequiredTools         []string `json:"required_tools"`
	RawResponse           string   `json:"raw_response,omitempty"`
}

// AnalysisResult pairs the analysis with an optional catalog match.
type AnalysisResult struct {
	Analysis     Analysis      `json:"analysis"`
	ServiceMatch *ServiceMatch `json:"service_match"`
}
