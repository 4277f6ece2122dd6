package intelligence

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultLocation anchors the triage context when the caller omits one.
const DefaultLocation = "Casablanca"

// Sampling knobs. The low analysis temperature biases the model toward
// literal adherence to the JSON contract; it is a bias, not a guarantee,
// so Interpret must tolerate deviation.
const (
	analysisTemperature float32 = 0.2
	analysisMaxTokens           = 500
	chatTemperature     float32 = 0.7
)

// analysisSystemPrompt fixes the closed category taxonomy, the 1-5 urgency
// scale, the MAD pricing anchors, and the JSON-only output contract.
const analysisSystemPrompt = `
You are the expert service classifier for "ProMaallem", a Moroccan home service marketplace.
Your goal is to analyze client requests (in French, Arabic, or Darija) and structure them for artisans.

**Context & Constraints:**
- **Market**: Morocco (Casablanca mainly).
- **Languages**: Understand Darija terms (e.g., "robini", "bula", "fuit", "chauffe-eau").
- **Pricing**: Estimate in MAD (Dirhams). Plomberie ~150-300DH, Elec ~200-400DH.

**Analysis Steps:**
1. **Categorize**: Plomberie, Électricité, Serrurerie, Peinture, Climatisation, Électroménager.
2. **Diagnose**: Identify specific problem (e.g., "Fuite robinet" vs "Canalisation bouchée").
3. **Urgency**: Score 1 (Low) to 5 (Critical/Danger).
4. **Estimation**: Time range and price range.
5. **Safety**: Immediate instructions if dangerous.

**Output Format**:
Return ONLY valid JSON with no markdown formatting:
{
  "category": "string",
  "confidence_score": 0-100,
  "problem_type": "string",
  "urgency_level": 1-5,
  "estimated_duration": "string",
  "estimated_price_range": "string",
  "suggested_package": "string",
  "possible_complications": ["string"],
  "safety_instructions": "string (or null)",
  "required_tools": ["string"]
}
`

// PromptSpec is a fully assembled model instruction.
type PromptSpec struct {
	Messages    []openai.ChatCompletionMessage
	Temperature float32
	MaxTokens   int
}

// BuildAnalysisPrompt assembles the one-shot triage instruction. The
// description is mandatory; the location falls back to DefaultLocation.
func BuildAnalysisPrompt(description, location string) (PromptSpec, error) {
	if description == "" {
		return PromptSpec{}, &ValidationError{Message: "Description is required"}
	}
	if location == "" {
		location = DefaultLocation
	}

	userContent := fmt.Sprintf("Description: %s. Location: %s", description, location)
	return PromptSpec{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	}, nil
}
