package intelligence

import (
	"promaallem/models"

	openai "github.com/sashabaranov/go-openai"
)

// diagnoseSystemPrompt sets the persona, the reply-in-caller's-language
// rule, the hazard escalation directive, and the MAD pricing anchors.
// Hazard detection is left to the model, not matched algorithmically here.
const diagnoseSystemPrompt = `
You are "Dr. ProMaallem", an expert home service assistant for the Moroccan market.
**Languages:** You MUST reply in the SAME language as the user (French, Arabic, or Moroccan Darija).
**Identity:** You are professional, helpful, and speak with a Moroccan touch when using Darija (use terms like "Maallem", "Bricolage", "Fuite", "Khit").
**Goal:** Diagnose home issues (Plumbing, Electrical, etc.), assess safety risks, and suggest booking a Maallem.
**Safety:** If dangerous (gas leak, sparks), warn immediately to cut power/water.
**Pricing:** Estimate in MAD (e.g., Plomberie ~150DH+, Elec ~200DH+).
**Output:** Keep responses concise and helpful.
`

// BuildDiagnosisPrompt assembles [system] + prior turns + [new user turn],
// forwarded verbatim. The caller owns the history; the server holds no
// session state, and history length is unbounded by design.
func BuildDiagnosisPrompt(prior []models.ChatMessage, message string) (PromptSpec, error) {
	if message == "" {
		return PromptSpec{}, &ValidationError{Message: "Message is required"}
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(prior)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: diagnoseSystemPrompt,
	})
	for _, turn := range prior {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	// Free-text output: favor conversational variety over strict format.
	return PromptSpec{
		Messages:    messages,
		Temperature: chatTemperature,
	}, nil
}
