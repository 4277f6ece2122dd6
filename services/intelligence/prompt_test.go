package intelligence

import (
	"testing"

	"promaallem/models"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisPrompt_EmptyDescriptionFails(t *testing.T) {
	_, err := BuildAnalysisPrompt("", "Rabat")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestBuildAnalysisPrompt_DefaultsLocationToCasablanca(t *testing.T) {
	spec, err := BuildAnalysisPrompt("fuite au niveau du robinet", "")

	require.NoError(t, err)
	require.Len(t, spec.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleUser, spec.Messages[1].Role)
	assert.Contains(t, spec.Messages[1].Content, "fuite au niveau du robinet")
	assert.Contains(t, spec.Messages[1].Content, DefaultLocation)
}

func TestBuildAnalysisPrompt_KeepsSuppliedLocation(t *testing.T) {
	spec, err := BuildAnalysisPrompt("court-circuit", "Rabat")

	require.NoError(t, err)
	assert.Contains(t, spec.Messages[1].Content, "Rabat")
	assert.NotContains(t, spec.Messages[1].Content, DefaultLocation)
}

func TestBuildAnalysisPrompt_FixesTaxonomyAndContract(t *testing.T) {
	spec, err := BuildAnalysisPrompt("porte bloquée", "")

	require.NoError(t, err)
	system := spec.Messages[0].Content
	for _, category := range []string{"Plomberie", "Électricité", "Serrurerie", "Peinture", "Climatisation", "Électroménager"} {
		assert.Contains(t, system, category)
	}
	assert.Contains(t, system, `"urgency_level": 1-5`)
	assert.Contains(t, system, "Return ONLY valid JSON")

	assert.Equal(t, analysisTemperature, spec.Temperature)
	assert.Equal(t, analysisMaxTokens, spec.MaxTokens)
}

func TestBuildDiagnosisPrompt_EmptyMessageFails(t *testing.T) {
	_, err := BuildDiagnosisPrompt(nil, "")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestBuildDiagnosisPrompt_AssemblesTurnsInOrder(t *testing.T) {
	prior := []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "ma prise fait des étincelles"},
		{Role: models.ChatRoleAssistant, Content: "Coupez le courant immédiatement."},
	}

	spec, err := BuildDiagnosisPrompt(prior, "c'est fait, et maintenant ?")

	require.NoError(t, err)
	require.Len(t, spec.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, spec.Messages[0].Role)
	assert.Equal(t, "ma prise fait des étincelles", spec.Messages[1].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, spec.Messages[2].Role)
	assert.Equal(t, "c'est fait, et maintenant ?", spec.Messages[3].Content)
	assert.Equal(t, chatTemperature, spec.Temperature)
	assert.Zero(t, spec.MaxTokens)
}
