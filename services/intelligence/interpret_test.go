package intelligence

import (
	"encoding/json"
	"testing"

	"promaallem/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysis() models.Analysis {
	safety := "Coupez l'eau au compteur"
	return models.Analysis{
		Category:              "Plomberie",
		ConfidenceScore:       92,
		ProblemType:           "Fuite robinet",
		UrgencyLevel:          3,
		EstimatedDuration:     "1-2 heures",
		EstimatedPriceRange:   "150-300 MAD",
		SuggestedPackage:      "Intervention standard",
		PossibleComplications: []string{"Joint usé", "Canalisation corrodée"},
		SafetyInstructions:    &safety,
		RequiredTools:         []string{"Clé à molette", "Joints"},
	}
}

func TestInterpret_RoundTrip(t *testing.T) {
	original := validAnalysis()
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	got, degraded := Interpret(string(raw))

	assert.False(t, degraded)
	assert.Equal(t, original, got)
}

func TestInterpret_StripsFencesAndReasoning(t *testing.T) {
	original := validAnalysis()
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	wrapped := "<think>\nThe user mentions a faucet leak, so plumbing.\n</think>\n```json\n" +
		string(raw) + "\n```"

	got, degraded := Interpret(wrapped)

	assert.False(t, degraded)
	assert.Equal(t, original, got)
}

func TestInterpret_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"Je pense que c'est un problème de plomberie.",
		"{not json at all",
		"```json\nbroken\n```",
		"<think>only reasoning</think>",
	}

	for _, input := range inputs {
		got, degraded := Interpret(input)

		assert.True(t, degraded, "input %q", input)
		assert.Equal(t, DegradedCategory, got.Category)
		assert.Equal(t, CleanModelOutput(input), got.RawResponse)
	}
}

func TestCleanModelOutput(t *testing.T) {
	raw := "<think>reasoning here</think>\n```json\n{\"category\": \"Plomberie\"}\n```\n"
	assert.Equal(t, `{"category": "Plomberie"}`, CleanModelOutput(raw))
}
