package intelligence

import (
	"encoding/json"
	"regexp"
	"strings"

	"promaallem/models"
)

// DegradedCategory marks an analysis the model output could not be parsed
// into.
const DegradedCategory = "Unsure"

var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CleanModelOutput strips code-fence markup and reasoning blocks from raw
// model text. DeepSeek-R1 in particular wraps its chain of thought in
// <think> tags and often fences the JSON despite the contract.
func CleanModelOutput(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = thinkBlockRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// Interpret parses raw model text into an Analysis. It is total: on any
// input, including empty or pure prose, it returns a usable value. The
// second return reports degradation — a failed parse yields the fallback
// {Category: "Unsure", RawResponse: cleaned} instead of an error, because
// the upstream model is unreliable at exact formatting.
func Interpret(raw string) (models.Analysis, bool) {
	cleaned := CleanModelOutput(raw)

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return models.Analysis{
			Category:    DegradedCategory,
			RawResponse: cleaned,
		}, true
	}
	return analysis, false
}
