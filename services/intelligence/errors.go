package intelligence

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// RetryMessageFR is the user-facing throttle message.
const RetryMessageFR = "Le service IA est très sollicité. Veuillez patienter 1 minute."

// ValidationError signals missing or malformed triage input. No model call
// is attempted when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitError signals that the model provider is throttling us.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// wrapModelError maps a provider error to the intake error taxonomy:
// HTTP 429 becomes a RateLimitError, everything else is passed through as
// an upstream failure.
func wrapModelError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return &RateLimitError{Message: RetryMessageFR}
	}
	return err
}
