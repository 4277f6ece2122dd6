package auth

// ValidationError signals missing or malformed registration input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnauthorizedError signals a missing or invalid credential on a
// mandatory-auth path.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}
