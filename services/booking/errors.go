package booking

// ValidationError signals missing or malformed booking input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
