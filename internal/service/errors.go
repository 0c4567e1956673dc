package service

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func failValidation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
