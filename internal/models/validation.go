package models

// ValidationError is a user-facing input error. It blocks the commit that
// produced it; the draft is kept as-is so the user can correct the field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }
