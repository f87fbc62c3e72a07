package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBackendUnavailable = errors.New("authentication service unavailable")
)

// FieldError carries a server-supplied, field-scoped login failure so the
// form can render it next to the right input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
