package form

import (
	"errors"
	"strings"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownList     = errors.New("unknown list")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrLastEntry       = errors.New("cannot remove the last entry")
	ErrWrongState      = errors.New("operation not allowed in current state")

	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
	ErrCorruptImage     = errors.New("corrupt image")
)

// FieldError is a required-field failure attached to one field or list entry.
// Field uses the form key, e.g. "email" or "experience.2".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field error found by one submit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField indexes the errors by form key.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}
