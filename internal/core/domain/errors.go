package domain

import (
	"strings"

	"github.com/juju/errors"
)

// Error kinds returned by the registry and the use case layer. Callers
// classify failures with errors.Is. Only ErrConcurrency is safe to retry.
const (
	ErrValidation     = errors.ConstError("invalid input")
	ErrNotFound       = errors.ConstError("campaign not found")
	ErrCampaignClosed = errors.ConstError("campaign is closed")
	ErrCampaignOpen   = errors.ConstError("campaign is still open")
	ErrUnauthorized   = errors.ConstError("unauthorized")
	ErrConcurrency    = errors.ConstError("concurrent update conflict")
)

// FieldError describes why a single input field was rejected. Message is
// safe to show to the user verbatim.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return string(ErrValidation) + ": " + strings.Join(parts, "; ")
}

// Is makes a ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a failed field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e when at least one field failed and nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsRetryable reports whether err may be retried without risking a
// duplicate or invalid write.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrency)
}
