package pkg

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy shared by services and handlers. Handlers decide the HTTP
// shape: NotFound ends the request, everything else redirects the caller
// back to a sensible view with a message.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrSelfVote   = errors.New("self vote forbidden")
	ErrValidation = errors.New("validation failed")
)

// FieldError marks a single invalid form field. It matches ErrValidation
// under errors.Is so callers can branch on the class without losing the
// field detail.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// RequireNonEmpty is the shared form validation for subject/content fields.
// Whitespace-only input counts as empty.
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: "required"}
	}
	return nil
}
