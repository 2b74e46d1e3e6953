package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSessionNotFound      = errors.New("booking session not found or expired")
	ErrSessionClosed        = errors.New("booking session was closed")
	ErrInvalidTransition    = errors.New("transition not allowed from current step")
	ErrSubmissionInProgress = errors.New("booking submission already in progress")
)

// ValidationError lists the fields of the current step that failed.
type ValidationError struct {
	Code   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(names, ", "))
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{
		Code:   "validationError",
		Fields: fields,
	}
}
