package booking

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to handlers as client failures.
var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
	ErrSlotTaken       = errors.New("the selected time is no longer available")
	ErrPlanLimit       = errors.New("the shop has reached its plan's booking limit")
)

// ValidationError carries per-field messages for a rejected booking form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking validation failed: %d field(s)", len(e.Fields))
}

// AsValidationError unwraps a *ValidationError if err is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
