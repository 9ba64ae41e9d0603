package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Package-level sentinels across the service wrap one of these,
// so callers can classify any error with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrSlotConflict      = errors.New("slot conflict")
	ErrPastSlot          = errors.New("slot is in the past")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyReviewed   = errors.New("booking already reviewed")
	ErrNotFound          = errors.New("not found")
	ErrAccessDenied      = errors.New("access denied")
)

// Domain rule violations
var (
	ErrNotCompleted     = fmt.Errorf("%w: booking is not completed", ErrValidation)
	ErrAlreadyDecided   = fmt.Errorf("%w: verification already decided", ErrInvalidTransition)
	ErrReasonRequired   = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrUnknownRole      = fmt.Errorf("%w: unknown role", ErrValidation)
	ErrUnknownStatus    = fmt.Errorf("%w: unknown booking status", ErrValidation)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown service category", ErrValidation)
	ErrUnknownReviewTag = fmt.Errorf("%w: unknown review tag", ErrValidation)
)

// ValidationError builds an ErrValidation with a field-specific message
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
