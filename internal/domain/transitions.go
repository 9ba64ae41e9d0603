package domain

import (
	"fmt"
	"time"
)

// transitions is the booking lifecycle graph; completed and cancelled are terminal
var transitions = map[BookingStatus]map[BookingStatus]struct{}{
	StatusConfirmed: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
}

// CanTransition reports whether from -> to is an edge of the lifecycle
func CanTransition(from, to BookingStatus) bool {
	_, ok := transitions[from][to]
	return ok
}

// AuthorizeTransition checks both the lifecycle edge and who may walk it.
// The edge is checked first so a terminal booking reports ErrInvalidTransition.
func AuthorizeTransition(actor Actor, b *Booking, to BookingStatus) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}

	switch to {
	case StatusCompleted:
		if Can(actor, CapCompleteBooking, b.ProfessionalID) {
			return nil
		}
	case StatusCancelled:
		if Can(actor, CapCancelAsClient, b.ClientID) || Can(actor, CapCancelAsProfessional, b.ProfessionalID) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot move booking to %s", ErrAccessDenied, actor.Role, to)
}

// ApplyTransition mutates b into the new status. Call AuthorizeTransition first.
func (b *Booking) ApplyTransition(actor Actor, to BookingStatus, reason *string, now time.Time) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}
	if reason != nil && len(*reason) > MaxCancellationReasonLength {
		return ValidationError("cancellation reason exceeds %d characters", MaxCancellationReasonLength)
	}

	b.Status = to
	b.UpdatedAt = now
	if to == StatusCancelled {
		role := actor.Role
		b.CancelledBy = &role
		b.CancellationReason = reason
		b.CancelledAt = &now
	}
	return nil
}

// CanBeReviewed checks the review attachment rule
func (b *Booking) CanBeReviewed() error {
	if b.Status != StatusCompleted {
		return ErrNotCompleted
	}
	if b.Reviewed {
		return ErrAlreadyReviewed
	}
	return nil
}
