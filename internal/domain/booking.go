package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus accepts only the known statuses
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", ErrUnknownStatus
}

// ServiceSnapshot is the service data copied into a booking at creation time
type ServiceSnapshot struct {
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
}

// Booking represents an appointment in the system
type Booking struct {
	ID             uuid.UUID
	ClientID       string
	ProfessionalID string
	ServiceID      *uuid.UUID // nil once the service is deleted from the catalog
	BookingDate    time.Time
	StartTime      types.TimeString
	Status         BookingStatus
	Reviewed       bool

	// Denormalized data for history
	ServiceName     string
	ServicePrice    decimal.Decimal
	DurationMinutes int
	Notes           *string

	CancelledBy        *Role
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies the professional's time
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// Snapshot returns the denormalized service data
func (b *Booking) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		Name:            b.ServiceName,
		Price:           b.ServicePrice,
		DurationMinutes: b.DurationMinutes,
	}
}

// StartMinutes returns the start in minutes since midnight
func (b *Booking) StartMinutes() int {
	return b.StartTime.Minutes()
}

// EndMinutes returns the exclusive end in minutes since midnight
func (b *Booking) EndMinutes() int {
	return b.StartTime.Minutes() + b.DurationMinutes
}

// Overlaps reports whether [start, start+duration) intersects the booking's interval
func (b *Booking) Overlaps(start types.TimeString, durationMinutes int) bool {
	return Overlaps(start.Minutes(), durationMinutes, b.StartMinutes(), b.DurationMinutes)
}

// StartsAt places the booking start on the calendar in loc
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	d := b.BookingDate
	m := b.StartMinutes()
	return time.Date(d.Year(), d.Month(), d.Day(), m/60, m%60, 0, 0, loc)
}

// Overlaps checks two half-open minute intervals [aStart, aStart+aDur) and [bStart, bStart+bDur)
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// CreateBookingCandidate is what a client asks to book
type CreateBookingCandidate struct {
	ClientID       string
	ProfessionalID string
	ServiceID      *uuid.UUID
	Snapshot       ServiceSnapshot
	BookingDate    time.Time
	StartTime      types.TimeString
	Notes          *string
}

// Validate checks the candidate fields
func (c *CreateBookingCandidate) Validate() error {
	if c.ClientID == "" {
		return ValidationError("client id is required")
	}
	if c.ProfessionalID == "" {
		return ValidationError("professional id is required")
	}
	if c.BookingDate.IsZero() {
		return ValidationError("booking date is required")
	}
	if err := c.StartTime.Validate(); err != nil {
		return ValidationError("invalid start time %q", c.StartTime)
	}
	if c.Snapshot.DurationMinutes <= 0 || c.Snapshot.DurationMinutes > MaxServiceDurationMinutes {
		return ValidationError("duration must be 1..%d minutes", MaxServiceDurationMinutes)
	}
	if c.Snapshot.Name == "" {
		return ValidationError("service name is required")
	}
	if c.Snapshot.Price.IsNegative() {
		return ValidationError("service price must not be negative")
	}
	if c.Notes != nil && len(*c.Notes) > MaxNotesLength {
		return ValidationError("notes exceed %d characters", MaxNotesLength)
	}
	return nil
}

// ClientBookingsFilter фильтр для получения бронирований клиента
type ClientBookingsFilter struct {
	ClientID string         // Обязательный параметр
	Status   *BookingStatus // Фильтр по статусу (опционально)
}

// ProfessionalBookingsFilter фильтр для получения бронирований мастера
type ProfessionalBookingsFilter struct {
	ProfessionalID  string         // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода включительно (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

// SameDate compares calendar dates ignoring clock and location
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CompareDates returns -1, 0 or 1 comparing the calendar dates of a and b
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// DateOnly drops the clock part, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
