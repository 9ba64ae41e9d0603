package domain

import "time"

// Slot grid
const (
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MaxServiceDurationMinutes   = 24 * 60 // a service must fit into one day
	MaxServiceNameLength        = 100
	MaxServiceDescriptionLength = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxRejectionReasonLength    = 500

	MinReviewRating        = 1
	MaxReviewRating        = 5
	MinReviewCommentLength = 10
	MaxReviewCommentLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a professional's time
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses statuses that release the slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// Weekdays in schedule order, Monday first
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
