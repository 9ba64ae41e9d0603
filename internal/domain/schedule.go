package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// DayAvailability is the working window of one weekday
type DayAvailability struct {
	Enabled   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks that an enabled day has a non-empty window.
// Disabled days may keep their times as a template; if set they must still parse.
func (d DayAvailability) Validate() error {
	if !d.Enabled {
		if !d.StartTime.IsZero() && d.StartTime.Validate() != nil {
			return ValidationError("invalid start time %q", d.StartTime)
		}
		if !d.EndTime.IsZero() && d.EndTime.Validate() != nil {
			return ValidationError("invalid end time %q", d.EndTime)
		}
		return nil
	}

	if err := d.StartTime.Validate(); err != nil {
		return ValidationError("invalid start time %q", d.StartTime)
	}
	if err := d.EndTime.Validate(); err != nil {
		return ValidationError("invalid end time %q", d.EndTime)
	}
	if !d.StartTime.IsBefore(d.EndTime) {
		return ValidationError("start time %s must be before end time %s", d.StartTime, d.EndTime)
	}
	return nil
}

// Fits reports whether [start, start+duration) lies inside the working window
func (d DayAvailability) Fits(start types.TimeString, durationMinutes int) bool {
	if !d.Enabled || durationMinutes <= 0 {
		return false
	}
	s := start.Minutes()
	return s >= d.StartTime.Minutes() && s+durationMinutes <= d.EndTime.Minutes()
}

// OnGrid reports whether start is a whole number of steps after the window start
func (d DayAvailability) OnGrid(start types.TimeString, granularity int) bool {
	if granularity <= 0 {
		return false
	}
	offset := start.Minutes() - d.StartTime.Minutes()
	return offset >= 0 && offset%granularity == 0
}

// WeeklySchedule is a professional's recurring availability template
type WeeklySchedule struct {
	ProfessionalID string
	Days           [7]DayAvailability // indexed by time.Weekday
	IsDefault      bool               // not stored yet, template returned
	UpdatedAt      *time.Time
}

// DefaultWeeklySchedule returns the template used before a professional saves one
func DefaultWeeklySchedule(professionalID string) *WeeklySchedule {
	s := &WeeklySchedule{ProfessionalID: professionalID, IsDefault: true}

	weekday := DayAvailability{
		Enabled:   true,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("17:00"),
	}
	weekend := DayAvailability{
		Enabled:   false,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("14:00"),
	}

	for _, d := range Weekdays {
		if d == time.Saturday || d == time.Sunday {
			s.Days[d] = weekend
		} else {
			s.Days[d] = weekday
		}
	}
	return s
}

// ForWeekday returns the availability of a given weekday
func (s *WeeklySchedule) ForWeekday(d time.Weekday) DayAvailability {
	return s.Days[d]
}

// ForDate returns the availability of the date's weekday
func (s *WeeklySchedule) ForDate(date time.Time) DayAvailability {
	return s.Days[date.Weekday()]
}

// Validate checks every day of the template
func (s *WeeklySchedule) Validate() error {
	if s.ProfessionalID == "" {
		return ValidationError("professional id is required")
	}
	for _, d := range Weekdays {
		if err := s.Days[d].Validate(); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}

// Allows reports whether a booking fits the template on its weekday
func (s *WeeklySchedule) Allows(b *Booking) bool {
	return s.ForDate(b.BookingDate).Fits(b.StartTime, b.DurationMinutes)
}
