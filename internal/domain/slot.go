package domain

import "github.com/m04kA/SMC-BeautyBooking/pkg/types"

// AvailableSlot represents a start time at which a service of the given duration can be booked
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// ResolveSlots computes open slots for one day.
// Candidates step by granularity over [day.StartTime, day.EndTime); a candidate is kept when
// it starts at or after notBefore (-1 disables the check), ends no later than day.EndTime,
// and does not overlap any active booking. The result is in ascending order.
func ResolveSlots(day DayAvailability, durationMinutes, granularity, notBefore int, bookings []*Booking) []AvailableSlot {
	slots := make([]AvailableSlot, 0)
	if !day.Enabled || durationMinutes <= 0 || granularity <= 0 {
		return slots
	}

	dayStart := day.StartTime.Minutes()
	dayEnd := day.EndTime.Minutes()

	for start := dayStart; start < dayEnd; start += granularity {
		end := start + durationMinutes
		if end > dayEnd {
			break
		}
		if notBefore >= 0 && start < notBefore {
			continue
		}
		if overlapsAny(start, durationMinutes, bookings) {
			continue
		}

		startTS, err := types.FromMinutes(start)
		if err != nil {
			continue
		}
		endTS, err := types.FromMinutes(end)
		if err != nil {
			continue
		}
		slots = append(slots, AvailableSlot{
			StartTime:       startTS,
			EndTime:         endTS,
			DurationMinutes: durationMinutes,
		})
	}
	return slots
}

func overlapsAny(start, duration int, bookings []*Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if Overlaps(start, duration, b.StartMinutes(), b.DurationMinutes) {
			return true
		}
	}
	return false
}
