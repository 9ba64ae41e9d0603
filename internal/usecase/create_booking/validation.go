package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет, что запись помещается в рабочий день мастера
func validateSlot(day domain.DayAvailability, candidate *domain.CreateBookingCandidate, granularity int) error {
	if !day.Enabled {
		return ErrProfessionalUnavailable
	}

	if !day.OnGrid(candidate.StartTime, granularity) {
		return fmt.Errorf("%w: %s is not on the %d-minute grid starting at %s",
			ErrInvalidTimeSlot, candidate.StartTime, granularity, day.StartTime)
	}

	if !day.Fits(candidate.StartTime, candidate.Snapshot.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes from %s do not fit before %s",
			ErrInvalidTimeSlot, candidate.Snapshot.DurationMinutes, candidate.StartTime, day.EndTime)
	}

	return nil
}

// validateNotPast проверяет, что начало записи не раньше текущего момента
func validateNotPast(candidate *domain.CreateBookingCandidate, now time.Time, loc *time.Location) error {
	y, m, d := candidate.BookingDate.Date()
	startsAt := candidate.StartTime.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
	if startsAt.Before(now) {
		return fmt.Errorf("%w: %s %s", ErrPastSlot, candidate.BookingDate.Format(domain.DateFormat), candidate.StartTime)
	}
	return nil
}

// findConflict возвращает активную запись, пересекающуюся с кандидатом
func findConflict(candidate *domain.CreateBookingCandidate, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(candidate.StartTime, candidate.Snapshot.DurationMinutes) {
			return b
		}
	}
	return nil
}
