package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	switch {
	case req.DurationMinutes == nil && req.ServiceID == nil:
		return fmt.Errorf("%w: durationMinutes or serviceId is required", ErrInvalidInput)
	case req.DurationMinutes != nil && req.ServiceID != nil:
		return fmt.Errorf("%w: durationMinutes and serviceId are mutually exclusive", ErrInvalidInput)
	case req.DurationMinutes != nil:
		// Длительность больше рабочего окна не ошибка: слотов просто не будет
		if *req.DurationMinutes <= 0 {
			return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
		}
	}

	return nil
}
