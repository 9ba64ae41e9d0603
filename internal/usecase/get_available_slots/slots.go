package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// notBeforeMinutes возвращает минуту дня, раньше которой слоты уже прошли
// Для будущих дат ограничения нет (-1); незавершённая минута округляется вверх
func notBeforeMinutes(date, now time.Time) int {
	if !domain.SameDate(date, now) {
		return -1
	}

	minutes := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}
	return minutes
}

// toSlots конвертирует domain слоты в модель ответа
func toSlots(available []domain.AvailableSlot) []Slot {
	slots := make([]Slot, 0, len(available))
	for _, s := range available {
		slots = append(slots, Slot{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return slots
}
