package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
// Указывается либо DurationMinutes, либо ServiceID
type Request struct {
	ProfessionalID  string     // ID мастера
	Date            time.Time  // Дата для получения слотов (без времени)
	DurationMinutes *int       // Длительность в минутах (опционально)
	ServiceID       *uuid.UUID // Услуга из каталога мастера (опционально)
}

// String используется в логах
func (r *Request) String() string {
	msg := fmt.Sprintf("professional=%s, date=%s", r.ProfessionalID, r.Date.Format("2006-01-02"))
	if r.DurationMinutes != nil {
		msg += fmt.Sprintf(", duration=%d", *r.DurationMinutes)
	}
	if r.ServiceID != nil {
		msg += fmt.Sprintf(", service=%s", *r.ServiceID)
	}
	return msg
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProfessionalID  string     // ID мастера
	Date            time.Time  // Дата, на которую запрашивались слоты
	DurationMinutes int        // Длительность, по которой считались слоты
	ServiceID       *uuid.UUID // Услуга, если длительность взята из каталога
	Slots           []Slot     // Доступные слоты по возрастанию
}

// Slot свободный интервал для записи
type Slot struct {
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
}
