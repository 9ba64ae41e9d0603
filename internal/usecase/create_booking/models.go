package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor          domain.Actor     // Кто создаёт запись
	ClientID       string           // ID клиента
	ProfessionalID string           // ID мастера
	ServiceID      uuid.UUID        // ID услуги из каталога мастера
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking // Созданная запись
	EventID uuid.UUID       // ID события booking.confirmed
}
