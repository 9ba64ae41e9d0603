package submit_review

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Request модель запроса на создание отзыва
type Request struct {
	Actor     domain.Actor // Кто оставляет отзыв
	BookingID uuid.UUID    // ID завершённой записи
	Rating    int          // Оценка 1..5
	Comment   string       // Текст отзыва
	Tags      []string     // Теги из фиксированного набора
}

// Response модель ответа с созданным отзывом
type Response struct {
	Review  *domain.Review // Созданный отзыв
	EventID uuid.UUID      // ID события review.submitted
}
