package submit_review

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: submit_review: booking not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда отзыв оставляет не клиент этой записи
	ErrAccessDenied = fmt.Errorf("%w: submit_review: only the booking's client may review it", domain.ErrAccessDenied)

	// ErrNotCompleted возвращается, когда запись ещё не завершена
	ErrNotCompleted = fmt.Errorf("%w: submit_review", domain.ErrNotCompleted)

	// ErrAlreadyReviewed возвращается при повторном отзыве
	ErrAlreadyReviewed = fmt.Errorf("%w: submit_review", domain.ErrAlreadyReviewed)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: submit_review: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_review: internal error")
)
