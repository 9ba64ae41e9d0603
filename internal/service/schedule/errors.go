package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректном расписании
	ErrInvalidInput = fmt.Errorf("%w: schedule: invalid input", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда расписание меняет не его владелец
	ErrAccessDenied = fmt.Errorf("%w: schedule: only the owning professional may edit the schedule", domain.ErrAccessDenied)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
