package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге мастера
	ErrServiceNotFound = fmt.Errorf("%w: create_booking: service not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда запись создаёт не клиент от своего имени
	ErrAccessDenied = fmt.Errorf("%w: create_booking: only a client may book for themselves", domain.ErrAccessDenied)

	// ErrProfessionalUnavailable возвращается, когда у мастера выходной в указанную дату
	ErrProfessionalUnavailable = fmt.Errorf("%w: create_booking: professional does not work on this date", domain.ErrValidation)

	// ErrInvalidTimeSlot возвращается, когда время не на сетке слотов или услуга не помещается в рабочее окно
	ErrInvalidTimeSlot = fmt.Errorf("%w: create_booking: invalid time slot", domain.ErrValidation)

	// ErrPastSlot возвращается при попытке записаться на прошедшее время
	ErrPastSlot = fmt.Errorf("%w: create_booking", domain.ErrPastSlot)

	// ErrSlotConflict возвращается, когда слот пересекается с активной записью
	ErrSlotConflict = fmt.Errorf("%w: create_booking: slot is already taken", domain.ErrSlotConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
