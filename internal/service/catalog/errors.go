package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("%w: service not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда услугу меняет не её владелец
	ErrAccessDenied = fmt.Errorf("%w: catalog: only the owning professional may manage services", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных данных услуги
	ErrInvalidInput = fmt.Errorf("%w: catalog: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
