package verification

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrProfileNotFound возвращается, когда заявка не найдена
	ErrProfileNotFound = fmt.Errorf("%w: verification profile not found", domain.ErrNotFound)

	// ErrAlreadyApplied возвращается при повторной подаче заявки
	ErrAlreadyApplied = fmt.Errorf("%w: verification: profile already submitted", domain.ErrInvalidTransition)

	// ErrAlreadyDecided возвращается при повторном решении по заявке
	ErrAlreadyDecided = fmt.Errorf("%w: verification: profile already decided", domain.ErrInvalidTransition)

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = fmt.Errorf("%w: verification", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: verification: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("verification: internal error")
)
