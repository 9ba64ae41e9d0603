package reviews

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListByProfessional(ctx context.Context, professionalID string) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
