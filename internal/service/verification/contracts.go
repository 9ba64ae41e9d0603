package verification

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
)

// ProfileRepository интерфейс репозитория заявок на верификацию
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.VerificationProfile) (*domain.VerificationProfile, error)
	GetByID(ctx context.Context, professionalID string) (*domain.VerificationProfile, error)
	ListByStatus(ctx context.Context, status *domain.VerificationStatus) ([]*domain.VerificationProfile, error)
	Stats(ctx context.Context) (domain.VerificationStats, error)
	UpdateDecision(ctx context.Context, profile *domain.VerificationProfile) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки доменных событий
type Notifier interface {
	Submit(ctx context.Context, event notifications.Event) *notifications.Ticket
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
