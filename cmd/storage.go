package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/memory"
	reviewRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/review"
	scheduleRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/schedule"
	verificationRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/verification"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/txmanager"
)

type bookingStore interface {
	LockProfessional(ctx context.Context, professionalID string) error
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByClientID(ctx context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, booking *domain.Booking) error
	MarkReviewed(ctx context.Context, id uuid.UUID) error
}

type scheduleStore interface {
	Get(ctx context.Context, professionalID string) (*domain.WeeklySchedule, error)
	Replace(ctx context.Context, schedule *domain.WeeklySchedule) error
}

type catalogStore interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Service, error)
	List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewStore interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]*domain.Review, error)
}

type verificationStore interface {
	Create(ctx context.Context, profile *domain.VerificationProfile) (*domain.VerificationProfile, error)
	GetByID(ctx context.Context, professionalID string) (*domain.VerificationProfile, error)
	ListByStatus(ctx context.Context, status *domain.VerificationStatus) ([]*domain.VerificationProfile, error)
	Stats(ctx context.Context) (domain.VerificationStats, error)
	UpdateDecision(ctx context.Context, profile *domain.VerificationProfile) error
}

// txManager общий контракт менеджеров транзакций обоих драйверов
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории выбранного драйвера
type storage struct {
	bookings      bookingStore
	schedules     scheduleStore
	catalog       catalogStore
	reviews       reviewStore
	verifications verificationStore
	tx            txManager
	close         func() error
}

func openStorage(cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("Using in-memory storage, data will be lost on restart")
		return &storage{
			bookings:      memory.NewBookingRepository(),
			schedules:     memory.NewScheduleRepository(),
			catalog:       memory.NewCatalogRepository(),
			reviews:       memory.NewReviewRepository(),
			verifications: memory.NewVerificationRepository(),
			tx:            memory.NewTxManager(),
			close:         func() error { return nil },
		}, nil
	case config.DriverPostgres:
		return openPostgres(cfg, m, stopCh, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func openPostgres(cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка только проксирует запросы
	wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Metrics.ServiceName, stopCh)
	if m != nil {
		log.Info("Database metrics collection started")
	}

	return &storage{
		bookings:      bookingRepo.NewRepository(wrapped),
		schedules:     scheduleRepo.NewRepository(wrapped),
		catalog:       catalogRepo.NewRepository(wrapped),
		reviews:       reviewRepo.NewRepository(wrapped),
		verifications: verificationRepo.NewRepository(wrapped),
		tx:            txmanager.NewTransactionManager(wrapped).WithMaxRetries(cfg.Database.MaxTxRetries),
		close:         db.Close,
	}, nil
}
