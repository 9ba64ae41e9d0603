package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	granularity  int
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	granularity int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		granularity:  granularity,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка и вставка идут в сериализуемой транзакции под блокировкой мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, professional=%s, service=%s, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Записаться может только клиент от своего имени
	if !domain.Can(req.Actor, domain.CapCreateBooking, req.ClientID) {
		uc.logger.Warn("CreateBooking: access denied for user=%s role=%s", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	// 3. Получаем текущее время в часовом поясе расписаний
	now := uc.timeProvider.Now().In(uc.location)

	// 4. Получаем услугу из каталога мастера
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.OwnerID != req.ProfessionalID {
		uc.logger.Warn("CreateBooking: service id=%s does not belong to professional=%s", req.ServiceID, req.ProfessionalID)
		return nil, ErrServiceNotFound
	}

	// 5. Собираем кандидата со снимком услуги
	candidate := &domain.CreateBookingCandidate{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      ptr.Ptr(service.ID),
		Snapshot:       service.Snapshot(),
		BookingDate:    domain.DateOnly(req.Date),
		StartTime:      req.StartTime,
		Notes:          req.Notes,
	}
	if err := candidate.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: invalid candidate: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Запись в прошлое невозможна
	if err := validateNotPast(candidate, now, uc.location); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Сериализуем конкурентные записи к одному мастеру
		if err := uc.bookingRepo.LockProfessional(txCtx, req.ProfessionalID); err != nil {
			uc.logger.Error("CreateBooking: failed to lock professional=%s: %v", req.ProfessionalID, err)
			return fmt.Errorf("%w: failed to lock professional: %w", ErrInternal, err)
		}

		// 7.2. Получаем расписание мастера
		schedule, err := uc.scheduleRepo.Get(txCtx, req.ProfessionalID)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
			}
			schedule = domain.DefaultWeeklySchedule(req.ProfessionalID)
			uc.logger.Info("CreateBooking: using default schedule for professional=%s", req.ProfessionalID)
		}

		// 7.3. Проверяем рабочий день, сетку слотов и окончание услуги
		if err := validateSlot(schedule.ForDate(candidate.BookingDate), candidate, uc.granularity); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// 7.4. Получаем активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalBookingsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &candidate.BookingDate,
			EndDate:         &candidate.BookingDate,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 7.5. Проверяем пересечение с активными записями
		if conflict := findConflict(candidate, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s overlaps booking id=%s at %s",
				candidate.StartTime, conflict.ID, conflict.StartTime)
			uc.metrics.IncSlotConflict()
			return ErrSlotConflict
		}

		// 7.6. Создаем бронирование со снимком услуги
		booking := &domain.Booking{
			ClientID:        candidate.ClientID,
			ProfessionalID:  candidate.ProfessionalID,
			ServiceID:       candidate.ServiceID,
			BookingDate:     candidate.BookingDate,
			StartTime:       candidate.StartTime,
			Status:          domain.StatusConfirmed,
			ServiceName:     candidate.Snapshot.Name,
			ServicePrice:    candidate.Snapshot.Price,
			DurationMinutes: candidate.Snapshot.DurationMinutes,
			Notes:           candidate.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently: %v", candidate.StartTime, err)
				uc.metrics.IncSlotConflict()
				return ErrSlotConflict
			}
			// Ошибку драйвера сохраняем через %w, чтобы менеджер транзакций мог повторить попытку
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	ticket := uc.notifier.Submit(ctx, notifications.BookingEvent(result, now))

	uc.logger.Info("CreateBooking: successfully created booking id=%s, event=%s", result.ID, ticket.EventID())
	return &Response{
		Booking: result,
		EventID: ticket.EventID(),
	}, nil
}
