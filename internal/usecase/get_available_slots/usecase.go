package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/schedule"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	granularity  int
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
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
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		granularity:  granularity,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат зависит только от расписания, активных записей и текущего времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: %s", req)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе расписаний
	now := uc.timeProvider.Now().In(uc.location)
	date := domain.DateOnly(req.Date)

	resp := &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		ServiceID:      req.ServiceID,
		Slots:          []Slot{},
	}

	// 3. Определяем длительность: из запроса или из каталога мастера
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.OwnerID != req.ProfessionalID {
			uc.logger.Warn("GetAvailableSlots: service id=%s does not belong to professional=%s",
				*req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
		resp.DurationMinutes = service.DurationMinutes
	} else {
		resp.DurationMinutes = *req.DurationMinutes
	}

	// 4. Прошедшая дата не даёт слотов
	if domain.CompareDates(date, now) < 0 {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Получаем расписание мастера (шаблон по умолчанию, если не сохранено)
	schedule, err := uc.scheduleRepo.Get(ctx, req.ProfessionalID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		schedule = domain.DefaultWeeklySchedule(req.ProfessionalID)
		uc.logger.Info("GetAvailableSlots: using default schedule for professional=%s", req.ProfessionalID)
	}

	// 6. Выходной день
	day := schedule.ForDate(date)
	if !day.Enabled {
		uc.logger.Info("GetAvailableSlots: professional=%s does not work on %s", req.ProfessionalID, date.Weekday())
		return resp, nil
	}

	// 7. Получаем активные записи на эту дату
	bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(ctx, domain.ProfessionalBookingsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false, // Только активные бронирования
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем свободные слоты
	available := domain.ResolveSlots(day, resp.DurationMinutes, uc.granularity, notBeforeMinutes(date, now), bookings)
	resp.Slots = toSlots(available)

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%s, date=%s",
		len(resp.Slots), req.ProfessionalID, date.Format(domain.DateFormat))
	return resp, nil
}
