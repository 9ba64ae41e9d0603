package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

// Service сервис для работы с расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Get возвращает расписание мастера
// Если мастер ещё не сохранял расписание, возвращается шаблон по умолчанию
func (s *Service) Get(ctx context.Context, professionalID string) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for professional=%s", professionalID)

	if professionalID == "" {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	schedule, err := s.load(ctx, professionalID)
	if err != nil {
		s.logger.Error("Get: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule for professional=%s, default=%t", professionalID, schedule.IsDefault)
	return models.FromDomainSchedule(schedule), nil
}

// Update заменяет все семь дней расписания одной транзакцией
// Существующие записи не отменяются: предстоящие подтверждённые записи,
// которые больше не помещаются в рабочее окно, возвращаются в ответе
func (s *Service) Update(ctx context.Context, actor domain.Actor, req *models.UpdateScheduleRequest) (*models.UpdateScheduleResponse, error) {
	s.logger.Info("Update: updating schedule %s by user=%s", req, actor.UserID)

	if !domain.Can(actor, domain.CapManageSchedule, req.ProfessionalID) {
		s.logger.Warn("Update: access denied for user=%s role=%s to schedule of professional=%s",
			actor.UserID, actor.Role, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	var schedule *domain.WeeklySchedule
	switch {
	case req.Reset:
		schedule = domain.DefaultWeeklySchedule(req.ProfessionalID)
		schedule.IsDefault = false
	case req.Schedule != nil:
		schedule = req.Schedule.ToDomain(req.ProfessionalID)
	default:
		return nil, fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Update: invalid schedule for professional=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now().In(s.location)
	var orphaned []*domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.Replace(txCtx, schedule); err != nil {
			return fmt.Errorf("%w: Update - replace schedule: %v", ErrInternal, err)
		}

		upcoming, err := s.bookingRepo.GetByProfessionalWithFilter(txCtx, domain.ProfessionalBookingsFilter{
			ProfessionalID: req.ProfessionalID,
			StartDate:      ptr.Ptr(domain.DateOnly(now)),
			Status:         ptr.Ptr(domain.StatusConfirmed),
		})
		if err != nil {
			return fmt.Errorf("%w: Update - get upcoming bookings: %v", ErrInternal, err)
		}

		orphaned = s.outsideSchedule(schedule, upcoming, now)
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed to update schedule for professional=%s: %v", req.ProfessionalID, err)
		return nil, err
	}

	if len(orphaned) > 0 {
		s.logger.Warn("Update: %d upcoming bookings of professional=%s fall outside the new schedule",
			len(orphaned), req.ProfessionalID)
	}

	s.logger.Info("Update: successfully updated schedule for professional=%s", req.ProfessionalID)
	return &models.UpdateScheduleResponse{
		ScheduleResponse: *models.FromDomainSchedule(schedule),
		OrphanedBookings: models.FromDomainOrphaned(orphaned),
	}, nil
}

// load возвращает сохранённое расписание или шаблон по умолчанию
func (s *Service) load(ctx context.Context, professionalID string) (*domain.WeeklySchedule, error) {
	schedule, err := s.scheduleRepo.Get(ctx, professionalID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.DefaultWeeklySchedule(professionalID), nil
		}
		return nil, err
	}
	return schedule, nil
}

// outsideSchedule отбирает ещё не начавшиеся записи, которые не помещаются в шаблон
func (s *Service) outsideSchedule(schedule *domain.WeeklySchedule, bookings []*domain.Booking, now time.Time) []*domain.Booking {
	out := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.StartsAt(s.location).Before(now) {
			continue
		}
		if !schedule.Allows(b) {
			out = append(out, b)
		}
	}
	return out
}
