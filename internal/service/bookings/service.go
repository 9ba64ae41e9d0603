package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Видеть запись могут клиент, мастер и администратор
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !domain.CanViewBooking(actor, booking) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// ListByClient получает записи клиента со сводкой
// Опционально фильтрует по статусу и срезу (upcoming, past, cancelled)
func (s *Service) ListByClient(ctx context.Context, actor domain.Actor, req *models.GetClientBookingsRequest) (*models.ClientBookingsResponse, error) {
	s.logger.Info("ListByClient: fetching bookings for client=%s, status=%v, view=%v", req.ClientID, req.Status, req.View)

	if !domain.Can(actor, domain.CapViewClientBookings, req.ClientID) {
		s.logger.Warn("ListByClient: access denied for user=%s to bookings of client=%s", actor.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	filter := domain.ClientBookingsFilter{ClientID: req.ClientID}
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByClient: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	var view *models.ClientView
	if req.View != nil {
		v, err := models.ParseClientView(*req.View)
		if err != nil {
			s.logger.Warn("ListByClient: invalid view=%s for client=%s", *req.View, req.ClientID)
			return nil, fmt.Errorf("%w: invalid view %q", ErrInvalidInput, *req.View)
		}
		view = &v
	}

	all, err := s.bookingRepo.GetByClientID(ctx, domain.ClientBookingsFilter{ClientID: req.ClientID})
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now().In(s.location)
	selected := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if view != nil && s.viewOf(b, now) != *view {
			continue
		}
		selected = append(selected, b)
	}

	s.logger.Info("ListByClient: successfully fetched %d bookings for client=%s", len(selected), req.ClientID)
	return models.FromDomainClientBookings(selected, s.summarize(all, now)), nil
}

// ListByProfessional получает записи мастера с фильтрацией по периоду и статусу
// Доступно мастеру-владельцу и администратору
func (s *Service) ListByProfessional(ctx context.Context, actor domain.Actor, req *models.GetProfessionalBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("ListByProfessional: fetching bookings for professional=%s, user=%s", req.ProfessionalID, actor.UserID)
	if req.StartDate != nil {
		logMsg += fmt.Sprintf(", from=%s", req.StartDate.Format(domain.DateFormat))
	}
	if req.EndDate != nil {
		logMsg += fmt.Sprintf(", to=%s", req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if !domain.Can(actor, domain.CapViewProfessionalAgenda, req.ProfessionalID) {
		s.logger.Warn("ListByProfessional: access denied for user=%s to agenda of professional=%s",
			actor.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByProfessional: invalid filter for professional=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProfessional: successfully fetched %d bookings for professional=%s", len(bookings), req.ProfessionalID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование по графу статусов
// confirmed -> completed: мастер или администратор
// confirmed -> cancelled: клиент, мастер или администратор
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by user=%s role=%s",
		bookingID, req.Status, actor.UserID, actor.Role)

	to, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	now := s.timeProvider.Now()
	var (
		updated *domain.Booking
		from    domain.BookingStatus
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Берём запись с блокировкой строки
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get booking: %v", ErrInternal, err)
		}

		if !domain.CanViewBooking(actor, booking) {
			return ErrAccessDenied
		}

		if err := domain.AuthorizeTransition(actor, booking, to); err != nil {
			return translateDomainError(err)
		}

		from = booking.Status
		if err := booking.ApplyTransition(actor, to, req.Reason, now); err != nil {
			return translateDomainError(err)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update status: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: failed to update booking id=%s: %v", bookingID, err)
		} else {
			s.logger.Warn("UpdateStatus: booking id=%s rejected: %v", bookingID, err)
		}
		return nil, err
	}

	s.metrics.IncStatusTransition(string(from), string(updated.Status))
	ticket := s.notifier.Submit(ctx, notifications.BookingEvent(updated, now))

	s.logger.Info("UpdateStatus: successfully moved booking id=%s %s -> %s, event=%s",
		bookingID, from, updated.Status, ticket.EventID())
	return models.FromDomainBooking(updated), nil
}

// viewOf определяет срез, в который попадает запись клиента
func (s *Service) viewOf(b *domain.Booking, now time.Time) models.ClientView {
	switch {
	case b.IsCancelled():
		return models.ViewCancelled
	case b.Status == domain.StatusConfirmed && !b.StartsAt(s.location).Before(now):
		return models.ViewUpcoming
	default:
		return models.ViewPast
	}
}

// summarize считает сводку по всем записям клиента
func (s *Service) summarize(bookings []*domain.Booking, now time.Time) models.ClientSummary {
	summary := models.ClientSummary{TotalSpent: decimal.Zero}
	for _, b := range bookings {
		if s.viewOf(b, now) == models.ViewUpcoming {
			summary.Upcoming++
		}
		if b.IsCompleted() {
			summary.Completed++
			summary.TotalSpent = summary.TotalSpent.Add(b.ServicePrice)
		}
	}
	return summary
}

// translateDomainError сохраняет вид доменной ошибки под сентинелом сервиса
func translateDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	case errors.Is(err, domain.ErrAccessDenied):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	case errors.Is(err, domain.ErrValidation):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
