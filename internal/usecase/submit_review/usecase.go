package submit_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
)

// UseCase use case для отзыва о завершённой записи
type UseCase struct {
	bookingRepo  BookingRepository
	reviewRepo   ReviewRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания отзыва
// Вставка отзыва и отметка reviewed на записи идут одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReview: booking=%s, user=%s, rating=%d", req.BookingID, req.Actor.UserID, req.Rating)

	// 1. Валидация отзыва
	review, err := buildReview(req)
	if err != nil {
		uc.logger.Warn("SubmitReview: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Review

	// 2. Проверяем запись и сохраняем отзыв в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отзыв оставляет только клиент этой записи
		if !domain.Can(req.Actor, domain.CapSubmitReview, booking.ClientID) {
			return ErrAccessDenied
		}

		// 2.3. Запись должна быть завершена и ещё без отзыва
		if err := booking.CanBeReviewed(); err != nil {
			if errors.Is(err, domain.ErrAlreadyReviewed) {
				return ErrAlreadyReviewed
			}
			return ErrNotCompleted
		}

		// 2.4. Сохраняем отзыв
		review.ProfessionalID = booking.ProfessionalID
		created, err := uc.reviewRepo.Create(txCtx, review)
		if err != nil {
			if errors.Is(err, reviewRepo.ErrReviewExists) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
		}

		// 2.5. Отмечаем запись как оценённую
		if err := uc.bookingRepo.MarkReviewed(txCtx, booking.ID); err != nil {
			return fmt.Errorf("%w: failed to mark booking reviewed: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("SubmitReview: failed for booking=%s: %v", req.BookingID, err)
		} else {
			uc.logger.Warn("SubmitReview: rejected for booking=%s: %v", req.BookingID, err)
		}
		return nil, err
	}

	ticket := uc.notifier.Submit(ctx, notifications.ReviewEvent(result, uc.timeProvider.Now()))

	uc.logger.Info("SubmitReview: successfully created review id=%s for booking=%s, event=%s",
		result.ID, req.BookingID, ticket.EventID())
	return &Response{
		Review:  result,
		EventID: ticket.EventID(),
	}, nil
}
