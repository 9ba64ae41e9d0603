package submit_review

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	submitReview "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_review"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "оставить отзыв может только клиент этой записи"
	msgNotCompleted       = "отзыв можно оставить только после завершения записи"
	msgAlreadyReviewed    = "отзыв на эту запись уже оставлен"
	msgInvalidReview      = "некорректный отзыв"
)

type Handler struct {
	useCase SubmitReviewUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем пользователя из контекста (через middleware Auth)
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/review - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, submitReview.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/review - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitReview.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/review - Access denied: booking_id=%s, user_id=%s", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitReview.ErrAlreadyReviewed):
			h.logger.Warn("POST /bookings/{id}/review - Already reviewed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, submitReview.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/review - Booking not completed: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotCompleted)

		case errors.Is(err, submitReview.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/review - Invalid review: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /bookings/{id}/review - Failed to submit review: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/review - Review submitted successfully: review_id=%s, booking_id=%s",
		result.Review.ID, bookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
