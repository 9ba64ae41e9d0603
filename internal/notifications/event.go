package notifications

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// EventType тип доменного события
type EventType string

const (
	EventBookingConfirmed    EventType = "booking.confirmed"
	EventBookingCancelled    EventType = "booking.cancelled"
	EventBookingCompleted    EventType = "booking.completed"
	EventReviewSubmitted     EventType = "review.submitted"
	EventVerificationDecided EventType = "verification.decided"
)

// Event уведомление, которое доставляется подписчикам
// ProfessionalID используется как ключ партиционирования
type Event struct {
	ID             uuid.UUID   `json:"id"`
	Type           EventType   `json:"type"`
	OccurredAt     time.Time   `json:"occurredAt"`
	ProfessionalID string      `json:"professionalId"`
	ClientID       string      `json:"clientId,omitempty"`
	Payload        interface{} `json:"payload"`
}

// BookingPayload данные бронирования в событии
type BookingPayload struct {
	BookingID          uuid.UUID       `json:"bookingId"`
	Date               string          `json:"date"`
	StartTime          string          `json:"startTime"`
	DurationMinutes    int             `json:"durationMinutes"`
	ServiceName        string          `json:"serviceName"`
	ServicePrice       decimal.Decimal `json:"servicePrice"`
	Status             string          `json:"status"`
	CancelledBy        *string         `json:"cancelledBy,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
}

// ReviewPayload данные отзыва в событии
type ReviewPayload struct {
	ReviewID  uuid.UUID `json:"reviewId"`
	BookingID uuid.UUID `json:"bookingId"`
	Rating    int       `json:"rating"`
}

// VerificationPayload решение по заявке мастера
type VerificationPayload struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

// BookingEvent строит событие по бронированию; тип выводится из статуса
func BookingEvent(b *domain.Booking, now time.Time) Event {
	eventType := EventBookingConfirmed
	switch b.Status {
	case domain.StatusCancelled:
		eventType = EventBookingCancelled
	case domain.StatusCompleted:
		eventType = EventBookingCompleted
	}

	payload := BookingPayload{
		BookingID:          b.ID,
		Date:               b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
	}
	if b.CancelledBy != nil {
		role := string(*b.CancelledBy)
		payload.CancelledBy = &role
	}

	return Event{
		ID:             uuid.New(),
		Type:           eventType,
		OccurredAt:     now,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		Payload:        payload,
	}
}

// ReviewEvent строит событие о новом отзыве
func ReviewEvent(r *domain.Review, now time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Type:           EventReviewSubmitted,
		OccurredAt:     now,
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		Payload: ReviewPayload{
			ReviewID:  r.ID,
			BookingID: r.BookingID,
			Rating:    r.Rating,
		},
	}
}

// VerificationEvent строит событие о решении по заявке
func VerificationEvent(p *domain.VerificationProfile, now time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Type:           EventVerificationDecided,
		OccurredAt:     now,
		ProfessionalID: p.ProfessionalID,
		Payload: VerificationPayload{
			Status:          string(p.Status),
			RejectionReason: p.RejectionReason,
		},
	}
}
