package create_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Ошибки разбора запроса, текст уходит пользователю
var (
	errMissingProfessional = errors.New("ID мастера обязателен")
	errInvalidServiceID    = errors.New("некорректный ID услуги")
	errInvalidDate         = errors.New("некорректный формат даты бронирования, ожидается YYYY-MM-DD")
	errInvalidTime         = errors.New("некорректный формат времени начала, ожидается HH:MM")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID string  `json:"professionalId"`
	ServiceID      string  `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"` // "2026-03-02"
	StartTime      string  `json:"startTime"`   // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	models.BookingResponse
	EventID string `json:"eventId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Клиентом записи всегда становится автор запроса
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	if r.ProfessionalID == "" {
		return nil, errMissingProfessional
	}

	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, errInvalidServiceID
	}

	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Actor:          actor,
		ClientID:       actor.UserID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      serviceID,
		Date:           bookingDate,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: *models.FromDomainBooking(resp.Booking),
		EventID:         resp.EventID.String(),
	}
}
