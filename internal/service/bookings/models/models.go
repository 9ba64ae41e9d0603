package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// ClientView срез записей клиента в личном кабинете
type ClientView string

const (
	ViewUpcoming  ClientView = "upcoming"  // подтверждённые, ещё не начавшиеся
	ViewPast      ClientView = "past"      // завершённые и прошедшие подтверждённые
	ViewCancelled ClientView = "cancelled" // отменённые
)

var (
	// ErrInvalidView возвращается при неизвестном срезе
	ErrInvalidView = errors.New("invalid bookings view")
)

// ParseClientView разбирает срез записей клиента
func ParseClientView(s string) (ClientView, error) {
	switch v := ClientView(s); v {
	case ViewUpcoming, ViewPast, ViewCancelled:
		return v, nil
	}
	return "", ErrInvalidView
}

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"` // Причина отмены (опционально)
}

// GetClientBookingsRequest запрос на получение записей клиента
type GetClientBookingsRequest struct {
	ClientID string
	Status   *string // Фильтр по статусу (опционально)
	View     *string // upcoming | past | cancelled (опционально)
}

// GetProfessionalBookingsRequest запрос на получение записей мастера
type GetProfessionalBookingsRequest struct {
	ProfessionalID  string
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода включительно (опционально)
	Status          *string    // Фильтр по статусу (опционально)
	IncludeInactive bool       // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProfessionalBookingsRequest) ToDomainFilter() (domain.ProfessionalBookingsFilter, error) {
	filter := domain.ProfessionalBookingsFilter{
		ProfessionalID:  r.ProfessionalID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil && r.EndDate != nil && domain.CompareDates(*r.StartDate, *r.EndDate) > 0 {
		return filter, domain.ValidationError("start date %s is after end date %s",
			r.StartDate.Format(domain.DateFormat), r.EndDate.Format(domain.DateFormat))
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"clientId"`
	ProfessionalID  string  `json:"professionalId"`
	ServiceID       *string `json:"serviceId,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2026-03-02"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "11:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Reviewed        bool    `json:"reviewed"`

	// Снимок услуги на момент записи
	ServiceName  string          `json:"serviceName"`
	ServicePrice decimal.Decimal `json:"servicePrice"`
	Notes        *string         `json:"notes,omitempty"`

	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ClientSummary сводка по записям клиента
type ClientSummary struct {
	Upcoming   int             `json:"upcoming"`
	Completed  int             `json:"completed"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// ClientBookingsResponse ответ со списком записей клиента и сводкой
type ClientBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Summary  ClientSummary     `json:"summary"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID.String(),
		ClientID:           b.ClientID,
		ProfessionalID:     b.ProfessionalID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		Reviewed:           b.Reviewed,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if end, err := types.FromMinutes(b.EndMinutes()); err == nil {
		resp.EndTime = end.String()
	}

	if b.ServiceID != nil {
		id := b.ServiceID.String()
		resp.ServiceID = &id
	}

	if b.CancelledBy != nil {
		by := string(*b.CancelledBy)
		resp.CancelledBy = &by
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	return &BookingListResponse{Bookings: toResponses(bookings)}
}

// FromDomainClientBookings конвертирует записи клиента вместе со сводкой
func FromDomainClientBookings(bookings []*domain.Booking, summary ClientSummary) *ClientBookingsResponse {
	return &ClientBookingsResponse{
		Bookings: toResponses(bookings),
		Summary:  summary,
	}
}

func toResponses(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			out = append(out, *bookingResp)
		}
	}
	return out
}
