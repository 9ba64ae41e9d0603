package get_available_slots

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
)

// Ошибки разбора query параметров, текст уходит пользователю
var (
	errMissingDate       = errors.New("дата обязательна")
	errInvalidDate       = errors.New("некорректный формат даты, ожидается YYYY-MM-DD")
	errInvalidDuration   = errors.New("некорректная длительность, ожидается число минут")
	errInvalidServiceID  = errors.New("некорректный ID услуги")
	errDurationOrService = errors.New("укажите либо durationMinutes, либо serviceId")
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID  string          `json:"professionalId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	ServiceID       *string         `json:"serviceId,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// ToUseCaseRequest собирает запрос use case из пути и query параметров
func ToUseCaseRequest(professionalID, dateStr, durationStr, serviceIDStr string) (*getAvailableSlots.Request, error) {
	if dateStr == "" {
		return nil, errMissingDate
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	if (durationStr == "") == (serviceIDStr == "") {
		return nil, errDurationOrService
	}

	req := &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		Date:           date,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, errInvalidDuration
		}
		req.DurationMinutes = &duration
	}

	if serviceIDStr != "" {
		serviceID, err := uuid.Parse(serviceIDStr)
		if err != nil {
			return nil, errInvalidServiceID
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, AvailableSlot{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	out := &AvailableSlotsResponse{
		ProfessionalID:  resp.ProfessionalID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
	if resp.ServiceID != nil {
		id := resp.ServiceID.String()
		out.ServiceID = &id
	}
	return out
}
