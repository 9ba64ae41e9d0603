package get_professional_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date задаёт один день и имеет приоритет над from/to
func ToServiceRequest(professionalID string, query url.Values) (*models.GetProfessionalBookingsRequest, error) {
	req := &models.GetProfessionalBookingsRequest{
		ProfessionalID:  professionalID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим период если указан
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		var err error
		if req.StartDate, err = parseDate(query.Get("from")); err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		if req.EndDate, err = parseDate(query.Get("to")); err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
	}

	// Парсим status если указан
	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
