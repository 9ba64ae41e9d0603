package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// DaySchedule рабочее окно одного дня недели
type DaySchedule struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// WeeklySchedule недельный шаблон доступности
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Request модели

// UpdateScheduleRequest запрос на замену или сброс расписания
type UpdateScheduleRequest struct {
	ProfessionalID string
	Schedule       *WeeklySchedule // Новый шаблон (игнорируется при Reset)
	Reset          bool            // Сбросить на шаблон по умолчанию
}

// Response модели

// ScheduleResponse ответ с расписанием мастера
type ScheduleResponse struct {
	ProfessionalID string         `json:"professionalId"`
	Schedule       WeeklySchedule `json:"schedule"`
	IsDefault      bool           `json:"isDefault"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// OrphanedBooking предстоящая запись, которая не помещается в новое расписание
type OrphanedBooking struct {
	ID              string `json:"id"`
	ClientID        string `json:"clientId"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ServiceName     string `json:"serviceName"`
}

// UpdateScheduleResponse ответ на изменение расписания
// Существующие записи сохраняются, вне окна они перечислены в OrphanedBookings
type UpdateScheduleResponse struct {
	ScheduleResponse
	OrphanedBookings []OrphanedBooking `json:"orphanedBookings"`
}

// Методы конвертации

// ToDomain конвертирует DTO в domain модель
func (w *WeeklySchedule) ToDomain(professionalID string) *domain.WeeklySchedule {
	s := &domain.WeeklySchedule{ProfessionalID: professionalID}
	for _, d := range domain.Weekdays {
		day := w.day(d)
		s.Days[d] = domain.DayAvailability{
			Enabled:   day.Enabled,
			StartTime: types.TimeString(day.StartTime),
			EndTime:   types.TimeString(day.EndTime),
		}
	}
	return s
}

func (w *WeeklySchedule) day(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WeeklySchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	day := func(d time.Weekday) DaySchedule {
		a := s.ForWeekday(d)
		return DaySchedule{
			Enabled:   a.Enabled,
			StartTime: a.StartTime.String(),
			EndTime:   a.EndTime.String(),
		}
	}

	return &ScheduleResponse{
		ProfessionalID: s.ProfessionalID,
		Schedule: WeeklySchedule{
			Monday:    day(time.Monday),
			Tuesday:   day(time.Tuesday),
			Wednesday: day(time.Wednesday),
			Thursday:  day(time.Thursday),
			Friday:    day(time.Friday),
			Saturday:  day(time.Saturday),
			Sunday:    day(time.Sunday),
		},
		IsDefault: s.IsDefault,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainOrphaned конвертирует список осиротевших записей
func FromDomainOrphaned(bookings []*domain.Booking) []OrphanedBooking {
	out := make([]OrphanedBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, OrphanedBooking{
			ID:              b.ID.String(),
			ClientID:        b.ClientID,
			BookingDate:     b.BookingDate.Format(domain.DateFormat),
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			ServiceName:     b.ServiceName,
		})
	}
	return out
}

// String используется в логах
func (r *UpdateScheduleRequest) String() string {
	if r.Reset {
		return fmt.Sprintf("professional=%s reset=true", r.ProfessionalID)
	}
	return fmt.Sprintf("professional=%s", r.ProfessionalID)
}
