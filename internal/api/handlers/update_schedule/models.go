package update_schedule

import (
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/schedule/models"
)

var errScheduleOrReset = errors.New("either schedule or reset must be provided")

// UpdateScheduleRequest HTTP request model
// Либо schedule с полным недельным шаблоном, либо reset: true
type UpdateScheduleRequest struct {
	Schedule *models.WeeklySchedule `json:"schedule,omitempty"`
	Reset    bool                   `json:"reset,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(professionalID string) (*models.UpdateScheduleRequest, error) {
	if (r.Schedule == nil) != r.Reset {
		return nil, errScheduleOrReset
	}
	return &models.UpdateScheduleRequest{
		ProfessionalID: professionalID,
		Schedule:       r.Schedule,
		Reset:          r.Reset,
	}, nil
}
