package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, professionalID string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
