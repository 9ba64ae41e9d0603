package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, actor domain.Actor, req *models.UpdateScheduleRequest) (*models.UpdateScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
