package apply_verification

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

type VerificationService interface {
	Apply(ctx context.Context, actor domain.Actor, req *models.ApplyRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
