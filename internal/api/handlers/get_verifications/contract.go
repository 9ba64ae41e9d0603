package get_verifications

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

type VerificationService interface {
	List(ctx context.Context, actor domain.Actor, status *string) (*models.ProfileListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
