package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

type VerificationService interface {
	ListProfessionals(ctx context.Context, status string) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
