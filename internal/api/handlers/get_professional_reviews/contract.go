package get_professional_reviews

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/reviews/models"
)

type ReviewService interface {
	ListByProfessional(ctx context.Context, professionalID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
