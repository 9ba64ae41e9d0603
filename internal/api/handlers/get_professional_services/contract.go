package get_professional_services

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

type CatalogService interface {
	ListByOwner(ctx context.Context, ownerID string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
