package get_service_categories

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/categories
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Categories(r.Context())

	h.logger.Info("GET /services/categories - Categories retrieved: count=%d", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
