package get_professional_services

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle GET /api/v1/professionals/{professionalId}/services
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	result, err := h.service.ListByOwner(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/services - Failed to get services: professional_id=%s, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/services - Services retrieved successfully: professional_id=%s, count=%d",
		professionalID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
