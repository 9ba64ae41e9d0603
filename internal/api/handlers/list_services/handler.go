package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

const msgInvalidCategory = "неизвестная категория услуг"

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

// Handle GET /api/v1/services
// Query params: category (опционально, All = без фильтра), q (поиск по названию и описанию)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListServicesRequest{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /services - Invalid filter: category=%q, error=%v", req.Category, err)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /services - Failed to search services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services found: category=%q, q=%q, count=%d",
		req.Category, req.Query, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
