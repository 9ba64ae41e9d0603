package get_professional_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/reviews
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	result, err := h.service.ListByProfessional(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/reviews - Failed to get reviews: professional_id=%s, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/reviews - Reviews retrieved successfully: professional_id=%s, count=%d",
		professionalID, result.Summary.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
