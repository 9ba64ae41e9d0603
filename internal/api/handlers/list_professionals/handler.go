package list_professionals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification"
)

const (
	msgForbidden     = "доступен только список одобренных мастеров"
	msgInvalidStatus = "некорректный статус заявки"
)

type Handler struct {
	service VerificationService
	logger  Logger
}

func NewHandler(service VerificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
// Query params: status (только approved, опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	result, err := h.service.ListProfessionals(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrAccessDenied):
			h.logger.Warn("GET /professionals - Status is not public: status=%s", status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, verification.ErrInvalidInput):
			h.logger.Warn("GET /professionals - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /professionals - Failed to list professionals: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals - Professionals retrieved successfully: count=%d", len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
