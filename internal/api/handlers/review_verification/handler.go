package review_verification

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "заявка не найдена"
	msgAlreadyDecided     = "решение по заявке уже принято"
	msgInvalidDecision    = "некорректное решение по заявке"
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

// Handle PATCH /api/v1/admin/verifications/{professionalId}
// Body: {"status": "approved"} или {"status": "rejected", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	// Получаем пользователя из контекста (через middleware Auth)
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/verifications/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/verifications/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Decide(r.Context(), actor, professionalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/verifications/{id} - Access denied: user_id=%s, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, verification.ErrProfileNotFound):
			h.logger.Warn("PATCH /admin/verifications/{id} - Profile not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, verification.ErrAlreadyDecided):
			h.logger.Warn("PATCH /admin/verifications/{id} - Already decided: professional_id=%s", professionalID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, verification.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/verifications/{id} - Invalid decision: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		default:
			h.logger.Error("PATCH /admin/verifications/{id} - Failed to decide: professional_id=%s, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/verifications/{id} - Decision saved: professional_id=%s, status=%s, admin=%s",
		professionalID, result.Status, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
