package apply_verification

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "подать заявку может только мастер"
	msgAlreadyApplied     = "заявка уже подана"
	msgInvalidProfile     = "некорректные данные заявки"
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

// Handle POST /api/v1/verifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем пользователя из контекста (через middleware Auth)
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /verifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ApplyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verifications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Apply(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrAccessDenied):
			h.logger.Warn("POST /verifications - Access denied: user_id=%s, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, verification.ErrAlreadyApplied):
			h.logger.Warn("POST /verifications - Already applied: user_id=%s", actor.UserID)
			handlers.RespondConflict(w, msgAlreadyApplied)

		case errors.Is(err, verification.ErrInvalidInput):
			h.logger.Warn("POST /verifications - Invalid application: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("POST /verifications - Failed to apply: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /verifications - Application submitted successfully: professional_id=%s", actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
