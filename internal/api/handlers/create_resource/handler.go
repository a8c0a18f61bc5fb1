package create_resource

import (
	"errors"
	"net/http"

	"github.com/campuscore/CMP-ResourceService/internal/api/handlers"
	"github.com/campuscore/CMP-ResourceService/internal/api/middleware"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgUserNotFound        = "пользователь не найден"
	msgForbidden           = "операция доступна только администратору"
	msgIdentityUnavailable = "сервис идентификации недоступен, повторите запрос позже"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources
// Доступно только администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /resources - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrAccessDenied):
			h.logger.Warn("POST /resources - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, resources.ErrUserNotFound):
			h.logger.Warn("POST /resources - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, resources.ErrIdentityUnavailable):
			h.logger.Error("POST /resources - Identity service unavailable: user_id=%d", userID)
			handlers.RespondServiceUnavailable(w, msgIdentityUnavailable)

		default:
			h.logger.Error("POST /resources - Failed to create resource: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created successfully: resource_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
