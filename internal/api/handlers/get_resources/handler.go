package get_resources

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuscore/CMP-ResourceService/internal/api/handlers"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources/models"
)

const (
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgInvalidMinCapacity = "некорректное значение minCapacity"
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

// Handle GET /api/v1/resources
// Query params: type (optional), status (optional), minCapacity (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListResourcesRequest{}
	query := r.URL.Query()

	if typeStr := query.Get("type"); typeStr != "" {
		req.Type = &typeStr
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if minCapacityStr := query.Get("minCapacity"); minCapacityStr != "" {
		minCapacity, err := strconv.Atoi(minCapacityStr)
		if err != nil || minCapacity < 0 {
			h.logger.Warn("GET /resources - Invalid minCapacity: %q", minCapacityStr)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)
			return
		}
		req.MinCapacity = &minCapacity
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("GET /resources - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /resources - Failed to list resources: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources - Resources retrieved successfully: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
