package update_resource_status

import (
	"context"

	"github.com/campuscore/CMP-ResourceService/internal/service/resources/models"
)

type ResourceService interface {
	UpdateStatus(ctx context.Context, resourceID int64, req *models.UpdateResourceStatusRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
