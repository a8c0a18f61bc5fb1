package resources

import (
	"context"
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ResourceStatus, notes *string, persons []string, nextMaintenance *time.Time) (*domain.Resource, error)
}

// IdentityServiceClient интерфейс клиента identity service
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
