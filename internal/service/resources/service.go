package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	resourceRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/resource"
	identityClient "github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources/models"
)

// Service сервис для работы с каталогом ресурсов
type Service struct {
	resourceRepo   ResourceRepository
	identityClient IdentityServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	resourceRepo ResourceRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo:   resourceRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// List получает каталог ресурсов с фильтрацией по типу, статусу и вместимости
// Публичная операция, права доступа не проверяются
func (s *Service) List(ctx context.Context, req *models.ListResourcesRequest) (*models.ResourceListResponse, error) {
	s.logger.Info("List: fetching resources, type=%v, status=%v, minCapacity=%v", req.Type, req.Status, req.MinCapacity)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resources, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// Create добавляет ресурс в каталог
// Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource name=%s, type=%s by user=%d", req.Name, req.Type, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	resource := &domain.Resource{
		Name:          req.Name,
		Type:          domain.ResourceType(req.Type),
		Capacity:      req.Capacity,
		Location:      req.Location,
		Status:        domain.ResourceAvailable,
		Accessibility: req.Accessibility,
	}

	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created resource id=%d", created.ID)
	return models.FromDomainResource(created), nil
}

// UpdateStatus меняет статус ресурса и данные обслуживания
// Доступно только администратору
// Перевод в under_maintenance не отменяет существующие бронирования,
// но слоты ресурса перестают быть доступными для новых
func (s *Service) UpdateStatus(ctx context.Context, resourceID int64, req *models.UpdateResourceStatusRequest) (*models.ResourceResponse, error) {
	s.logger.Info("UpdateStatus: updating resource id=%d to status=%s by user=%d", resourceID, req.Status, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	status := domain.ResourceStatus(req.Status)
	if !domain.ValidResourceStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for resource id=%d", req.Status, resourceID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	updated, err := s.resourceRepo.UpdateStatus(ctx, resourceID, status, req.MaintenanceNotes, req.MaintenancePersons, req.NextMaintenance)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("UpdateStatus: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpdateStatus: repository error for resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated resource id=%d to status=%s", resourceID, status)
	return models.FromDomainResource(updated), nil
}

// Вспомогательные методы

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		if errors.Is(err, identityClient.ErrServiceUnavailable) {
			s.logger.Error("checkAdminAccess: identity service unavailable: %v", err)
			return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user id=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}

// validateCreateRequest валидирует запрос на создание ресурса
func validateCreateRequest(req *models.CreateResourceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidResourceType(domain.ResourceType(req.Type)) {
		return fmt.Errorf("%w: invalid resource type %q", ErrInvalidInput, req.Type)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	return nil
}
