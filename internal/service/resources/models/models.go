package models

import (
	"errors"
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
)

var (
	// ErrInvalidType возвращается при некорректном типе ресурса
	ErrInvalidType = errors.New("invalid resource type")

	// ErrInvalidStatus возвращается при некорректном статусе ресурса
	ErrInvalidStatus = errors.New("invalid resource status")
)

// Request модели

// ListResourcesRequest запрос на получение каталога ресурсов
type ListResourcesRequest struct {
	Type        *string `json:"type,omitempty"`        // Фильтр по типу (опционально)
	Status      *string `json:"status,omitempty"`      // Фильтр по статусу (опционально)
	MinCapacity *int    `json:"minCapacity,omitempty"` // Минимальная вместимость (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListResourcesRequest) ToDomainFilter() (domain.ResourceFilter, error) {
	filter := domain.ResourceFilter{
		MinCapacity: r.MinCapacity,
	}

	if r.Type != nil {
		resourceType := domain.ResourceType(*r.Type)
		if !domain.ValidResourceType(resourceType) {
			return filter, ErrInvalidType
		}
		filter.Type = &resourceType
	}

	if r.Status != nil {
		status := domain.ResourceStatus(*r.Status)
		if !domain.ValidResourceStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// CreateResourceRequest запрос на создание ресурса (только администратор)
type CreateResourceRequest struct {
	UserID        int64    `json:"userId"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	Location      string   `json:"location"`
	Accessibility []string `json:"accessibility,omitempty"`
}

// UpdateResourceStatusRequest запрос на смену статуса ресурса (только администратор)
type UpdateResourceStatusRequest struct {
	UserID             int64      `json:"userId"`
	Status             string     `json:"status"`
	MaintenanceNotes   *string    `json:"maintenanceNotes,omitempty"`
	MaintenancePersons []string   `json:"maintenancePersons,omitempty"`
	NextMaintenance    *time.Time `json:"nextMaintenance,omitempty"`
}

// Response модели

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	Location      string   `json:"location"`
	Status        string   `json:"status"`
	Accessibility []string `json:"accessibility"`

	MaintenanceNotes   *string  `json:"maintenanceNotes,omitempty"`
	MaintenancePersons []string `json:"maintenancePersons,omitempty"`
	NextMaintenance    *string  `json:"nextMaintenance,omitempty"` // "2024-03-01"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse ответ с каталогом ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	resp := &ResourceResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Type:               string(r.Type),
		Capacity:           r.Capacity,
		Location:           r.Location,
		Status:             string(r.Status),
		Accessibility:      r.Accessibility,
		MaintenanceNotes:   r.MaintenanceNotes,
		MaintenancePersons: r.MaintenancePersons,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.NextMaintenance != nil {
		next := r.NextMaintenance.Format(domain.DateFormat)
		resp.NextMaintenance = &next
	}

	return resp
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	if resources == nil {
		return &ResourceListResponse{
			Resources: []ResourceResponse{},
		}
	}

	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, len(resources)),
	}

	for i, resource := range resources {
		if resourceResp := FromDomainResource(resource); resourceResp != nil {
			resp.Resources[i] = *resourceResp
		}
	}

	return resp
}
