package domain

import "time"

// ResourceType represents the kind of bookable resource
type ResourceType string

const (
	TypeLab        ResourceType = "Lab"
	TypeRoom       ResourceType = "Room"
	TypeAuditorium ResourceType = "Auditorium"
	TypeVehicle    ResourceType = "Vehicle"
)

// ResourceStatus represents the operational status of a resource
type ResourceStatus string

const (
	ResourceAvailable        ResourceStatus = "available"
	ResourceUnderMaintenance ResourceStatus = "under_maintenance"
	ResourceRestricted       ResourceStatus = "restricted"
)

// Resource represents a bookable campus asset (lab, room, auditorium, vehicle)
type Resource struct {
	ID            int64
	Name          string
	Type          ResourceType
	Capacity      int
	Location      string
	Status        ResourceStatus
	Accessibility []string // informational tags, not enforced

	// Maintenance workflow data
	MaintenanceNotes   *string
	MaintenancePersons []string
	NextMaintenance    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new bookings may be placed on the resource
func (r *Resource) IsBookable() bool {
	return r.Status == ResourceAvailable
}

// IsUnderMaintenance returns true if the resource is under maintenance
func (r *Resource) IsUnderMaintenance() bool {
	return r.Status == ResourceUnderMaintenance
}

// ValidResourceType проверяет, что тип ресурса допустим
func ValidResourceType(t ResourceType) bool {
	switch t {
	case TypeLab, TypeRoom, TypeAuditorium, TypeVehicle:
		return true
	default:
		return false
	}
}

// ValidResourceStatus проверяет, что статус ресурса допустим
func ValidResourceStatus(s ResourceStatus) bool {
	switch s {
	case ResourceAvailable, ResourceUnderMaintenance, ResourceRestricted:
		return true
	default:
		return false
	}
}

// ResourceFilter фильтр для получения списка ресурсов
type ResourceFilter struct {
	Type        *ResourceType   // Фильтр по типу (опционально)
	Status      *ResourceStatus // Фильтр по статусу (опционально)
	MinCapacity *int            // Минимальная вместимость (опционально)
}
