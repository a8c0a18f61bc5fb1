package update_resource_status

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources/models"
)

// UpdateResourceStatusRequest HTTP request model
type UpdateResourceStatusRequest struct {
	Status             string   `json:"status"` // available | under_maintenance | restricted
	MaintenanceNotes   *string  `json:"maintenanceNotes,omitempty"`
	MaintenancePersons []string `json:"maintenancePersons,omitempty"`
	NextMaintenance    *string  `json:"nextMaintenance,omitempty"` // "2024-03-01"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateResourceStatusRequest) ToServiceRequest(userID int64) (*models.UpdateResourceStatusRequest, error) {
	req := &models.UpdateResourceStatusRequest{
		UserID:             userID,
		Status:             r.Status,
		MaintenanceNotes:   r.MaintenanceNotes,
		MaintenancePersons: r.MaintenancePersons,
	}

	if r.NextMaintenance != nil {
		next, err := time.Parse(domain.DateFormat, *r.NextMaintenance)
		if err != nil {
			return nil, err
		}
		req.NextMaintenance = &next
	}

	return req, nil
}
