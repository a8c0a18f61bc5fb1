package create_resource

import "github.com/campuscore/CMP-ResourceService/internal/service/resources/models"

// CreateResourceRequest HTTP request model
type CreateResourceRequest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"` // Lab | Room | Auditorium | Vehicle
	Capacity      int      `json:"capacity"`
	Location      string   `json:"location"`
	Accessibility []string `json:"accessibility,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateResourceRequest) ToServiceRequest(userID int64) *models.CreateResourceRequest {
	return &models.CreateResourceRequest{
		UserID:        userID,
		Name:          r.Name,
		Type:          r.Type,
		Capacity:      r.Capacity,
		Location:      r.Location,
		Accessibility: r.Accessibility,
	}
}
