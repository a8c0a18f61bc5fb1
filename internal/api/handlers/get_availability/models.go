package get_availability

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	getAvailability "github.com/campuscore/CMP-ResourceService/internal/usecase/get_availability"
)

// SlotResponse состояние одного слота сетки
type SlotResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	State     string `json:"state"`    // available | booked | under_maintenance
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID int64          `json:"resourceId"`
	Date       string         `json:"date"` // "2024-02-15"
	Slots      []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(resourceID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ResourceID: resourceID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			State:     string(slot.State),
		}
	}

	return &AvailabilityResponse{
		ResourceID: resp.ResourceID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
