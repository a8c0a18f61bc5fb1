package get_resource_bookings

import (
	"net/url"
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
// Поддерживаемые query параметры: date (YYYY-MM-DD), status, includeCancelled
func ToServiceRequest(userID, resourceID int64, query url.Values) (*models.GetResourceBookingsRequest, error) {
	req := &models.GetResourceBookingsRequest{
		UserID:     userID,
		ResourceID: resourceID,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	return req, nil
}
