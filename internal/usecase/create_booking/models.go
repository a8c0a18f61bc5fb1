package create_booking

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя (из X-User-ID)
	ResourceID      int64            // ID ресурса
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность в минутах
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	ResourceID  int64            // ID ресурса
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца (исключительная граница)
	Status      string           // Статус бронирования
	BookedBy    int64            // ID пользователя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
