package update_booking

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// Request модель запроса на редактирование бронирования
// Редактирование полностью заменяет дату и интервал
type Request struct {
	UserID    int64            // ID пользователя (из X-User-ID)
	BookingID int64            // ID бронирования
	Date      time.Time        // Новая дата бронирования
	StartTime types.TimeString // Новое время начала
	EndTime   types.TimeString // Новое время конца (исключительная граница)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64            // ID бронирования
	ResourceID  int64            // ID ресурса
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца (исключительная граница)
	Status      string           // Статус бронирования
	BookedBy    int64            // ID пользователя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
