package get_availability

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// Request модель запроса на получение сетки доступности
type Request struct {
	ResourceID int64     // ID ресурса
	Date       time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Response модель ответа с сеткой состояний слотов
type Response struct {
	ResourceID int64         // ID ресурса
	Date       time.Time     // Дата сетки
	Slots      []domain.Slot // Состояние каждого слота сетки
}

// Window операционное окно сетки слотов
// Слоты генерируются от OpenTime до CloseTime с шагом StepMinutes
type Window struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	StepMinutes int
}
