package get_availability

import (
	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// generateTimeGrid генерирует границы слотов операционного окна
// с фиксированным шагом: [open, open+step, ...) до close (не включая close)
func generateTimeGrid(window Window) ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0)
	current := window.OpenTime

	for current.IsBefore(window.CloseTime) {
		grid = append(grid, current)

		next, err := current.AddMinutes(window.StepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return grid, nil
}

// computeSlotStates вычисляет состояние каждого слота сетки
//
// Порядок приоритетов строгий и не зависит от порядка бронирований во входе:
// under_maintenance (статус ресурса) > booked > available
//
// Слот t считается занятым, если существует подтвержденное бронирование b
// того же ресурса с b.start <= t < b.end. Интервалы полуоткрытые:
// бронирование [11:00, 12:00) НЕ занимает слот 12:00
func computeSlotStates(
	resource *domain.Resource,
	grid []types.TimeString,
	bookings []*domain.Booking,
) []domain.Slot {
	slots := make([]domain.Slot, len(grid))

	for i, t := range grid {
		slots[i] = domain.Slot{
			StartTime: t,
			State:     slotStateAt(resource, t, bookings),
		}
	}

	return slots
}

// slotStateAt вычисляет состояние одного слота
func slotStateAt(resource *domain.Resource, t types.TimeString, bookings []*domain.Booking) domain.SlotState {
	if resource.IsUnderMaintenance() {
		return domain.SlotUnderMaintenance
	}

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if b.ResourceID != resource.ID {
			continue
		}
		// b.start <= t < b.end
		if !t.IsBefore(b.StartTime) && t.IsBefore(b.EndTime) {
			return domain.SlotBooked
		}
	}

	return domain.SlotAvailable
}
