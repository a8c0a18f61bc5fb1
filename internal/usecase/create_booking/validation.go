package create_booking

import (
	"fmt"
	"time"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinBookingDurationMinutes ||
		req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBookingDurationMinutes, domain.MaxBookingDurationMinutes)
	}

	return nil
}

// computeEndTime вычисляет исключительную границу интервала
// Интервал, пересекающий границу суток, отклоняется без переноса на
// следующий день
func computeEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: interval crosses the day boundary", ErrInvalidInterval)
	}
	return end, nil
}

// validateInterval проверяет корректность полуоткрытого интервала [start, end)
func validateInterval(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInterval)
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// findConflictingBooking возвращает первое подтвержденное бронирование,
// пересекающееся с интервалом [start, end), или nil
// Граничащие интервалы (конец одного равен началу другого) не конфликтуют
func findConflictingBooking(start, end types.TimeString, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
