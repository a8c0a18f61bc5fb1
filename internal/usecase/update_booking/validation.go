package update_booking

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

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

// validateInterval проверяет корректность полуоткрытого интервала [start, end)
// Оба времени лежат в пределах одних суток, конец строго позже начала
func validateInterval(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInterval)
	}

	duration := end.Minutes() - start.Minutes()
	if duration < domain.MinBookingDurationMinutes || duration > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInterval, domain.MinBookingDurationMinutes, domain.MaxBookingDurationMinutes)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// findConflictingBooking возвращает первое подтвержденное бронирование,
// пересекающееся с интервалом [start, end), исключая само редактируемое
// бронирование (иначе любое сужение интервала конфликтовало бы с собой)
func findConflictingBooking(bookingID int64, start, end types.TimeString, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.ID == bookingID {
			continue
		}
		if !b.IsConfirmed() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
