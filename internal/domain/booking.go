package domain

import (
	"time"

	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a resource for a date and
// a half-open [StartTime, EndTime) time-of-day interval
type Booking struct {
	ID          int64
	ResourceID  int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	BookedBy    int64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking holds its time slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeEdited returns true if the booking interval may still be changed
func (b *Booking) CanBeEdited() bool {
	return b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's [StartTime, EndTime) interval
// intersects [start, end). Touching endpoints do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// ValidBookingStatus проверяет, что статус бронирования допустим
func ValidBookingStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// ResourceBookingsFilter фильтр для получения бронирований ресурса
type ResourceBookingsFilter struct {
	ResourceID       int64          // Обязательный параметр
	Date             *time.Time     // Фильтр по дате (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
