package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в identity service
	ErrUserNotFound = errors.New("update_booking: user not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец
	// бронирования и не администратор
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrCannotEdit возвращается при попытке редактировать отмененное бронирование
	ErrCannotEdit = errors.New("update_booking: booking cannot be edited")

	// ErrResourceUnavailable возвращается, когда ресурс на обслуживании
	// или с ограниченным доступом
	ErrResourceUnavailable = errors.New("update_booking: resource is not available for booking")

	// ErrSlotConflict возвращается при пересечении нового интервала
	// с другим подтвержденным бронированием
	ErrSlotConflict = errors.New("update_booking: slot conflicts with an existing booking")

	// ErrInvalidInterval возвращается, когда интервал некорректен
	ErrInvalidInterval = errors.New("update_booking: invalid time interval")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("update_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrIdentityUnavailable возвращается при недоступности identity service
	ErrIdentityUnavailable = errors.New("update_booking: identity service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
