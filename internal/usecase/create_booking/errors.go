package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в identity service
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrResourceUnavailable возвращается, когда ресурс на обслуживании
	// или с ограниченным доступом, бронирование невозможно
	ErrResourceUnavailable = errors.New("create_booking: resource is not available for booking")

	// ErrSlotConflict возвращается при пересечении с существующим
	// подтвержденным бронированием; текст содержит id конфликтующего бронирования
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInvalidInterval возвращается, когда интервал некорректен
	// (конец не позже начала или выходит за границу суток)
	ErrInvalidInterval = errors.New("create_booking: invalid time interval")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrIdentityUnavailable возвращается при недоступности identity service
	// Повтор запроса без изменения параметров может пройти успешно
	ErrIdentityUnavailable = errors.New("create_booking: identity service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
