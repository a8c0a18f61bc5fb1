package identityservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("identityservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда identity service недоступен
	// (сетевая ошибка, таймаут, 5xx). Отличается от доменных ошибок:
	// повтор запроса без изменения параметров может пройти успешно.
	// Данные при этом никогда не подменяются заглушками.
	ErrServiceUnavailable = errors.New("identityservice client: service unavailable")
)
