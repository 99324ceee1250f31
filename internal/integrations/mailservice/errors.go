package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Письмо не отправлено, но запись уже создана - вызывающий код только логирует
	ErrServiceDegraded = errors.New("mailservice unavailable: graceful degradation applied")
)
