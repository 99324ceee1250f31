package team

import "errors"

var (
	// ErrMemberNotFound возвращается, когда сотрудник не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrAccessDenied возвращается, когда актор не является админом
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
