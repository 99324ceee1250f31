package workshop

import "errors"

var (
	// ErrWorkshopNotFound возвращается, когда воркшоп не найден
	ErrWorkshopNotFound = errors.New("workshop.repository: workshop not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workshop.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workshop.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workshop.repository: failed to scan row")
)
