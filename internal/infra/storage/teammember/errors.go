package teammember

import "errors"

var (
	// ErrMemberNotFound возвращается, когда сотрудник не найден
	ErrMemberNotFound = errors.New("teammember.repository: team member not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("teammember.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("teammember.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("teammember.repository: failed to scan row")
)
