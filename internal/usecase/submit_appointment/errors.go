package submit_appointment

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят неотменённой записью
	// Вызывающий код должен предложить выбрать другое время
	ErrSlotTaken = errors.New("submit_appointment: time slot already booked")

	// ErrWorkshopNotFound возвращается, когда указанный воркшоп не найден
	ErrWorkshopNotFound = errors.New("submit_appointment: workshop not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// Проверка выполняется до любого обращения к БД
	ErrInvalidInput = errors.New("submit_appointment: invalid input data")

	// ErrInternal возвращается при прочих ошибках слоя данных
	// (сеть, права, неожиданный ответ) - вызывающий код предлагает повторить позже
	ErrInternal = errors.New("submit_appointment: internal error")
)
