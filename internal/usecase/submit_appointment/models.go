package submit_appointment

import (
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	WorkshopID  *string         // ID воркшопа (опционально)
	Date        time.Time       // Дата записи (без времени)
	TimeSlot    domain.TimeSlot // Метка слота (например, "9:00 AM")
	Name        string          // Имя заказчика
	Email       string          // Email заказчика
	Company     string          // Компания заказчика
	Message     *string         // Сообщение (опционально)
	MeetingType string          // virtual / in-person; пустое = virtual
	Attendees   *int            // Число участников (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string          // ID созданной записи
	WorkshopID  *string         // ID воркшопа
	Date        time.Time       // Дата записи
	TimeSlot    domain.TimeSlot // Слот
	Name        string          // Имя заказчика
	Email       string          // Email заказчика
	Company     string          // Компания
	Message     *string         // Сообщение
	MeetingType string          // Тип встречи
	Attendees   *int            // Число участников
	Status      string          // Статус (всегда pending при создании)
	CreatedAt   time.Time       // Время создания
}
