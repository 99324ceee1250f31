package resolve_available_slots

import (
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date           time.Time         // Дата (без времени)
	CandidateSlots []domain.TimeSlot // Кандидаты в порядке показа; nil = полный список
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time         // Дата, на которую запрашивались слоты
	Slots []domain.TimeSlot // Доступные слоты в исходном порядке показа
}
