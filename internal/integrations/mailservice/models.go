package mailservice

// ConfirmationRequest тело запроса к функции отправки подтверждения
type ConfirmationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// ConfirmationResponse ответ функции отправки подтверждения
type ConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
