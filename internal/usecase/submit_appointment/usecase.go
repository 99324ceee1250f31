package submit_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	appointmentRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/appointment"
	workshopRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/workshop"
	"github.com/forgeline/workshop-booking-service/internal/integrations/mailservice"
)

// UseCase use case создания записи на воркшоп
//
// Инвариант "не более одной неотменённой записи на (date, timeSlot)"
// обеспечивается уникальным индексом БД, а не повторной проверкой
// доступности здесь: резолвер - только витринная подсказка,
// к моменту отправки его результат может устареть
type UseCase struct {
	appointmentRepo AppointmentRepository
	workshopRepo    WorkshopRepository
	mailClient      MailClient // может быть nil, тогда письма не отправляются
	slotsCache      SlotsCache // может быть nil
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workshopRepo WorkshopRepository,
	mailClient MailClient,
	slotsCache SlotsCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		workshopRepo:    workshopRepo,
		mailClient:      mailClient,
		slotsCache:      slotsCache,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Повторный вызов с теми же полями - вторая попытка занять тот же слот,
// она завершится ErrSlotTaken, если первая прошла успешно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitAppointment: date=%s, slot=%s, email=%s",
		req.Date.Format(domain.DateFormat), req.TimeSlot, req.Email)

	// 1. Валидация входных данных - до любого обращения к БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование воркшопа, если он указан
	if req.WorkshopID != nil {
		if _, err := uc.workshopRepo.GetByID(ctx, *req.WorkshopID); err != nil {
			if errors.Is(err, workshopRepo.ErrWorkshopNotFound) {
				uc.logger.Warn("SubmitAppointment: workshop id=%s not found", *req.WorkshopID)
				return nil, ErrWorkshopNotFound
			}
			uc.logger.Error("SubmitAppointment: failed to get workshop id=%s: %v", *req.WorkshopID, err)
			return nil, fmt.Errorf("%w: failed to get workshop: %v", ErrInternal, err)
		}
	}

	meetingType := req.MeetingType
	if meetingType == "" {
		meetingType = domain.MeetingTypeVirtual
	}

	appointment := &domain.Appointment{
		WorkshopID:  req.WorkshopID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Message:     req.Message,
		MeetingType: meetingType,
		Attendees:   req.Attendees,
		Status:      domain.StatusPending,
	}

	// 3. Создаем запись в сериализуемой транзакции
	// Коллизию двух заказчиков на один слот разрешает констрейнт БД
	var result *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			uc.logger.Warn("SubmitAppointment: slot conflict for date=%s, slot=%s",
				req.Date.Format(domain.DateFormat), req.TimeSlot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("SubmitAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitAppointment: successfully created appointment id=%s", result.ID)

	// 4. Сбрасываем кеш слотов на эту дату
	if uc.slotsCache != nil {
		if err := uc.slotsCache.Invalidate(ctx, req.Date); err != nil {
			uc.logger.Warn("SubmitAppointment: failed to invalidate slots cache for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
		}
	}

	// 5. Отправляем подтверждение best-effort: запись уже создана,
	// недоступность почтовой функции не считается ошибкой бронирования
	if uc.mailClient != nil {
		_ = uc.mailClient.SendConfirmationWithGracefulDegradation(ctx, &mailservice.ConfirmationRequest{
			Name:     result.Name,
			Email:    result.Email,
			Date:     result.Date.Format(domain.DateFormat),
			TimeSlot: result.TimeSlot.String(),
		})
	}

	return &Response{
		ID:          result.ID,
		WorkshopID:  result.WorkshopID,
		Date:        result.Date,
		TimeSlot:    result.TimeSlot,
		Name:        result.Name,
		Email:       result.Email,
		Company:     result.Company,
		Message:     result.Message,
		MeetingType: result.MeetingType,
		Attendees:   result.Attendees,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}
