package resolve_available_slots

import (
	"context"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// UseCase use case вычисления доступных слотов для записи
//
// Результат - витринная подсказка для формы бронирования: он может устареть
// к моменту отправки формы, финальную проверку коллизий делает констрейнт БД
// при создании записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	slotsCache       SlotsCache // может быть nil, тогда кеширование выключено
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// slotsCache может быть nil - тогда резолвер всегда ходит в БД
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	slotsCache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		slotsCache:       slotsCache,
		logger:           logger,
	}
}

// Execute вычисляет доступные слоты на дату
//
// Алгоритм:
//  1. Берём занятые слоты на дату (ошибка деградирует в пустое множество).
//  2. Берём правила доступности на день недели (ошибка деградирует в "никого нет").
//  3. Фильтруем кандидатов в исходном порядке показа: занятые выбрасываем,
//     остальные оставляем только при покрытии хотя бы одним правилом.
//
// Результат детерминирован и сохраняет порядок кандидатов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	candidates := req.CandidateSlots
	useDefault := candidates == nil
	if useDefault {
		candidates = domain.DefaultTimeSlots
	}

	uc.logger.Info("ResolveAvailableSlots: date=%s, candidates=%d",
		req.Date.Format(domain.DateFormat), len(candidates))

	// Кеш применим только к канонической выборке слотов
	if useDefault && uc.slotsCache != nil {
		if cached, err := uc.slotsCache.Get(ctx, req.Date); err == nil {
			uc.logger.Info("ResolveAvailableSlots: cache hit for date=%s, %d slots",
				req.Date.Format(domain.DateFormat), len(cached))
			return &Response{Date: req.Date, Slots: cached}, nil
		}
	}

	booked := uc.bookedSet(ctx, req.Date)
	rules := uc.rulesForDay(ctx, domain.DayOfWeekFromDate(req.Date))

	available := filterSlots(candidates, booked, rules, domain.DayOfWeekFromDate(req.Date), uc.logger)

	if useDefault && uc.slotsCache != nil {
		if err := uc.slotsCache.Set(ctx, req.Date, available); err != nil {
			// Кеш не влияет на корректность ответа
			uc.logger.Warn("ResolveAvailableSlots: failed to cache slots for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
		}
	}

	uc.logger.Info("ResolveAvailableSlots: %d of %d slots available for date=%s",
		len(available), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}

// GetBookedTimeSlots возвращает занятые слоты на дату
// Ошибка поиска не поднимается наверх: логируется и деградирует
// в пустой список, чтобы форма бронирования оставалась рабочей
func (uc *UseCase) GetBookedTimeSlots(ctx context.Context, date time.Time) []domain.TimeSlot {
	return uc.bookedSlots(ctx, date)
}

// IsStaffAvailable возвращает true, если хотя бы один сотрудник объявил
// рабочее окно, покрывающее день недели и время слота (границы включительно)
// Ошибка поиска логируется и деградирует в false
func (uc *UseCase) IsStaffAvailable(ctx context.Context, dayOfWeek int, slot domain.TimeSlot) bool {
	slotTime, err := slot.Time()
	if err != nil {
		uc.logger.Warn("IsStaffAvailable: %v", err)
		return false
	}

	available, err := uc.availabilityRepo.ExistsForDayAndTime(ctx, dayOfWeek, slotTime)
	if err != nil {
		uc.logger.Error("IsStaffAvailable: lookup failed for day=%d time=%s: %v", dayOfWeek, slotTime, err)
		return false
	}

	return available
}

func (uc *UseCase) bookedSlots(ctx context.Context, date time.Time) []domain.TimeSlot {
	slots, err := uc.appointmentRepo.GetBookedSlots(ctx, date)
	if err != nil {
		uc.logger.Error("ResolveAvailableSlots: failed to get booked slots for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return []domain.TimeSlot{}
	}
	return slots
}

func (uc *UseCase) bookedSet(ctx context.Context, date time.Time) map[domain.TimeSlot]struct{} {
	slots := uc.bookedSlots(ctx, date)
	set := make(map[domain.TimeSlot]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}

func (uc *UseCase) rulesForDay(ctx context.Context, dayOfWeek int) []*domain.AvailabilityRule {
	rules, err := uc.availabilityRepo.ListByDayOfWeek(ctx, dayOfWeek)
	if err != nil {
		uc.logger.Error("ResolveAvailableSlots: failed to get availability rules for day=%d: %v", dayOfWeek, err)
		return nil
	}
	return rules
}
