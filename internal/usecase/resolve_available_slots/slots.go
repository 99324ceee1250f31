package resolve_available_slots

import (
	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// filterSlots фильтрует кандидатов, сохраняя их порядок:
// занятые выбрасываются, остальные включаются только если время слота
// покрыто хотя бы одним правилом на этот день недели
func filterSlots(
	candidates []domain.TimeSlot,
	booked map[domain.TimeSlot]struct{},
	rules []*domain.AvailabilityRule,
	dayOfWeek int,
	logger Logger,
) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		if _, taken := booked[slot]; taken {
			continue
		}

		slotTime, err := slot.Time()
		if err != nil {
			// Неизвестная метка слота не ломает выдачу, просто исключается
			logger.Warn("ResolveAvailableSlots: skipping candidate: %v", err)
			continue
		}

		for _, rule := range rules {
			if rule.Covers(dayOfWeek, slotTime) {
				available = append(available, slot)
				break
			}
		}
	}

	return available
}
