package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateWindowSlots генерирует все 30-минутные слоты внутри окна расписания
// Слоты идут с шагом 30 минут от начала окна; последний допустимый старт -
// end_time минус 30 минут (слот должен целиком помещаться в окно)
func generateWindowSlots(window *domain.ScheduleWindow, date time.Time) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0, window.SlotCount())
	current := window.StartTime

	for current.IsBefore(window.EndTime) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(window.EndTime) {
			break
		}

		slots = append(slots, domain.AvailableSlot{Date: date, StartTime: current})

		current, err = current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// filterBookedSlots убирает слоты, пересекающиеся с активными записями
// Пересечение полуоткрытых интервалов: запись, заканчивающаяся ровно в начале
// слота (или начинающаяся ровно в его конце), слот не занимает
func filterBookedSlots(slots []domain.AvailableSlot, appointments []*domain.Appointment) []domain.AvailableSlot {
	available := make([]domain.AvailableSlot, 0, len(slots))

	for _, slot := range slots {
		if !slotTaken(slot.StartTime, appointments) {
			available = append(available, slot)
		}
	}

	return available
}

// slotTaken проверяет, пересекается ли слот хотя бы с одной booked-записью
func slotTaken(slotStart types.TimeString, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsBooked() {
			continue
		}
		if appt.Overlaps(slotStart, domain.SlotDurationMinutes) {
			return true
		}
	}
	return false
}
