package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleWindow represents an admin-defined interval on a date during which
// a staff member is bookable
// Одно окно на пару (staff_id, schedule_date); отсутствие окна означает,
// что мастер в этот день не принимает записи
type ScheduleWindow struct {
	ID           int64
	StaffID      int64
	ScheduleDate time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	IsAvailable  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the window accepts bookings
func (w *ScheduleWindow) IsBookable() bool {
	return w.IsAvailable
}

// DurationMinutes возвращает длину окна в минутах
func (w *ScheduleWindow) DurationMinutes() (int, error) {
	return w.StartTime.MinutesUntil(w.EndTime)
}

// SlotCount возвращает количество 30-минутных слотов в окне
func (w *ScheduleWindow) SlotCount() int {
	minutes, err := w.DurationMinutes()
	if err != nil || minutes <= 0 {
		return 0
	}
	return minutes / SlotDurationMinutes
}

// CoversSlot проверяет, что слот [start, start+30) целиком лежит внутри окна
// Последний допустимый старт - end_time минус длительность слота
func (w *ScheduleWindow) CoversSlot(start types.TimeString) bool {
	if start.IsBefore(w.StartTime) {
		return false
	}
	slotEnd, err := start.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return false
	}
	return !slotEnd.IsAfter(w.EndTime)
}

// SchedulesFilter фильтр для получения списка окон расписания
type SchedulesFilter struct {
	StaffID *int64     // Фильтр по мастеру (опционально)
	Date    *time.Time // Фильтр по дате (опционально)
}
