package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AvailableSlot represents a 30-minute time slot available for booking
type AvailableSlot struct {
	Date      time.Time
	StartTime types.TimeString
}

// StartDateTime возвращает полную дату-время начала слота
func (s AvailableSlot) StartDateTime() (time.Time, error) {
	return s.StartTime.At(s.Date)
}
