package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ServiceType represents a salon service offered for booking
type ServiceType string

const (
	ServiceHaircut  ServiceType = "HAIRCUT"
	ServiceFacial   ServiceType = "FACIAL"
	ServiceManicure ServiceType = "MANICURE"
	ServicePedicure ServiceType = "PEDICURE"
)

// ServiceTypes список всех поддерживаемых услуг
var ServiceTypes = []ServiceType{
	ServiceHaircut,
	ServiceFacial,
	ServiceManicure,
	ServicePedicure,
}

// ValidServiceType возвращает true для известной услуги
func ValidServiceType(s ServiceType) bool {
	for _, valid := range ServiceTypes {
		if s == valid {
			return true
		}
	}
	return false
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a customer appointment with a staff member
// Записи никогда не удаляются физически: отмена переводит запись в cancelled
type Appointment struct {
	ID              int64
	CustomerID      int64
	StaffID         int64
	Service         ServiceType
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the appointment is in the booked state
func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}

// IsCancelled returns true if the appointment has been cancelled
// cancelled - терминальный статус, возврат в booked невозможен
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusBooked
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// Overlaps проверяет пересечение записи с интервалом [slotStart, slotStart+slotDuration)
// Полуоткрытые интервалы: записи "встык" пересечением не считаются
func (a *Appointment) Overlaps(slotStart types.TimeString, slotDuration int) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return false
	}
	end, err := a.EndTime()
	if err != nil {
		return false
	}
	return a.StartTime.IsBefore(slotEnd) && end.IsAfter(slotStart)
}

// AppointmentsFilter фильтр для получения списка записей
type AppointmentsFilter struct {
	CustomerID *int64             // Фильтр по клиенту (опционально)
	StaffID    *int64             // Фильтр по мастеру (опционально)
	Date       *time.Time         // Фильтр по дате (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	Search     *string            // Поиск по услуге и заметкам (опционально)
}
