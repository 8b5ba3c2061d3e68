package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64            // ID клиента (из контекста запроса)
	StaffID    int64            // ID мастера
	Service    string           // Услуга (HAIRCUT | FACIAL | MANICURE | PEDICURE)
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	CustomerID      int64            // ID клиента
	StaffID         int64            // ID мастера
	Service         string           // Услуга
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomain конвертирует domain модель в response
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		CustomerID:      appt.CustomerID,
		StaffID:         appt.StaffID,
		Service:         string(appt.Service),
		AppointmentDate: appt.AppointmentDate,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
