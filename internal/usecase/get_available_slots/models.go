package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID int64     // ID мастера
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StaffID             int64                  // ID мастера
	StaffUsername       string                 // Имя пользователя мастера
	Date                time.Time              // Дата, на которую запрашивались слоты
	SlotDurationMinutes int                    // Длительность слота в минутах
	Slots               []domain.AvailableSlot // Доступные слоты по возрастанию времени
}
