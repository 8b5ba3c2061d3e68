package create_appointment

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	// или указанный пользователь не является мастером
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrInvalidService возвращается при неизвестной услуге
	ErrInvalidService = errors.New("create_appointment: unknown service")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSlotNotAligned возвращается, когда время начала не кратно 30 минутам
	ErrSlotNotAligned = errors.New("create_appointment: start time must be aligned to 30-minute slots")

	// ErrSlotInPast возвращается, когда запрошенный слот уже в прошлом
	ErrSlotInPast = errors.New("create_appointment: appointment time must be in the future")

	// ErrSlotNotAvailable возвращается, когда слот занят, лежит вне окна
	// расписания или мастер в этот день недоступен
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
