package get_available_slots

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	// или указанный пользователь не является мастером
	ErrStaffNotFound = errors.New("get_available_slots: staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
