package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if !domain.ValidServiceType(domain.ServiceType(req.Service)) {
		return fmt.Errorf("%w: %q", ErrInvalidService, req.Service)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	// Слоты фиксированной сетки: начало строго на границе 30 минут
	if req.StartTime.Minute()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: got %s", ErrSlotNotAligned, req.StartTime)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что слот еще не начался
func validateNotInPast(req *Request, now time.Time) error {
	slotStart, err := req.StartTime.At(req.Date)
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if !slotStart.After(now) {
		return fmt.Errorf("%w: slot %s %s has already started",
			ErrSlotInPast, req.Date.Format(domain.DateFormat), req.StartTime)
	}

	return nil
}
