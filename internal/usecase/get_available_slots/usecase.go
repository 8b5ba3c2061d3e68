package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	userClient "github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для получения доступных слотов записи к мастеру
//
// Чистое чтение: результат каждый раз вычисляется заново из расписания
// и текущих записей, без кеширования между вызовами
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s", req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует и имеет роль STAFF
	staff, err := uc.userClient.GetUser(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.Role != string(domain.RoleStaff) {
		uc.logger.Warn("GetAvailableSlots: user id=%d is not a staff member (role=%s)", req.StaffID, staff.Role)
		return nil, ErrStaffNotFound
	}

	// 3. Получаем окно расписания на дату
	// Нет окна или окно помечено недоступным - слотов нет
	window, err := uc.scheduleRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule window for staff=%d on %s",
				req.StaffID, req.Date.Format(domain.DateFormat))
			return uc.emptyResponse(req, staff.Username), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule window: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule window: %v", ErrInternal, err)
	}

	if !window.IsBookable() {
		uc.logger.Info("GetAvailableSlots: window is marked unavailable for staff=%d on %s",
			req.StaffID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, staff.Username), nil
	}

	// 4. Генерируем все слоты окна
	slots, err := generateWindowSlots(window, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Получаем booked-записи мастера на эту дату
	filter := domain.AppointmentsFilter{
		StaffID: &req.StaffID,
		Date:    &req.Date,
		Status:  ptr.Ptr(domain.StatusBooked),
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	available := filterBookedSlots(slots, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for staff=%d on %s",
		len(available), len(slots), req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		StaffID:             req.StaffID,
		StaffUsername:       staff.Username,
		Date:                req.Date,
		SlotDurationMinutes: domain.SlotDurationMinutes,
		Slots:               available,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, staffUsername string) *Response {
	return &Response{
		StaffID:             req.StaffID,
		StaffUsername:       staffUsername,
		Date:                req.Date,
		SlotDurationMinutes: domain.SlotDurationMinutes,
		Slots:               []domain.AvailableSlot{},
	}
}
