package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userClient "github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис для работы с расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	userClient   UserServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		userClient:   userClient,
		logger:       logger,
	}
}

// DefineWindow создает или обновляет окно расписания мастера на дату
// Доступно только администраторам. Повторный вызов для той же пары
// (staff_id, date) перезаписывает окно
//
// Изменение окна не трогает существующие записи: брони вне нового окна
// остаются активными, пока их не отменят явно
func (s *Service) DefineWindow(ctx context.Context, req *models.DefineWindowRequest) (*models.ScheduleWindowResponse, error) {
	s.logger.Info("DefineWindow: staff=%d, date=%s, window=%s-%s, available=%t, by user=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.IsAvailable, req.Actor.UserID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("DefineWindow: access denied for user=%d (role=%s)", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	if err := s.validateWindow(req); err != nil {
		s.logger.Warn("DefineWindow: validation failed: %v", err)
		return nil, err
	}

	// Проверяем, что мастер существует и имеет роль STAFF
	staff, err := s.userClient.GetUser(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("DefineWindow: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("DefineWindow: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: DefineWindow - failed to get staff: %v", ErrInternal, err)
	}
	if staff.Role != string(domain.RoleStaff) {
		s.logger.Warn("DefineWindow: user id=%d is not a staff member (role=%s)", req.StaffID, staff.Role)
		return nil, ErrStaffNotFound
	}

	window, err := s.scheduleRepo.Upsert(ctx, req.ToDomainWindow())
	if err != nil {
		s.logger.Error("DefineWindow: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: DefineWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DefineWindow: successfully saved window id=%d for staff=%d on %s",
		window.ID, window.StaffID, window.ScheduleDate.Format(domain.DateFormat))
	return models.FromDomainWindow(window), nil
}

// List получает список окон расписания
// Админ видит все окна, мастер - только свои, клиентам список недоступен
// (доступные для записи слоты клиенты получают через available-slots)
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules for user=%d (role=%s)", req.Actor.UserID, req.Actor.Role)

	if req.Actor.IsCustomer() {
		s.logger.Warn("List: access denied for user=%d (role=%s)", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	filter := domain.SchedulesFilter{
		StaffID: req.StaffID,
		Date:    req.Date,
	}

	// Мастеру доступно только собственное расписание, фильтр принудительный
	if req.Actor.IsStaff() {
		filter.StaffID = ptr.Ptr(req.Actor.UserID)
	}

	windows, err := s.scheduleRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d schedule windows for user=%d", len(windows), req.Actor.UserID)
	return models.FromDomainWindowList(windows), nil
}

// validateWindow валидирует параметры окна расписания
func (s *Service) validateWindow(req *models.DefineWindowRequest) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	// Окно должно вмещать целое число 30-минутных слотов
	minutes, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if minutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: window length must be a multiple of %d minutes", ErrInvalidTimeRange, domain.SlotDurationMinutes)
	}

	return nil
}
