package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// recentLimit количество последних записей в сводке дашборда
const recentLimit = 6

// Service сервис для работы с записями к мастерам
type Service struct {
	appointmentRepo AppointmentRepository
	userClient      UserServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	userClient UserServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		userClient:      userClient,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свою запись, мастер - назначенную на него, админ - любую
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d (role=%s)", id, actor.UserID, actor.Role)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkAppointmentAccess(appt, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// List получает список записей с фильтрацией
// Клиент видит только свои записи, мастер и админ - все
// Поддерживает фильтры по статусу, мастеру, дате и текстовый поиск
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d (role=%s)", req.Actor.UserID, req.Actor.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Клиенту доступны только собственные записи, фильтр принудительный
	if req.Actor.IsCustomer() {
		filter.CustomerID = ptr.Ptr(req.Actor.UserID)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appointments), req.Actor.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, мастер - назначенную на него, админ - любую
// Повторная отмена невозможна, cancelled - терминальный статус
func (s *Service) Cancel(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d (role=%s)", id, actor.UserID, actor.Role)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkAppointmentAccess(appt, actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, err
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return nil, ErrAlreadyCancelled
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Запись отменили между чтением и апдейтом
			s.logger.Warn("Cancel: appointment id=%d already cancelled concurrently", id)
			return nil, ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Перечитываем запись, чтобы вернуть актуальные cancelled_at и updated_at
	cancelled, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to reload appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(cancelled), nil
}

// Summary возвращает сводку по активным записям для дашборда
// Доступно только администраторам
func (s *Service) Summary(ctx context.Context, actor domain.Actor) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: building dashboard summary for user=%d (role=%s)", actor.UserID, actor.Role)

	if !actor.IsAdmin() {
		s.logger.Warn("Summary: access denied for user=%d (role=%s)", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	booked, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		Status: ptr.Ptr(domain.StatusBooked),
	})
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := today.AddDate(0, 0, 7)

	resp := &models.SummaryResponse{
		TotalBooked: len(booked),
		Recent:      []models.AppointmentResponse{},
		StaffLoad:   []models.StaffLoadEntry{},
	}

	loadByStaff := make(map[int64]int)
	for _, appt := range booked {
		d := appt.AppointmentDate
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

		if day.Equal(today) {
			resp.TodayCount++
		}
		if !day.Before(today) && day.Before(weekEnd) {
			resp.WeekCount++
		}
		if !day.Before(today) {
			resp.UpcomingCount++
		}

		loadByStaff[appt.StaffID]++
	}

	// Последние созданные записи
	recent := make([]*domain.Appointment, len(booked))
	copy(recent, booked)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	for _, appt := range recent {
		if apptResp := models.FromDomainAppointment(appt); apptResp != nil {
			resp.Recent = append(resp.Recent, *apptResp)
		}
	}

	// Загрузка мастеров, имена подтягиваем из справочника UserService
	staff, err := s.userClient.ListStaff(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: Summary - failed to list staff: %v", ErrInternal, err)
	}
	for _, member := range staff {
		resp.StaffLoad = append(resp.StaffLoad, models.StaffLoadEntry{
			StaffID:     member.ID,
			Username:    member.Username,
			BookedCount: loadByStaff[member.ID],
		})
	}
	sort.Slice(resp.StaffLoad, func(i, j int) bool {
		return resp.StaffLoad[i].StaffID < resp.StaffLoad[j].StaffID
	})

	s.logger.Info("Summary: total=%d, today=%d, week=%d", resp.TotalBooked, resp.TodayCount, resp.WeekCount)
	return resp, nil
}

// ListStaff возвращает справочник мастеров салона
// Доступно любому аутентифицированному пользователю
func (s *Service) ListStaff(ctx context.Context) (*models.StaffListResponse, error) {
	s.logger.Info("ListStaff: fetching staff directory")

	staff, err := s.userClient.ListStaff(ctx)
	if err != nil {
		s.logger.Error("ListStaff: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - failed to list staff: %v", ErrInternal, err)
	}

	resp := &models.StaffListResponse{
		Staff: make([]models.StaffMemberResponse, len(staff)),
	}
	for i, member := range staff {
		resp.Staff[i] = models.StaffMemberResponse{
			ID:        member.ID,
			Username:  member.Username,
			FirstName: member.FirstName,
			LastName:  member.LastName,
		}
	}

	s.logger.Info("ListStaff: successfully fetched %d staff members", len(resp.Staff))
	return resp, nil
}

// Вспомогательные методы

// checkAppointmentAccess проверяет доступ пользователя к записи
// Доступ есть у клиента записи, назначенного мастера и администратора
func (s *Service) checkAppointmentAccess(appt *domain.Appointment, actor domain.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsStaff() && appt.StaffID == actor.UserID {
		return nil
	}
	if actor.IsCustomer() && appt.CustomerID == actor.UserID {
		return nil
	}
	return ErrAccessDenied
}
