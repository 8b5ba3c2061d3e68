package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	userClient "github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для создания записи к мастеру
//
// Ключевой инвариант: на один слот мастера может существовать не более
// одной активной (booked) записи. Гарантируется сериализуемой транзакцией
// с блокировкой строк (FOR UPDATE) и частичным уникальным индексом в БД
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		userClient:      userClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, staff=%d, service=%s, date=%s, start=%s",
		req.CustomerID, req.StaffID, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Запись возможна только на будущее время
	if err := validateNotInPast(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 3. Проверяем, что мастер существует и имеет роль STAFF
	staff, err := uc.userClient.GetUser(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.Role != string(domain.RoleStaff) {
		uc.logger.Warn("CreateAppointment: user id=%d is not a staff member (role=%s)", req.StaffID, staff.Role)
		return nil, ErrStaffNotFound
	}

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Окно расписания должно существовать и быть доступным
		window, err := uc.scheduleRepo.GetByStaffAndDate(txCtx, req.StaffID, req.Date)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return fmt.Errorf("%w: no schedule window for staff=%d on %s",
					ErrSlotNotAvailable, req.StaffID, req.Date.Format(domain.DateFormat))
			}
			return fmt.Errorf("%w: failed to get schedule window: %v", ErrInternal, err)
		}
		if !window.IsBookable() {
			return fmt.Errorf("%w: staff=%d is unavailable on %s",
				ErrSlotNotAvailable, req.StaffID, req.Date.Format(domain.DateFormat))
		}

		// 4.2. Слот должен целиком лежать внутри окна
		if !window.CoversSlot(req.StartTime) {
			return fmt.Errorf("%w: slot %s is outside schedule window %s-%s",
				ErrSlotNotAvailable, req.StartTime, window.StartTime, window.EndTime)
		}

		// 4.3. Читаем активные записи мастера на дату
		// Внутри транзакции репозиторий добавляет FOR UPDATE,
		// конкурирующие брони на этот день выстраиваются в очередь
		filter := domain.AppointmentsFilter{
			StaffID: &req.StaffID,
			Date:    &req.Date,
			Status:  ptr.Ptr(domain.StatusBooked),
		}
		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		for _, appt := range existing {
			if appt.Overlaps(req.StartTime, domain.SlotDurationMinutes) {
				return fmt.Errorf("%w: slot %s %s is already booked",
					ErrSlotNotAvailable, req.Date.Format(domain.DateFormat), req.StartTime)
			}
		}

		// 4.4. Вставляем запись
		appt := &domain.Appointment{
			CustomerID:      req.CustomerID,
			StaffID:         req.StaffID,
			Service:         domain.ServiceType(req.Service),
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: domain.SlotDurationMinutes,
			Status:          domain.StatusBooked,
			Notes:           req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс БД - страховка от гонки, не пройденной блокировками
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: slot %s %s is already booked",
					ErrSlotNotAvailable, req.Date.Format(domain.DateFormat), req.StartTime)
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateAppointment: %v", err)
		} else {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for customer=%d, staff=%d",
		created.ID, created.CustomerID, created.StaffID)

	return fromDomain(created), nil
}
