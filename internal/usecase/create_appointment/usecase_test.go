package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUser(ctx context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeScheduleRepo struct {
	window *domain.ScheduleWindow
	err    error
}

func (f *fakeScheduleRepo) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*domain.ScheduleWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.window, nil
}

// memAppointmentRepo хранит записи в памяти и повторяет поведение
// частичного уникального индекса на (staff_id, date, start_time)
type memAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments []*domain.Appointment
}

func (r *memAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Appointment
	for _, appt := range r.appointments {
		if filter.StaffID != nil && appt.StaffID != *filter.StaffID {
			continue
		}
		if filter.Date != nil && !appt.AppointmentDate.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (r *memAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.Status == domain.StatusBooked &&
			existing.StaffID == appt.StaffID &&
			existing.AppointmentDate.Equal(appt.AppointmentDate) &&
			existing.StartTime == appt.StartTime {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	r.nextID++
	created := *appt
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

// mutexTxManager сериализует транзакции глобальной блокировкой,
// имитируя поведение serializable-изоляции в тестах
type mutexTxManager struct {
	mu sync.Mutex
}

func (m *mutexTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func workingWindow() *domain.ScheduleWindow {
	return &domain.ScheduleWindow{
		StaffID:      7,
		ScheduleDate: testDate,
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("18:00"),
		IsAvailable:  true,
	}
}

func newTestUseCase(repo *memAppointmentRepo, schedules *fakeScheduleRepo) *UseCase {
	return NewUseCase(
		repo,
		schedules,
		&fakeUserClient{user: &userservice.User{ID: 7, Username: "maria", Role: "STAFF"}},
		&mutexTxManager{},
		fixedTime{now: testNow},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		CustomerID: 42,
		StaffID:    7,
		Service:    "HAIRCUT",
		Date:       testDate,
		StartTime:  types.TimeString("10:00"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates appointment in a free slot", func(t *testing.T) {
		repo := &memAppointmentRepo{}
		uc := newTestUseCase(repo, &fakeScheduleRepo{window: workingWindow()})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, int64(42), resp.CustomerID)
		assert.Equal(t, int64(7), resp.StaffID)
		assert.Equal(t, "HAIRCUT", resp.Service)
		assert.Equal(t, string(domain.StatusBooked), resp.Status)
		assert.Equal(t, domain.SlotDurationMinutes, resp.DurationMinutes)
	})

	t.Run("taken slot is rejected", func(t *testing.T) {
		repo := &memAppointmentRepo{}
		uc := newTestUseCase(repo, &fakeScheduleRepo{window: workingWindow()})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("back-to-back slots do not conflict", func(t *testing.T) {
		repo := &memAppointmentRepo{}
		uc := newTestUseCase(repo, &fakeScheduleRepo{window: workingWindow()})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		next := validRequest()
		next.StartTime = types.TimeString("10:30")
		_, err = uc.Execute(context.Background(), next)
		assert.NoError(t, err)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		repo := &memAppointmentRepo{}
		uc := newTestUseCase(repo, &fakeScheduleRepo{window: workingWindow()})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		// Отменяем запись напрямую в хранилище
		repo.mu.Lock()
		for _, appt := range repo.appointments {
			if appt.ID == resp.ID {
				appt.Status = domain.StatusCancelled
			}
		}
		repo.mu.Unlock()

		_, err = uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("slot outside schedule window", func(t *testing.T) {
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: workingWindow()})

		req := validRequest()
		req.StartTime = types.TimeString("09:00")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("slot must fit inside the window", func(t *testing.T) {
		window := workingWindow()
		window.EndTime = types.TimeString("10:30")
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: window})

		req := validRequest()
		req.StartTime = types.TimeString("10:30")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("no schedule window for the date", func(t *testing.T) {
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("day marked unavailable", func(t *testing.T) {
		window := workingWindow()
		window.IsAvailable = false
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: window})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("unaligned start time", func(t *testing.T) {
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: workingWindow()})

		req := validRequest()
		req.StartTime = types.TimeString("10:15")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAligned)
	})

	t.Run("slot in the past", func(t *testing.T) {
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: workingWindow()})

		req := validRequest()
		req.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := newTestUseCase(&memAppointmentRepo{}, &fakeScheduleRepo{window: workingWindow()})

		req := validRequest()
		req.Service = "MASSAGE"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidService)
	})

	t.Run("staff member not found", func(t *testing.T) {
		uc := NewUseCase(
			&memAppointmentRepo{},
			&fakeScheduleRepo{window: workingWindow()},
			&fakeUserClient{err: userservice.ErrUserNotFound},
			&mutexTxManager{},
			fixedTime{now: testNow},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("customer cannot be booked as staff", func(t *testing.T) {
		uc := NewUseCase(
			&memAppointmentRepo{},
			&fakeScheduleRepo{window: workingWindow()},
			&fakeUserClient{user: &userservice.User{ID: 7, Username: "ivan", Role: "CUSTOMER"}},
			&mutexTxManager{},
			fixedTime{now: testNow},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestUseCase_Execute_ConcurrentBooking(t *testing.T) {
	// Конкурирующие брони одного слота: ровно одна должна пройти
	repo := &memAppointmentRepo{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{window: workingWindow()})

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.CustomerID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotNotAvailable):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one booking must win the slot")
	assert.Equal(t, attempts-1, conflicted)

	booked, err := repo.ListWithFilter(context.Background(), domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Len(t, booked, 1)
}
