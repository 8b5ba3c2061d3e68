package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func staffUser() *userservice.User {
	return &userservice.User{ID: 7, Username: "maria", Role: "STAFF"}
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns free slots of the window", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{appointments: []*domain.Appointment{
				{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusBooked},
			}},
			&fakeScheduleRepo{window: &domain.ScheduleWindow{
				StaffID:      7,
				ScheduleDate: date,
				StartTime:    types.TimeString("10:00"),
				EndTime:      types.TimeString("12:00"),
				IsAvailable:  true,
			}},
			&fakeUserClient{user: staffUser()},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)

		assert.Equal(t, int64(7), resp.StaffID)
		assert.Equal(t, "maria", resp.StaffUsername)
		assert.Equal(t, domain.SlotDurationMinutes, resp.SlotDurationMinutes)
		assert.Equal(t, []string{"10:00", "11:00", "11:30"}, slotTimes(resp.Slots))
	})

	t.Run("is idempotent for repeated reads", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{window: &domain.ScheduleWindow{
				StartTime:   types.TimeString("10:00"),
				EndTime:     types.TimeString("12:00"),
				IsAvailable: true,
			}},
			&fakeUserClient{user: staffUser()},
			nopLogger{},
		)

		first, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("no schedule window means no slots", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
			&fakeUserClient{user: staffUser()},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("unavailable window means no slots", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{window: &domain.ScheduleWindow{
				StartTime:   types.TimeString("10:00"),
				EndTime:     types.TimeString("18:00"),
				IsAvailable: false,
			}},
			&fakeUserClient{user: staffUser()},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{},
			&fakeUserClient{err: userservice.ErrUserNotFound},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{StaffID: 99, Date: date})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("user with customer role is not a staff member", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{},
			&fakeUserClient{user: &userservice.User{ID: 5, Username: "ivan", Role: "CUSTOMER"}},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{StaffID: 5, Date: date})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeUserClient{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{StaffID: 0, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{StaffID: 7})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("filters only booked appointments of the staff member", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		uc := NewUseCase(
			repo,
			&fakeScheduleRepo{window: &domain.ScheduleWindow{
				StartTime:   types.TimeString("10:00"),
				EndTime:     types.TimeString("11:00"),
				IsAvailable: true,
			}},
			&fakeUserClient{user: staffUser()},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.StaffID)
		assert.Equal(t, int64(7), *repo.lastFilter.StaffID)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusBooked, *repo.lastFilter.Status)
		require.NotNil(t, repo.lastFilter.Date)
		assert.Equal(t, date, *repo.lastFilter.Date)
	})
}
