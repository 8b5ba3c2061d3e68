package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
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

// memScheduleRepo повторяет семантику upsert по паре (staff_id, schedule_date)
type memScheduleRepo struct {
	nextID     int64
	windows    []*domain.ScheduleWindow
	lastFilter domain.SchedulesFilter
}

func (r *memScheduleRepo) Upsert(ctx context.Context, window *domain.ScheduleWindow) (*domain.ScheduleWindow, error) {
	for _, existing := range r.windows {
		if existing.StaffID == window.StaffID && existing.ScheduleDate.Equal(window.ScheduleDate) {
			existing.StartTime = window.StartTime
			existing.EndTime = window.EndTime
			existing.IsAvailable = window.IsAvailable
			existing.UpdatedAt = time.Now()
			copied := *existing
			return &copied, nil
		}
	}

	r.nextID++
	created := *window
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.windows = append(r.windows, &created)
	copied := created
	return &copied, nil
}

func (r *memScheduleRepo) ListWithFilter(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.ScheduleWindow, error) {
	r.lastFilter = filter
	var result []*domain.ScheduleWindow
	for _, window := range r.windows {
		if filter.StaffID != nil && window.StaffID != *filter.StaffID {
			continue
		}
		if filter.Date != nil && !window.ScheduleDate.Equal(*filter.Date) {
			continue
		}
		result = append(result, window)
	}
	return result, nil
}

var (
	customer = domain.Actor{UserID: 42, Role: domain.RoleCustomer}
	staff    = domain.Actor{UserID: 7, Role: domain.RoleStaff}
	admin    = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	scheduleDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

func defineRequest(actor domain.Actor) *models.DefineWindowRequest {
	return &models.DefineWindowRequest{
		Actor:       actor,
		StaffID:     7,
		Date:        scheduleDate,
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("18:00"),
		IsAvailable: true,
	}
}

func newTestService(repo *memScheduleRepo) *Service {
	return NewService(
		repo,
		&fakeUserClient{user: &userservice.User{ID: 7, Username: "maria", Role: "STAFF"}},
		nopLogger{},
	)
}

func TestService_DefineWindow(t *testing.T) {
	t.Run("admin defines a window", func(t *testing.T) {
		svc := newTestService(&memScheduleRepo{})

		resp, err := svc.DefineWindow(context.Background(), defineRequest(admin))
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, int64(7), resp.StaffID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "18:00", resp.EndTime)
		assert.Equal(t, 16, resp.SlotCount)
	})

	t.Run("repeated define overwrites the window", func(t *testing.T) {
		repo := &memScheduleRepo{}
		svc := newTestService(repo)

		first, err := svc.DefineWindow(context.Background(), defineRequest(admin))
		require.NoError(t, err)

		updated := defineRequest(admin)
		updated.StartTime = types.TimeString("12:00")
		second, err := svc.DefineWindow(context.Background(), updated)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "12:00", second.StartTime)
		assert.Len(t, repo.windows, 1)
	})

	t.Run("staff and customer are denied", func(t *testing.T) {
		svc := newTestService(&memScheduleRepo{})

		_, err := svc.DefineWindow(context.Background(), defineRequest(staff))
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = svc.DefineWindow(context.Background(), defineRequest(customer))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("inverted time range", func(t *testing.T) {
		svc := newTestService(&memScheduleRepo{})

		req := defineRequest(admin)
		req.StartTime = types.TimeString("18:00")
		req.EndTime = types.TimeString("10:00")
		_, err := svc.DefineWindow(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("window must be a multiple of slot length", func(t *testing.T) {
		svc := newTestService(&memScheduleRepo{})

		req := defineRequest(admin)
		req.EndTime = types.TimeString("18:15")
		_, err := svc.DefineWindow(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		svc := NewService(
			&memScheduleRepo{},
			&fakeUserClient{err: userservice.ErrUserNotFound},
			nopLogger{},
		)

		_, err := svc.DefineWindow(context.Background(), defineRequest(admin))
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("customer account cannot get a schedule", func(t *testing.T) {
		svc := NewService(
			&memScheduleRepo{},
			&fakeUserClient{user: &userservice.User{ID: 7, Username: "ivan", Role: "CUSTOMER"}},
			nopLogger{},
		)

		_, err := svc.DefineWindow(context.Background(), defineRequest(admin))
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestService_List(t *testing.T) {
	repo := &memScheduleRepo{}
	svc := newTestService(repo)

	_, err := svc.DefineWindow(context.Background(), defineRequest(admin))
	require.NoError(t, err)

	t.Run("admin sees all windows", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListSchedulesRequest{Actor: admin})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 1)
		assert.Nil(t, repo.lastFilter.StaffID)
	})

	t.Run("staff member sees only own windows", func(t *testing.T) {
		otherStaff := domain.Actor{UserID: 8, Role: domain.RoleStaff}
		resp, err := svc.List(context.Background(), &models.ListSchedulesRequest{Actor: otherStaff})
		require.NoError(t, err)

		assert.Empty(t, resp.Schedules)
		require.NotNil(t, repo.lastFilter.StaffID)
		assert.Equal(t, int64(8), *repo.lastFilter.StaffID)
	})

	t.Run("customer is denied", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListSchedulesRequest{Actor: customer})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
