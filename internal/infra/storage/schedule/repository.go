package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// scheduleColumns колонки таблицы staff_schedules в порядке сканирования
var scheduleColumns = []string{
	"id",
	"staff_id",
	"schedule_date",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами расписания мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет окно расписания по ключу (staff_id, schedule_date)
// ON CONFLICT выполняется атомарно на стороне БД, поэтому конкурентные upsert-ы
// одного и того же ключа сериализуются без дополнительных блокировок
func (r *Repository) Upsert(ctx context.Context, window *domain.ScheduleWindow) (*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns(
			"staff_id",
			"schedule_date",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			window.StaffID,
			window.ScheduleDate,
			window.StartTime,
			window.EndTime,
			window.IsAvailable,
		).
		Suffix(`ON CONFLICT (staff_id, schedule_date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByStaffAndDate получает окно расписания мастера на конкретную дату
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{
			"staff_id":      staffID,
			"schedule_date": date,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	window, err := r.scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - scan window: %v", ErrScanRow, err)
	}

	return window, nil
}

// ListWithFilter получает окна расписания с фильтрацией по мастеру и дате
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"schedule_date": *filter.Date})
	}

	selectBuilder = selectBuilder.OrderBy("schedule_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.ScheduleWindow, 0)
	for rows.Next() {
		window, err := r.scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanWindow(row rowScanner) (*domain.ScheduleWindow, error) {
	var window domain.ScheduleWindow
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.StaffID,
		&window.ScheduleDate,
		&window.StartTime,
		&window.EndTime,
		&window.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}
