package schedules

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/userservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Upsert(ctx context.Context, window *domain.ScheduleWindow) (*domain.ScheduleWindow, error)
	ListWithFilter(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.ScheduleWindow, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
