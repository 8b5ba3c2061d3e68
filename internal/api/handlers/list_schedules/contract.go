package list_schedules

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
)

type ScheduleService interface {
	List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
