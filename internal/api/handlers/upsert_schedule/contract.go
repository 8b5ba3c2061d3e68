package upsert_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
)

type ScheduleService interface {
	DefineWindow(ctx context.Context, req *models.DefineWindowRequest) (*models.ScheduleWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
