package upsert_schedule

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UpsertScheduleRequest HTTP request model
type UpsertScheduleRequest struct {
	StaffID     int64  `json:"staffId"`
	Date        string `json:"date"`      // "2026-09-15"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "18:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Если isAvailable не указан, окно считается доступным
func (r *UpsertScheduleRequest) ToServiceRequest(actor domain.Actor) (*models.DefineWindowRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &models.DefineWindowRequest{
		Actor:       actor,
		StaffID:     r.StaffID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}, nil
}
