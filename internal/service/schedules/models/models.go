package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// DefineWindowRequest запрос на создание или обновление окна расписания
type DefineWindowRequest struct {
	Actor       domain.Actor     `json:"-"`
	StaffID     int64            `json:"staffId"`
	Date        time.Time        `json:"date"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	IsAvailable bool             `json:"isAvailable"`
}

// ToDomainWindow конвертирует request в domain модель
func (r *DefineWindowRequest) ToDomainWindow() *domain.ScheduleWindow {
	return &domain.ScheduleWindow{
		StaffID:      r.StaffID,
		ScheduleDate: r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		IsAvailable:  r.IsAvailable,
	}
}

// ListSchedulesRequest запрос на получение списка окон расписания
type ListSchedulesRequest struct {
	Actor   domain.Actor `json:"-"`
	StaffID *int64       `json:"staffId,omitempty"` // Фильтр по мастеру (опционально)
	Date    *time.Time   `json:"date,omitempty"`    // Фильтр по дате (опционально)
}

// Response модели

// ScheduleWindowResponse ответ с данными окна расписания
type ScheduleWindowResponse struct {
	ID           int64  `json:"id"`
	StaffID      int64  `json:"staffId"`
	ScheduleDate string `json:"scheduleDate"` // "2026-09-15"
	StartTime    string `json:"startTime"`    // "10:00"
	EndTime      string `json:"endTime"`      // "18:00"
	IsAvailable  bool   `json:"isAvailable"`
	SlotCount    int    `json:"slotCount"` // Количество 30-минутных слотов в окне

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleListResponse ответ со списком окон расписания
type ScheduleListResponse struct {
	Schedules []ScheduleWindowResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.ScheduleWindow) *ScheduleWindowResponse {
	if w == nil {
		return nil
	}

	return &ScheduleWindowResponse{
		ID:           w.ID,
		StaffID:      w.StaffID,
		ScheduleDate: w.ScheduleDate.Format(domain.DateFormat),
		StartTime:    w.StartTime.String(),
		EndTime:      w.EndTime.String(),
		IsAvailable:  w.IsAvailable,
		SlotCount:    w.SlotCount(),
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.ScheduleWindow) *ScheduleListResponse {
	if windows == nil {
		return &ScheduleListResponse{
			Schedules: []ScheduleWindowResponse{},
		}
	}

	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleWindowResponse, len(windows)),
	}

	for i, window := range windows {
		if windowResp := FromDomainWindow(window); windowResp != nil {
			resp.Schedules[i] = *windowResp
		}
	}

	return resp
}
