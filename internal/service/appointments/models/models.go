package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Actor   domain.Actor `json:"-"`
	Status  *string      `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	StaffID *int64       `json:"staffId,omitempty"` // Фильтр по мастеру (опционально)
	Date    *time.Time   `json:"date,omitempty"`    // Фильтр по дате (опционально)
	Search  *string      `json:"search,omitempty"`  // Поиск по услуге и заметкам (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StaffID: r.StaffID,
		Date:    r.Date,
		Search:  r.Search,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customerId"`
	StaffID         int64  `json:"staffId"`
	Service         string `json:"service"`
	AppointmentDate string `json:"appointmentDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "10:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// SummaryResponse сводка по записям для дашборда
type SummaryResponse struct {
	TotalBooked   int                   `json:"totalBooked"`   // Всего активных записей
	TodayCount    int                   `json:"todayCount"`    // Записей на сегодня
	WeekCount     int                   `json:"weekCount"`     // Записей на ближайшие 7 дней
	UpcomingCount int                   `json:"upcomingCount"` // Записей на будущее
	Recent        []AppointmentResponse `json:"recent"`        // Последние созданные записи
	StaffLoad     []StaffLoadEntry      `json:"staffLoad"`     // Активные записи по мастерам
}

// StaffLoadEntry количество активных записей мастера
type StaffLoadEntry struct {
	StaffID     int64  `json:"staffId"`
	Username    string `json:"username"`
	BookedCount int    `json:"bookedCount"`
}

// StaffMemberResponse данные мастера из справочника
type StaffMemberResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StaffListResponse ответ со списком мастеров
type StaffListResponse struct {
	Staff []StaffMemberResponse `json:"staff"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		StaffID:         a.StaffID,
		Service:         string(a.Service),
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusBooked,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
