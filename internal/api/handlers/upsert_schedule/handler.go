package upsert_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/schedules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStaffNotFound      = "мастер не найден"
	msgInvalidTimeRange   = "некорректное окно расписания"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff-schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем инициатора из контекста (через middleware Auth)
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /staff-schedules - Missing user identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff-schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("POST /staff-schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	window, err := h.service.DefineWindow(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("POST /staff-schedules - Access denied: user_id=%d (role=%s)", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrStaffNotFound):
			h.logger.Warn("POST /staff-schedules - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedules.ErrInvalidTimeRange):
			h.logger.Warn("POST /staff-schedules - Invalid time range: staff_id=%d, window=%s-%s",
				req.StaffID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("POST /staff-schedules - Invalid input: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff-schedules - Failed to define window: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff-schedules - Window saved successfully: window_id=%d, staff_id=%d, user_id=%d",
		window.ID, req.StaffID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, window)
}
