package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Поддерживаемые фильтры: status, staffId, date (YYYY-MM-DD), search
func ToServiceRequest(actor domain.Actor, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Actor: actor,
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	return req, nil
}
