package list_schedules

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/schedules/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Поддерживаемые фильтры: staffId, date (YYYY-MM-DD)
func ToServiceRequest(actor domain.Actor, query url.Values) (*models.ListSchedulesRequest, error) {
	req := &models.ListSchedulesRequest{
		Actor: actor,
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

	return req, nil
}
