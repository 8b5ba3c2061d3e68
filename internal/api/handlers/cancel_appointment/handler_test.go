package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	resp      *models.AppointmentResponse
	err       error
	lastID    int64
	lastActor domain.Actor
}

func (f *fakeService) Cancel(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	f.lastID = id
	f.lastActor = actor
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(svc AppointmentService) *mux.Router {
	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", handler.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, url, nil)
	if withIdentity {
		req.Header.Set(middleware.HeaderUserID, "42")
		req.Header.Set(middleware.HeaderUserRole, "CUSTOMER")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("successful cancellation", func(t *testing.T) {
		svc := &fakeService{resp: &models.AppointmentResponse{ID: 10, Status: "cancelled"}}
		router := newRouter(svc)

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(10), svc.lastID)
		assert.Equal(t, domain.Actor{UserID: 42, Role: domain.RoleCustomer}, svc.lastActor)
		assert.Contains(t, rec.Body.String(), `"cancelled"`)
	})

	t.Run("missing identity headers", func(t *testing.T) {
		router := newRouter(&fakeService{})

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid appointment id", func(t *testing.T) {
		router := newRouter(&fakeService{})

		rec := doRequest(t, router, "/api/v1/appointments/abc/cancel", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("appointment not found", func(t *testing.T) {
		router := newRouter(&fakeService{err: appointments.ErrAppointmentNotFound})

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("access denied", func(t *testing.T) {
		router := newRouter(&fakeService{err: appointments.ErrAccessDenied})

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("double cancel conflicts", func(t *testing.T) {
		router := newRouter(&fakeService{err: appointments.ErrAlreadyCancelled})

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", true)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		router := newRouter(&fakeService{err: appointments.ErrInternal})

		rec := doRequest(t, router, "/api/v1/appointments/10/cancel", true)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
