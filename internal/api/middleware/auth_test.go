package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func runAuth(t *testing.T, headers map[string]string) (domain.Actor, bool) {
	t.Helper()

	var (
		actor domain.Actor
		ok    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok = GetActor(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	Auth(next).ServeHTTP(httptest.NewRecorder(), req)
	return actor, ok
}

func TestAuth(t *testing.T) {
	t.Run("valid headers produce an actor", func(t *testing.T) {
		actor, ok := runAuth(t, map[string]string{
			HeaderUserID:   "42",
			HeaderUserRole: "CUSTOMER",
		})

		require.True(t, ok)
		assert.Equal(t, domain.Actor{UserID: 42, Role: domain.RoleCustomer}, actor)
	})

	t.Run("missing headers leave context empty", func(t *testing.T) {
		_, ok := runAuth(t, nil)
		assert.False(t, ok)
	})

	t.Run("non-numeric user id is ignored", func(t *testing.T) {
		_, ok := runAuth(t, map[string]string{
			HeaderUserID:   "abc",
			HeaderUserRole: "CUSTOMER",
		})
		assert.False(t, ok)
	})

	t.Run("unknown role is ignored", func(t *testing.T) {
		_, ok := runAuth(t, map[string]string{
			HeaderUserID:   "42",
			HeaderUserRole: "SUPERUSER",
		})
		assert.False(t, ok)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		var gotID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = GetRequestID(r.Context())
		})

		rec := httptest.NewRecorder()
		RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, gotID)
		assert.Equal(t, gotID, rec.Header().Get(HeaderRequestID))
	})

	t.Run("keeps client provided id", func(t *testing.T) {
		var gotID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = GetRequestID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-123")

		rec := httptest.NewRecorder()
		RequestID(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", gotID)
		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})
}
