package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/campuscore/CMP-ResourceService/internal/api/middleware"
	"github.com/campuscore/CMP-ResourceService/internal/service/bookings"
)

type fakeBookingService struct {
	err           error
	lastBookingID int64
	lastUserID    int64
}

func (f *fakeBookingService) Cancel(_ context.Context, bookingID int64, userID int64) error {
	f.lastBookingID = bookingID
	f.lastUserID = userID
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(service *fakeBookingService) *mux.Router {
	handler := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}))
	protected.HandleFunc("/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)
	return r
}

func doCancel(router *mux.Router, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/100/cancel", "42")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(100), service.lastBookingID)
	assert.Equal(t, int64(42), service.lastUserID)
}

func TestHandle_NotFound(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrBookingNotFound}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/999/cancel", "42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrAccessDenied}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/100/cancel", "77")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_IdentityUnavailable(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrIdentityUnavailable}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/100/cancel", "77")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/100/cancel", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, service.lastBookingID)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestRouter(service)

	rec := doCancel(router, "/api/v1/bookings/abc/cancel", "42")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
