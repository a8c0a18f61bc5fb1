package identityservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetUser_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "email": "student@campus.edu", "name": "Test Student", "role": "Student"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	user, err := client.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Student", user.Role)
	assert.False(t, user.IsAdmin())
}

func TestGetUser_AdminRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "email": "admin@campus.edu", "name": "Admin", "role": "Admin"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	user, err := client.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestGetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGetUser_Unreachable(t *testing.T) {
	// Сервер закрыт до запроса: сетевая ошибка, а не HTTP статус
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGetUser_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
