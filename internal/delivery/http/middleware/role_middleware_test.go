package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-portal-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func roleRequest(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/requests/pending", nil)
	if role != "" {
		req = req.WithContext(context.WithValue(req.Context(), RoleKey, role))
	}
	return req
}

func TestRequireDoctor(t *testing.T) {
	called := false
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("doctor passes", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, roleRequest(entity.RoleDoctor))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("patient forbidden", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, roleRequest(entity.RolePatient))
		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role unauthorized", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, roleRequest(""))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, roleRequest(entity.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("doctor is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, roleRequest(entity.RoleDoctor))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
