package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-portal-api/config"

	"github.com/stretchr/testify/assert"
)

func corsRequest(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("listed origin is mirrored", func(t *testing.T) {
		m := NewCORSMiddleware(config.AppConfig{AllowedOrigins: []string{"https://portal.example.com"}})

		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, corsRequest("https://portal.example.com"))

		assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		m := NewCORSMiddleware(config.AppConfig{AllowedOrigins: []string{"https://portal.example.com"}})

		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, corsRequest("https://evil.example.com"))

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		m := NewCORSMiddleware(config.AppConfig{AllowedOrigins: []string{"*"}})

		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, corsRequest("https://anywhere.example.com"))

		assert.Equal(t, "https://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short circuits", func(t *testing.T) {
		m := NewCORSMiddleware(config.AppConfig{AllowedOrigins: []string{"*"}})

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/requests/pending", nil)
		req.Header.Set("Origin", "https://portal.example.com")
		rec := httptest.NewRecorder()

		called := false
		m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
