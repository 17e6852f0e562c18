package middleware

import (
	"net/http"

	"doctor-portal-api/config"
)

// CORSMiddleware answers preflight requests and mirrors the request origin
// when it is on the configured allow list. A list of just "*" allows any
// origin.
type CORSMiddleware struct {
	allowAny bool
	origins  map[string]struct{}
}

func NewCORSMiddleware(cfg config.AppConfig) *CORSMiddleware {
	m := &CORSMiddleware{origins: make(map[string]struct{}, len(cfg.AllowedOrigins))}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			m.allowAny = true
			continue
		}
		m.origins[origin] = struct{}{}
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if origin := req.Header.Get("Origin"); origin != "" && m.allows(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *CORSMiddleware) allows(origin string) bool {
	if m.allowAny {
		return true
	}
	_, ok := m.origins[origin]
	return ok
}
