package http

import (
	"net/http"

	"doctor-portal-api/internal/delivery/http/handler"
	"doctor-portal-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	requestHandler   *handler.RequestHandler
	patientHandler   *handler.PatientHandler
	dashboardHandler *handler.DashboardHandler
	profileHandler   *handler.ProfileHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	requestHandler *handler.RequestHandler,
	patientHandler *handler.PatientHandler,
	dashboardHandler *handler.DashboardHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		requestHandler:   requestHandler,
		patientHandler:   patientHandler,
		dashboardHandler: dashboardHandler,
		profileHandler:   profileHandler,
		adminHandler:     adminHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	// Request listings and decisions
	doctor.HandleFunc("/requests/pending", r.requestHandler.ListPending).Methods(http.MethodGet)
	doctor.HandleFunc("/requests/approved", r.requestHandler.ListApproved).Methods(http.MethodGet)
	doctor.HandleFunc("/requests/denied", r.requestHandler.ListDenied).Methods(http.MethodGet)
	doctor.HandleFunc("/requests/{id}/approve", r.requestHandler.Approve).Methods(http.MethodPost)
	doctor.HandleFunc("/requests/{id}/deny", r.requestHandler.Deny).Methods(http.MethodPost)
	doctor.HandleFunc("/requests/{id}/request-info", r.requestHandler.RequestInfo).Methods(http.MethodPost)

	// Patient detail and batch name lookup
	doctor.HandleFunc("/patients/names", r.patientHandler.GetPatientNames).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}", r.patientHandler.GetPatientInfo).Methods(http.MethodGet)

	// Dashboard
	doctor.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Profile
	doctor.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctor-approvals", r.adminHandler.ListDoctorApprovals).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.adminHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
