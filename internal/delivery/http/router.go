package http

import (
	"net/http"

	"healthcare-qms/internal/delivery/http/handler"
	"healthcare-qms/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	queueHandler       *handler.QueueHandler
	appointmentHandler *handler.AppointmentHandler
	portalHandler      *handler.PortalHandler
	reportHandler      *handler.ReportHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	queueHandler *handler.QueueHandler,
	appointmentHandler *handler.AppointmentHandler,
	portalHandler *handler.PortalHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		queueHandler:       queueHandler,
		appointmentHandler: appointmentHandler,
		portalHandler:      portalHandler,
		reportHandler:      reportHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient portal (public, verified per request by unique id + DOB)
	portal := api.PathPrefix("/portal").Subrouter()
	portal.HandleFunc("/summary", r.portalHandler.GetSummary).Methods(http.MethodPost)
	portal.HandleFunc("/next-appointment", r.portalHandler.GetNextAppointment).Methods(http.MethodPost)
	portal.HandleFunc("/appointments", r.portalHandler.ScheduleAppointment).Methods(http.MethodPost)

	// Staff routes (any authenticated staff account)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Patient registry
	staff.HandleFunc("/patients", r.patientHandler.Register).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/patients/uid/{uid}", r.patientHandler.GetByUniqueID).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}/tests", r.patientHandler.GetTests).Methods(http.MethodGet)

	// Queue workflow
	staff.HandleFunc("/queue", r.queueHandler.GetQueue).Methods(http.MethodGet)
	staff.HandleFunc("/queue/metrics", r.queueHandler.GetMetrics).Methods(http.MethodGet)
	staff.HandleFunc("/departments", r.queueHandler.GetDepartments).Methods(http.MethodGet)
	staff.HandleFunc("/catalog/tests", r.queueHandler.GetCatalogTests).Methods(http.MethodGet)
	staff.HandleFunc("/catalog/tests/{code}", r.queueHandler.GetCatalogTest).Methods(http.MethodGet)
	staff.HandleFunc("/rooms", r.queueHandler.GetRooms).Methods(http.MethodGet)
	staff.HandleFunc("/tests/{id}", r.queueHandler.GetTest).Methods(http.MethodGet)
	staff.HandleFunc("/tests/{id}/status", r.queueHandler.UpdateTestStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/tests/{id}/room", r.queueHandler.AssignRoom).Methods(http.MethodPut)

	// Appointments
	staff.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/appointments/{id}/room", r.appointmentHandler.AssignRoom).Methods(http.MethodPut)

	// Reports
	staff.HandleFunc("/reports/completions", r.reportHandler.PatientCompletion).Methods(http.MethodGet)
	staff.HandleFunc("/reports/efficiency", r.reportHandler.DepartmentEfficiency).Methods(http.MethodGet)
	staff.HandleFunc("/reports/daily-summary", r.reportHandler.DailySummary).Methods(http.MethodGet)

	// Admin routes (admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/auth/register/staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
