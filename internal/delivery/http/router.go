package http

import (
	"net/http"

	"neuroclinic/internal/delivery/http/handler"
	"neuroclinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	sessionHandler      *handler.SessionHandler
	patientHandler      *handler.PatientHandler
	professionalHandler *handler.EntityHandler
	appointmentHandler  *handler.EntityHandler
	accountHandler      *handler.AccountHandler
	referenceHandler    *handler.ReferenceHandler
	dashboardHandler    *handler.DashboardHandler
	formHandler         *handler.FormHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	metricsHandler      http.Handler
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.EntityHandler,
	appointmentHandler *handler.EntityHandler,
	accountHandler *handler.AccountHandler,
	referenceHandler *handler.ReferenceHandler,
	dashboardHandler *handler.DashboardHandler,
	formHandler *handler.FormHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		sessionHandler:      sessionHandler,
		patientHandler:      patientHandler,
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		accountHandler:      accountHandler,
		referenceHandler:    referenceHandler,
		dashboardHandler:    dashboardHandler,
		formHandler:         formHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		metricsMiddleware:   metricsMiddleware,
		metricsHandler:      metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint, outside the API
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Current identity (any authenticated role)
	api.Handle("/me", r.authMiddleware.Authenticate(http.HandlerFunc(r.sessionHandler.GetCurrentUser))).Methods(http.MethodGet)

	// Back office routes (protected - staff only)
	staff := api.NewRoute().Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Patients
	staff.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/patients/{id}/deactivate", r.patientHandler.Deactivate).Methods(http.MethodPost)

	// Professionals (creation provisions a login, admin only)
	staff.HandleFunc("/professionals", r.professionalHandler.List).Methods(http.MethodGet)
	staff.Handle("/professionals", middleware.RequireAdmin(http.HandlerFunc(r.professionalHandler.Create))).Methods(http.MethodPost)

	// Appointments
	staff.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)

	// Accounts (finance roles)
	staff.Handle("/accounts", middleware.RequireFinance(http.HandlerFunc(r.accountHandler.List))).Methods(http.MethodGet)
	staff.Handle("/accounts", middleware.RequireFinance(http.HandlerFunc(r.accountHandler.Create))).Methods(http.MethodPost)
	staff.Handle("/accounts/{id}/pay", middleware.RequireFinance(http.HandlerFunc(r.accountHandler.MarkPaid))).Methods(http.MethodPost)

	// Reference data
	staff.HandleFunc("/specialties", r.referenceHandler.GetSpecialties).Methods(http.MethodGet)
	staff.HandleFunc("/rooms", r.referenceHandler.GetRooms).Methods(http.MethodGet)
	staff.HandleFunc("/responsibles", r.referenceHandler.GetResponsibles).Methods(http.MethodGet)

	// Dashboard
	staff.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Form descriptions and field changes
	staff.HandleFunc("/forms/{entity}", r.formHandler.GetForm).Methods(http.MethodGet)
	staff.HandleFunc("/forms/{entity}/change", r.formHandler.ChangeField).Methods(http.MethodPost)

	// Add CORS and metrics middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
