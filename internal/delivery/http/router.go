package http

import (
	"net/http"

	"medical-appointments-api/internal/delivery/http/handler"
	"medical-appointments-api/internal/delivery/http/middleware"
	"medical-appointments-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	patientHandler        *handler.PatientHandler
	doctorHandler         *handler.DoctorHandler
	scheduleHandler       *handler.ScheduleHandler
	appointmentHandler    *handler.AppointmentHandler
	clinicalRecordHandler *handler.ClinicalRecordHandler
	invoiceHandler        *handler.InvoiceHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	clinicalRecordHandler *handler.ClinicalRecordHandler,
	invoiceHandler *handler.InvoiceHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		patientHandler:        patientHandler,
		doctorHandler:         doctorHandler,
		scheduleHandler:       scheduleHandler,
		appointmentHandler:    appointmentHandler,
		clinicalRecordHandler: clinicalRecordHandler,
		invoiceHandler:        invoiceHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Ruta no encontrada")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Método no permitido", nil)
	})

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Routes are public unless wrapped. A presented token is still validated
	// so the audit trail can attribute the request.
	api.Use(r.authMiddleware.OptionalAuthenticate)

	// Auth
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)
	api.Handle("/auth/me", r.authenticated(r.authHandler.GetCurrentAccount)).Methods(http.MethodGet)
	api.Handle("/auth/logout", r.authenticated(r.authHandler.Logout)).Methods(http.MethodPost)

	// Patients
	api.HandleFunc("/pacientes/registrar", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/pacientes", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors (mutations are admin only)
	api.HandleFunc("/doctores/especialidades/listar", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.Handle("/doctores", r.admin(r.doctorHandler.CreateDoctor)).Methods(http.MethodPost)
	api.HandleFunc("/doctores", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctores/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.Handle("/doctores/{id:[0-9]+}", r.admin(r.doctorHandler.UpdateDoctor)).Methods(http.MethodPut)
	api.Handle("/doctores/{id:[0-9]+}", r.admin(r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Schedules
	api.Handle("/horarios", r.admin(r.scheduleHandler.CreateSchedule)).Methods(http.MethodPost)
	api.HandleFunc("/horarios/doctor/{id:[0-9]+}", r.scheduleHandler.GetSchedulesByDoctor).Methods(http.MethodGet)
	api.Handle("/horarios/{id:[0-9]+}", r.admin(r.scheduleHandler.UpdateSchedule)).Methods(http.MethodPut)
	api.Handle("/horarios/{id:[0-9]+}", r.admin(r.scheduleHandler.DeleteSchedule)).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/citas", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/citas", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/citas/actualizar_estado", r.appointmentHandler.UpdateAppointmentStatusByBody).Methods(http.MethodPut)
	api.HandleFunc("/citas/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/citas/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/citas/{id:[0-9]+}/estado", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPut)
	api.HandleFunc("/citas/{id:[0-9]+}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Clinical records
	api.Handle("/historias", r.doctorOrAdmin(r.clinicalRecordHandler.CreateRecord)).Methods(http.MethodPost)
	api.HandleFunc("/historias/{id:[0-9]+}", r.clinicalRecordHandler.GetPatientRecords).Methods(http.MethodGet)

	// Billing
	api.HandleFunc("/facturas", r.invoiceHandler.CreateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/facturas", r.invoiceHandler.GetAllInvoices).Methods(http.MethodGet)
	api.HandleFunc("/facturas/{id:[0-9]+}", r.invoiceHandler.GetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/facturas/{id:[0-9]+}/estado", r.invoiceHandler.UpdateInvoiceStatus).Methods(http.MethodPut)
	api.HandleFunc("/metodos-pago", r.invoiceHandler.GetPaymentMethods).Methods(http.MethodGet)

	// Audit trail (admin)
	api.Handle("/auditoria", r.admin(r.auditLogHandler.GetAllAuditLogs)).Methods(http.MethodGet)
	api.Handle("/auditoria/{id:[0-9]+}", r.admin(r.auditLogHandler.GetAuditLog)).Methods(http.MethodGet)

	return r.router
}

// Handler wraps the routes so that panics, access logs and CORS preflights
// are handled even when no route matches.
func (r *Router) Handler() http.Handler {
	return r.loggingMiddleware.Recover(r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.Setup())))
}

func (r *Router) authenticated(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(middleware.RequireAdmin(h))
}

func (r *Router) doctorOrAdmin(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(middleware.RequireDoctor(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
