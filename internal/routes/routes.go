package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-scheduler/internal/handlers"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/user"
	"github.com/BruksfildServices01/meeting-scheduler/internal/validators"
)

// Deps are the long-lived collaborators the routes are built from.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Store   domain.Store
	Gateway domain.CalendarGateway
	Locker  domain.Locker

	Audit     *audit.Dispatcher
	AuditLogs handlers.AuditLister
	Ping      handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.Register(); err != nil {
		return err
	}
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(cfg.AllowedOrigins()),
	)

	// ======================================================
	// DOMAIN
	// ======================================================
	hours, err := cfg.WorkingHours()
	if err != nil {
		return err
	}
	finder := slot.NewFinder(hours)

	orchestrator := ucAppointment.
		NewOrchestrator(d.Gateway, cfg.Location(), d.Logger).
		WithMetrics(d.Metrics)

	// ======================================================
	// USE CASES
	// ======================================================
	getFreeSlotsUC := ucAppointment.NewGetFreeSlots(finder, d.Gateway, d.Metrics)

	bookAppointmentUC := ucAppointment.NewBookAppointment(
		orchestrator,
		d.Store,
		d.Locker,
		d.Audit,
		cfg.DefaultMeetingDuration(),
		d.Logger,
		d.Metrics,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		orchestrator,
		d.Store,
		d.Audit,
		cfg.DefaultMeetingDuration(),
		d.Logger,
		d.Metrics,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		orchestrator,
		d.Store,
		d.Audit,
		d.Logger,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(d.Store)

	getUserUC := ucUser.NewGetUserByPhone(d.Store)
	addUserUC := ucUser.NewAddUser(d.Store, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(d.Ping, d.Logger)
	freeSlotsHandler := handlers.NewFreeSlotsHandler(getFreeSlotsUC, cfg.DefaultSlotMinutes, d.Logger)
	meetingHandler := handlers.NewMeetingHandler(bookAppointmentUC, d.Logger)

	appointmentHandler := handlers.NewAppointmentHandler(
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		d.Logger,
	)

	userHandler := handlers.NewUserHandler(getUserUC, addUserUC, d.Logger)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", systemHandler.Health)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitPerMin, d.Logger))
	{
		api.GET("", systemHandler.Root)

		api.GET("/free-slots", freeSlotsHandler.List)
		api.GET("/get-free-slots", freeSlotsHandler.List)

		api.POST("/book-meeting", meetingHandler.Book)

		api.POST("/appointment/update", appointmentHandler.Update)
		api.POST("/appointment/delete", appointmentHandler.Delete)
		api.GET("/appointment/get", appointmentHandler.Get)

		api.GET("/user/get", userHandler.Get)
		api.POST("/user/add", userHandler.Add)

		if d.AuditLogs != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Logger)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
