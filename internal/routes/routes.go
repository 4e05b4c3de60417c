package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucExpense "github.com/BruksfildServices01/barber-booking/internal/usecase/expense"
)

// RegisterRoutes monta a API. O Dispatcher devolvido precisa ser fechado no shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *slog.Logger,
) *audit.Dispatcher {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clk := clock.NewRealClock()
	offset := cfg.ShopUTCOffsetHours

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	expenseRepo := infraRepo.NewExpenseGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)
	workingHoursRepo := infraRepo.NewWorkingHoursGormRepository(db)
	smsLogRepo := infraRepo.NewSmsLogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sender := sms.NewSender(cfg.SMS.ProviderURL, cfg.SMS.APIKey, cfg.SMS.Timeout, logger)
	notifier := sms.NewNotifier(sender, smsLogRepo, logger)

	// ======================================================
	// 🧠 USE CASES · APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, clk, offset)
	approveAppointmentUC := ucAppointment.NewApproveAppointment(appointmentRepo, auditDispatcher)
	rejectAppointmentUC := ucAppointment.NewRejectAppointment(appointmentRepo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, clk)
	bulkCancelUC := ucAppointment.NewBulkCancelAppointments(appointmentRepo, auditDispatcher, clk)
	createOverrideUC := ucAppointment.NewCreateOverride(appointmentRepo, auditDispatcher, notifier, clk)
	listOverridesUC := ucAppointment.NewListOverrides(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES · EXPENSES
	// ======================================================
	createRecurringUC := ucExpense.NewCreateRecurring(expenseRepo, auditDispatcher)
	listRecurringUC := ucExpense.NewListRecurring(expenseRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		approveAppointmentUC,
		rejectAppointmentUC,
		cancelAppointmentUC,
		bulkCancelUC,
		listAppointmentsByDateUC,
	)

	overrideHandler := handlers.NewOverrideHandler(createOverrideUC, listOverridesUC)

	publicHandler := handlers.NewPublicHandler(
		appointmentRepo,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(appointmentRepo, workingHoursRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, auditDispatcher)
	expenseHandler := handlers.NewExpenseHandler(createRecurringUC, listRecurringUC, offset)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.PATCH("/:slug/appointments/:id/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/settings", settingsHandler.Get)
			secured.PUT("/settings", settingsHandler.Update)

			secured.GET("/barbers/:barber_id/working-hours", workingHoursHandler.Get)
			secured.PUT("/barbers/:barber_id/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/appointments/:id/approve", appointmentHandler.Approve)
			secured.PATCH("/appointments/:id/reject", appointmentHandler.Reject)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/bulk-cancel", appointmentHandler.BulkCancel)

			secured.POST("/overrides", overrideHandler.Create)
			secured.GET("/overrides", overrideHandler.List)

			// ------------------------------
			// EXPENSES
			// ------------------------------
			secured.POST("/recurring-expenses", expenseHandler.CreateRecurring)
			secured.GET("/recurring-expenses", expenseHandler.ListRecurring)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
