package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/audit"
	"github.com/BellaEstudioDev/salon-agenda/internal/config"
	"github.com/BellaEstudioDev/salon-agenda/internal/handlers"
	infraRepo "github.com/BellaEstudioDev/salon-agenda/internal/infra/repository"
	"github.com/BellaEstudioDev/salon-agenda/internal/infra/storage"
	"github.com/BellaEstudioDev/salon-agenda/internal/lock"
	"github.com/BellaEstudioDev/salon-agenda/internal/middleware"
	ucAppointment "github.com/BellaEstudioDev/salon-agenda/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	grid agenda.Grid,
	locker lock.Locker,
	imageStore *storage.ImageStorage,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, grid)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — AGENDA
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		grid,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		grid,
		locker,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		getAvailabilityUC,
		createAppointmentUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsByDateUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, imageStore, auditDispatcher)
	contactHandler := handlers.NewContactHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)
		api.POST("/appointments", publicHandler.CreateAppointment)
		api.GET("/gallery", publicHandler.ListGallery)
		api.GET("/contact", publicHandler.GetContact)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PANEL DE ADMINISTRACIÓN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/gallery", galleryHandler.List)
			admin.POST("/gallery", galleryHandler.Upload)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/contact", contactHandler.Get)
			admin.PUT("/contact", contactHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
