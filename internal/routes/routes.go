package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	"github.com/sharpcutlabs/barbershop-api/internal/config"
	"github.com/sharpcutlabs/barbershop-api/internal/handlers"
	infraRepo "github.com/sharpcutlabs/barbershop-api/internal/infra/repository"
	"github.com/sharpcutlabs/barbershop-api/internal/lock"
	"github.com/sharpcutlabs/barbershop-api/internal/media"
	"github.com/sharpcutlabs/barbershop-api/internal/middleware"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
	ucAppointment "github.com/sharpcutlabs/barbershop-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	loc *time.Location,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var locks lock.Locker
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		locks = lock.NewRedisLocker(client, log)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis booking locks")
	} else {
		locks = lock.NewLocalLocker()
		log.Info().Msg("no REDIS_ADDR set, using in-process booking locks")
	}

	storage := media.NewS3Storage(cfg)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	reserveUC := ucAppointment.NewReserveAppointment(
		appointmentRepo,
		locks,
		auditDispatcher,
		loc,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, loc)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	listAllUC := ucAppointment.NewListAppointments(appointmentRepo)
	listByUserUC := ucAppointment.NewListAppointmentsByUser(appointmentRepo)
	listByBarberUC := ucAppointment.NewListAppointmentsByBarber(appointmentRepo, loc)
	listByBarberDayUC := ucAppointment.NewListAppointmentsByBarberAndDay(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher, storage)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		reserveUC,
		availabilityUC,
		updateStatusUC,
		listAllUC,
		listByUserUC,
		listByBarberUC,
		listByBarberDayUC,
		loc,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG + AVAILABILITY
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers/:id/availability", appointmentHandler.Availability)
		api.GET("/barbers/:id/appointments", appointmentHandler.ListByBarberAndDay)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Reserve)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.POST("/me/photo", barberHandler.UploadPhoto)

			// ------------------------------
			// BARBER BOOK
			// ------------------------------
			barberOnly := secured.Group("/")
			barberOnly.Use(middleware.RequireRole(models.RoleBarber, models.RoleOwner))
			{
				barberOnly.GET("/me/book", appointmentHandler.ListBarberBook)
			}

			// ------------------------------
			// OWNER ADMINISTRATION
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleOwner))
			{
				admin.POST("/barbers", barberHandler.Create)
				admin.DELETE("/barbers/:id", barberHandler.Delete)
				admin.PUT("/barbers/:id/schedule", barberHandler.UpdateSchedule)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.GET("/appointments", appointmentHandler.ListAll)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
