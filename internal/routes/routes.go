package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/audit"
	"github.com/sellbarbers/booking-api/internal/config"
	"github.com/sellbarbers/booking-api/internal/handlers"
	infraRepo "github.com/sellbarbers/booking-api/internal/infra/repository"
	"github.com/sellbarbers/booking-api/internal/infra/slotlock"
	"github.com/sellbarbers/booking-api/internal/media"
	"github.com/sellbarbers/booking-api/internal/middleware"
	"github.com/sellbarbers/booking-api/internal/notify"
	ucAvailability "github.com/sellbarbers/booking-api/internal/usecase/availability"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.New()
	slotLocker := slotlock.New(rdb)

	var uploader *media.Uploader
	if cfg.S3Bucket != "" {
		uploader = media.NewUploader(cfg)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availableDatesUC := ucAvailability.NewGetAvailableDates(bookingRepo)
	availableSlotsUC := ucAvailability.NewGetAvailableTimeSlots(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		slotLocker,
		auditDispatcher,
		notifier,
	)

	setBookingStatusUC := ucBooking.NewSetBookingStatus(
		bookingRepo,
		auditDispatcher,
		notifier,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	clientRosterUC := ucBooking.NewClientRoster(bookingRepo)

	toggleClosedSlotUC := ucBooking.NewToggleClosedSlot(
		bookingRepo,
		auditDispatcher,
	)

	removeBarberUC := ucBooking.NewRemoveBarber(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		availableDatesUC,
		availableSlotsUC,
		createBookingUC,
	)

	bookingAdminHandler := handlers.NewBookingAdminHandler(
		listBookingsUC,
		setBookingStatusUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		db,
		auditDispatcher,
		toggleClosedSlotUC,
	)

	barberHandler := handlers.NewBarberHandler(db, removeBarberUC)
	serviceHandler := handlers.NewServiceHandler(db)
	generalInfoHandler := handlers.NewGeneralInfoHandler(db)
	clientHandler := handlers.NewClientHandler(clientRosterUC, notifier)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	mediaHandler := handlers.NewMediaHandler(uploader)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/barbers/:barberId/dates", publicHandler.AvailableDates)
			publicAPI.GET("/barbers/:barberId/slots", publicHandler.AvailableTimeSlots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)

			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/info", publicHandler.GetGeneralInfo)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingAdminHandler.List)
			secured.PATCH("/bookings/:id/confirm", bookingAdminHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingAdminHandler.Cancel)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/barbers/:barberId/working-hours", workingHoursHandler.Get)
			secured.PUT("/barbers/:barberId/working-hours", workingHoursHandler.Update)
			secured.POST("/barbers/:barberId/closed-slots/toggle", workingHoursHandler.ToggleClosedSlot)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:barberId", barberHandler.Update)
			secured.DELETE("/barbers/:barberId", barberHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/info", generalInfoHandler.Get)
			secured.PUT("/info", generalInfoHandler.Update)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients/message", clientHandler.SendMessage)

			// ------------------------------
			// MEDIA
			// ------------------------------
			secured.POST("/media", mediaHandler.Upload)
			secured.DELETE("/media", mediaHandler.Delete)

			// ------------------------------
			// ADMIN ONLY
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/users", authHandler.CreateUser)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
