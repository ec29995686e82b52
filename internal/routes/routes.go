package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/audit"
	"github.com/RestoSuiteApp/resto-scheduler/internal/cache"
	"github.com/RestoSuiteApp/resto-scheduler/internal/config"
	"github.com/RestoSuiteApp/resto-scheduler/internal/handlers"
	"github.com/RestoSuiteApp/resto-scheduler/internal/infra/repository"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/notify"
	"github.com/RestoSuiteApp/resto-scheduler/internal/storage"
	ucBooking "github.com/RestoSuiteApp/resto-scheduler/internal/usecase/booking"

	"github.com/go-redis/redis/v8"
)

const availabilityCacheTTL = 5 * time.Minute

// Setup wires repositories, use cases and handlers onto the gin engine.
func Setup(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ---- shared infrastructure ----

	repo := repository.NewBookingGormRepository(db)
	availCache := cache.NewAvailabilityCache(rdb, availabilityCacheTTL)
	dispatcher := audit.NewDispatcher(audit.New(db))

	mailer := notify.NewMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.SMTPFrom,
	)

	uploader := storage.NewUploader(storage.S3Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})

	// ---- use cases ----

	availabilityUC := ucBooking.NewGetAvailability(repo, availCache)
	createBookingUC := ucBooking.NewCreateBooking(repo, dispatcher, mailer)
	cancelBookingUC := ucBooking.NewCancelBooking(repo, dispatcher, mailer)
	completeBookingUC := ucBooking.NewCompleteBooking(repo, dispatcher)
	listByDateUC := ucBooking.NewListBookingsByDate(repo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(repo)

	// ---- handlers ----

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	establishmentHandler := handlers.NewEstablishmentHandler(db)
	menuHandler := handlers.NewMenuProductHandler(db)
	slotHandler := handlers.NewBookingSlotHandler(db, availCache)
	exceptionHandler := handlers.NewSlotExceptionHandler(db, availCache)
	clientHandler := handlers.NewClientHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, uploader)
	auditHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listByDateUC,
		listByMonthUC,
	)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ---- public surface ----

	publicLimiter := middleware.NewRateLimiter(5, 10)

	public := r.Group("/public", publicLimiter.Middleware())
	{
		public.GET("/:slug", publicHandler.GetEstablishment)
		public.GET("/:slug/menu", publicHandler.ListMenu)
		public.GET("/:slug/gallery", publicHandler.ListGallery)
		public.GET("/:slug/availability", publicHandler.GetAvailability)
		public.POST("/:slug/bookings", publicHandler.CreateBooking)
	}

	// ---- auth ----

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ---- authenticated back office ----

	api := r.Group("/api", middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)

		api.GET("/establishment", establishmentHandler.GetMe)
		api.PATCH("/establishment", establishmentHandler.UpdateMe)

		api.GET("/menu-products", menuHandler.List)
		api.POST("/menu-products", menuHandler.Create)
		api.PATCH("/menu-products/:id", menuHandler.Update)
		api.POST("/menu-products/:id/stock", menuHandler.AdjustStock)

		api.GET("/booking-slots", slotHandler.List)
		api.POST("/booking-slots", slotHandler.Create)
		api.PATCH("/booking-slots/:id", slotHandler.Update)
		api.DELETE("/booking-slots/:id", slotHandler.Delete)

		api.GET("/slot-exceptions", exceptionHandler.List)
		api.POST("/slot-exceptions", exceptionHandler.Create)
		api.DELETE("/slot-exceptions/:id", exceptionHandler.Delete)

		api.GET("/bookings", bookingHandler.ListByDate)
		api.GET("/bookings/month", bookingHandler.ListByMonth)
		api.POST("/bookings", bookingHandler.Create)
		api.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		api.POST("/bookings/:id/complete", bookingHandler.Complete)

		api.GET("/clients", clientHandler.List)

		api.GET("/gallery", galleryHandler.List)
		api.POST("/gallery", galleryHandler.Upload)
		api.DELETE("/gallery/:id", galleryHandler.Delete)

		api.GET("/audit-logs", auditHandler.List)
	}
}
