package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LumiereBeauty/salon-scheduler/internal/cache"
	"github.com/LumiereBeauty/salon-scheduler/internal/calendar"
	"github.com/LumiereBeauty/salon-scheduler/internal/clock"
	"github.com/LumiereBeauty/salon-scheduler/internal/config"
	"github.com/LumiereBeauty/salon-scheduler/internal/events"
	"github.com/LumiereBeauty/salon-scheduler/internal/handlers"
	"github.com/LumiereBeauty/salon-scheduler/internal/infra/repository"
	"github.com/LumiereBeauty/salon-scheduler/internal/linksign"
	"github.com/LumiereBeauty/salon-scheduler/internal/middleware"
	ucBooking "github.com/LumiereBeauty/salon-scheduler/internal/usecase/booking"
)

// SetupRouter wires the storage, cache, queue and use cases into the gin
// engine. Everything behind /booking requires a bearer token; quick-action
// links authenticate with their own signed token instead.
func SetupRouter(
	cfg *config.Config,
	gormDB *gorm.DB,
	logger *zap.Logger,
) *gin.Engine {

	// ======================================================
	// INFRASTRUCTURE
	// ======================================================

	repo := repository.NewBookingGormRepository(gormDB)

	cacheClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	slots := cache.NewSlotCache(cacheClient, logger)

	publisher := events.NewAsynqPublisher(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	})

	clk := clock.System(cfg.Timezone)

	var cal calendar.Calendar = calendar.Disabled{}
	if cfg.CalendarCredentialsPath != "" {
		cal = calendar.NewGoogleCalendar(cfg.CalendarCredentialsPath, cfg.CalendarID, logger)
	}

	signer := linksign.New(
		cfg.JWTSecret,
		time.Duration(cfg.ActionLinkTTLHours)*time.Hour,
	)

	// ======================================================
	// USE CASES
	// ======================================================

	createUC := ucBooking.NewCreateBooking(repo, publisher, clk, slots, logger)
	slotsUC := ucBooking.NewGetAvailableSlots(repo, clk, slots)
	changeStatusUC := ucBooking.NewChangeStatus(repo, cal, publisher, slots, logger)
	cancelUC := ucBooking.NewCancelByCustomer(repo, changeStatusUC)
	listUpcomingUC := ucBooking.NewListUpcomingByUser(repo, clk)
	listByRangeUC := ucBooking.NewListBookingsByRange(repo)
	statisticsUC := ucBooking.NewMonthlyStatistics(repo, clk)

	// ======================================================
	// HANDLERS
	// ======================================================

	bookingHandler := handlers.NewBookingHandler(
		createUC, slotsUC, cancelUC, listUpcomingUC, listByRangeUC,
	)
	adminHandler := handlers.NewAdminBookingHandler(
		listByRangeUC, changeStatusUC, statisticsUC,
	)
	quickActionHandler := handlers.NewQuickActionHandler(signer, changeStatusUC)
	publicHandler := handlers.NewPublicHandler(repo)

	// ======================================================
	// ROUTES
	// ======================================================

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// public catalog for the booking page
	r.GET("/api/public/stylists", publicHandler.Stylists)
	r.GET("/api/public/services", publicHandler.Services)

	// booking page data, no session required
	r.GET("/booking/api/available-slots", bookingHandler.AvailableSlots)
	r.GET("/booking/api/bookings", bookingHandler.BusyBookings)

	// quick-action links from admin emails, token-authenticated
	r.GET("/booking/:id/approve", quickActionHandler.Approve)
	r.GET("/booking/:id/reject", quickActionHandler.Reject)

	booking := r.Group("/booking")
	booking.Use(middleware.AuthMiddleware(cfg))
	{
		booking.POST("/create", bookingHandler.Create)
		booking.POST("/cancel/:id", bookingHandler.Cancel)
		booking.GET("/my", bookingHandler.MyBookings)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminRequired())
	{
		admin.GET("/bookings/calendar", adminHandler.Calendar)
		admin.POST("/bookings/:id/status", adminHandler.UpdateStatus)
		admin.GET("/bookings/statistics", adminHandler.Statistics)
	}

	return r
}
