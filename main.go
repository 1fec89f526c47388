package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"chairbook/config"
	"chairbook/cron"
	"chairbook/database"
	appointmentRepo "chairbook/database/repository/appointment"
	productRepo "chairbook/database/repository/product"
	serviceRepo "chairbook/database/repository/service"
	userRepoPkg "chairbook/database/repository/user"
	"chairbook/handlers"
	"chairbook/middleware"
	"chairbook/routes"
	"chairbook/services/availability"
	"chairbook/services/booking"
	"chairbook/services/catalog"
	"chairbook/services/notification"
	"chairbook/services/tasks"
	"chairbook/services/user"
	"chairbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	cal, err := newCalendar()
	if err != nil {
		logger.Fatal("main: invalid business hours", zap.Error(err))
	}

	if err := database.InitDB(logger); err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}

	var locker booking.Locker
	if err := utils.InitLockClient(); err != nil {
		if config.IsProduction() {
			logger.Fatal("main: redis unavailable", zap.Error(err))
		}
		logger.Warn("main: redis unavailable, using in-process booking locks", zap.Error(err))
		locker = booking.NewMemoryLocker()
	} else {
		locker = booking.NewRedisLocker(utils.LockClient, config.AppConfig.BookingLockTTL, logger)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, utils.LockClient, database.MongoClient, 30*time.Second)

	// repositories.
	db := database.DB()
	userRepo := userRepoPkg.NewMongoUserRepo(db, logger)
	servicesRepo := serviceRepo.NewMongoServiceRepo(db, logger)
	productsRepo := productRepo.NewMongoProductRepo(db, logger)
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db, logger)

	// email queue and worker.
	queue := tasks.NewQueue(utils.QueueRedisOpt())
	defer queue.Close()

	var sender notification.EmailSender = notification.LogSender{Logger: logger}
	if config.AppConfig.SMTPHost != "" {
		sender = notification.NewSMTPSender(config.AppConfig.SMTPHost, config.AppConfig.SMTPPort, config.AppConfig.SMTPFrom)
	}
	worker := cron.InitEmailWorker(utils.QueueRedisOpt(), sender, logger)

	// services.
	engine := &availability.Engine{
		Calendar:     cal,
		Appointments: apptRepo,
		Catalog:      servicesRepo,
		Clock:        availability.SystemClock,
		Granularity:  time.Duration(config.AppConfig.SlotGranularityMin) * time.Minute,
		Logger:       logger,
	}
	appointmentService := &booking.DefaultAppointmentService{
		Calendar:     cal,
		Appointments: apptRepo,
		Catalog:      servicesRepo,
		Products:     productsRepo,
		Users:        userRepo,
		Locker:       locker,
		Mailer:       queue,
		Clock:        availability.SystemClock,
		Logger:       logger,
	}
	catalogService := &catalog.Service{
		Services:     servicesRepo,
		Products:     productsRepo,
		Appointments: apptRepo,
		Today: func() string {
			return time.Now().In(cal.Location()).Format(availability.DateLayout)
		},
	}
	userService := &user.DefaultUserService{Repo: userRepo}

	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine, logger),
		Appointments: handlers.NewAppointmentHandler(appointmentService, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService, logger),
		Users:        handlers.NewUserHandler(userService, logger),
		Email:        handlers.NewEmailHandler(queue, config.AppConfig.BusinessEmail, logger),
		Health:       &handlers.HealthHandler{Status: utils.GetHealthStatus},
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("timezone", cal.Location().String()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	stop()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

func newCalendar() (*availability.Calendar, error) {
	loc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		return nil, err
	}
	hours, err := availability.ParseWeeklyHours(config.AppConfig.WeeklyHoursSpec())
	if err != nil {
		return nil, err
	}
	return availability.NewCalendar(loc, hours)
}
