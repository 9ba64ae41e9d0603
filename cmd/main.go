package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/api"
	applyVerificationHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/apply_verification"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_client_bookings"
	getProfessionalBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_bookings"
	getProfessionalReviewsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_reviews"
	getProfessionalServicesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_services"
	getScheduleHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_service"
	getServiceCategoriesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_service_categories"
	getVerificationsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_verifications"
	listProfessionalsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_services"
	reviewVerificationHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/review_verification"
	submitReviewHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/submit_review"
	updateBookingStatusHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	reviewsService "github.com/m04kA/SMC-BeautyBooking/internal/service/reviews"
	scheduleService "github.com/m04kA/SMC-BeautyBooking/internal/service/schedule"
	verificationService "github.com/m04kA/SMC-BeautyBooking/internal/service/verification"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	submitReviewUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_review"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BeautyBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище
	store, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	log.Info("Storage initialized (driver=%s)", cfg.Database.Driver)

	// Инициализируем доставку уведомлений
	var publisher notifications.Publisher
	publishTimeout := time.Duration(cfg.Notifications.PublishTimeout) * time.Second
	if len(cfg.Notifications.Brokers) > 0 {
		publisher = notifications.NewKafkaPublisher(cfg.Notifications.Brokers, cfg.Notifications.Topic, publishTimeout)
		log.Info("Notifications are published to kafka (brokers=%v, topic=%s)",
			cfg.Notifications.Brokers, cfg.Notifications.Topic)
	} else {
		publisher = notifications.NewLogPublisher(log)
		log.Info("Notifications are written to log")
	}
	dispatcher := notifications.NewDispatcher(publisher, notifications.Config{
		Workers:        cfg.Notifications.Workers,
		QueueSize:      cfg.Notifications.QueueSize,
		PublishTimeout: publishTimeout,
	}, metricsCollector, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store.bookings,
		store.tx,
		dispatcher,
		metricsCollector,
		location,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		store.schedules,
		store.bookings,
		store.tx,
		location,
		log,
	)
	catalogSvc := catalogService.NewService(store.catalog, log)
	reviewSvc := reviewsService.NewService(store.reviews, log)
	verificationSvc := verificationService.NewService(
		store.verifications,
		store.tx,
		dispatcher,
		log,
	)

	// Инициализируем use cases
	granularity := cfg.Booking.SlotGranularityMinutes
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		store.schedules,
		store.catalog,
		store.tx,
		dispatcher,
		metricsCollector,
		granularity,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store.schedules,
		store.bookings,
		store.catalog,
		granularity,
		location,
		log,
	)
	submitReviewUseCase := submitReviewUC.NewUseCase(
		store.bookings,
		store.reviews,
		store.tx,
		dispatcher,
		log,
	)

	// Инициализируем handlers
	handlers := api.Handlers{
		GetSchedule:             getScheduleHandler.NewHandler(scheduleSvc, log),
		UpdateSchedule:          updateScheduleHandler.NewHandler(scheduleSvc, log),
		GetAvailableSlots:       getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CreateBooking:           createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:              getBookingHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus:     updateBookingStatusHandler.NewHandler(bookingSvc, log),
		SubmitReview:            submitReviewHandler.NewHandler(submitReviewUseCase, log),
		GetClientBookings:       getClientBookingsHandler.NewHandler(bookingSvc, log),
		GetProfessionalBookings: getProfessionalBookingsHandler.NewHandler(bookingSvc, log),
		GetProfessionalReviews:  getProfessionalReviewsHandler.NewHandler(reviewSvc, log),
		GetProfessionalServices: getProfessionalServicesHandler.NewHandler(catalogSvc, log),
		GetService:              getServiceHandler.NewHandler(catalogSvc, log),
		ListServices:            listServicesHandler.NewHandler(catalogSvc, log),
		GetServiceCategories:    getServiceCategoriesHandler.NewHandler(catalogSvc, log),
		ListProfessionals:       listProfessionalsHandler.NewHandler(verificationSvc, log),
		CreateService:           createServiceHandler.NewHandler(catalogSvc, log),
		UpdateService:           updateServiceHandler.NewHandler(catalogSvc, log),
		DeleteService:           deleteServiceHandler.NewHandler(catalogSvc, log),
		ApplyVerification:       applyVerificationHandler.NewHandler(verificationSvc, log),
		GetVerifications:        getVerificationsHandler.NewHandler(verificationSvc, log),
		ReviewVerification:      reviewVerificationHandler.NewHandler(verificationSvc, log),
	}

	// Настраиваем роутер
	routerCfg := api.RouterConfig{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	}
	if cfg.RateLimit.RPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	r := api.NewRouter(handlers, routerCfg)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся доставки уведомлений из очереди
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("Notification dispatcher stopped with error: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := store.close(); err != nil {
		log.Error("Failed to close storage: %v", err)
	}

	log.Info("Server stopped gracefully")
}
