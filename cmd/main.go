package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	createBlockoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_blockout"
	createDepositPaymentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_deposit_payment"
	deleteBlockoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_blockout"
	getAgendaHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_agenda"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_calendar"
	getServiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_service"
	listBlockoutsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_blockouts"
	listMyAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_my_appointments"
	listProfessionalsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	listUsersHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_users"
	paymentWebhookHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/payment_webhook"
	replaceAvailabilityDayHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/replace_availability_day"
	simulatePaymentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/simulate_payment"
	updateUserRoleHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_user_role"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	blockoutRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blockout"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	adminService "github.com/m04kA/SMC-SalonBooking/internal/service/admin"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-SalonBooking/internal/service/availability"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	createDepositPaymentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_deposit_payment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_calendar"
	processPaymentWebhookUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
	simulatePaymentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/simulate_payment"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// serviceCatalog источник услуг: репозиторий или кэш Redis поверх него
type serviceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid salon timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (если включены). nil коллектор безопасен для всех потребителей.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	// Одна политика повторов для транзакций и платежного шлюза
	policy := retryPolicy(cfg.Retry)
	txMgr := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithPolicy(policy),
		txmanager.WithMetrics(metricsCollector),
	)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	blockoutRepository := blockoutRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	var services serviceCatalog = serviceRepo.NewRepository(wrappedDB)
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		services = cache.NewServiceCache(services, rdb, time.Duration(cfg.Redis.TTL)*time.Second, log)
		log.Info("Service catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Платежный шлюз
	var (
		gateway     paymentgateway.Gateway
		mockGateway *paymentgateway.MockGateway
	)
	if cfg.PaymentGateway.IsMock() {
		mockGateway = paymentgateway.NewMockGateway(time.Duration(cfg.Booking.PaymentExpiryHours) * time.Hour)
		gateway = mockGateway
		log.Info("Payment gateway: mock")
	} else {
		gateway = paymentgateway.NewClient(
			cfg.PaymentGateway.BaseURL,
			cfg.PaymentGateway.AccessToken,
			time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
			log,
		)
		log.Info("Payment gateway: %s (timeout=%ds)", cfg.PaymentGateway.BaseURL, cfg.PaymentGateway.Timeout)
	}
	gateway = paymentgateway.WithRetry(gateway, policy)

	generator := scheduling.NewSlotGenerator(cfg.Booking.SlotStepMinutes)

	// Сервисы
	catalogSvc := catalogService.NewService(services, profileRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, services, txMgr, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, blockoutRepository, txMgr, location, log)
	adminSvc := adminService.NewService(profileRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		services,
		profileRepository,
		availabilityRepository,
		blockoutRepository,
		generator,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		services,
		availabilityRepository,
		blockoutRepository,
		generator,
		txMgr,
		location,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		appointmentRepository,
		profileRepository,
		availabilityRepository,
		blockoutRepository,
		generator,
		txMgr,
		location,
		log,
	)
	createDepositPaymentUseCase := createDepositPaymentUC.NewUseCase(
		appointmentRepository,
		paymentRepository,
		services,
		profileRepository,
		gateway,
		cfg.Booking.DepositPercent,
		log,
	)
	processPaymentWebhookUseCase := processPaymentWebhookUC.NewUseCase(
		appointmentRepository,
		paymentRepository,
		gateway,
		txMgr,
		log,
	)

	// Handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(catalogSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listMyAppointments := listMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	createDepositPayment := createDepositPaymentHandler.NewHandler(createDepositPaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processPaymentWebhookUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailabilityDay := replaceAvailabilityDayHandler.NewHandler(availabilitySvc, log)
	listBlockouts := listBlockoutsHandler.NewHandler(availabilitySvc, log)
	createBlockout := createBlockoutHandler.NewHandler(availabilitySvc, log)
	deleteBlockout := deleteBlockoutHandler.NewHandler(availabilitySvc, log)
	listUsers := listUsersHandler.NewHandler(adminSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(adminSvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, profileRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Уведомления платежного шлюза
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	if mockGateway != nil {
		simulatePaymentUseCase := simulatePaymentUC.NewUseCase(paymentRepository, mockGateway, processPaymentWebhookUseCase, log)
		simulatePayment := simulatePaymentHandler.NewHandler(simulatePaymentUseCase, log)
		api.HandleFunc("/payments/{paymentId}/simulate", simulatePayment.Handle).Methods(http.MethodPost)
		log.Info("Mock payment settlement endpoint enabled")
	}

	// ============================================================
	// PROTECTED ROUTES (Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/payments", createDepositPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/appointments", listMyAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	professional := protected.PathPrefix("").Subrouter()
	professional.Use(middleware.RequireRole(domain.RoleProfessional, domain.RoleAdmin))

	professional.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	professional.HandleFunc("/professionals/me/appointments", getAgenda.Handle).Methods(http.MethodGet)
	professional.HandleFunc("/professionals/me/availability", getAvailability.Handle).Methods(http.MethodGet)
	professional.HandleFunc("/professionals/me/availability/{weekday}", replaceAvailabilityDay.Handle).Methods(http.MethodPut)
	professional.HandleFunc("/professionals/me/blockouts", listBlockouts.Handle).Methods(http.MethodGet)
	professional.HandleFunc("/professionals/me/blockouts", createBlockout.Handle).Methods(http.MethodPost)
	professional.HandleFunc("/professionals/me/blockouts/{blockoutId}", deleteBlockout.Handle).Methods(http.MethodDelete)

	// --- Администрирование ---
	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireRole(domain.RoleAdmin))

	adminRoutes.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/users/{userId}/role", updateUserRole.Handle).Methods(http.MethodPatch)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func retryPolicy(c config.RetryConfig) txmanager.Policy {
	return txmanager.Policy{
		MaxAttempts:     uint(c.MaxAttempts),
		InitialInterval: time.Duration(c.InitialInterval) * time.Millisecond,
		MaxInterval:     time.Duration(c.MaxInterval) * time.Millisecond,
		Multiplier:      c.Multiplier,
	}
}
