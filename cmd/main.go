package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/cancel_booking"
	createAffiliateHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/create_affiliate"
	createBookingHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/create_booking"
	createPaymentIntentHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/create_payment_intent"
	getAffiliateByCodeHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/get_affiliate_by_code"
	getAvailableSlotsHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/get_booking"
	getCourseHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/get_course"
	getUserBookingsHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/get_user_bookings"
	listAffiliatesHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/list_affiliates"
	listCommissionsHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/list_commissions"
	listCoursesHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/list_courses"
	listUsersHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/list_users"
	quotePriceHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/quote_price"
	registerUserHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/register_user"
	updateAffiliateHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/update_affiliate"
	updateCommissionStatusHandler "github.com/teemx/GolfTee-BookingService/internal/api/handlers/update_commission_status"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/config"
	storage "github.com/teemx/GolfTee-BookingService/internal/infra/storage"
	affiliateRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/affiliate"
	availabilityRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/booking"
	commissionRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/commission"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
	discountRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/discount"
	userRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/user"
	stripeClient "github.com/teemx/GolfTee-BookingService/internal/integrations/stripe"
	affiliatesService "github.com/teemx/GolfTee-BookingService/internal/service/affiliates"
	bookingsService "github.com/teemx/GolfTee-BookingService/internal/service/bookings"
	catalogService "github.com/teemx/GolfTee-BookingService/internal/service/catalog"
	commissionsService "github.com/teemx/GolfTee-BookingService/internal/service/commissions"
	usersService "github.com/teemx/GolfTee-BookingService/internal/service/users"
	createBookingUC "github.com/teemx/GolfTee-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/teemx/GolfTee-BookingService/internal/usecase/get_available_slots"
	quotePriceUC "github.com/teemx/GolfTee-BookingService/internal/usecase/quote_price"
	"github.com/teemx/GolfTee-BookingService/pkg/dbmetrics"
	"github.com/teemx/GolfTee-BookingService/pkg/logger"
	"github.com/teemx/GolfTee-BookingService/pkg/metrics"
	"github.com/teemx/GolfTee-BookingService/pkg/simpletxmanager"
	"github.com/teemx/GolfTee-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting GolfTee-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := storage.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем платёжного клиента
	paymentClient := stripeClient.NewClient(
		cfg.Stripe.BaseURL,
		cfg.Stripe.APIKey,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	log.Info("Stripe client initialized (base_url=%s, timeout=%ds)", cfg.Stripe.BaseURL, cfg.Stripe.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		courseRepository       *courseRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		discountRepository     *discountRepo.Repository
		affiliateRepository    *affiliateRepo.Repository
		commissionRepository   *commissionRepo.Repository
		userRepository         *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courseRepository = courseRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		affiliateRepository = affiliateRepo.NewRepository(wrappedDB)
		commissionRepository = commissionRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courseRepository = courseRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		affiliateRepository = affiliateRepo.NewRepository(db)
		commissionRepository = commissionRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(courseRepository, log)
	affiliateSvc := affiliatesService.NewService(
		affiliateRepository,
		userRepository,
		log,
	)
	commissionSvc := commissionsService.NewService(
		commissionRepository,
		affiliateRepository,
		log,
	)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(
		courseRepository,
		discountRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courseRepository,
		availabilityRepository,
		discountRepository,
		affiliateRepository,
		commissionRepository,
		paymentClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		courseRepository,
		log,
	)

	// Инициализируем handlers
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listCourses := listCoursesHandler.NewHandler(catalogSvc, log)
	getCourse := getCourseHandler.NewHandler(catalogSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(quotePriceUseCase, paymentClient, cfg.Stripe.Currency, log)
	listAffiliates := listAffiliatesHandler.NewHandler(affiliateSvc, log)
	createAffiliate := createAffiliateHandler.NewHandler(affiliateSvc, log)
	updateAffiliate := updateAffiliateHandler.NewHandler(affiliateSvc, log)
	getAffiliateByCode := getAffiliateByCodeHandler.NewHandler(affiliateSvc, log)
	listCommissions := listCommissionsHandler.NewHandler(commissionSvc, log)
	updateCommissionStatus := updateCommissionStatusHandler.NewHandler(commissionSvc, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация пользователя
	api.HandleFunc("/users/register", registerUser.Handle).Methods(http.MethodPost)

	// Каталог полей
	api.HandleFunc("/courses", listCourses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}", getCourse.Handle).Methods(http.MethodGet)

	// Доступные ти-таймы на дату
	api.HandleFunc("/courses/{courseId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчёт цены бронирования
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Проверка реферального кода
	api.HandleFunc("/referrals/{referralCode}", getAffiliateByCode.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Платежи ---
	protected.HandleFunc("/payments/intents", createPaymentIntent.Handle).Methods(http.MethodPost)

	// --- Аффилиатская программа ---
	protected.HandleFunc("/affiliates", listAffiliates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/affiliates", createAffiliate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/affiliates/{affiliateId}", updateAffiliate.Handle).Methods(http.MethodPatch)

	// --- Комиссии ---
	protected.HandleFunc("/commissions", listCommissions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/commissions/{commissionId}", updateCommissionStatus.Handle).Methods(http.MethodPatch)

	// --- Пользователи (для админов) ---
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
