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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/get_booking"
	getCourseHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/get_course"
	getProfileBookingsHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/get_profile_bookings"
	listCoursesHandler "github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers/list_courses"
	"github.com/m04kA/SMC-FitnessBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/booking"
	courseRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/course"
	profileRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-FitnessBookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings"
	coursesService "github.com/m04kA/SMC-FitnessBookingService/internal/service/courses"
	createBookingUC "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/logger"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/metrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/migrator"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/txmanager"
)

// rateLimiterTTL время жизни лимитера неактивного профиля
const rateLimiterTTL = 10 * time.Minute

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

	log.Info("Starting SMC-FitnessBookingService...")
	log.Info("Configuration loaded from config.toml")

	policy, err := cfg.CalendarPolicy()
	if err != nil {
		log.Fatal("Invalid calendar policy: %v", err)
	}
	log.Info("Calendar policy: timezone=%s, weekday=%d-%d, weekend=%d-%d, horizon=%dd",
		cfg.Calendar.Timezone, cfg.Calendar.WeekdayOpen, cfg.Calendar.WeekdayClose,
		cfg.Calendar.WeekendOpen, cfg.Calendar.WeekendClose, cfg.Calendar.HorizonDays)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		commitRecorder   createBookingUC.MetricsRecorder
	)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		commitRecorder = metricsCollector
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

	if cfg.Database.AutoMigrate {
		if err := migrator.Up(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Все запросы идут через обёртку; без метрик recorder = nil
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopCh)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	courseRepository := courseRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithLockTimeout(cfg.Booking.LockTimeout()),
		txmanager.WithStatementTimeout(cfg.Booking.StatementTimeout()),
	)

	// Инициализируем клиента уведомлений
	var bookingNotifier createBookingUC.Notifier
	if cfg.Notifier.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Notifier.RedisAddr,
			Password: cfg.Notifier.Password,
			DB:       cfg.Notifier.DB,
		})
		defer rdb.Close()
		bookingNotifier = notifier.NewClient(rdb, cfg.Notifier.Queue, log)
		log.Info("Notifier initialized (redis=%s, queue=%s)", cfg.Notifier.RedisAddr, cfg.Notifier.Queue)
	} else {
		bookingNotifier = notifier.NewNoopClient(log)
		log.Info("Notifier disabled, notifications are only logged")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	courseSvc := coursesService.NewService(courseRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		profileRepository,
		courseRepository,
		bookingRepository,
		txMgr,
		bookingNotifier,
		commitRecorder,
		policy,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		courseRepository,
		bookingRepository,
		policy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getProfileBookings := getProfileBookingsHandler.NewHandler(bookingSvc, log)
	listCourses := listCoursesHandler.NewHandler(courseSvc, log)
	getCourse := getCourseHandler.NewHandler(courseSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix; X-Profile-ID необязателен, но если передан - должен быть корректным
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Каталог ---
	api.HandleFunc("/courses", listCourses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}", getCourse.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования (handlers требуют X-Profile-ID) ---
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimiterTTL)
		go limiter.Run(stopCh)
		createBookingRoute = limiter.Middleware(createBookingRoute)
		log.Info("Rate limit on POST /bookings: rps=%.2f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{profileId}/bookings", getProfileBookings.Handle).Methods(http.MethodGet)

	// Access log, CORS и восстановление после паники
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.ProfileIDHeader}),
	)(gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(
		gorillaHandlers.LoggingHandler(os.Stdout, r),
	))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Дожидаемся отправки уведомлений по уже созданным бронированиям
	createBookingUseCase.Wait()

	// Останавливаем сбор статистики пула и очистку лимитеров
	close(stopCh)

	log.Info("Server stopped gracefully")
}
