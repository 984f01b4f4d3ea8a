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

	createSessionHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/create_session"
	getSeatMapHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/get_seat_map"
	refreshAvailabilityHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/refresh_availability"
	submitBookingHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/submit_booking"
	syncControlHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/sync_control"
	syncStatusHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/sync_status"
	toggleSeatHandler "github.com/avkotov/KNS-SeatService/internal/api/handlers/toggle_seat"
	"github.com/avkotov/KNS-SeatService/internal/api/middleware"
	"github.com/avkotov/KNS-SeatService/internal/config"
	"github.com/avkotov/KNS-SeatService/internal/domain"
	snapshotRepo "github.com/avkotov/KNS-SeatService/internal/infra/storage/snapshot"
	"github.com/avkotov/KNS-SeatService/internal/integrations/notifier"
	"github.com/avkotov/KNS-SeatService/internal/integrations/sheetstore"
	availabilityService "github.com/avkotov/KNS-SeatService/internal/service/availability"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
	createSessionUC "github.com/avkotov/KNS-SeatService/internal/usecase/create_session"
	getSeatMapUC "github.com/avkotov/KNS-SeatService/internal/usecase/get_seat_map"
	submitBookingUC "github.com/avkotov/KNS-SeatService/internal/usecase/submit_booking"
	toggleSeatUC "github.com/avkotov/KNS-SeatService/internal/usecase/toggle_seat"
	"github.com/avkotov/KNS-SeatService/pkg/dbmetrics"
	"github.com/avkotov/KNS-SeatService/pkg/logger"
	"github.com/avkotov/KNS-SeatService/pkg/metrics"
	"github.com/avkotov/KNS-SeatService/pkg/scheduler"
	"github.com/avkotov/KNS-SeatService/pkg/simpletxmanager"
	"github.com/avkotov/KNS-SeatService/pkg/txmanager"
)

// sheetGateway общий контракт обоих бэкендов удаленного хранилища
type sheetGateway interface {
	AppendBooking(ctx context.Context, record domain.BookingRecord) (string, bool)
	ListBookings(ctx context.Context) ([]domain.BookingRecord, error)
}

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

	log.Info("Starting KNS-SeatService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (локальный снапшот журнала бронирований)
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

	// Инициализируем клиент удаленного хранилища бронирований
	var gateway sheetGateway
	sheetTimeout := time.Duration(cfg.SheetStore.Timeout) * time.Second
	switch cfg.SheetStore.Mode {
	case "tabular":
		gateway = sheetstore.NewTabularClient(cfg.SheetStore.URL, sheetTimeout, log)
	default:
		gateway = sheetstore.NewScriptClient(cfg.SheetStore.URL, sheetTimeout, log)
	}
	log.Info("Sheet store client initialized (mode=%s, url=%s, timeout=%ds)",
		cfg.SheetStore.Mode, cfg.SheetStore.URL, cfg.SheetStore.Timeout)

	// Интерфейс для transaction manager (используется сервисом сверки)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		txMgr      TxManager
		repository *snapshotRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = snapshotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = snapshotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем движок сверки занятости
	var syncMetrics availabilityService.MetricsRecorder
	if cfg.Metrics.Enabled {
		syncMetrics = metricsCollector
	}
	availabilitySvc := availabilityService.NewService(gateway, repository, txMgr, syncMetrics, log)

	// Стартовое состояние: снапшот сразу, свежие данные фоном
	if err := availabilitySvc.WarmUp(context.Background()); err != nil {
		log.Warn("Availability warm-up failed, starting empty: %v", err)
	}
	go func() {
		_, _ = availabilitySvc.Reconcile(context.Background(), availabilityService.Options{
			Trigger: availabilityService.TriggerStartup,
		})
	}()

	// Хранилище клиентских сессий с фоновой очисткой
	sessionStore := sessions.NewStore(time.Duration(cfg.Sync.SessionTTLMinutes) * time.Minute)
	evictScheduler := scheduler.New(5*time.Minute, func(ctx context.Context) {
		if evicted := sessionStore.Evict(); evicted > 0 {
			log.Info("Session store: evicted %d expired sessions", evicted)
		}
	}, log)
	evictScheduler.Start()
	defer evictScheduler.Stop()

	// Фоновый опрос занятости
	pollScheduler := scheduler.New(time.Duration(cfg.Sync.PollInterval)*time.Second, func(ctx context.Context) {
		_, _ = availabilitySvc.Reconcile(ctx, availabilityService.Options{
			Trigger: availabilityService.TriggerPolling,
		})
	}, log)
	pollScheduler.Start()
	defer pollScheduler.Stop()

	// Публикация событий о подтвержденных бронированиях (если включена)
	var confirmNotifier submitBookingUC.Notifier
	if cfg.Notifications.Enabled {
		confirmNotifier = notifier.NewPublisher(cfg.Notifications.AMQPURL, cfg.Notifications.Queue, log)
		log.Info("Booking confirmation events enabled (queue=%s)", cfg.Notifications.Queue)
	}

	// Инициализируем use cases
	createSessionUseCase := createSessionUC.NewUseCase(sessionStore, log)
	getSeatMapUseCase := getSeatMapUC.NewUseCase(availabilitySvc, sessionStore, log)
	toggleSeatUseCase := toggleSeatUC.NewUseCase(availabilitySvc, sessionStore, log)

	var bookingMetrics submitBookingUC.MetricsRecorder
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}
	submitBookingUseCase := submitBookingUC.NewUseCase(
		availabilitySvc,
		gateway,
		sessionStore,
		confirmNotifier,
		bookingMetrics,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	getSeatMap := getSeatMapHandler.NewHandler(getSeatMapUseCase, log)
	toggleSeat := toggleSeatHandler.NewHandler(toggleSeatUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	refreshAvailability := refreshAvailabilityHandler.NewHandler(availabilitySvc, log)
	syncStatus := syncStatusHandler.NewHandler(availabilitySvc, pollScheduler)
	syncControl := syncControlHandler.NewHandler(pollScheduler, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиентские сессии ---
	// Создание сессии и переключение пула мест
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Карта мест для сессии
	api.HandleFunc("/sessions/{sessionId}/seats", getSeatMap.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Переключение предварительного выбора места
	api.HandleFunc("/sessions/{sessionId}/seats/{seatId}/toggle",
		toggleSeat.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Отправка бронирования
	api.HandleFunc("/sessions/{sessionId}/booking", submitBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Синхронизация занятости ---
	// Ручной запуск цикла сверки
	api.HandleFunc("/availability/refresh", refreshAvailability.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Состояние движка сверки
	api.HandleFunc("/availability/status", syncStatus.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Пауза и возобновление фонового опроса (скрытие/возврат вкладки)
	api.HandleFunc("/sync/pause", syncControl.HandlePause).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sync/resume", syncControl.HandleResume).Methods(http.MethodPost, http.MethodOptions)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	pollScheduler.Stop()
	evictScheduler.Stop()

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
