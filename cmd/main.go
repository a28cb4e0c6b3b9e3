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

	activateReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/activate_reservation"
	cancelReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_reservation"
	completeReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/complete_reservation"
	confirmReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/confirm_reservation"
	createCategoryHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_category"
	createEquipmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_equipment"
	createReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_reservation"
	deleteCategoryHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_category"
	deleteEquipmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_equipment"
	deleteReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_reservation"
	deleteReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_review"
	getCategoryHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_category"
	getEquipmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_equipment"
	getEquipmentReviewsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_equipment_reviews"
	getOwnerReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_owner_reservations"
	getRenterReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_renter_reservations"
	getReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_reservation"
	listCategoriesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_categories"
	listEquipmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_equipment"
	respondReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/respond_review"
	setEquipmentAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_equipment_availability"
	submitReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/submit_review"
	updateCategoryHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_category"
	updateEquipmentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_equipment"
	updatePaymentStatusHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_payment_status"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	categoryRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/category"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	accountServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/accountservice"
	notifierClient "github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
	aggregatesService "github.com/m04kA/SMC-RentalService/internal/service/aggregates"
	categoriesService "github.com/m04kA/SMC-RentalService/internal/service/categories"
	equipmentService "github.com/m04kA/SMC-RentalService/internal/service/equipment"
	reservationsService "github.com/m04kA/SMC-RentalService/internal/service/reservations"
	reviewsService "github.com/m04kA/SMC-RentalService/internal/service/reviews"
	createReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	submitReviewUC "github.com/m04kA/SMC-RentalService/internal/usecase/submit_review"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Инициализируем интеграционных клиентов
	accountClient := accountServiceClient.NewClient(
		cfg.AccountService.URL,
		time.Duration(cfg.AccountService.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AccountService=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.AccountService.URL, cfg.AccountService.Timeout, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		equipmentRepository   *equipmentRepo.Repository
		reservationRepository *reservationRepo.Repository
		reviewRepository      *reviewRepo.Repository
		categoryRepository    *categoryRepo.Repository
	)

	// Интерфейс transaction manager, общий для сервисов и usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		equipmentRepository = equipmentRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	aggregatesSvc := aggregatesService.NewService(
		equipmentRepository,
		reservationRepository,
		reviewRepository,
		log,
	)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		equipmentRepository,
		aggregatesSvc,
		txMgr,
		notifier,
		log,
	)
	equipmentSvc := equipmentService.NewService(
		equipmentRepository,
		reservationRepository,
		categoryRepository,
		accountClient,
		txMgr,
		log,
	)
	categoriesSvc := categoriesService.NewService(categoryRepository, log)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		equipmentRepository,
		aggregatesSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		equipmentRepository,
		accountClient,
		aggregatesSvc,
		txMgr,
		notifier,
		log,
	)
	submitReviewUseCase := submitReviewUC.NewUseCase(
		reviewRepository,
		reservationRepository,
		aggregatesSvc,
		txMgr,
		notifier,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	activateReservation := activateReservationHandler.NewHandler(reservationSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getRenterReservations := getRenterReservationsHandler.NewHandler(reservationSvc, log)
	getOwnerReservations := getOwnerReservationsHandler.NewHandler(reservationSvc, log)

	createEquipment := createEquipmentHandler.NewHandler(equipmentSvc, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(equipmentSvc, log)
	updateEquipment := updateEquipmentHandler.NewHandler(equipmentSvc, log)
	setEquipmentAvailability := setEquipmentAvailabilityHandler.NewHandler(equipmentSvc, log)
	deleteEquipment := deleteEquipmentHandler.NewHandler(equipmentSvc, log)

	createCategory := createCategoryHandler.NewHandler(categoriesSvc, log)
	getCategory := getCategoryHandler.NewHandler(categoriesSvc, log)
	listCategories := listCategoriesHandler.NewHandler(categoriesSvc, log)
	updateCategory := updateCategoryHandler.NewHandler(categoriesSvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(categoriesSvc, log)

	submitReview := submitReviewHandler.NewHandler(submitReviewUseCase, log)
	getEquipmentReviews := getEquipmentReviewsHandler.NewHandler(reviewSvc, log)
	respondReview := respondReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог оборудования
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}", getEquipment.Handle).Methods(http.MethodGet)

	// Справочник категорий
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryId}", getCategory.Handle).Methods(http.MethodGet)

	// Отзывы по оборудованию со статистикой
	api.HandleFunc("/equipment/{equipmentId}/reviews", getEquipmentReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Org-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/activate", activateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/payment", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Бронирования организации (как арендатора и как владельца парка)
	protected.HandleFunc("/organizations/{orgId}/reservations", getRenterReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/organizations/{orgId}/equipment-reservations", getOwnerReservations.Handle).Methods(http.MethodGet)

	// --- Оборудование ---
	protected.HandleFunc("/equipment", createEquipment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/{equipmentId}", updateEquipment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/equipment/{equipmentId}/availability", setEquipmentAvailability.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/equipment/{equipmentId}", deleteEquipment.Handle).Methods(http.MethodDelete)

	// --- Категории ---
	protected.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/categories/{categoryId}", updateCategory.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/categories/{categoryId}", deleteCategory.Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", submitReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}/response", respondReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

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
