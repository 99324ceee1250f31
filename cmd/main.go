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
	"github.com/redis/go-redis/v9"

	createAvailabilityRuleHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/create_availability_rule"
	createTeamMemberHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/create_team_member"
	deleteAvailabilityRuleHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/delete_availability_rule"
	deleteTeamMemberHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/delete_team_member"
	getAppointmentHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/get_booked_slots"
	listAppointmentsHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/list_appointments"
	listAvailabilityRulesHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/list_availability_rules"
	listTeamMembersHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/list_team_members"
	listWorkshopsHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/list_workshops"
	submitAppointmentHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/submit_appointment"
	updateAppointmentStatusHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/update_appointment_status"
	updateAvailabilityRuleHandler "github.com/forgeline/workshop-booking-service/internal/api/handlers/update_availability_rule"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	"github.com/forgeline/workshop-booking-service/internal/config"
	"github.com/forgeline/workshop-booking-service/internal/infra/cache"
	appointmentRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/appointment"
	availabilityRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/availability"
	teammemberRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/teammember"
	workshopRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/workshop"
	"github.com/forgeline/workshop-booking-service/internal/integrations/mailservice"
	appointmentsService "github.com/forgeline/workshop-booking-service/internal/service/appointments"
	availabilityService "github.com/forgeline/workshop-booking-service/internal/service/availability"
	teamService "github.com/forgeline/workshop-booking-service/internal/service/team"
	workshopsService "github.com/forgeline/workshop-booking-service/internal/service/workshops"
	resolveSlotsUC "github.com/forgeline/workshop-booking-service/internal/usecase/resolve_available_slots"
	submitAppointmentUC "github.com/forgeline/workshop-booking-service/internal/usecase/submit_appointment"
	"github.com/forgeline/workshop-booking-service/pkg/dbmetrics"
	"github.com/forgeline/workshop-booking-service/pkg/logger"
	"github.com/forgeline/workshop-booking-service/pkg/metrics"
	"github.com/forgeline/workshop-booking-service/pkg/simpletxmanager"
	"github.com/forgeline/workshop-booking-service/pkg/txmanager"
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

	log.Info("Starting workshop-booking-service...")
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

	// Подключаемся к redis (если кеш включен)
	var slotsCache *cache.SlotsCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancelPing()

		slotsCache = cache.New(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		log.Info("Slots cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем клиент почтовой функции (если включен)
	var mailClient *mailservice.Client
	if cfg.MailService.Enabled {
		mailClient = mailservice.NewClient(
			cfg.MailService.URL,
			time.Duration(cfg.MailService.Timeout)*time.Second,
			log,
		)
		log.Info("Mail client initialized (url=%s, timeout=%ds)", cfg.MailService.URL, cfg.MailService.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		teammemberRepository   *teammemberRepo.Repository
		workshopRepository     *workshopRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		teammemberRepository = teammemberRepo.NewRepository(wrappedDB)
		workshopRepository = workshopRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		teammemberRepository = teammemberRepo.NewRepository(db)
		workshopRepository = workshopRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	// Кеш и почта опциональны
	var resolverCache resolveSlotsUC.SlotsCache
	if slotsCache != nil {
		resolverCache = slotsCache
	}
	resolveSlotsUseCase := resolveSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		resolverCache,
		log,
	)

	var submitMail submitAppointmentUC.MailClient
	if mailClient != nil {
		submitMail = mailClient
	}
	var submitCache submitAppointmentUC.SlotsCache
	if slotsCache != nil {
		submitCache = slotsCache
	}
	submitAppointmentUseCase := submitAppointmentUC.NewUseCase(
		appointmentRepository,
		workshopRepository,
		submitMail,
		submitCache,
		txMgr,
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	teamSvc := teamService.NewService(teammemberRepository, log)
	workshopsSvc := workshopsService.NewService(workshopRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(resolveSlotsUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(resolveSlotsUseCase, log)
	submitAppointment := submitAppointmentHandler.NewHandler(submitAppointmentUseCase, log)
	listWorkshops := listWorkshopsHandler.NewHandler(workshopsSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	listTeamMembers := listTeamMembersHandler.NewHandler(teamSvc, log)
	createTeamMember := createTeamMemberHandler.NewHandler(teamSvc, log)
	deleteTeamMember := deleteTeamMemberHandler.NewHandler(teamSvc, log)
	listAvailabilityRules := listAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	createAvailabilityRule := createAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityRule := updateAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityRule := deleteAvailabilityRuleHandler.NewHandler(availabilitySvc, log)

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

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятые слоты на дату
	api.HandleFunc("/booked-slots", getBookedSlots.Handle).Methods(http.MethodGet)

	// Создание записи на воркшоп
	api.HandleFunc("/appointments", submitAppointment.Handle).Methods(http.MethodPost)

	// Каталог воркшопов
	api.HandleFunc("/workshops", listWorkshops.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID действующего сотрудника)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(teammemberRepository, log))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Команда ---
	admin.HandleFunc("/team", listTeamMembers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/team", createTeamMember.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/team/{memberId}", deleteTeamMember.Handle).Methods(http.MethodDelete)

	// --- Правила доступности ---
	admin.HandleFunc("/availability", listAvailabilityRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", createAvailabilityRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/{ruleId}", updateAvailabilityRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/{ruleId}", deleteAvailabilityRule.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
