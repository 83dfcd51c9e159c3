package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/campus_safety/internal/config"
	v1 "github.com/shenikar/campus_safety/internal/handler/http/v1"
	"github.com/shenikar/campus_safety/internal/oracle"
	"github.com/shenikar/campus_safety/internal/repository"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/shenikar/campus_safety/internal/service"
	"github.com/shenikar/campus_safety/internal/webhook"
	"github.com/shenikar/campus_safety/pkg/logger"
	"github.com/shenikar/campus_safety/pkg/postgres"
	redisclient "github.com/shenikar/campus_safety/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/campus_safety/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Campus Safety API
// @version 1.0
// @description Incident feed, safety analysis and SOS drafting for the University of Houston campus.
// @host localhost:8080
// @BasePath /api/v1

// infra - подключения, которые нужно закрыть при остановке
type infra struct {
	redisClient *redis.Client
	closers     []io.Closer
}

func (i *infra) redis(ctx context.Context, cfg *config.Config, log *logrus.Logger) *redis.Client {
	if i.redisClient != nil {
		return i.redisClient
	}
	client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Info("Successfully connected to Redis")
	i.redisClient = client
	i.closers = append(i.closers, client)
	return client
}

func (i *infra) close(log *logrus.Logger) {
	for _, c := range i.closers {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("Failed to close connection")
		}
	}
}

// newBlobStore выбирает бэкенд хранилища по STORAGE_BACKEND
func newBlobStore(ctx context.Context, cfg *config.Config, deps *infra, log *logrus.Logger) repository.BlobStore {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		return repository.NewRedisBlobStore(deps.redis(ctx, cfg, log), cfg.RedisKeyPrefix)
	case config.BackendPostgres:
		log.Info("Running database migrations...")
		if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		log.Info("Database migrations applied successfully")

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		deps.closers = append(deps.closers, closerFunc(func() error { dbpool.Close(); return nil }))
		return repository.NewPostgresBlobStore(dbpool)
	default:
		return repository.NewMemoryBlobStore()
	}
}

// newPublisher выбирает канал рассылки SOS по SOS_PUBLISHER
func newPublisher(ctx context.Context, cfg *config.Config, deps *infra, log *logrus.Logger) webhook.Publisher {
	switch cfg.SOSPublisher {
	case config.PublisherRedis:
		client := deps.redis(ctx, cfg, log)
		// Воркер доставляет события из очереди на WEBHOOK_URL
		webhook.NewWorker(client, log, cfg).Start(ctx)
		return webhook.NewRedisPublisher(client)
	case config.PublisherKafka:
		publisher := webhook.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		deps.closers = append(deps.closers, publisher)
		log.WithField("topic", cfg.KafkaTopic).Info("SOS events are published to Kafka")
		return publisher
	default:
		return webhook.NopPublisher{}
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := &infra{}
	defer deps.close(log)
	if cfg.NeedsRedis() {
		// Подключаемся заранее, чтобы недоступный Redis останавливал запуск до приема запросов
		deps.redis(ctx, cfg, log)
	}

	// Хранилище инцидентов и журнала SOS
	blobs := newBlobStore(ctx, cfg, deps, log)
	store := repository.NewIncidentStore(blobs, log, repository.WithLatency(cfg.StoreLatency))
	log.WithField("backend", cfg.StorageBackend).Info("Incident store initialized")

	// Оракул
	gemini, err := oracle.NewGemini(ctx, cfg.GeminiAPIKey, oracle.ModelNames{
		Summary:  cfg.SummaryModel,
		Draft:    cfg.DraftModel,
		Chat:     cfg.ChatModel,
		Classify: cfg.ClassifyModel,
	}, log)
	if err != nil {
		log.Fatalf("Failed to initialize oracle: %v", err)
	}

	policy := retry.DefaultPolicy("oracle", log)
	policy.Retries = cfg.OracleRetries
	policy.InitialDelay = cfg.OracleInitialDelay

	publisher := newPublisher(ctx, cfg, deps, log)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(store, gemini, policy, log)
	pipeline := service.NewSafetyPipeline(gemini, policy, log)
	dashboard := service.NewDashboard(store, pipeline, log)
	draftFlow := service.NewDraftFlow(gemini, policy, log)
	emergencyService := service.NewEmergencyService(store, draftFlow, publisher, cfg.AgentDirective, cfg.FilterHours, log)
	chatService := service.NewChatService(store, gemini, policy, cfg.AgentDirective, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, dashboard, emergencyService, chatService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}
