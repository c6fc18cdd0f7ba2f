package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mvcampos/painel-iptv/internal/api/rest"
	"github.com/mvcampos/painel-iptv/internal/config"
	"github.com/mvcampos/painel-iptv/internal/db"
	"github.com/mvcampos/painel-iptv/internal/events"
	"github.com/mvcampos/painel-iptv/internal/metrics"
	"github.com/mvcampos/painel-iptv/internal/repository/postgres"
	"github.com/mvcampos/painel-iptv/internal/repository/redisstore"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/internal/ws"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

var log *logger.Logger

func init() {
	// Variáveis de ambiente locais (.env é opcional)
	_ = godotenv.Load()

	logLevel := logger.INFO
	if os.Getenv("DEBUG") == "true" {
		logLevel = logger.DEBUG
	}
	log = logger.New(logLevel)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prometheus
	promRegistry := prometheus.NewRegistry()
	clientMetrics := metrics.NewClientMetrics(promRegistry, log)
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)

	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Esquema e pool do PostgreSQL
	if err := db.Migrate(ctx, cfg.Database.DSN, log); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}

	dbPool, err := postgres.NewConnection(ctx, cfg.Database.DSN, log)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// Redis guarda o catálogo de planos e o histórico de ações
	redisStore, err := redisstore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	// Hub de sessões WebSocket
	hub := ws.NewHub(log)
	go hub.Run()

	// Canal de notificações de mudança: com Kafka habilitado os eventos
	// passam pelo broker; sem ele vão direto ao hub local
	var notifier events.Notifier = events.NewHubNotifier(hub)
	if cfg.Kafka.Enabled {
		if err := events.EnsureTopic(cfg.Kafka.Brokers, log); err != nil {
			log.Fatal("Failed to ensure Kafka topic: %v", err)
		}

		saramaConfig := events.NewSaramaConfig()
		producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
		if err != nil {
			log.Fatal("Failed to create Kafka producer: %v", err)
		}
		notifier = events.NewKafkaNotifier(producer, log)

		consumer, err := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, events.NewSaramaConfig(), hub, log)
		if err != nil {
			log.Fatal("Failed to create Kafka consumer: %v", err)
		}
		defer consumer.Close()
		go consumer.Run(ctx)
	}
	defer notifier.Close()

	// Serviços
	clientRepo := postgres.NewPostgresClientRepository(dbPool, log)
	planService := service.NewPlanService(redisStore, log)
	activityService := service.NewActivityService(redisStore, log)
	authService := service.NewAuthService(cfg, clientMetrics, log)
	clientService := service.NewClientService(clientRepo, planService, activityService, notifier, clientMetrics, log)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := rest.SetupRouter(rest.Services{
		Auth:     authService,
		Clients:  clientService,
		Plans:    planService,
		Activity: activityService,
	}, hub, promRegistry, log)

	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
