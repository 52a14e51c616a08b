package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-lifecycle-backend/internal/api/handlers"
	"team-lifecycle-backend/internal/api/routes"
	"team-lifecycle-backend/internal/auth"
	"team-lifecycle-backend/internal/config"
	"team-lifecycle-backend/internal/database"
	"team-lifecycle-backend/internal/delivery"
	"team-lifecycle-backend/internal/logger"
	"team-lifecycle-backend/internal/repository"
	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "team-lifecycle-backend/docs" // This is needed for swag
)

//	@title			Team Lifecycle API
//	@version		1.0
//	@description	Time-boxed team registry: creation, captain-approved joins, halfway reminders, expiry and teardown.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)
	log := logger.New()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	health := make(map[string]handlers.Pinger)

	hub := delivery.NewHub()
	defer hub.Close()
	sinks := []service.NotificationSink{hub}

	if cfg.RedisAddr != "" {
		client, err := delivery.DialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to redis")
		}
		defer client.Close()
		sinks = append(sinks, delivery.NewRedisSink(client, cfg.RedisChannelPrefix))
		health["redis"] = handlers.PingerFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
		log.WithField("addr", cfg.RedisAddr).Info("Publishing notifications to redis")
	}

	var sink service.NotificationSink = delivery.NewFanoutSink(sinks...)

	var auditRepo repository.NotificationRepositoryInterface
	if cfg.AuditEnabled {
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize database")
		}
		defer database.Close(db)
		auditRepo = repository.NewNotificationRepository(db)
		sink = delivery.NewAuditSink(sink, auditRepo)
		health["database"] = dbPinger(db)
		go delivery.NewAuditPruner(auditRepo, cfg.AuditRetention(), time.Hour).Run(ctx)
	}

	var hook service.ProvisioningHook
	jenkinsCfg := service.JenkinsConfig{
		BaseURL: cfg.JenkinsBaseURL,
		Job:     cfg.JenkinsJob,
		User:    cfg.JenkinsUser,
		Token:   cfg.JenkinsToken,
	}
	if jenkinsCfg.Configured() {
		hook = service.NewJenkinsService(jenkinsCfg)
	} else {
		log.Warn("Jenkins teardown job not configured; resources of ended teams will not be reclaimed")
	}

	lifecycle := service.NewTeamLifecycleService(service.Options{
		Settings: service.Settings{
			MaxTeamSize:           cfg.MaxTeamSize,
			MaxTeams:              cfg.MaxTeams,
			DurationMinutes:       cfg.DurationMinutes,
			IPBase:                cfg.IPBase,
			StartResourceID:       cfg.StartResourceID,
			MachinesPerTeam:       cfg.MachinesPerTeam,
			JoinRequestTTLMinutes: cfg.JoinRequestTTLMinutes,
		},
		OwnerID: cfg.OwnerID,
		Admins:  cfg.AdminIDs,
		Sink:    sink,
		Hook:    hook,
		Metrics: service.NewMetrics(registry),
	})

	scheduler := service.NewMilestoneScheduler(lifecycle, cfg.SchedulerInterval())
	scheduler.Start(ctx)
	defer scheduler.Stop()

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Lifecycle: lifecycle,
		Hub:       hub,
		Auth:      authService,
		Audit:     auditRepo,
		Health:    health,
		Registry:  registry,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

func dbPinger(db *gorm.DB) handlers.Pinger {
	return handlers.PingerFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })
}
