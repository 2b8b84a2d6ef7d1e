package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	crmapp "github.com/onboard/backend/internal/application/crm"
	onboardingapp "github.com/onboard/backend/internal/application/onboarding"
	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/infrastructure/attio"
	"github.com/onboard/backend/internal/infrastructure/config"
	"github.com/onboard/backend/internal/infrastructure/logger"
	"github.com/onboard/backend/internal/infrastructure/persistence"
	"github.com/onboard/backend/internal/interfaces/http/handler"
	"github.com/onboard/backend/internal/interfaces/http/middleware"
	"github.com/onboard/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting onboarding backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("driver", cfg.Database.Driver),
	)

	// Repository selection: postgres for real deployments, seeded
	// in-memory store for demos and local development
	var (
		repo onboarding.IntegrationRepository
		db   *persistence.Database
	)
	if cfg.Database.Driver == "memory" {
		memRepo := persistence.NewMemoryIntegrationRepository()
		if err := persistence.SeedDemoData(context.Background(), memRepo); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		repo = memRepo
		log.Info("Using in-memory store with demo data")
	} else {
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err = persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()
		repo = persistence.NewGormIntegrationRepository(db.DB)
		log.Info("Database connected successfully")
	}

	// Application services
	integrationService := onboardingapp.NewIntegrationService(repo)

	if cfg.Attio.APIKey == "" {
		log.Warn("Attio API key not configured; deal endpoints will return configuration errors")
	}
	dealService := crmapp.NewDealService(attio.NewClient(cfg.Attio))

	// HTTP handlers
	integrationHandler := handler.NewIntegrationHandler(integrationService)
	dealHandler := handler.NewDealHandler(dealService)

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}
	systemHandler := handler.NewSystemHandler(pinger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(maxRequestBodyBytes))

	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(router.IntegrationRoutes(integrationHandler)).
		Register(router.DealRoutes(dealHandler))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
