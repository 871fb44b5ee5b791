package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/resinworks/backend/internal/application/identity"
	importerapp "github.com/resinworks/backend/internal/application/importer"
	orderapp "github.com/resinworks/backend/internal/application/order"
	partnerapp "github.com/resinworks/backend/internal/application/partner"
	reportapp "github.com/resinworks/backend/internal/application/report"
	"github.com/resinworks/backend/internal/infrastructure/auth"
	"github.com/resinworks/backend/internal/infrastructure/config"
	"github.com/resinworks/backend/internal/infrastructure/event"
	"github.com/resinworks/backend/internal/infrastructure/logger"
	"github.com/resinworks/backend/internal/infrastructure/persistence"
	"github.com/resinworks/backend/internal/interfaces/http/handler"
	"github.com/resinworks/backend/internal/interfaces/http/middleware"
	"github.com/resinworks/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting ResinWorks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	lotRepo := persistence.NewGormResinLotRepository(db.DB)
	saleItemRepo := persistence.NewGormSaleItemRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	clientService := partnerapp.NewClientService(clientRepo, saleItemRepo, eventBus, log)
	lotService := orderapp.NewResinLotService(lotRepo, eventBus, log)
	saleItemService := orderapp.NewSaleItemService(saleItemRepo, clientService, eventBus, log)
	recalcService := orderapp.NewRevenueRecalcService(lotRepo, saleItemRepo, eventBus, log)
	profitService := reportapp.NewProfitService(saleItemRepo, lotRepo, log)
	workbookService := importerapp.NewWorkbookService(lotRepo, saleItemRepo, clientRepo, clientService, recalcService, eventBus, log)

	// Event handlers: sale and lot changes feed the revenue recompute, every
	// change drops the cached monthly profit.
	recalcHandler := orderapp.NewRevenueRecalcHandler(recalcService, log)
	eventBus.Subscribe(recalcHandler)
	refreshHandler := reportapp.NewProfitRefreshHandler(profitService)
	eventBus.Subscribe(refreshHandler)
	log.Info("Event handlers registered",
		zap.Strings("recalc_events", recalcHandler.EventTypes()),
		zap.Strings("report_refresh_events", refreshHandler.EventTypes()),
	)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	lotHandler := handler.NewResinLotHandler(lotService)
	saleItemHandler := handler.NewSaleItemHandler(saleItemService)
	clientHandler := handler.NewClientHandler(clientService)
	reportHandler := handler.NewReportHandler(profitService)
	workbookHandler := handler.NewWorkbookHandler(workbookService)
	systemHandler := handler.NewSystemHandler(db, cfg.App.Name)

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
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
		},
		Logger: log,
	}))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler)
	r.Register(authHandler)
	r.Register(lotHandler)
	r.Register(saleItemHandler)
	r.Register(clientHandler)
	r.Register(reportHandler)
	r.Register(workbookHandler)
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
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
