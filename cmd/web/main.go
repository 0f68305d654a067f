package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-form-template/config"
	_ "go-form-template/docs" // Important for Swagger
	v1 "go-form-template/internal/delivery/http/v1"
	"go-form-template/internal/domain"
	"go-form-template/internal/form"
	"go-form-template/internal/repository/memory"
	redisrepo "go-form-template/internal/repository/redis"
	"go-form-template/internal/usecase"
	"go-form-template/pkg/events"
	"go-form-template/pkg/formdef"
	"go-form-template/pkg/logger"
	"go-form-template/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Go Form Template API
// @version         1.0
// @description     JSON API of the example form: mount, edit, submit and validate.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting form template", "port", cfg.Port, "locale", cfg.FormLocale, "store", cfg.FormStateStore)

	eventLogger := events.Init("go-form-template", cfg.GinMode, cfg.IsProduction())
	defer func() { _ = eventLogger.Sync() }()

	// 3. Load Form Definition
	def, err := formdef.Default()
	if err != nil {
		logger.Log.Error("Failed to load form definition", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 4. Setup State Store
	ttl := time.Duration(cfg.FormStateTTLMinutes) * time.Minute
	var (
		store       domain.StateStore
		redisClient goredis.Scripter
		probes      = map[string]usecase.Probe{}
	)
	if cfg.FormStateStore == "redis" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - form state will use in-memory store", "error", err)
		} else {
			defer func() { _ = redis.Close() }()
			store = redisrepo.NewStateStore(redis.Client(), ttl)
			redisClient = redis.Client()
			probes["redis"] = func(ctx context.Context) error {
				hctx, cancel := context.WithTimeout(ctx, time.Second)
				defer cancel()
				return redis.HealthCheck(hctx)
			}
		}
	}
	if store == nil {
		memStore := memory.NewStateStore(ttl)
		memStore.StartJanitor(ctx, time.Minute)
		store = memStore
	}

	// 5. Setup UseCases
	validator, err := form.NewValidator(def, cfg.FormLocale)
	if err != nil {
		logger.Log.Error("Failed to build validator", "error", err)
		os.Exit(1)
	}
	formUC := usecase.NewFormUsecase(form.NewController(validator), store, eventLogger, logger.Log)

	// 6. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		FormUC:     formUC,
		Definition: def,
		Redis:      redisClient,
		HealthUC:   usecase.NewHealthUsecase(probes),
		Config:     cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
