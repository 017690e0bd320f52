package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sitegen_server/config"
	"sitegen_server/internal/api"
	"sitegen_server/internal/catalog"
	"sitegen_server/internal/generator"
	"sitegen_server/internal/logger"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/provider"
	"sitegen_server/internal/types"
)

func main() {
	// Load .env before viper reads the environment. Missing files are fine
	// in production.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync() //nolint:errcheck

	// Static catalogs: loaded once, read-only for the process lifetime.
	cat := catalog.Default()
	template := provider.NewTemplateProvider()

	modelProviders := map[types.ProviderKind]provider.Provider{
		types.ProviderLocalLLM: provider.NewLocalProvider(cfg.LocalLLMURL, cfg.LocalLLMModel, zlog),
	}
	if cfg.OpenAIKey != "" {
		modelProviders[types.ProviderRemoteLLM] = provider.NewRemoteProvider(cfg.OpenAIKey, cfg.OpenAIModel, zlog)
	}

	registry := prometheus.NewRegistry()
	pipeline := generator.NewService(cat, template, modelProviders, metrics.New(registry), zlog, generator.Options{
		ProviderTimeout: cfg.ProviderTimeout(),
		Concurrency:     cfg.SectionConcurrency,
	})

	apiHandler := api.NewAPIHandler(pipeline, nil, zlog)

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api.RegisterRoutes(router, apiHandler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation requests hold the connection while providers respond.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("addr", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("forced shutdown", zap.Error(err))
	}
}
