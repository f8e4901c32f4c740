package main

// @title Places Recommendation API
// @version 1.0.0
// @description Сервис рекомендаций мест вокруг заданной точки. Выполняет по одному поиску Places API (New) на каждый интерес, сливает результаты по идентификатору места, считает расстояние по формуле гаверсинусов и ранжирует выдачу по составному score.
// @description
// @description Основные возможности:
// @description - Агрегация nearby-поиска по нескольким интересам с дедупликацией
// @description - Ранжирование по рейтингу, количеству оценок и близости
// @description - Нормализованная детальная запись места по идентификатору

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-microservice/docs"
	"github.com/places-microservice/internal/config"
	httpDelivery "github.com/places-microservice/internal/delivery/http"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/infrastructure/googleplaces"
	"github.com/places-microservice/internal/metrics"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Recommendation Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// Ключ не обязателен при старте: его отсутствие дает 500 на каждый запрос
	if cfg.Places.APIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY is not set, all requests will fail with a configuration error")
	} else {
		log.Info("Places API key loaded", zap.String("key", cfg.Places.MaskedKey()))
	}

	// 3. Initialize metrics
	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// 4. Initialize Places API client
	placesClient := googleplaces.NewClient(&cfg.Places, m, log)

	log.Info("Places API client initialized")

	// 5. Initialize Use Cases
	recommendationUC := usecase.NewRecommendationUseCase(placesClient, log)
	placeDetailUC := usecase.NewPlaceDetailUseCase(placesClient, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC, &cfg.Places, m, log)
	placeHandler := handler.NewPlaceHandler(placeDetailUC, &cfg.Places, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		recommendationHandler,
		placeHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
