package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dharmasatrya/flysas/internal/cache"
	"github.com/dharmasatrya/flysas/internal/client"
	"github.com/dharmasatrya/flysas/internal/config"
	"github.com/dharmasatrya/flysas/internal/handler"
	"github.com/dharmasatrya/flysas/internal/offers"
	"github.com/dharmasatrya/flysas/internal/ratelimit"
	"github.com/dharmasatrya/flysas/pkg/logger"
	"github.com/dharmasatrya/flysas/pkg/metrics"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("flysas", registry)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	apiClient := client.NewClient(cfg.APIBaseURL, client.WithLogger(log), client.WithMetrics(m))
	loader := offers.NewLoader(apiClient, log)

	var offersCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
		offersCache = redisCache
		log.Info("redis cache enabled", "host", cfg.RedisHost, "port", cfg.RedisPort, "ttl", cfg.RedisTTL)
	} else {
		offersCache = cache.NewNoOpCache()
		log.Info("cache disabled")
	}
	defer offersCache.Close()

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})
	stopEviction := make(chan struct{})
	defer close(stopEviction)
	go limiter.RunEviction(time.Minute, cfg.RateLimitIdle, stopEviction)

	offersHandler := handler.NewOffersHandler(loader, offersCache, log, m)

	api := e.Group("/api/v1", handler.RateLimit(limiter))
	api.GET("/offers/flights", offersHandler.Search)
	e.GET("/health", handler.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	log.Info("starting offers server", "port", cfg.Port, "upstream", cfg.APIBaseURL)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
