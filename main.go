package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"credit-agent/config"
	httpLayer "credit-agent/http"
	"credit-agent/repository"
	"credit-agent/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.WithField("service", "credit-agent")

	var store repository.ApplicationStore
	if cfg.SupabaseConfigured() {
		supabase, err := repository.NewSupabaseStore(repository.SupabaseConfig{
			URL:        cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseServiceKey,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create supabase store")
		}
		store = supabase
	} else {
		log.Warn("supabase not configured, submissions will be stored locally only")
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		if err := redisCache.Ping(); err != nil {
			log.WithError(err).Fatal("redis ping failed")
		}
		cache = redisCache
	} else {
		cache = repository.NewMemoryCache()
	}

	resultCache := service.NewResultCache(cache, cfg.ScoreCacheTTL)
	scoringService := service.NewScoringService(resultCache)

	results := repository.NewLocalResultStore()
	submissionService := service.NewSubmissionService(scoringService, store, results, log)

	scoreHandler := httpLayer.NewScoreHandler(scoringService)
	applicationHandler := httpLayer.NewApplicationHandler(submissionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/score",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scoreHandler.CalculateScore),
		),
	)

	mux.Handle(
		"/applications",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(applicationHandler.Applications),
		),
	)

	mux.HandleFunc("/scores", applicationHandler.Scores)
	mux.HandleFunc("/results/latest", applicationHandler.LatestResult)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("🚀 API corriendo en http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("error starting server")
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}

	log.Info("server exited")
}
