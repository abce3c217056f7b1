package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/config"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/database"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/repository"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	benchmarkRepo := repository.NewBenchmarkRepository(db)
	cache := newCache(cfg.Cache)

	systemService := service.NewSystemService(db)
	benchmarkService := service.NewBenchmarkService(benchmarkRepo, cache, cfg.Cache.TTL)
	calculationService := service.NewCalculationService(benchmarkService)

	var scheduler *service.BenchmarkScheduler
	if cfg.Benchmarks.File != "" {
		scheduler = service.NewBenchmarkScheduler(benchmarkService, cfg.Benchmarks.File, cfg.Benchmarks.RefreshSchedule)
		scheduler.RunOnce()
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start benchmark refresh: %v", err)
		}
	}

	router := api.NewRouter(systemService, calculationService, benchmarkService, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
			log.Println("Benchmark import still running at shutdown")
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if closer, ok := cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close cache: %v", err)
		}
	}

	log.Println("Server exited")
}

// newCache returns a Redis cache when an address is configured and reachable,
// and the in-process cache otherwise.
func newCache(cfg config.CacheConfig) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		log.Println("Using in-memory benchmark cache")
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Redis at %s unavailable, using in-memory benchmark cache: %v", cfg.RedisAddr, err)
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}
	log.Printf("Using Redis benchmark cache at %s", cfg.RedisAddr)
	return redisCache
}
