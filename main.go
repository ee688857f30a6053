// Customer Leaderboard Service
// An in-memory, order-statistic leaderboard API built with Go and Gin.
//
// ARCHITECTURE:
// 1. registry/   - authoritative customerId -> score map.
// 2. rankindex/  - order-statistic skip list over positive scores.
// 3. leaderboard/ - single-writer/multi-reader concurrency coordinator and facade.
// 4. handlers/   - thin Gin adapters over the facade (the HTTP surface).
// 5. metrics/    - Prometheus instrumentation, alongside the JSON metrics endpoint.
//
// Run with: go run .
// Environment: PORT, SEED_ON_START, LOG_LEVEL
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"leaderboardsvc/config"
	"leaderboardsvc/handlers"
	"leaderboardsvc/leaderboard"
	"leaderboardsvc/metrics"
	"leaderboardsvc/seed"
)

func main() {
	godotenv.Load()
	cfg := config.FromEnv()

	service := leaderboard.New()

	if cfg.SeedOnStart {
		log.Println("🌱 Seeding leaderboard with sample dataset...")
		service.InitializeFromSeed(seed.Generate(10000))
		log.Println("🌱 Seed complete")
	}

	m := metrics.New()
	h := handlers.New(service)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(handlers.AccessLog(cfg.Debug()))
	r.Use(handlers.Instrument(m, service))
	r.Use(handlers.CORS())

	r.POST("/customer/:customerId/score/:score", h.UpdateScore)
	r.GET("/leaderboard", h.GetByRank)
	r.GET("/leaderboard/:customerId", h.GetWithNeighbors)
	r.GET("/monitoring/health", h.Health)
	r.GET("/monitoring/metrics", h.Metrics)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Customer Leaderboard Service listening on %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("graceful shutdown failed:", err)
	}
	log.Println("✅ shutdown complete")
}
