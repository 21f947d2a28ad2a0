package main

import (
	"fmt"
	"log/slog"
	"os"

	"blackjack-sim/internal/api/handlers"
	"blackjack-sim/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	resultsDir := os.Getenv("RESULTS_DIR")
	if resultsDir == "" {
		resultsDir = "results"
	}

	// Logging is configured before any handler is built.
	level := slog.LevelInfo
	if os.Getenv("API_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	simulateHandler := handlers.NewSimulateHandler(resultsDir)
	strategyHandler := handlers.NewStrategyHandler()
	resultsHandler := handlers.NewResultsHandler(resultsDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulate)
		api.POST("/sweep", simulateHandler.RunSweep)
		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/results", resultsHandler.ListResults)
	}

	addr := fmt.Sprintf(":%s", port)
	slog.Info("starting API server", "addr", addr, "results_dir", resultsDir)
	if err := router.Run(addr); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
