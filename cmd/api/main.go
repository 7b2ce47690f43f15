package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-planner/config"
	_ "study-planner/docs" // Swagger docs
	"study-planner/internal/httpserver"
	"study-planner/internal/scoring"
	"study-planner/pkg/log"
)

// @title       Study Planner API
// @description Time estimation, priority analysis and schedule building for study tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Scoring engines from config. Defaults reproduce the canonical
	// formulas; the config only exists for experiments.
	estimatorCfg := scoring.EstimatorConfig{
		BreakBase:  cfg.Scoring.BreakBase,
		TotalScale: cfg.Scoring.TotalScale,
		RangeLow:   cfg.Scoring.RangeLow,
		RangeHigh:  cfg.Scoring.RangeHigh,
	}
	priorityCfg := scoring.PriorityConfig{
		CapacityWeight:   cfg.Scoring.CapacityWeight,
		MinDeadlineHours: cfg.Scoring.MinDeadlineHours,
		CrunchThreshold:  cfg.Scoring.CrunchThreshold,
		RelaxedThreshold: cfg.Scoring.RelaxedThreshold,
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SessionCapacity: cfg.Planner.SessionCapacity,
		RateLimitPerMin: cfg.Planner.RateLimitPerMin,
		EstimatorConfig: estimatorCfg,
		PriorityConfig:  priorityCfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
