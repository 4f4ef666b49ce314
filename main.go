package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/ShettyBro/scheduling-simulator/api"
	"github.com/ShettyBro/scheduling-simulator/config"
	"github.com/ShettyBro/scheduling-simulator/internal/metrics"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.GetSchedulerConfig()

	m, err := metrics.NewMetrics(nil)
	if err != nil {
		logger.Error("registering metrics", "error", err)
		os.Exit(1)
	}

	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg, logger, m))

	logger.Info("scheduling simulator listening", "port", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
