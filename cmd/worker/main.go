package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"logistima/cmd"
	"logistima/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := cmd.LoadConfig()

	db, err := cmd.OpenDB(config)
	if err != nil {
		logger.Error("database setup failed", "error", err)
		os.Exit(1)
	}

	redisClient := cmd.NewRedisClient(config)
	root := cmd.NewCompositionRoot(config, db, redisClient)

	manager := jobs.NewJobManager(
		redisClient,
		root.CreateRecalculateRouteCommandHandler(),
		root.CreateGenerateReceiptCommandHandler(),
		logger,
	)

	if err := manager.StartAll(); err != nil {
		logger.Error("starting queue consumers failed", "error", err)
		os.Exit(1)
	}
	logger.Info("worker process started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	manager.StopAll()
}
