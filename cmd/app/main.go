package main

import (
	"fmt"

	"logistima/cmd"
	httpserver "logistima/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	config := cmd.LoadConfig()

	db, err := cmd.OpenDB(config)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	redisClient := cmd.NewRedisClient(config)
	root := cmd.NewCompositionRoot(config, db, redisClient)

	server := httpserver.NewServer(
		root.CreateCreateZoneCommandHandler(),
		root.CreateCreateDriverCommandHandler(),
		root.CreateCreateParcelCommandHandler(),
		root.CreateDispatchParcelCommandHandler(),
		root.CreateMarkPickedUpCommandHandler(),
		root.CreateMarkDeliveredCommandHandler(),
		root.CreateMarkFailedCommandHandler(),
		root.CreateGetZonesQueryHandler(),
		root.CreateGetActiveDeliveriesQueryHandler(),
		root.CreateGetFailedJobsQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
