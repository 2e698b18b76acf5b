// Package http exposes the dispatch application over a thin echo surface.
// Handlers translate JSON bodies into commands and queries; all business
// rules live behind them.
package http

import (
	"net/http"
	"strconv"

	"logistima/internal/core/application/usecases/commands"
	"logistima/internal/core/application/usecases/queries"
	"logistima/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createZoneHandler     commands.CreateZoneCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler
	createParcelHandler   commands.CreateParcelCommandHandler
	dispatchParcelHandler commands.DispatchParcelCommandHandler
	markPickedUpHandler   commands.MarkPickedUpCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	markFailedHandler     commands.MarkFailedCommandHandler

	// Query handlers
	getZonesHandler            queries.GetZonesQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getFailedJobsHandler       queries.GetFailedJobsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createZoneHandler commands.CreateZoneCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	dispatchParcelHandler commands.DispatchParcelCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	markFailedHandler commands.MarkFailedCommandHandler,
	getZonesHandler queries.GetZonesQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getFailedJobsHandler queries.GetFailedJobsQueryHandler,
) *Server {
	return &Server{
		createZoneHandler:          createZoneHandler,
		createDriverHandler:        createDriverHandler,
		createParcelHandler:        createParcelHandler,
		dispatchParcelHandler:      dispatchParcelHandler,
		markPickedUpHandler:        markPickedUpHandler,
		markDeliveredHandler:       markDeliveredHandler,
		markFailedHandler:          markFailedHandler,
		getZonesHandler:            getZonesHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getFailedJobsHandler:       getFailedJobsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/zones", s.CreateZone)
	api.GET("/zones", s.GetZones)
	api.POST("/drivers", s.CreateDriver)
	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/:id/dispatch", s.DispatchParcel)
	api.POST("/deliveries/:id/pickup", s.MarkPickedUp)
	api.POST("/deliveries/:id/deliver", s.MarkDelivered)
	api.POST("/deliveries/:id/fail", s.MarkFailed)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.GET("/queues/:queue/failed", s.GetFailedJobs)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateZone handles POST /api/v1/zones - registers a delivery zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req CreateZoneRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateZoneCommand(zoneID, req.Name, req.CenterLat, req.CenterLng, req.RadiusKm)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid zone data: "+err.Error())
	}

	if err := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: zoneID.String()})
}

// GetZones handles GET /api/v1/zones - lists all zones.
func (s *Server) GetZones(ctx echo.Context) error {
	zones, err := s.getZonesHandler.Handle(ctx.Request().Context(), queries.NewGetZonesQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		response[i] = ZoneResponse{
			ID:        z.ID.String(),
			Name:      z.Name,
			CenterLat: z.CenterLat,
			CenterLng: z.CenterLng,
			RadiusKm:  z.RadiusKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a driver in a zone.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(req.ZoneID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid zone id")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.Name, req.Phone, req.Lat, req.Lng, req.Capacity, zoneID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid driver data: "+err.Error())
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// CreateParcel handles POST /api/v1/parcels - accepts a parcel for dispatch.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(req.ZoneID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid zone id")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		req.PickupLat,
		req.PickupLng,
		req.PickupAddress,
		req.DeliveryLat,
		req.DeliveryLng,
		req.DeliveryAddress,
		req.WeightKg,
		zoneID,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: parcelID.String()})
}

// DispatchParcel handles POST /api/v1/parcels/:id/dispatch - assigns the best
// available driver and opens a delivery.
func (s *Server) DispatchParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid parcel id")
	}

	cmd, err := commands.NewDispatchParcelCommand(parcelID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid parcel id")
	}

	result, err := s.dispatchParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := DispatchResponse{
		DeliveryID: result.Delivery.ID().String(),
		ParcelID:   result.Delivery.ParcelID().String(),
		DriverID:   result.Driver.ID().String(),
		DriverName: result.Driver.Name(),
		Status:     result.Delivery.Status().String(),
		StartedAt:  result.Delivery.StartedAt(),
	}
	if route := result.Delivery.EstimatedRoute(); route != "" {
		response.EstimatedRoute = []byte(route)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkPickedUp handles POST /api/v1/deliveries/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	cmd, err := commands.NewMarkPickedUpCommand(deliveryID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	if err := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/deliveries/:id/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(deliveryID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkFailed handles POST /api/v1/deliveries/:id/fail.
func (s *Server) MarkFailed(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	// The body is optional; an empty reason is fine.
	var req FailDeliveryRequest
	_ = ctx.Bind(&req)

	cmd, err := commands.NewMarkFailedCommand(deliveryID, req.Reason)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	if err := s.markFailedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	message := "Delivery failed"
	if reason := cmd.Reason(); reason != "" {
		message += ": " + reason
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: message})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ActiveDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = ActiveDeliveryResponse{
			DeliveryID:   d.DeliveryID.String(),
			Status:       d.Status,
			TrackingCode: d.TrackingCode,
			DriverName:   d.DriverName,
			DriverPhone:  d.DriverPhone,
			StartedAt:    d.StartedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFailedJobs handles GET /api/v1/queues/:queue/failed - inspects the
// dead-letter list of a queue.
func (s *Server) GetFailedJobs(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetFailedJobsQuery(ctx.Param("queue"), limit)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	jobs, err := s.getFailedJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobs)
}
