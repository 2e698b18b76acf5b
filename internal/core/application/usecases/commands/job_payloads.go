package commands

// Job names carried on the background queues.
const (
	// CalculateRouteJobName is the route recalculation job enqueued at dispatch.
	CalculateRouteJobName = "calculate-route"

	// GenerateReceiptJobName is the receipt job enqueued at delivery completion.
	GenerateReceiptJobName = "generate-receipt"
)

// RouteCalculationPayload is the body of a route recalculation job. The
// coordinates are snapshotted at dispatch so the worker does not depend on the
// parcel row still being readable.
type RouteCalculationPayload struct {
	DeliveryID  string  `json:"deliveryId"`
	PickupLat   float64 `json:"pickupLat"`
	PickupLng   float64 `json:"pickupLng"`
	DeliveryLat float64 `json:"deliveryLat"`
	DeliveryLng float64 `json:"deliveryLng"`
}

// ReceiptGenerationPayload is the body of a receipt generation job.
type ReceiptGenerationPayload struct {
	DeliveryID string `json:"deliveryId"`
}
