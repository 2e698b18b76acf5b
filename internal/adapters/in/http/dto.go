package http

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the JSON body returned on any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateZoneRequest is the body of POST /api/v1/zones.
type CreateZoneRequest struct {
	Name      string  `json:"name"`
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	RadiusKm  float64 `json:"radiusKm"`
}

// ZoneResponse is one element of the GET /api/v1/zones listing.
type ZoneResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	RadiusKm  float64 `json:"radiusKm"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Capacity int     `json:"capacity"`
	ZoneID   string  `json:"zoneId"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
type CreateParcelRequest struct {
	PickupLat       float64 `json:"pickupLat"`
	PickupLng       float64 `json:"pickupLng"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryLat     float64 `json:"deliveryLat"`
	DeliveryLng     float64 `json:"deliveryLng"`
	DeliveryAddress string  `json:"deliveryAddress"`
	WeightKg        float64 `json:"weight"`
	ZoneID          string  `json:"zoneId"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// DispatchResponse is the body returned by a successful dispatch.
type DispatchResponse struct {
	DeliveryID     string          `json:"deliveryId"`
	ParcelID       string          `json:"parcelId"`
	DriverID       string          `json:"driverId"`
	DriverName     string          `json:"driverName"`
	Status         string          `json:"status"`
	EstimatedRoute json.RawMessage `json:"estimatedRoute,omitempty"`
	StartedAt      time.Time       `json:"startedAt"`
}

// FailDeliveryRequest is the body of POST /api/v1/deliveries/:id/fail.
// The reason is stored on the delivery record and echoed in the response.
type FailDeliveryRequest struct {
	Reason string `json:"reason"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActiveDeliveryResponse is one element of GET /api/v1/deliveries/active.
type ActiveDeliveryResponse struct {
	DeliveryID   string    `json:"deliveryId"`
	Status       string    `json:"status"`
	TrackingCode string    `json:"trackingCode"`
	DriverName   string    `json:"driverName"`
	DriverPhone  string    `json:"driverPhone"`
	StartedAt    time.Time `json:"startedAt"`
}
