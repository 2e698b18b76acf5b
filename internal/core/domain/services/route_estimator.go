package services

import (
	"encoding/json"
	"math"

	"logistima/internal/core/domain/model/kernel"
)

// averageSpeedKmh is the assumed average courier speed in city traffic,
// used to turn distance into an ETA.
const averageSpeedKmh = 25.0

// Waypoint kinds used in serialized routes.
const (
	WaypointPickup   = "pickup"
	WaypointDelivery = "delivery"
)

// Waypoint is one endpoint of an estimated route.
type Waypoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Kind string  `json:"type"`
}

// Route is a straight-line distance/time estimate between a pickup and a
// delivery coordinate. It is a stand-in for real route optimization: no road
// graph, no traffic model, just a great-circle distance at a fixed speed.
type Route struct {
	DistanceKm float64    `json:"distance"`
	EtaMinutes int        `json:"estimatedTime"`
	Waypoints  []Waypoint `json:"waypoints"`
}

// Marshal serializes the route to its persisted JSON form.
func (r Route) Marshal() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// UnmarshalRoute parses the persisted JSON form of a route.
func UnmarshalRoute(s string) (Route, error) {
	var r Route
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return Route{}, err
	}
	return r, nil
}

// RouteEstimator is a domain service producing route estimates between
// coordinates. It is deterministic and pure: the same pair of points always
// yields the same route.
type RouteEstimator struct{}

// NewRouteEstimator creates a new RouteEstimator instance.
func NewRouteEstimator() RouteEstimator {
	return RouteEstimator{}
}

// Distance returns the great-circle distance between two points in
// kilometers. Symmetric; zero for identical points.
func (RouteEstimator) Distance(a kernel.GeoPoint, b kernel.GeoPoint) (float64, error) {
	return a.DistanceTo(b)
}

// EstimatedMinutes converts a distance into a travel-time estimate at the
// assumed average speed, rounded up to whole minutes. Monotonic
// non-decreasing in distance.
func (RouteEstimator) EstimatedMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / averageSpeedKmh * 60))
}

// PlanRoute builds the full route estimate between a pickup and a delivery
// point: distance rounded to two decimals, the ETA, and exactly the two
// endpoint waypoints in pickup-then-delivery order.
func (e RouteEstimator) PlanRoute(pickup kernel.GeoPoint, dropoff kernel.GeoPoint) (Route, error) {
	distance, err := e.Distance(pickup, dropoff)
	if err != nil {
		return Route{}, err
	}

	return Route{
		DistanceKm: math.Round(distance*100) / 100,
		EtaMinutes: e.EstimatedMinutes(distance),
		Waypoints: []Waypoint{
			{Lat: pickup.Lat(), Lng: pickup.Lng(), Kind: WaypointPickup},
			{Lat: dropoff.Lat(), Lng: dropoff.Lng(), Kind: WaypointDelivery},
		},
	}, nil
}
