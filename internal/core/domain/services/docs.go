// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - RouteEstimator: straight-line distance and ETA estimation between coordinates
//   - DriverMatcher: capacity-based selection of an available driver for a parcel
//   - ReceiptAssembler: composition of the customer receipt for a delivery
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
