package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// receiptNumberPrefix prefixes every generated receipt number.
const receiptNumberPrefix = "REC"

// ReceiptData is the human-readable receipt record composed for a completed
// delivery. It is a read model: assembling it has no side effects, and
// persisting the delivery's receipt-generated flag is a separate explicit
// step owned by the caller.
type ReceiptData struct {
	ReceiptNumber   string     `json:"receiptNumber"`
	DeliveryID      string     `json:"deliveryId"`
	TrackingCode    string     `json:"trackingCode"`
	DriverName      string     `json:"driverName"`
	DriverPhone     string     `json:"driverPhone"`
	ZoneName        string     `json:"zoneName"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	WeightKg        float64    `json:"weight"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	GeneratedAt     time.Time  `json:"generatedAt"`
}

// ReceiptAssembler is a domain service composing receipts from a delivery and
// its related parcel, driver, and zone. Each invocation produces a fresh
// receipt number; only the delivery's generated flag is idempotent, not the
// receipt identity itself.
type ReceiptAssembler struct{}

// NewReceiptAssembler creates a new ReceiptAssembler instance.
func NewReceiptAssembler() ReceiptAssembler {
	return ReceiptAssembler{}
}

// Assemble composes the receipt for the delivery at the given generation
// time. All four related aggregates must be valid and mutually consistent
// (the parcel and driver referenced by the delivery, the zone referenced by
// the parcel).
func (ReceiptAssembler) Assemble(
	d *delivery.Delivery,
	p *parcel.Parcel,
	drv *driver.Driver,
	z *zone.Zone,
	generatedAt time.Time,
) (ReceiptData, error) {
	if err := errors.Join(d.Validate(), p.Validate(), drv.Validate(), z.Validate()); err != nil {
		return ReceiptData{}, err
	}

	return ReceiptData{
		ReceiptNumber:   generateReceiptNumber(generatedAt),
		DeliveryID:      d.ID().String(),
		TrackingCode:    p.TrackingCode(),
		DriverName:      drv.Name(),
		DriverPhone:     drv.Phone(),
		ZoneName:        z.Name(),
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
		WeightKg:        p.WeightKg(),
		Status:          d.Status().String(),
		StartedAt:       d.StartedAt(),
		CompletedAt:     d.CompletedAt(),
		GeneratedAt:     generatedAt,
	}, nil
}

// generateReceiptNumber produces a number like "REC-MB3K2J1A-9F2C41A7": a
// base-36 timestamp plus a slice of fresh UUID entropy, so two concurrent
// generations cannot collide.
func generateReceiptNumber(at time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", receiptNumberPrefix, ts, entropy)
}
