package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// DeliveryLog defines the contract for the append-only audit trail of
// completed deliveries. No operation removes entries: undoing a delivery
// restores the parcel to the active set but leaves its record in the log.
type DeliveryLog interface {
	// Append adds a delivery record to the end of the log.
	Append(ctx context.Context, record parcel.DeliveryRecord) error

	// GetAll returns all delivery records in append order.
	GetAll(ctx context.Context) ([]parcel.DeliveryRecord, error)
}
