package parcel

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

// ErrDeliveryRecordIsNotConstructed is returned when a DeliveryRecord was
// not created through the NewDeliveryRecord factory method.
var ErrDeliveryRecordIsNotConstructed = errors.New(
	"DeliveryRecord must be created via NewDeliveryRecord constructor")

// DeliveryRecord is an immutable audit entry for a completed delivery. Each
// record carries its own identity and timestamp alongside the parcel
// snapshot, so the delivered log can serve as a standalone audit trail.
//
// Records are append-only: undoing a delivery restores the parcel to the
// active set but leaves its record in place.
type DeliveryRecord struct { //nolint:recvcheck //using for validation
	auditID     kernel.UUID
	parcel      Parcel
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryRecord creates an audit record for the given parcel, stamping
// it with a fresh audit identifier and the current UTC time.
func NewDeliveryRecord(p Parcel) (DeliveryRecord, error) {
	if err := p.Validate(); err != nil {
		return DeliveryRecord{}, err
	}

	return DeliveryRecord{
		auditID:     kernel.NewUUID(),
		parcel:      p,
		deliveredAt: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryRecord was properly constructed through
// NewDeliveryRecord.
func (r DeliveryRecord) Validate() error {
	return r.guard.Validate(ErrDeliveryRecordIsNotConstructed)
}

// AuditID returns the record's own identity, distinct from the parcel id.
func (r DeliveryRecord) AuditID() kernel.UUID {
	return r.auditID
}

// Parcel returns the delivered parcel snapshot.
func (r DeliveryRecord) Parcel() Parcel {
	return r.parcel
}

// DeliveredAt returns the UTC time the delivery was recorded.
func (r DeliveryRecord) DeliveredAt() time.Time {
	return r.deliveredAt
}
