package memory

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// DeliveryLog implements ports.DeliveryLog over the store's delivered slice.
// Entries are only ever appended.
type DeliveryLog struct {
	store *Store
}

// NewDeliveryLog creates a log bound to the given store.
func NewDeliveryLog(store *Store) *DeliveryLog {
	return &DeliveryLog{store: store}
}

// Append adds a delivery record to the end of the log.
func (l *DeliveryLog) Append(_ context.Context, record parcel.DeliveryRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	l.store.delivered = append(l.store.delivered, record)
	return nil
}

// GetAll returns all delivery records in append order.
func (l *DeliveryLog) GetAll(_ context.Context) ([]parcel.DeliveryRecord, error) {
	return l.store.DeliveredRecords(), nil
}
