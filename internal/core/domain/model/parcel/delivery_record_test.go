package parcel_test

import (
	"testing"

	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryRecord(t *testing.T) {
	t.Run("stamps_identity_and_time", func(t *testing.T) {
		p, err := parcel.NewParcel(3, "Ada", "Grace", "addr", 1.5, mustPriority(t, 1))
		require.NoError(t, err)

		record, err := parcel.NewDeliveryRecord(p)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		require.NoError(t, record.AuditID().Validate())
		assert.False(t, record.DeliveredAt().IsZero())
		assert.Equal(t, 3, record.Parcel().ID())
	})

	t.Run("records_get_distinct_audit_ids", func(t *testing.T) {
		p, err := parcel.NewParcel(3, "Ada", "Grace", "addr", 1.5, mustPriority(t, 1))
		require.NoError(t, err)

		first, err := parcel.NewDeliveryRecord(p)
		require.NoError(t, err)
		second, err := parcel.NewDeliveryRecord(p)
		require.NoError(t, err)

		// Same parcel delivered twice (delete/undo cycles) still yields
		// distinguishable audit entries.
		assert.False(t, first.AuditID().IsEqual(second.AuditID()))
	})

	t.Run("rejects_unconstructed_parcel", func(t *testing.T) {
		var zero parcel.Parcel
		_, err := parcel.NewDeliveryRecord(zero)
		require.ErrorIs(t, err, parcel.ErrParcelIsNotConstructed)
	})
}

func TestDeliveryRecord_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var record parcel.DeliveryRecord
		require.ErrorIs(t, record.Validate(), parcel.ErrDeliveryRecordIsNotConstructed)
	})
}
