package memory_test

import (
	"context"
	"testing"

	"parcels/internal/adapters/out/memory"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAction(t *testing.T, actionType parcel.ActionType, parcelID int) parcel.Action {
	t.Helper()
	act, err := parcel.NewAction(actionType, newParcel(t, parcelID, 1.0, 3))
	require.NoError(t, err)
	return act
}

func TestActionJournal_Pop(t *testing.T) {
	ctx := context.Background()

	t.Run("pops_in_lifo_order", func(t *testing.T) {
		journal := memory.NewActionJournal(memory.NewStore())

		require.NoError(t, journal.Push(ctx, newAction(t, parcel.Add, 1)))
		require.NoError(t, journal.Push(ctx, newAction(t, parcel.Update, 2)))
		require.NoError(t, journal.Push(ctx, newAction(t, parcel.Delete, 3)))

		first, err := journal.Pop(ctx)
		require.NoError(t, err)
		assert.Equal(t, parcel.Delete, first.Type())
		assert.Equal(t, 3, first.Snapshot().ID())

		second, err := journal.Pop(ctx)
		require.NoError(t, err)
		assert.Equal(t, parcel.Update, second.Type())

		third, err := journal.Pop(ctx)
		require.NoError(t, err)
		assert.Equal(t, parcel.Add, third.Type())
	})

	t.Run("empty_journal_reports_underflow", func(t *testing.T) {
		journal := memory.NewActionJournal(memory.NewStore())

		_, err := journal.Pop(ctx)
		require.ErrorIs(t, err, errs.ErrCollectionIsEmpty)
	})

	t.Run("each_action_is_consumed_exactly_once", func(t *testing.T) {
		journal := memory.NewActionJournal(memory.NewStore())
		require.NoError(t, journal.Push(ctx, newAction(t, parcel.Add, 1)))

		_, err := journal.Pop(ctx)
		require.NoError(t, err)

		size, err := journal.Size(ctx)
		require.NoError(t, err)
		assert.Zero(t, size)
	})
}

func TestActionJournal_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects_unconstructed_action", func(t *testing.T) {
		journal := memory.NewActionJournal(memory.NewStore())
		require.Error(t, journal.Push(ctx, parcel.Action{}))
	})
}
