package memory_test

import (
	"context"
	"testing"

	"parcels/internal/adapters/out/memory"
	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("restores_all_four_containers", func(t *testing.T) {
		store := memory.NewStore()
		seeded := newParcel(t, 1, 5.0, 2)
		require.NoError(t, memory.NewParcelRepository(store).Add(ctx, seeded))

		uow := memory.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))

		require.NoError(t, uow.ParcelRepository().Add(ctx, newParcel(t, 2, 1.0, 1)))
		require.NoError(t, uow.LoadingQueue().Enqueue(ctx, seeded))
		record, err := parcel.NewDeliveryRecord(seeded)
		require.NoError(t, err)
		require.NoError(t, uow.DeliveryLog().Append(ctx, record))
		act, err := parcel.NewAction(parcel.Add, seeded)
		require.NoError(t, err)
		require.NoError(t, uow.ActionJournal().Push(ctx, act))

		require.NoError(t, uow.Rollback(ctx))

		assert.Len(t, store.ActiveParcels(), 1)
		assert.Len(t, store.DeliveredRecords(), 0)
		size, err := memory.NewLoadingQueue(store).Size(ctx)
		require.NoError(t, err)
		assert.Zero(t, size)
		journalSize, err := memory.NewActionJournal(store).Size(ctx)
		require.NoError(t, err)
		assert.Zero(t, journalSize)
	})

	t.Run("rollback_after_commit_is_a_noop", func(t *testing.T) {
		store := memory.NewStore()
		uow := memory.NewUnitOfWorkFactory(store).Create()

		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.ParcelRepository().Add(ctx, newParcel(t, 1, 1.0, 1)))
		require.NoError(t, uow.Commit(ctx))
		require.NoError(t, uow.Rollback(ctx))

		assert.Len(t, store.ActiveParcels(), 1)
	})

	t.Run("rollback_without_begin_is_a_noop", func(t *testing.T) {
		uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
		require.NoError(t, uow.Rollback(ctx))
	})
}

func TestUnitOfWork_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("double_begin_fails", func(t *testing.T) {
		uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

		require.NoError(t, uow.Begin(ctx))
		require.ErrorIs(t, uow.Begin(ctx), memory.ErrTransactionAlreadyStarted)
	})
}

func TestUnitOfWork_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("commit_without_begin_fails", func(t *testing.T) {
		uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
		require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	})

	t.Run("commit_keeps_mutations", func(t *testing.T) {
		store := memory.NewStore()
		uow := memory.NewUnitOfWorkFactory(store).Create()

		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.ParcelRepository().Add(ctx, newParcel(t, 1, 1.0, 1)))
		require.NoError(t, uow.Commit(ctx))

		assert.Len(t, store.ActiveParcels(), 1)
	})
}
