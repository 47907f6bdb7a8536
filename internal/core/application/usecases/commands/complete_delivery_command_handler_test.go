package commands_test

import (
	"context"
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCompleteDeliveryCommand(42)
	delivered := newTestParcel(t, 42, 2.5, 2)

	repo := new(MockParcelRepository)
	log := new(MockDeliveryLog)
	journal := new(MockActionJournal)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, 42).Return(delivered, nil).Once(),
		uow.On("DeliveryLog").Return(log).Once(),
		log.On("Append", mock.Anything, mock.MatchedBy(func(r parcel.DeliveryRecord) bool {
			return r.Parcel().ID() == 42
		})).Return(nil).Once(),
		repo.On("Remove", mock.Anything, 42).Return(delivered, nil).Once(),
		uow.On("ActionJournal").Return(journal).Once(),
		journal.On("Push", mock.Anything, mock.MatchedBy(func(a parcel.Action) bool {
			return a.Type() == parcel.Delete && a.Snapshot().ID() == 42
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	log.AssertExpectations(t)
	journal.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CompleteDeliveryCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCompleteDeliveryCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCompleteDeliveryCommand(404)

	repo := new(MockParcelRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, 404).
			Return(parcel.Parcel{}, errs.NewObjectNotFoundError("parcelID", 404)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCompleteDeliveryCommand(42)
	delivered := newTestParcel(t, 42, 2.5, 2)

	repo := new(MockParcelRepository)
	log := new(MockDeliveryLog)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, 42).Return(delivered, nil).Once(),
		uow.On("DeliveryLog").Return(log).Once(),
		log.On("Append", mock.Anything, mock.AnythingOfType("parcel.DeliveryRecord")).
			Return(errors.New("append error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	log.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
