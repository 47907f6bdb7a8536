package commands_test

import (
	"context"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewLoadParcelCommand(42)
	existing := newTestParcel(t, 42, 2.5, 2)

	repo := new(MockParcelRepository)
	queue := new(MockLoadingQueue)
	uow := new(MockLoadingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, 42).Return(existing, nil).Once(),
		uow.On("LoadingQueue").Return(queue).Once(),
		queue.On("Enqueue", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.LoadParcelCommand{} // not constructed properly
	factory := new(MockLoadingUoWFactory)
	h := commands.NewLoadParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestLoadParcelCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewLoadParcelCommand(404)

	repo := new(MockParcelRepository)
	uow := new(MockLoadingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, 404).
			Return(parcel.Parcel{}, errs.NewObjectNotFoundError("parcelID", 404)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
