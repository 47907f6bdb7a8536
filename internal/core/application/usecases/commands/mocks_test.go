package commands_test

import (
	"context"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T, id int, weight float64, priorityValue int) parcel.Parcel {
	t.Helper()

	priority, err := kernel.NewPriority(priorityValue)
	require.NoError(t, err)

	p, err := parcel.NewParcel(id, "Ada", "Grace", "14 Fleet St", weight, priority)
	require.NoError(t, err)

	return p
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id int) (parcel.Parcel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Update(ctx context.Context, p parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Remove(ctx context.Context, id int) (parcel.Parcel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]parcel.Parcel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]parcel.Parcel), args.Error(1)
}

type MockLoadingQueue struct{ mock.Mock }

func (m *MockLoadingQueue) Enqueue(ctx context.Context, p parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLoadingQueue) DequeueNext(ctx context.Context) (parcel.Parcel, error) {
	args := m.Called(ctx)
	return args.Get(0).(parcel.Parcel), args.Error(1)
}

func (m *MockLoadingQueue) Size(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockDeliveryLog struct{ mock.Mock }

func (m *MockDeliveryLog) Append(ctx context.Context, record parcel.DeliveryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDeliveryLog) GetAll(ctx context.Context) ([]parcel.DeliveryRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]parcel.DeliveryRecord), args.Error(1)
}

type MockActionJournal struct{ mock.Mock }

func (m *MockActionJournal) Push(ctx context.Context, action parcel.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockActionJournal) Pop(ctx context.Context) (parcel.Action, error) {
	args := m.Called(ctx)
	return args.Get(0).(parcel.Action), args.Error(1)
}

func (m *MockActionJournal) Size(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRegistryUoW struct{ mock.Mock }

func (m *MockRegistryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistryUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockRegistryUoW) ActionJournal() ports.ActionJournal {
	args := m.Called()
	return args.Get(0).(ports.ActionJournal)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockLoadingUoW struct{ mock.Mock }

func (m *MockLoadingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadingUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockLoadingUoW) LoadingQueue() ports.LoadingQueue {
	args := m.Called()
	return args.Get(0).(ports.LoadingQueue)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) LoadingQueue() ports.LoadingQueue {
	args := m.Called()
	return args.Get(0).(ports.LoadingQueue)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockDeliveryUoW) DeliveryLog() ports.DeliveryLog {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLog)
}

func (m *MockDeliveryUoW) ActionJournal() ports.ActionJournal {
	args := m.Called()
	return args.Get(0).(ports.ActionJournal)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
