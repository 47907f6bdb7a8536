package cmd

import (
	"parcels/internal/adapters/out/memory"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelWeightCommandHandler() commands.UpdateParcelWeightCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelWeightCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadParcelCommandHandler() commands.LoadParcelCommandHandler {
	var f commands.LoadingUoWFactory = FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchParcelCommandHandler() commands.DispatchParcelCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUndoActionCommandHandler() commands.UndoActionCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUndoActionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetSummaryReportQueryHandler() queries.GetSummaryReportQueryHandler {
	return queries.NewGetSummaryReportQueryHandler(c.store)
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
