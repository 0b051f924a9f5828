package cmd

import (
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAddParcelProductCommandHandler() commands.AddParcelProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddParcelProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveParcelProductCommandHandler() commands.RemoveParcelProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveParcelProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.referenceUoWFactory())
}

func (c *CompositionRoot) CreateRegisterRecipientCommandHandler() commands.RegisterRecipientCommandHandler {
	return commands.NewRegisterRecipientCommandHandler(c.referenceUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.referenceUoWFactory())
}

func (c *CompositionRoot) CreateRegisterZoneCommandHandler() commands.RegisterZoneCommandHandler {
	return commands.NewRegisterZoneCommandHandler(c.referenceUoWFactory())
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	return commands.NewRegisterProductCommandHandler(c.referenceUoWFactory())
}

func (c *CompositionRoot) referenceUoWFactory() commands.ReferenceUoWFactory {
	return FuncReferenceUoWFactory(func() commands.ReferenceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFilterParcelsQueryHandler() queries.FilterParcelsQueryHandler {
	return queries.NewFilterParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsByClientQueryHandler() queries.GetParcelsByClientQueryHandler {
	return queries.NewGetParcelsByClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsByRecipientQueryHandler() queries.GetParcelsByRecipientQueryHandler {
	return queries.NewGetParcelsByRecipientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsByCourierQueryHandler() queries.GetParcelsByCourierQueryHandler {
	return queries.NewGetParcelsByCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelProductsQueryHandler() queries.GetParcelProductsQueryHandler {
	return queries.NewGetParcelProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStatsByCourierQueryHandler() queries.StatsByCourierQueryHandler {
	return queries.NewStatsByCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStatsByZoneQueryHandler() queries.StatsByZoneQueryHandler {
	return queries.NewStatsByZoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOverdueParcelsQueryHandler() queries.OverdueParcelsQueryHandler {
	return queries.NewOverdueParcelsQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncReferenceUoWFactory func() commands.ReferenceUoW

func (f FuncReferenceUoWFactory) Create() commands.ReferenceUoW {
	return f()
}
