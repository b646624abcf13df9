package cmd

import (
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres"
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres/agentrepo"
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres/assignmentrepo"
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres/orderrepo"
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres/userrepo"
	"github.com/Vaibhav-crux/delivery-management-system/internal/adapters/out/postgres/warehouserepo"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/queries"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, unit of work factories and use case
// handlers. The allocation handler is built once because its run lock must
// be shared between the HTTP API and the scheduler.
type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	tokenMaker        *token.Maker
	allocationHandler *commands.AllocateOrdersCommandHandler
}

// NewCompositionRoot builds the object graph from an open database
// connection and a configured token maker.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, tokenMaker *token.Maker) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	allocationFactory := FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return uowFactory.Create()
	})

	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *uowFactory,
		tokenMaker:        tokenMaker,
		allocationHandler: commands.NewAllocateOrdersCommandHandler(allocationFactory),
	}
}

// Migrate creates or updates the database schema for every aggregate.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignmentDTO{},
		&userrepo.UserDTO{},
	)
}

// TokenMaker exposes the shared JWT maker for the HTTP auth middleware.
func (c *CompositionRoot) TokenMaker() *token.Maker {
	return c.tokenMaker
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.tokenMaker)
}

func (c *CompositionRoot) CreateDeactivateUserCommandHandler() commands.DeactivateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateUserCommandHandler(f)
}

// CreateUserUoWFactory is used by the auth middleware for account lookups.
func (c *CompositionRoot) CreateUserUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateWarehouseCommandHandler() commands.DeactivateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckInAgentCommandHandler() commands.CheckInAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateAllocateOrdersCommandHandler returns the shared allocation handler.
func (c *CompositionRoot) CreateAllocateOrdersCommandHandler() *commands.AllocateOrdersCommandHandler {
	return c.allocationHandler
}

func (c *CompositionRoot) CreateGetWarehousesQueryHandler() queries.GetWarehousesQueryHandler {
	return queries.NewGetWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCheckedInAgentsQueryHandler() queries.GetCheckedInAgentsQueryHandler {
	return queries.NewGetCheckedInAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}
