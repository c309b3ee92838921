package cmd

import (
	"log/slog"

	"careplan/internal/adapters/out/eventlog"
	"careplan/internal/adapters/out/postgres"
	"careplan/internal/adapters/out/postgres/outboxrepo"
	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateActivateRouteCommandHandler() commands.ActivateRouteCommandHandler {
	return commands.NewActivateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteRouteCommandHandler(f)
}

func (c *CompositionRoot) CreatePauseRouteCommandHandler() commands.PauseRouteCommandHandler {
	return commands.NewPauseRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateResumeRouteCommandHandler() commands.ResumeRouteCommandHandler {
	return commands.NewResumeRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateArchiveRouteCommandHandler() commands.ArchiveRouteCommandHandler {
	return commands.NewArchiveRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateAddRouteGoalCommandHandler() commands.AddRouteGoalCommandHandler {
	return commands.NewAddRouteGoalCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateAddRoutePhaseCommandHandler() commands.AddRoutePhaseCommandHandler {
	return commands.NewAddRoutePhaseCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxEventsCommandHandler() commands.RelayOutboxEventsCommandHandler {
	return commands.NewRelayOutboxEventsCommandHandler(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		eventlog.NewSlogEventPublisher(c.logger),
	)
}

func (c *CompositionRoot) CreateGetRouteHistoryQueryHandler() queries.GetRouteHistoryQueryHandler {
	return queries.NewGetRouteHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesByChildQueryHandler() queries.GetRoutesByChildQueryHandler {
	return queries.NewGetRoutesByChildQueryHandler(c.gormDB)
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}
