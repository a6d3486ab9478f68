package cmd

import (
	"log/slog"

	httpin "boxoffice/internal/adapters/in/http"
	"boxoffice/internal/adapters/out/inventory"
	"boxoffice/internal/adapters/out/memory"
	"boxoffice/internal/adapters/out/payment"
	"boxoffice/internal/adapters/out/postgres"
	"boxoffice/internal/adapters/out/postgres/seatrepo"
	"boxoffice/internal/adapters/out/ticketing"
	"boxoffice/internal/core/application/usecases/commands"
	"boxoffice/internal/core/application/usecases/queries"
	"boxoffice/internal/core/domain/model/hall"
	"boxoffice/internal/core/domain/services"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	seatMap    hall.SeatMap
	sessions   ports.SessionStore
	holds      ports.SeatHoldStore
	publisher  ports.EventPublisher
	pipeline   *services.Pipeline
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	holds ports.SeatHoldStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	seatRepo := seatrepo.NewGormSeatRepository(gormDB)

	pipeline := services.NewDefaultPipeline(
		logger,
		inventory.NewRegistryAvailabilityChecker(seatRepo),
		payment.NewSimulatedGateway(logger),
		ticketing.NewCodeIssuer(logger),
		inventory.NewRegistryStockCommitter(uowFactory),
	)

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		seatMap:    hall.NewDefaultSeatMap(),
		sessions:   memory.NewSessionStore(),
		holds:      holds,
		publisher:  publisher,
		pipeline:   pipeline,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSelectSeatCommandHandler() commands.SelectSeatCommandHandler {
	return commands.NewSelectSeatCommandHandler(
		c.sessions,
		seatrepo.NewGormSeatRepository(c.gormDB),
		c.holds,
		c.seatMap,
		c.configs.HoldTTL,
	)
}

func (c *CompositionRoot) CreateDeselectSeatCommandHandler() commands.DeselectSeatCommandHandler {
	return commands.NewDeselectSeatCommandHandler(c.sessions, c.holds)
}

func (c *CompositionRoot) CreateUndoSelectionCommandHandler() commands.UndoSelectionCommandHandler {
	return commands.NewUndoSelectionCommandHandler(c.sessions, c.holds, c.configs.HoldTTL)
}

func (c *CompositionRoot) CreateRedoSelectionCommandHandler() commands.RedoSelectionCommandHandler {
	return commands.NewRedoSelectionCommandHandler(c.sessions, c.holds, c.configs.HoldTTL)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.sessions,
		c.pipeline,
		c.holds,
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	var f commands.SeatUoWFactory = FuncSeatUoWFactory(func() commands.SeatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestRefundCommandHandler(c.sessions, f)
}

func (c *CompositionRoot) CreateFinishOrderCycleCommandHandler() commands.FinishOrderCycleCommandHandler {
	return commands.NewFinishOrderCycleCommandHandler(c.sessions, c.holds)
}

func (c *CompositionRoot) CreateCancelAbandonedOrdersCommandHandler() commands.CancelAbandonedOrdersCommandHandler {
	return commands.NewCancelAbandonedOrdersCommandHandler(c.sessions, c.configs.AbandonedOrderAge)
}

func (c *CompositionRoot) CreateGetSeatMapQueryHandler() queries.GetSeatMapQueryHandler {
	return queries.NewGetSeatMapQueryHandler(c.gormDB, c.seatMap, c.holds)
}

func (c *CompositionRoot) CreateGetSelectionQueryHandler() queries.GetSelectionQueryHandler {
	return queries.NewGetSelectionQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateStartSessionCommandHandler(),
		c.CreateSelectSeatCommandHandler(),
		c.CreateDeselectSeatCommandHandler(),
		c.CreateUndoSelectionCommandHandler(),
		c.CreateRedoSelectionCommandHandler(),
		c.CreateSubmitOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRequestRefundCommandHandler(),
		c.CreateFinishOrderCycleCommandHandler(),
		c.CreateGetSeatMapQueryHandler(),
		c.CreateGetSelectionQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.holds,
		c.CreateCancelAbandonedOrdersCommandHandler(),
		c.logger,
	)
}

type FuncSeatUoWFactory func() commands.SeatUoW

func (f FuncSeatUoWFactory) Create() commands.SeatUoW {
	return f()
}
