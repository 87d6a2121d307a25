package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/filestore"
	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/blobrepo"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/adapters/out/snapshot"
	"restaurant/internal/adapters/out/spool"
	"restaurant/internal/core/application/appstate"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	loc        *time.Location
	printDelay time.Duration
	clock      kernel.Clock
	logger     *slog.Logger

	sqlDB     *sql.DB
	state     *appstate.State
	persister *appstate.Persister
	publisher *rabbitmq.Publisher
	relay     *appstate.EventRelay
}

// NewCompositionRoot opens storage, loads the state and wires persistence and
// change events. cfg must already carry defaults.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	printDelay, err := cfg.PrintDelayDuration()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		loc:        loc,
		printDelay: printDelay,
		clock:      kernel.SystemClock,
		logger:     logger,
	}

	storage, err := c.openStorage()
	if err != nil {
		return nil, err
	}

	c.state = appstate.Load(ctx, snapshot.NewBlobRepository(storage), appstate.Options{
		Location: loc,
		Clock:    c.clock,
		MenuIDs:  kernel.NewUUIDGenerator("M"),
	}, logger)

	c.persister = appstate.NewPersister(logger)
	c.state.BindPersistence(c.persister)

	if cfg.AMQPURL != "" {
		c.publisher, err = rabbitmq.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			_ = c.closeDB()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		c.relay = appstate.NewEventRelay(c.publisher, c.clock, 0, logger)
		c.relay.Watch(c.state.Orders, c.state.Completed)
	}

	return c, nil
}

func (c *CompositionRoot) openStorage() (ports.BlobStorage, error) {
	switch c.cfg.StorageDriver {
	case StorageDriverPostgres:
		db, err := postgres.Open(c.cfg.Postgres())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if c.sqlDB, err = db.DB(); err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return blobrepo.NewGormBlobRepository(db), nil
	case StorageDriverMemory:
		return memory.NewBlobStorage(), nil
	default:
		return filestore.NewBlobStorage(c.cfg.DataDir)
	}
}

// RunBackground starts the persister and, when configured, the event relay.
// Both stop when ctx is done.
func (c *CompositionRoot) RunBackground(ctx context.Context) {
	go c.persister.Run(ctx)
	if c.relay != nil {
		go c.relay.Run(ctx)
	}
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewAutosaveJob(c.state, c.cfg.AutosaveSchedule, c.logger))
}

func (c *CompositionRoot) NewServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpsertOrder:          commands.NewUpsertOrderCommandHandler(c.state.Orders, c.clock),
		PatchOrder:           commands.NewPatchOrderCommandHandler(c.state.Orders),
		DeleteOrder:          commands.NewDeleteOrderCommandHandler(c.state.Orders),
		PrintReceipt:         c.CreatePrintReceiptCommandHandler(),
		RemoveCompletedOrder: commands.NewRemoveCompletedOrderCommandHandler(c.state.Completed),
		RemoveCompletedDay:   commands.NewRemoveCompletedDayCommandHandler(c.state.Completed),
		ClearCompleted:       commands.NewClearCompletedCommandHandler(c.state.Completed),
		SaveMenuItem:         commands.NewSaveMenuItemCommandHandler(c.state.Menu),
		DeleteMenuItem:       commands.NewDeleteMenuItemCommandHandler(c.state.Menu),
		SaveShopProfile:      commands.NewSaveShopProfileCommandHandler(c.state.Shop),

		ListOrders:         queries.NewListOrdersQueryHandler(c.state.Orders, services.DefaultPageSize),
		ExportOrders:       queries.NewExportOrdersQueryHandler(c.state.Orders, c.clock, c.loc),
		GetReceipt:         queries.NewGetReceiptQueryHandler(c.state.Orders, c.state.Shop, c.loc),
		GetCompletedOrders: queries.NewGetCompletedOrdersQueryHandler(c.state.Completed),
		GetHourlyActivity:  queries.NewGetHourlyActivityQueryHandler(c.state.Orders, c.clock, c.loc),
		GetMenu:            queries.NewGetMenuQueryHandler(c.state.Menu),
		GetShopProfile:     queries.NewGetShopProfileQueryHandler(c.state.Shop),
	}
	if c.publisher != nil {
		handlers.Broker = c.publisher
	}
	return httpin.NewServer(handlers)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.state.Orders, c.state.Menu, kernel.NewUUIDGenerator("ORD"), c.clock)
}

func (c *CompositionRoot) CreatePrintReceiptCommandHandler() commands.PrintReceiptCommandHandler {
	return commands.NewPrintReceiptCommandHandler(
		c.state.Orders,
		c.state.Shop,
		spool.NewFactory(c.cfg.SpoolDir),
		c.loc,
		c.printDelay,
		c.logger,
	)
}

// Shutdown drains pending writes, saves everything once more and releases
// connections. Every step runs even when an earlier one fails.
func (c *CompositionRoot) Shutdown(ctx context.Context) error {
	var shutdownErrs []error
	if err := c.persister.Flush(ctx); err != nil {
		shutdownErrs = append(shutdownErrs, err)
	}
	if err := c.state.SaveAll(ctx); err != nil {
		shutdownErrs = append(shutdownErrs, err)
	}
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			shutdownErrs = append(shutdownErrs, fmt.Errorf("close rabbitmq: %w", err))
		}
	}
	if err := c.closeDB(); err != nil {
		shutdownErrs = append(shutdownErrs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(shutdownErrs...)
}

func (c *CompositionRoot) closeDB() error {
	if c.sqlDB == nil {
		return nil
	}
	return c.sqlDB.Close()
}
