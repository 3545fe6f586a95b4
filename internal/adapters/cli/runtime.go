package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fahrwerk/bikesim/internal/adapters/persistence"
	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/application/simulation/queries"
	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/fahrwerk/bikesim/internal/infrastructure/config"
	"github.com/fahrwerk/bikesim/internal/infrastructure/database"
)

// Runtime wires configuration, persistence, and the mediator for one CLI
// invocation.
type Runtime struct {
	Config   *config.Config
	DB       *gorm.DB
	Mediator *common.Mediator
	Sessions *appsession.Service
}

// newRuntime builds the full dependency graph
func newRuntime(configPath string) (*Runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sessionRepo := persistence.NewGormSessionRepository(db)
	reportRepo := persistence.NewGormReportRepository(db)

	service := appsession.NewService(
		sessionRepo,
		catalog.Default(),
		cfg.Simulation.ToParams(),
		shared.NewRealClock(),
	)

	mediator := common.NewMediator()
	common.RegisterHandler[*commands.NewSessionCommand](mediator, commands.NewNewSessionHandler(service))
	common.RegisterHandler[*commands.DeleteSessionCommand](mediator, commands.NewDeleteSessionHandler(service))
	common.RegisterHandler[*commands.PurchaseMaterialsCommand](mediator, commands.NewPurchaseMaterialsHandler(service))
	common.RegisterHandler[*commands.ProduceBicyclesCommand](mediator, commands.NewProduceBicyclesHandler(service))
	common.RegisterHandler[*commands.TransferInventoryCommand](mediator, commands.NewTransferInventoryHandler(service))
	common.RegisterHandler[*commands.ManageStaffCommand](mediator, commands.NewManageStaffHandler(service))
	common.RegisterHandler[*commands.DistributeCommand](mediator, commands.NewDistributeHandler(service))
	common.RegisterHandler[*commands.CloseMonthCommand](mediator, commands.NewCloseMonthHandler(service, reportRepo))
	common.RegisterHandler[*queries.GetReportQuery](mediator, queries.NewGetReportHandler(service))
	common.RegisterHandler[*queries.GetCashFlowQuery](mediator, queries.NewGetCashFlowHandler(service))
	common.RegisterHandler[*queries.ListSessionsQuery](mediator, queries.NewListSessionsHandler(service))

	return &Runtime{
		Config:   cfg,
		DB:       db,
		Mediator: mediator,
		Sessions: service,
	}, nil
}

// Close releases the runtime's resources
func (r *Runtime) Close() error {
	return database.Close(r.DB)
}

// Context returns a context carrying the CLI logger
func (r *Runtime) Context() context.Context {
	level := r.Config.Logging.Level
	if verbose {
		level = "debug"
	}
	return common.WithLogger(context.Background(), common.NewStdoutLogger(level))
}
