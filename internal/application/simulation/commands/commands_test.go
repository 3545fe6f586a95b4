package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/bikesim/internal/adapters/persistence"
	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/session"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/fahrwerk/bikesim/internal/infrastructure/database"
)

type testEnv struct {
	mediator *common.Mediator
	reports  session.ReportRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewTestConnection()
	require.NoError(t, err)

	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sessionRepo := persistence.NewGormSessionRepository(db)
	reportRepo := persistence.NewGormReportRepository(db)
	service := appsession.NewService(sessionRepo, catalog.Default(), simulation.DefaultParams(), clock)

	m := common.NewMediator()
	common.RegisterHandler[*commands.NewSessionCommand](m, commands.NewNewSessionHandler(service))
	common.RegisterHandler[*commands.PurchaseMaterialsCommand](m, commands.NewPurchaseMaterialsHandler(service))
	common.RegisterHandler[*commands.ManageStaffCommand](m, commands.NewManageStaffHandler(service))
	common.RegisterHandler[*commands.CloseMonthCommand](m, commands.NewCloseMonthHandler(service, reportRepo))

	return &testEnv{mediator: m, reports: reportRepo}
}

func TestNewSessionHandler_CreatesSession(t *testing.T) {
	// Arrange
	env := newTestEnv(t)

	// Act
	response, err := env.mediator.Send(context.Background(), &commands.NewSessionCommand{
		Name: "handler-run",
		Seed: 42,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.NewSessionResponse)
	assert.Equal(t, "handler-run", result.Name)
	assert.Equal(t, 1, result.Month)
	assert.True(t, result.Balance.IsPositive())
}

func TestPurchaseMaterialsHandler_PersistsAcrossCalls(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.mediator.Send(ctx, &commands.NewSessionCommand{Name: "buyer", Seed: 42})
	require.NoError(t, err)

	// Act - two separate invocations, each loading fresh state
	first, err := env.mediator.Send(ctx, &commands.PurchaseMaterialsCommand{
		Session: "buyer",
		Lines: []simulation.PurchaseOrderLine{
			{Supplier: catalog.SupplierVelotech, Component: catalog.SaddleComfort, Quantity: 2},
		},
	})
	require.NoError(t, err)
	second, err := env.mediator.Send(ctx, &commands.PurchaseMaterialsCommand{
		Session: "buyer",
		Lines: []simulation.PurchaseOrderLine{
			{Supplier: catalog.SupplierVelotech, Component: catalog.SaddleSport, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// Assert - the second call starts from the first call's balance
	firstBalance := first.(*commands.PurchaseMaterialsResponse).Balance
	secondBalance := second.(*commands.PurchaseMaterialsResponse).Balance
	assert.True(t, secondBalance.LessThan(firstBalance))
}

func TestPurchaseMaterialsHandler_UnknownSession(t *testing.T) {
	// Arrange
	env := newTestEnv(t)

	// Act
	_, err := env.mediator.Send(context.Background(), &commands.PurchaseMaterialsCommand{
		Session: "nobody",
		Lines: []simulation.PurchaseOrderLine{
			{Supplier: catalog.SupplierVelotech, Component: catalog.SaddleComfort, Quantity: 1},
		},
	})

	// Assert
	require.Error(t, err)
	var notFound *session.ErrSessionNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestCloseMonthHandler_AdvancesAndStoresReport(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.mediator.Send(ctx, &commands.NewSessionCommand{Name: "closer", Seed: 42})
	require.NoError(t, err)
	sessionID := created.(*commands.NewSessionResponse).SessionID

	// Act
	response, err := env.mediator.Send(ctx, &commands.CloseMonthCommand{Session: "closer"})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.CloseMonthResponse)
	assert.Equal(t, 1, result.ClosedMonth)
	assert.False(t, result.Rent.Due)
	assert.False(t, result.GameOver)
	assert.Equal(t, 1, result.Report.Month)

	id, err := uuid.Parse(sessionID)
	require.NoError(t, err)
	stored, err := env.reports.ListBySession(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Month)
}

func TestCloseMonthHandler_BankruptcyEndsRun(t *testing.T) {
	// Arrange - an absurd hiring spree drives the balance negative
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.mediator.Send(ctx, &commands.NewSessionCommand{Name: "doomed", Seed: 42})
	require.NoError(t, err)
	_, err = env.mediator.Send(ctx, &commands.ManageStaffCommand{
		Session: "doomed",
		Change:  simulation.StaffChange{HireSkilled: 30},
	})
	require.NoError(t, err)

	// Act
	response, err := env.mediator.Send(ctx, &commands.CloseMonthCommand{Session: "doomed"})
	require.NoError(t, err)
	result := response.(*commands.CloseMonthResponse)

	// Assert - the run is over; further commands are refused
	assert.True(t, result.GameOver)
	_, err = env.mediator.Send(ctx, &commands.ManageStaffCommand{
		Session: "doomed",
		Change:  simulation.StaffChange{FireSkilled: 30},
	})
	require.Error(t, err)
	var gameOver *shared.GameOverError
	assert.ErrorAs(t, err, &gameOver)
}
