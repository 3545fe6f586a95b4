package simulation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

func newTestEngine(t *testing.T, rng shared.RandomSource) *simulation.Engine {
	t.Helper()
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := simulation.NewEngine(catalog.Default(), simulation.DefaultParams(), rng, clock)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_StartingState(t *testing.T) {
	// Arrange & Act
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Assert
	assert.Equal(t, simulation.StatusActive, engine.Status())
	assert.Equal(t, 1, engine.Month())
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(70000)))
	assert.Equal(t, 1, engine.SkilledWorkers())
	assert.Equal(t, 1, engine.UnskilledWorkers())

	home, err := engine.Warehouse(simulation.WarehouseGermany)
	require.NoError(t, err)
	assert.Equal(t, 10, home.Stock().Quantity(catalog.WheelsStandard))

	france, err := engine.Warehouse(simulation.WarehouseFrance)
	require.NoError(t, err)
	assert.True(t, france.Stock().IsEmpty())
}

func TestPurchaseMaterials_WithoutDefects(t *testing.T) {
	// Arrange - uniform draw above every defect probability
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)

	// Act
	result, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 10},
	})

	// Assert - 10 × 150 charged, all units delivered
	require.NoError(t, err)
	assert.Equal(t, 10, result.Received[catalog.WheelsStandard])
	assert.Empty(t, result.Rejected)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(1500)))
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(68500)))

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, 20, home.Stock().Quantity(catalog.WheelsStandard))
}

func TestPurchaseMaterials_DefectEventReducesDeliveryAndCost(t *testing.T) {
	// Arrange - uniform draw below velotech's 9.5% defect probability
	rng := &shared.SequenceSource{Uniform: []float64{0.01}}
	engine := newTestEngine(t, rng)

	// Act - 100 × 18% defect fraction = 18 rejected
	result, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 100},
	})

	// Assert - only the 82 delivered units are charged
	require.NoError(t, err)
	assert.Equal(t, 82, result.Received[catalog.WheelsStandard])
	assert.Equal(t, 18, result.Rejected[catalog.WheelsStandard])
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(82*150)))
	assert.NotEmpty(t, result.Warnings)
}

func TestPurchaseMaterials_UnknownSupplierSkipsLineOnly(t *testing.T) {
	// Arrange
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)

	// Act - valid line first, then one naming a supplier that does not exist
	result, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 10},
		{Supplier: "nonexistent", Component: catalog.WheelsStandard, Quantity: 10},
	})

	// Assert - the valid line is delivered and charged, the bad one warned
	require.NoError(t, err)
	assert.Equal(t, 10, result.Received[catalog.WheelsStandard])
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(1500)))
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(68500)))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unknown supplier")

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, 20, home.Stock().Quantity(catalog.WheelsStandard))
}

func TestPurchaseMaterials_ClampsDeliveryToWarehouseCapacity(t *testing.T) {
	// Arrange - shrink the home warehouse so only 0.86 space units are free
	params := simulation.DefaultParams()
	params.WarehouseCapacity[simulation.WarehouseGermany] = 14
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := simulation.NewEngine(catalog.Default(), params, rng, clock)
	require.NoError(t, err)

	// Act - 100 wheelsets at 0.1 space each cannot all fit
	result, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 100},
	})

	// Assert - delivery clamped, only delivered units charged, no overflow
	require.NoError(t, err)
	delivered := result.Received[catalog.WheelsStandard]
	assert.Greater(t, delivered, 0)
	assert.Less(t, delivered, 100)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(int64(delivered)*150)))
	assert.NotEmpty(t, result.Warnings)

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	used, err := home.UsedSpace()
	require.NoError(t, err)
	assert.LessOrEqual(t, used, home.Capacity())
}

func TestPurchaseMaterials_UncarriedComponentWarnsAndSkips(t *testing.T) {
	// Arrange - gearshift only carries handlebars and saddles
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)

	// Act
	result, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierGearshift, Component: catalog.MotorStandard, Quantity: 5},
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Received)
	assert.True(t, result.TotalCost.IsZero())
	assert.NotEmpty(t, result.Warnings)
}

func TestProduceBicycles_MaterialCeiling(t *testing.T) {
	// Arrange - starting inventory holds 10 of every component
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - ask for 20 herrenrad, only 10 sets of parts exist
	result, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 20},
	})

	// Assert
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	assert.Equal(t, 10, result.Produced[item])
	assert.NotEmpty(t, result.Warnings)

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, 10, home.Stock().Quantity(item))
	assert.Equal(t, 0, home.Stock().Quantity(catalog.FrameHerren))
}

func TestProduceBicycles_LaborClamp(t *testing.T) {
	// Arrange - one unskilled worker has 150 hours; herrenrad needs 2.0
	// unskilled hours each, so at most 75 even with unlimited parts
	rng := &shared.SequenceSource{Uniform: []float64{0.99, 0.99, 0.99, 0.99, 0.99}}
	engine := newTestEngine(t, rng)
	_, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 100},
		{Supplier: catalog.SupplierVelotech, Component: catalog.FrameHerren, Quantity: 100},
		{Supplier: catalog.SupplierVelotech, Component: catalog.BarComfort, Quantity: 100},
		{Supplier: catalog.SupplierVelotech, Component: catalog.SaddleComfort, Quantity: 100},
		{Supplier: catalog.SupplierVelotech, Component: catalog.GearAlbatross, Quantity: 100},
	})
	require.NoError(t, err)

	// Act
	result, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 110},
	})

	// Assert
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	assert.Equal(t, 75, result.Produced[item])
	assert.InDelta(t, 150.0, result.UnskilledHours, 0.0001)
}

func TestProduceBicycles_ChargesLaborAtHourlyWages(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})
	balanceBefore := engine.Balance()

	// Act - 10 herrenrad: 3 skilled hours × 25 + 20 unskilled hours × 15
	result, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 10},
	})

	// Assert
	require.NoError(t, err)
	expected := decimal.NewFromInt(3*25 + 20*15)
	assert.True(t, result.LaborCost.Equal(expected))
	assert.True(t, engine.Balance().Equal(balanceBefore.Sub(expected)))
}

func TestProduceBicycles_UnknownModelSkipsLineOnly(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})
	balanceBefore := engine.Balance()

	// Act - valid line, a model that does not exist, and a bad tier
	result, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 5},
		{Model: "hollandrad", Tier: catalog.TierStandard, Quantity: 5},
		{Model: catalog.ModelHerrenrad, Tier: catalog.QualityTier("deluxe"), Quantity: 5},
	})

	// Assert - the valid line is built and its labor charged
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	assert.Equal(t, 5, result.Produced[item])
	expected := decimal.NewFromFloat(5 * (0.3*25 + 2.0*15))
	assert.True(t, result.LaborCost.Equal(expected))
	assert.True(t, engine.Balance().Equal(balanceBefore.Sub(expected)))
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "unknown bicycle model")
	assert.Contains(t, result.Warnings[1], "invalid quality tier")
}

func TestProduceBicycles_ClampsOutputToWarehouseCapacity(t *testing.T) {
	// Arrange - shrink the home warehouse so only one 0.5-space bicycle fits
	params := simulation.DefaultParams()
	params.WarehouseCapacity[simulation.WarehouseGermany] = 14
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := simulation.NewEngine(catalog.Default(), params, &shared.SequenceSource{}, clock)
	require.NoError(t, err)

	// Act - parts and labor allow 10, space allows 1
	result, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 10},
	})

	// Assert
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	assert.Equal(t, 1, result.Produced[item])
	assert.NotEmpty(t, result.Warnings)

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, 1, home.Stock().Quantity(item))
	used, err := home.UsedSpace()
	require.NoError(t, err)
	assert.LessOrEqual(t, used, home.Capacity())
}

func TestTransferInventory_ChargesFlatFeeOnce(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - two lines, one fee
	result, err := engine.TransferInventory([]simulation.TransferLine{
		{Item: catalog.WheelsStandard, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 5},
		{Item: catalog.FrameHerren, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 5},
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Fee.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 5, result.Transferred[catalog.WheelsStandard])
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(69000)))

	france, _ := engine.Warehouse(simulation.WarehouseFrance)
	assert.Equal(t, 5, france.Stock().Quantity(catalog.WheelsStandard))
}

func TestTransferInventory_ClampsToAvailable(t *testing.T) {
	// Arrange - only 10 standard wheelsets in stock
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act
	result, err := engine.TransferInventory([]simulation.TransferLine{
		{Item: catalog.WheelsStandard, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 25},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10, result.Transferred[catalog.WheelsStandard])
	assert.NotEmpty(t, result.Warnings)
}

func TestTransferInventory_NothingMovedNoFee(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - item not in the source warehouse
	result, err := engine.TransferInventory([]simulation.TransferLine{
		{Item: catalog.WheelsStandard, From: simulation.WarehouseFrance, To: simulation.WarehouseGermany, Quantity: 5},
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Fee.IsZero())
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(70000)))
}

func TestTransferInventory_UnknownWarehouseSkipsLineOnly(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - valid line first, then one naming a warehouse that does not exist
	result, err := engine.TransferInventory([]simulation.TransferLine{
		{Item: catalog.WheelsStandard, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 5},
		{Item: catalog.FrameHerren, From: "spain", To: simulation.WarehouseFrance, Quantity: 5},
	})

	// Assert - the valid transfer executed and the fee was charged
	require.NoError(t, err)
	assert.Equal(t, 5, result.Transferred[catalog.WheelsStandard])
	assert.True(t, result.Fee.Equal(decimal.NewFromInt(1000)))
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(69000)))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unknown warehouse")
}

func TestTransferInventory_SkipsLineWhenDestinationFull(t *testing.T) {
	// Arrange - france can hold half a space unit, ten wheelsets need one
	params := simulation.DefaultParams()
	params.WarehouseCapacity[simulation.WarehouseFrance] = 0.5
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := simulation.NewEngine(catalog.Default(), params, &shared.SequenceSource{}, clock)
	require.NoError(t, err)

	// Act
	result, err := engine.TransferInventory([]simulation.TransferLine{
		{Item: catalog.WheelsStandard, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 10},
	})

	// Assert - line skipped entirely, nothing charged, stock untouched
	require.NoError(t, err)
	assert.Empty(t, result.Transferred)
	assert.True(t, result.Fee.IsZero())
	assert.NotEmpty(t, result.Warnings)

	home, _ := engine.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, 10, home.Stock().Quantity(catalog.WheelsStandard))
	france, _ := engine.Warehouse(simulation.WarehouseFrance)
	used, err := france.UsedSpace()
	require.NoError(t, err)
	assert.LessOrEqual(t, used, france.Capacity())
}

func TestManageStaff_HiresAndChargesSalaries(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - 2 skilled, 3 unskilled after the change
	result, err := engine.ManageStaff(simulation.StaffChange{HireSkilled: 1, HireUnskilled: 2})

	// Assert - 2×3500 + 3×2000 charged immediately
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skilled)
	assert.Equal(t, 3, result.Unskilled)
	assert.True(t, result.TotalSalary.Equal(decimal.NewFromInt(13000)))
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(57000)))
}

func TestManageStaff_FiringClampsAtZero(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act
	result, err := engine.ManageStaff(simulation.StaffChange{FireSkilled: 5, FireUnskilled: 5})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Skilled)
	assert.Equal(t, 0, result.Unskilled)
	assert.True(t, result.TotalSalary.IsZero())
}

func TestDistributeToMarkets_UsesCheapestRouteFirst(t *testing.T) {
	// Arrange - bicycles split across both warehouses
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 10},
	})
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	_, err = engine.TransferInventory([]simulation.TransferLine{
		{Item: item, From: simulation.WarehouseGermany, To: simulation.WarehouseFrance, Quantity: 4},
	})
	require.NoError(t, err)
	balanceBefore := engine.Balance()

	// Act - toulouse pulls from france first (50 vs 100 per bicycle)
	result, err := engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Market: catalog.MarketToulouse, Quantity: 6},
	})

	// Assert - 4 from france at 50, 2 from germany at 100
	require.NoError(t, err)
	expected := decimal.NewFromInt(4*50 + 2*100)
	assert.True(t, result.ShippingCost.Equal(expected), "got %s", result.ShippingCost)
	assert.Equal(t, 6, result.Shipped[catalog.MarketToulouse][item])
	assert.True(t, engine.Balance().Equal(balanceBefore.Sub(expected)))

	market, _ := engine.MarketStock(catalog.MarketToulouse)
	assert.Equal(t, 6, market.Quantity(item))
}

func TestDistributeToMarkets_ClampsToStock(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierStandard, Quantity: 5},
	})
	require.NoError(t, err)

	// Act
	result, err := engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierStandard, Market: catalog.MarketMuenster, Quantity: 50},
	})

	// Assert
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelRennrad, catalog.TierStandard)
	assert.Equal(t, 5, result.Shipped[catalog.MarketMuenster][item])
	assert.NotEmpty(t, result.Warnings)
}

func TestDistributeToMarkets_UnknownMarketSkipsLineOnly(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierStandard, Quantity: 5},
	})
	require.NoError(t, err)
	balanceBefore := engine.Balance()

	// Act - valid line first, then one naming a market that does not exist
	result, err := engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierStandard, Market: catalog.MarketMuenster, Quantity: 2},
		{Model: catalog.ModelRennrad, Tier: catalog.TierStandard, Market: "berlin", Quantity: 2},
	})

	// Assert - the valid shipment executed and its transport was charged
	require.NoError(t, err)
	item := catalog.ItemKey(catalog.ModelRennrad, catalog.TierStandard)
	assert.Equal(t, 2, result.Shipped[catalog.MarketMuenster][item])
	expected := decimal.NewFromInt(2 * 50)
	assert.True(t, result.ShippingCost.Equal(expected))
	assert.True(t, engine.Balance().Equal(balanceBefore.Sub(expected)))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unknown market")
}

func TestSimulateSales_DemandDrawAndRevenue(t *testing.T) {
	// Arrange - normal draw of zero makes demand exactly the mean:
	// muenster herrenrad standard = 0.3 × 100 × 1.0 = 30
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 10},
	})
	require.NoError(t, err)
	_, err = engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Market: catalog.MarketMuenster, Quantity: 10},
	})
	require.NoError(t, err)
	balanceBefore := engine.Balance()

	// Act
	result, err := engine.SimulateSales()

	// Assert - all 10 sell at the 550 base price
	require.NoError(t, err)
	require.Len(t, result.Sales, 1)
	sale := result.Sales[0]
	assert.Equal(t, 30, sale.Demand)
	assert.Equal(t, 10, sale.Sold)
	assert.True(t, sale.Price.Equal(decimal.NewFromInt(550)))
	assert.True(t, result.TotalRevenue.Equal(decimal.NewFromInt(5500)))
	assert.True(t, engine.Balance().Equal(balanceBefore.Add(decimal.NewFromInt(5500))))

	market, _ := engine.MarketStock(catalog.MarketMuenster)
	assert.True(t, market.IsEmpty())
}

func TestSimulateSales_NegativeDemandSellsNothing(t *testing.T) {
	// Arrange - a strongly negative normal draw pushes demand below zero
	rng := &shared.SequenceSource{Normal: []float64{-5.0}}
	engine := newTestEngine(t, rng)
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 5},
	})
	require.NoError(t, err)
	_, err = engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Market: catalog.MarketMuenster, Quantity: 5},
	})
	require.NoError(t, err)

	// Act
	result, err := engine.SimulateSales()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Sales)
	assert.True(t, result.TotalRevenue.IsZero())

	market, _ := engine.MarketStock(catalog.MarketMuenster)
	item := catalog.ItemKey(catalog.ModelHerrenrad, catalog.TierStandard)
	assert.Equal(t, 5, market.Quantity(item))
}

func TestSimulateSales_TierAndMarketFactorsScalePrice(t *testing.T) {
	// Arrange - premium rennrad in toulouse: 900 × 1.5 × 1.1 = 1485
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierPremium, Quantity: 2},
	})
	require.NoError(t, err)
	_, err = engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelRennrad, Tier: catalog.TierPremium, Market: catalog.MarketToulouse, Quantity: 2},
	})
	require.NoError(t, err)

	// Act
	result, err := engine.SimulateSales()

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Sales, 1)
	assert.True(t, result.Sales[0].Price.Equal(decimal.NewFromFloat(1485)),
		"got %s", result.Sales[0].Price)
}

func TestPayPeriodicExpenses_OnlyOnRentMonths(t *testing.T) {
	// Arrange
	engine := newTestEngine(t, &shared.SequenceSource{})

	// Act - month 1 is not a rent month
	result, err := engine.PayPeriodicExpenses()

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Due)
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(70000)))

	// Arrange - advance to month 3
	_, err = engine.AdvanceMonth()
	require.NoError(t, err)
	_, err = engine.AdvanceMonth()
	require.NoError(t, err)
	require.Equal(t, 3, engine.Month())

	// Act
	result, err = engine.PayPeriodicExpenses()

	// Assert - 500 + 250 rent
	require.NoError(t, err)
	assert.True(t, result.Due)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(750)))
	assert.True(t, engine.Balance().Equal(decimal.NewFromInt(69250)))
}

func TestAdvanceMonth_SnapshotsReportAndIncrements(t *testing.T) {
	// Arrange
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)
	_, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.WheelsStandard, Quantity: 10},
	})
	require.NoError(t, err)

	// Act
	close, err := engine.AdvanceMonth()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, close.ClosedMonth)
	assert.False(t, close.GameOver)
	assert.Equal(t, 2, engine.Month())

	report := close.Report
	assert.Equal(t, 1, report.Month)
	assert.True(t, report.Expenses.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.Profit.Equal(decimal.NewFromInt(-1500)))
	assert.Len(t, engine.Reports(), 1)
}

func TestAdvanceMonth_NegativeBalanceEndsGame(t *testing.T) {
	// Arrange - hiring a large staff sinks the balance below zero
	engine := newTestEngine(t, &shared.SequenceSource{})
	_, err := engine.ManageStaff(simulation.StaffChange{HireSkilled: 25})
	require.NoError(t, err)
	require.True(t, engine.Balance().IsNegative())

	// Act
	close, err := engine.AdvanceMonth()

	// Assert
	require.NoError(t, err)
	assert.True(t, close.GameOver)
	assert.Equal(t, simulation.StatusGameOver, engine.Status())

	// Act - further mutating operations are rejected
	_, err = engine.ManageStaff(simulation.StaffChange{FireSkilled: 25})

	// Assert
	var gameOverErr *shared.GameOverError
	require.ErrorAs(t, err, &gameOverErr)
}

func TestLedger_BalanceChainStaysConsistent(t *testing.T) {
	// Arrange
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)

	// Act - a few operations in sequence
	_, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierCyclocomp, Component: catalog.GearAlbatross, Quantity: 4},
	})
	require.NoError(t, err)
	_, err = engine.ManageStaff(simulation.StaffChange{HireUnskilled: 1})
	require.NoError(t, err)

	// Assert - each entry's balance_after is the next entry's balance_before
	entries := engine.Ledger().Entries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].BalanceBefore().Equal(entries[i-1].BalanceAfter()))
	}
	assert.True(t, entries[len(entries)-1].BalanceAfter().Equal(engine.Balance()))
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	// Arrange
	rng := &shared.SequenceSource{Uniform: []float64{0.99}}
	engine := newTestEngine(t, rng)
	_, err := engine.PurchaseMaterials([]simulation.PurchaseOrderLine{
		{Supplier: catalog.SupplierVelotech, Component: catalog.MotorStandard, Quantity: 3},
	})
	require.NoError(t, err)
	_, err = engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelEBike, Tier: catalog.TierStandard, Quantity: 4},
	})
	require.NoError(t, err)
	_, err = engine.AdvanceMonth()
	require.NoError(t, err)

	// Act
	snap := engine.Snapshot()
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	restored, err := simulation.Restore(catalog.Default(), simulation.DefaultParams(), &shared.SequenceSource{}, clock, snap)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, engine.Month(), restored.Month())
	assert.True(t, engine.Balance().Equal(restored.Balance()))
	assert.Equal(t, engine.Status(), restored.Status())
	assert.Equal(t, engine.Ledger().Len(), restored.Ledger().Len())
	assert.Len(t, restored.Reports(), 1)

	original, _ := engine.Warehouse(simulation.WarehouseGermany)
	rebuilt, _ := restored.Warehouse(simulation.WarehouseGermany)
	assert.Equal(t, original.Stock().Quantities(), rebuilt.Stock().Quantities())
}

func TestSellFloor_SellsOneWhenStocked(t *testing.T) {
	// Arrange - demand draw collapses to zero but the floor is enabled
	params := simulation.DefaultParams()
	params.SellFloor = true
	rng := &shared.SequenceSource{Normal: []float64{-5.0}}
	clock := shared.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := simulation.NewEngine(catalog.Default(), params, rng, clock)
	require.NoError(t, err)

	_, err = engine.ProduceBicycles([]simulation.ProductionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Quantity: 3},
	})
	require.NoError(t, err)
	_, err = engine.DistributeToMarkets([]simulation.DistributionLine{
		{Model: catalog.ModelHerrenrad, Tier: catalog.TierStandard, Market: catalog.MarketMuenster, Quantity: 3},
	})
	require.NoError(t, err)

	// Act
	result, err := engine.SimulateSales()

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Sales, 1)
	assert.Equal(t, 1, result.Sales[0].Sold)
}
