package simulation

import (
	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// StaffRole identifies a worker qualification level
type StaffRole string

const (
	RoleSkilled   StaffRole = "skilled"
	RoleUnskilled StaffRole = "unskilled"
)

// Params holds the tunable rules of a simulation run
type Params struct {
	StartingBalance   decimal.Decimal
	StartingInventory map[string]int
	StartingSkilled   int
	StartingUnskilled int

	HomeWarehouse     string
	WarehouseCapacity map[string]float64
	WarehouseRent     map[string]decimal.Decimal
	RentInterval      int

	TransferFee   decimal.Decimal
	TransportCost map[string]map[string]decimal.Decimal

	MonthlySalary  map[StaffRole]decimal.Decimal
	HourlyWage     map[StaffRole]decimal.Decimal
	HoursPerWorker float64

	DemandBaseline float64
	DemandSpread   float64
	SeasonalFactor map[int]map[string]float64

	// SellFloor forces at least one sale per stocked model and market,
	// even when the demand draw rounds to zero.
	SellFloor bool

	TierPriceFactor map[catalog.QualityTier]float64
}

// Warehouse ids
const (
	WarehouseGermany = "germany"
	WarehouseFrance  = "france"
)

// DefaultParams returns the standard rule set
func DefaultParams() Params {
	return Params{
		StartingBalance:   decimal.NewFromInt(70000),
		StartingInventory: defaultStartingInventory(),
		StartingSkilled:   1,
		StartingUnskilled: 1,

		HomeWarehouse: WarehouseGermany,
		WarehouseCapacity: map[string]float64{
			WarehouseGermany: 1000,
			WarehouseFrance:  500,
		},
		WarehouseRent: map[string]decimal.Decimal{
			WarehouseGermany: decimal.NewFromInt(500),
			WarehouseFrance:  decimal.NewFromInt(250),
		},
		RentInterval: 3,

		TransferFee: decimal.NewFromInt(1000),
		TransportCost: map[string]map[string]decimal.Decimal{
			WarehouseGermany: {
				catalog.MarketMuenster: decimal.NewFromInt(50),
				catalog.MarketToulouse: decimal.NewFromInt(100),
			},
			WarehouseFrance: {
				catalog.MarketMuenster: decimal.NewFromInt(100),
				catalog.MarketToulouse: decimal.NewFromInt(50),
			},
		},

		MonthlySalary: map[StaffRole]decimal.Decimal{
			RoleSkilled:   decimal.NewFromInt(3500),
			RoleUnskilled: decimal.NewFromInt(2000),
		},
		HourlyWage: map[StaffRole]decimal.Decimal{
			RoleSkilled:   decimal.NewFromInt(25),
			RoleUnskilled: decimal.NewFromInt(15),
		},
		HoursPerWorker: 150,

		DemandBaseline: 100,
		DemandSpread:   20,
		SeasonalFactor: defaultSeasonalFactors(),

		TierPriceFactor: map[catalog.QualityTier]float64{
			catalog.TierBudget:   0.7,
			catalog.TierStandard: 1.0,
			catalog.TierPremium:  1.5,
		},
	}
}

func defaultStartingInventory() map[string]int {
	inventory := make(map[string]int)
	for _, name := range []string{
		catalog.WheelsAlpin, catalog.WheelsAmpere, catalog.WheelsSpeed, catalog.WheelsStandard,
		catalog.FrameHerren, catalog.FrameDamen, catalog.FrameMountain, catalog.FrameRenn,
		catalog.BarComfort, catalog.BarSport,
		catalog.SaddleComfort, catalog.SaddleSport,
		catalog.GearAlbatross, catalog.GearGepard,
		catalog.MotorStandard, catalog.MotorMountain,
	} {
		inventory[name] = 10
	}
	return inventory
}

// defaultSeasonalFactors scales demand over the calendar year. Months are
// 1-based and wrap modulo 12; models not listed default to 1.0.
func defaultSeasonalFactors() map[int]map[string]float64 {
	spring := map[string]float64{
		catalog.ModelRennrad:      1.2,
		catalog.ModelMountainbike: 1.1,
	}
	summer := map[string]float64{
		catalog.ModelRennrad:       1.3,
		catalog.ModelMountainbike:  1.2,
		catalog.ModelEMountainbike: 1.2,
	}
	winter := map[string]float64{
		catalog.ModelRennrad:       0.7,
		catalog.ModelMountainbike:  0.8,
		catalog.ModelEMountainbike: 0.8,
	}
	return map[int]map[string]float64{
		1: winter, 2: winter, 12: winter,
		3: spring, 4: spring, 5: spring,
		6: summer, 7: summer, 8: summer,
	}
}

// Seasonal returns the demand factor for a model in a given month
func (p Params) Seasonal(month int, model string) float64 {
	calendarMonth := ((month - 1) % 12) + 1
	factors, ok := p.SeasonalFactor[calendarMonth]
	if !ok {
		return 1.0
	}
	if f, ok := factors[model]; ok {
		return f
	}
	return 1.0
}
