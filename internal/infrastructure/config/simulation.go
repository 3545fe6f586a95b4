package config

import (
	"strconv"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// SimulationConfig exposes the tunable game parameters. Zero values fall
// back to the built-in defaults, so a config file only needs to name the
// parameters it wants to change.
type SimulationConfig struct {
	StartingBalance float64 `mapstructure:"starting_balance" validate:"min=0"`

	HomeWarehouse   string             `mapstructure:"home_warehouse"`
	Capacity        map[string]float64 `mapstructure:"capacity"`
	Rent            map[string]float64 `mapstructure:"rent"`
	RentInterval    int                `mapstructure:"rent_interval" validate:"min=0"`
	TransferFee     float64            `mapstructure:"transfer_fee" validate:"min=0"`
	SkilledSalary   float64            `mapstructure:"skilled_salary" validate:"min=0"`
	UnskilledSalary float64            `mapstructure:"unskilled_salary" validate:"min=0"`
	SkilledWage     float64            `mapstructure:"skilled_wage" validate:"min=0"`
	UnskilledWage   float64            `mapstructure:"unskilled_wage" validate:"min=0"`
	HoursPerWorker  float64            `mapstructure:"hours_per_worker" validate:"min=0"`
	DemandBaseline  float64            `mapstructure:"demand_baseline" validate:"min=0"`
	DemandSpread    float64            `mapstructure:"demand_spread" validate:"min=0"`
	SellFloor       bool               `mapstructure:"sell_floor"`
	BudgetFactor    float64            `mapstructure:"budget_price_factor" validate:"min=0"`
	PremiumFactor   float64            `mapstructure:"premium_price_factor" validate:"min=0"`

	// TransportCost overrides per-bicycle route costs, keyed
	// warehouse then market.
	TransportCost map[string]map[string]float64 `mapstructure:"transport_cost"`

	// SeasonalFactor overrides demand scaling, keyed calendar month
	// ("1" through "12") then bicycle model.
	SeasonalFactor map[string]map[string]float64 `mapstructure:"seasonal_factor"`
}

// ToParams converts the config section into simulation parameters,
// starting from the default rule set.
func (c SimulationConfig) ToParams() simulation.Params {
	params := simulation.DefaultParams()

	if c.StartingBalance > 0 {
		params.StartingBalance = decimal.NewFromFloat(c.StartingBalance)
	}
	if c.HomeWarehouse != "" {
		params.HomeWarehouse = c.HomeWarehouse
	}
	for id, capacity := range c.Capacity {
		params.WarehouseCapacity[id] = capacity
	}
	for id, rent := range c.Rent {
		params.WarehouseRent[id] = decimal.NewFromFloat(rent)
	}
	if c.RentInterval > 0 {
		params.RentInterval = c.RentInterval
	}
	if c.TransferFee > 0 {
		params.TransferFee = decimal.NewFromFloat(c.TransferFee)
	}
	if c.SkilledSalary > 0 {
		params.MonthlySalary[simulation.RoleSkilled] = decimal.NewFromFloat(c.SkilledSalary)
	}
	if c.UnskilledSalary > 0 {
		params.MonthlySalary[simulation.RoleUnskilled] = decimal.NewFromFloat(c.UnskilledSalary)
	}
	if c.SkilledWage > 0 {
		params.HourlyWage[simulation.RoleSkilled] = decimal.NewFromFloat(c.SkilledWage)
	}
	if c.UnskilledWage > 0 {
		params.HourlyWage[simulation.RoleUnskilled] = decimal.NewFromFloat(c.UnskilledWage)
	}
	if c.HoursPerWorker > 0 {
		params.HoursPerWorker = c.HoursPerWorker
	}
	if c.DemandBaseline > 0 {
		params.DemandBaseline = c.DemandBaseline
	}
	if c.DemandSpread > 0 {
		params.DemandSpread = c.DemandSpread
	}
	params.SellFloor = c.SellFloor
	if c.BudgetFactor > 0 {
		params.TierPriceFactor[catalog.TierBudget] = c.BudgetFactor
	}
	if c.PremiumFactor > 0 {
		params.TierPriceFactor[catalog.TierPremium] = c.PremiumFactor
	}
	for warehouse, routes := range c.TransportCost {
		if params.TransportCost[warehouse] == nil {
			params.TransportCost[warehouse] = make(map[string]decimal.Decimal)
		}
		for market, cost := range routes {
			params.TransportCost[warehouse][market] = decimal.NewFromFloat(cost)
		}
	}
	for key, factors := range c.SeasonalFactor {
		month, err := strconv.Atoi(key)
		if err != nil || month < 1 || month > 12 {
			continue
		}
		if params.SeasonalFactor[month] == nil {
			params.SeasonalFactor[month] = make(map[string]float64)
		}
		for model, factor := range factors {
			params.SeasonalFactor[month][model] = factor
		}
	}
	return params
}
