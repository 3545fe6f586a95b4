package simulation

import (
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// ProductionLine orders a quantity of one model at one quality tier
type ProductionLine struct {
	Model    string
	Tier     catalog.QualityTier
	Quantity int
}

// ProductionResult reports what a production plan actually built
type ProductionResult struct {
	Produced       map[string]int
	MaterialsUsed  map[string]int
	SkilledHours   float64
	UnskilledHours float64
	LaborCost      decimal.Decimal
	Warnings       []string
}

// ProduceBicycles builds bicycles according to the plan. Lines naming an
// unknown model or an invalid tier are skipped with a warning. Lines are
// processed in order; each is clamped first to the remaining skilled and
// unskilled labor hours, then to the scarcest component across all
// warehouses, then to the home warehouse's free space. Components are
// consumed home warehouse first. Labor is charged at hourly wages.
func (e *Engine) ProduceBicycles(lines []ProductionLine) (*ProductionResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &ProductionResult{
		Produced:      make(map[string]int),
		MaterialsUsed: make(map[string]int),
		LaborCost:     decimal.Zero,
	}
	home := e.warehouses[e.params.HomeWarehouse]

	skilledCapacity := float64(e.skilled) * e.params.HoursPerWorker
	unskilledCapacity := float64(e.unskilled) * e.params.HoursPerWorker

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if !line.Tier.IsValid() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("invalid quality tier %s for %s, line skipped", line.Tier, line.Model))
			continue
		}
		bicycle, err := e.catalog.Bicycle(line.Model)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown bicycle model %s, line skipped", line.Model))
			continue
		}

		quantity := line.Quantity

		// Labor hour clamping, skilled then unskilled
		if bicycle.SkilledHours() > 0 {
			remaining := skilledCapacity - result.SkilledHours
			if float64(quantity)*bicycle.SkilledHours() > remaining {
				maxPossible := int(remaining / bicycle.SkilledHours())
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("not enough skilled hours for %d %s, at most %d possible",
						quantity, line.Model, maxPossible))
				quantity = maxPossible
			}
		}
		if bicycle.UnskilledHours() > 0 {
			remaining := unskilledCapacity - result.UnskilledHours
			if float64(quantity)*bicycle.UnskilledHours() > remaining {
				maxPossible := int(remaining / bicycle.UnskilledHours())
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("not enough unskilled hours for %d %s, at most %d possible",
						quantity, line.Model, maxPossible))
				quantity = maxPossible
			}
		}

		// Material ceiling across all warehouses combined
		for _, part := range bicycle.Parts() {
			available := e.totalAvailable(part)
			if available < quantity {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("not enough %s for %d %s, only %d available",
						part, quantity, line.Model, available))
				quantity = available
			}
		}
		if quantity <= 0 {
			continue
		}

		// Finished bicycles must fit into the home warehouse
		item := catalog.ItemKey(line.Model, line.Tier)
		maxFit, err := home.MaxAdditional(item)
		if err != nil {
			return nil, err
		}
		if quantity > maxFit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("warehouse %s can only hold %d more %s", home.ID(), maxFit, line.Model))
			quantity = maxFit
		}
		if quantity <= 0 {
			continue
		}

		for _, part := range bicycle.Parts() {
			if err := e.consumeAcrossWarehouses(part, quantity); err != nil {
				return nil, err
			}
			result.MaterialsUsed[part] += quantity
		}
		if err := home.Store(item, quantity); err != nil {
			return nil, err
		}

		skilledHours := bicycle.SkilledHours() * float64(quantity)
		unskilledHours := bicycle.UnskilledHours() * float64(quantity)
		result.SkilledHours += skilledHours
		result.UnskilledHours += unskilledHours
		result.LaborCost = result.LaborCost.
			Add(e.params.HourlyWage[RoleSkilled].Mul(decimal.NewFromFloat(skilledHours))).
			Add(e.params.HourlyWage[RoleUnskilled].Mul(decimal.NewFromFloat(unskilledHours)))
		result.Produced[item] += quantity
	}

	if err := e.record(ledger.CategoryLabor, result.LaborCost, "production labor"); err != nil {
		return nil, err
	}
	return result, nil
}
