package simulation

import (
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// PurchaseOrderLine orders a quantity of one component from one supplier
type PurchaseOrderLine struct {
	Supplier  string
	Component string
	Quantity  int
}

// PurchaseResult reports what a purchase order actually delivered
type PurchaseResult struct {
	TotalCost decimal.Decimal
	Received  map[string]int
	Rejected  map[string]int
	Warnings  []string
}

// PurchaseMaterials orders components from suppliers. Lines naming an
// unknown supplier are skipped with a warning. Each line rolls for a
// defect event: when it occurs, the delivered quantity shrinks by the
// supplier's defect fraction and only the delivered units are charged.
// Deliveries land in the home warehouse and are clamped to its free space.
func (e *Engine) PurchaseMaterials(lines []PurchaseOrderLine) (*PurchaseResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &PurchaseResult{
		TotalCost: decimal.Zero,
		Received:  make(map[string]int),
		Rejected:  make(map[string]int),
	}
	home := e.warehouses[e.params.HomeWarehouse]

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		supplier, err := e.catalog.Supplier(line.Supplier)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown supplier %s, line skipped", line.Supplier))
			continue
		}
		price, ok := supplier.Price(line.Component)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s does not carry %s", line.Supplier, line.Component))
			continue
		}

		quantity := line.Quantity
		if e.rng.Float64() < supplier.DefectProbability() {
			defects := int(float64(line.Quantity) * supplier.DefectFraction())
			if defects > 0 {
				quantity -= defects
				result.Rejected[line.Component] += defects
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%d of %d %s from %s rejected as defective",
						defects, line.Quantity, line.Component, line.Supplier))
			}
		}
		if quantity <= 0 {
			continue
		}

		// Deliveries beyond the home warehouse's free space are refused
		// and not charged.
		maxFit, err := home.MaxAdditional(line.Component)
		if err != nil {
			return nil, err
		}
		if quantity > maxFit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("warehouse %s can only hold %d more %s, %d refused",
					home.ID(), maxFit, line.Component, quantity-maxFit))
			quantity = maxFit
		}
		if quantity <= 0 {
			continue
		}

		if err := home.Store(line.Component, quantity); err != nil {
			return nil, err
		}
		cost := price.Mul(decimal.NewFromInt(int64(quantity)))
		result.TotalCost = result.TotalCost.Add(cost)
		result.Received[line.Component] += quantity
	}

	if err := e.record(ledger.CategoryMaterials, result.TotalCost, "material purchase"); err != nil {
		return nil, err
	}
	return result, nil
}
