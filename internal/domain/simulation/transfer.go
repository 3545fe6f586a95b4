package simulation

import (
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// TransferLine moves a quantity of one item between warehouses
type TransferLine struct {
	Item     string
	From     string
	To       string
	Quantity int
}

// TransferResult reports the executed transfers and the fee charged
type TransferResult struct {
	Fee         decimal.Decimal
	Transferred map[string]int
	Warnings    []string
}

// TransferInventory moves items between warehouses. Lines naming an
// unknown warehouse are skipped with a warning. Quantities are clamped
// to the source's holdings; lines the destination cannot fit are skipped.
// A flat administration fee is charged once if at least one line executes.
func (e *Engine) TransferInventory(lines []TransferLine) (*TransferResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &TransferResult{
		Fee:         decimal.Zero,
		Transferred: make(map[string]int),
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if line.From == line.To {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("transfer of %s skipped: source and destination are both %s", line.Item, line.From))
			continue
		}
		source, err := e.Warehouse(line.From)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown warehouse %s, line skipped", line.From))
			continue
		}
		target, err := e.Warehouse(line.To)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown warehouse %s, line skipped", line.To))
			continue
		}

		quantity := line.Quantity
		available := source.Stock().Quantity(line.Item)
		if available < quantity {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("only %d of %d %s available in %s", available, quantity, line.Item, line.From))
			quantity = available
		}
		if quantity <= 0 {
			continue
		}

		maxFit, err := target.MaxAdditional(line.Item)
		if err != nil {
			return nil, err
		}
		if quantity > maxFit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("transfer of %d %s skipped: %s only has space for %d",
					quantity, line.Item, line.To, maxFit))
			continue
		}

		if err := source.Retrieve(line.Item, quantity); err != nil {
			return nil, err
		}
		if err := target.Store(line.Item, quantity); err != nil {
			return nil, err
		}
		result.Transferred[line.Item] += quantity
	}

	if len(result.Transferred) > 0 {
		result.Fee = e.params.TransferFee
		if err := e.record(ledger.CategoryTransfer, result.Fee, "inventory transfer fee"); err != nil {
			return nil, err
		}
	}
	return result, nil
}
