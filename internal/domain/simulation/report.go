package simulation

import (
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// StorageUsage describes how full one warehouse is
type StorageUsage struct {
	Used     float64
	Capacity float64
}

// Percentage returns the fill level in percent
func (u StorageUsage) Percentage() float64 {
	if u.Capacity <= 0 {
		return 0
	}
	return u.Used / u.Capacity * 100
}

// MonthlyReport is an immutable snapshot of one month's business state
type MonthlyReport struct {
	Month      int
	Balance    decimal.Decimal
	Expenses   decimal.Decimal
	Revenues   decimal.Decimal
	Profit     decimal.Decimal
	ByCategory map[ledger.Category]decimal.Decimal
	Storage    map[string]StorageUsage
	Warehouse  map[string]map[string]int
	Markets    map[string]map[string]int
	Skilled    int
	Unskilled  int
}

// buildReport assembles the report for the current month
func (e *Engine) buildReport() (MonthlyReport, error) {
	report := MonthlyReport{
		Month:      e.month,
		Balance:    e.balance,
		Expenses:   decimal.Zero,
		Revenues:   decimal.Zero,
		ByCategory: e.ledger.MonthTotals(e.month),
		Storage:    make(map[string]StorageUsage),
		Warehouse:  make(map[string]map[string]int),
		Markets:    make(map[string]map[string]int),
		Skilled:    e.skilled,
		Unskilled:  e.unskilled,
	}

	for category, total := range report.ByCategory {
		if category.IsIncome() {
			report.Revenues = report.Revenues.Add(total)
		} else {
			report.Expenses = report.Expenses.Add(total.Abs())
		}
	}
	report.Profit = report.Revenues.Sub(report.Expenses)

	for _, id := range e.WarehouseIDs() {
		w := e.warehouses[id]
		used, err := w.UsedSpace()
		if err != nil {
			return MonthlyReport{}, err
		}
		report.Storage[id] = StorageUsage{Used: used, Capacity: w.Capacity()}
		report.Warehouse[id] = w.Stock().Quantities()
	}
	for _, name := range e.catalog.MarketNames() {
		report.Markets[name] = e.markets[name].Quantities()
	}
	return report, nil
}

// CurrentReport builds a report for the running month without closing it
func (e *Engine) CurrentReport() (MonthlyReport, error) {
	return e.buildReport()
}
