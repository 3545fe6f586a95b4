package simulation

import (
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// RentResult reports the warehouse rent charged for the period
type RentResult struct {
	Due     bool
	PerSite map[string]decimal.Decimal
	Total   decimal.Decimal
}

// PayPeriodicExpenses charges warehouse rent when the current month is a
// multiple of the rent interval.
func (e *Engine) PayPeriodicExpenses() (*RentResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &RentResult{
		PerSite: make(map[string]decimal.Decimal),
		Total:   decimal.Zero,
	}
	if e.params.RentInterval <= 0 || e.month%e.params.RentInterval != 0 {
		return result, nil
	}

	result.Due = true
	for _, id := range e.WarehouseIDs() {
		rent, ok := e.params.WarehouseRent[id]
		if !ok {
			continue
		}
		result.PerSite[id] = rent
		result.Total = result.Total.Add(rent)
	}
	if err := e.record(ledger.CategoryRent, result.Total, "warehouse rent"); err != nil {
		return nil, err
	}
	return result, nil
}

// MonthClose reports the outcome of advancing to the next month
type MonthClose struct {
	ClosedMonth int
	Report      MonthlyReport
	GameOver    bool
}

// AdvanceMonth closes the current month: it snapshots a monthly report,
// increments the month counter, and ends the game when the balance has
// gone negative.
func (e *Engine) AdvanceMonth() (*MonthClose, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	report, err := e.buildReport()
	if err != nil {
		return nil, err
	}
	e.reports = append(e.reports, report)

	close := &MonthClose{
		ClosedMonth: e.month,
		Report:      report,
	}
	e.month++

	if e.balance.IsNegative() {
		e.status = StatusGameOver
		close.GameOver = true
	}
	return close, nil
}

// Reports returns the history of closed months
func (e *Engine) Reports() []MonthlyReport {
	out := make([]MonthlyReport, len(e.reports))
	copy(out, e.reports)
	return out
}

// ReportForMonth returns the snapshot for a closed month
func (e *Engine) ReportForMonth(month int) (MonthlyReport, error) {
	for _, r := range e.reports {
		if r.Month == month {
			return r, nil
		}
	}
	return MonthlyReport{}, fmt.Errorf("no report for month %d", month)
}
