package simulation

import (
	"time"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/inventory"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the serializable state of an engine, used by persistence
type Snapshot struct {
	Status     Status                    `json:"status"`
	Month      int                       `json:"month"`
	Balance    decimal.Decimal           `json:"balance"`
	Skilled    int                       `json:"skilled"`
	Unskilled  int                       `json:"unskilled"`
	Warehouses map[string]map[string]int `json:"warehouses"`
	Markets    map[string]map[string]int `json:"markets"`
	Entries    []EntrySnapshot           `json:"entries"`
	Reports    []MonthlyReport           `json:"reports"`
}

// EntrySnapshot is the serializable form of a ledger entry
type EntrySnapshot struct {
	ID            uuid.UUID       `json:"id"`
	Month         int             `json:"month"`
	Timestamp     time.Time       `json:"timestamp"`
	Category      ledger.Category `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Description   string          `json:"description"`
}

// Snapshot captures the full engine state
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status:     e.status,
		Month:      e.month,
		Balance:    e.balance,
		Skilled:    e.skilled,
		Unskilled:  e.unskilled,
		Warehouses: make(map[string]map[string]int, len(e.warehouses)),
		Markets:    make(map[string]map[string]int, len(e.markets)),
		Reports:    e.Reports(),
	}
	for id, w := range e.warehouses {
		snap.Warehouses[id] = w.Stock().Quantities()
	}
	for name, stock := range e.markets {
		snap.Markets[name] = stock.Quantities()
	}
	for _, entry := range e.ledger.Entries() {
		snap.Entries = append(snap.Entries, EntrySnapshot{
			ID:            entry.ID(),
			Month:         entry.Month(),
			Timestamp:     entry.Timestamp(),
			Category:      entry.Category(),
			Amount:        entry.Amount(),
			BalanceBefore: entry.BalanceBefore(),
			BalanceAfter:  entry.BalanceAfter(),
			Description:   entry.Description(),
		})
	}
	return snap
}

// Restore rebuilds an engine from a snapshot
func Restore(cat *catalog.Catalog, params Params, rng shared.RandomSource, clock shared.Clock, snap Snapshot) (*Engine, error) {
	e := &Engine{
		catalog:    cat,
		params:     params,
		rng:        rng,
		clock:      clock,
		status:     snap.Status,
		month:      snap.Month,
		balance:    snap.Balance,
		skilled:    snap.Skilled,
		unskilled:  snap.Unskilled,
		warehouses: make(map[string]*inventory.Warehouse),
		markets:    make(map[string]*inventory.Stock),
		reports:    snap.Reports,
	}

	for id, capacity := range params.WarehouseCapacity {
		e.warehouses[id] = inventory.RestoreWarehouse(id, capacity, cat.Footprint, snap.Warehouses[id])
	}
	for _, name := range cat.MarketNames() {
		e.markets[name] = inventory.RestoreStock(snap.Markets[name])
	}

	entries := make([]*ledger.Entry, 0, len(snap.Entries))
	for _, es := range snap.Entries {
		entries = append(entries, ledger.ReconstructEntry(
			es.ID, es.Month, es.Timestamp, es.Category,
			es.Amount, es.BalanceBefore, es.BalanceAfter, es.Description,
		))
	}
	e.ledger = ledger.RestoreLedger(entries)
	return e, nil
}
