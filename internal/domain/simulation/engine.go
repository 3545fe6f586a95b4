package simulation

import (
	"fmt"
	"sort"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/inventory"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a simulation run
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusGameOver Status = "GAME_OVER"
)

// Engine is the aggregate root of a simulation run. It owns all mutable
// game state and exposes one method per player operation. The engine does
// no I/O; persistence goes through Snapshot/Restore.
type Engine struct {
	catalog *catalog.Catalog
	params  Params
	rng     shared.RandomSource
	clock   shared.Clock

	status     Status
	month      int
	balance    decimal.Decimal
	warehouses map[string]*inventory.Warehouse
	markets    map[string]*inventory.Stock
	skilled    int
	unskilled  int
	ledger     *ledger.Ledger
	reports    []MonthlyReport
}

// NewEngine starts a fresh simulation run
func NewEngine(cat *catalog.Catalog, params Params, rng shared.RandomSource, clock shared.Clock) (*Engine, error) {
	e := &Engine{
		catalog:    cat,
		params:     params,
		rng:        rng,
		clock:      clock,
		status:     StatusActive,
		month:      1,
		balance:    params.StartingBalance,
		warehouses: make(map[string]*inventory.Warehouse),
		markets:    make(map[string]*inventory.Stock),
		skilled:    params.StartingSkilled,
		unskilled:  params.StartingUnskilled,
		ledger:     ledger.NewLedger(),
	}

	for id, capacity := range params.WarehouseCapacity {
		e.warehouses[id] = inventory.NewWarehouse(id, capacity, cat.Footprint)
	}
	home, ok := e.warehouses[params.HomeWarehouse]
	if !ok {
		return nil, shared.NewValidationError("home_warehouse", fmt.Sprintf("unknown warehouse: %s", params.HomeWarehouse))
	}
	for item, qty := range params.StartingInventory {
		if err := home.Store(item, qty); err != nil {
			return nil, err
		}
	}
	for _, name := range cat.MarketNames() {
		e.markets[name] = inventory.NewStock()
	}
	return e, nil
}

// Accessors

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) Month() int {
	return e.month
}

func (e *Engine) Balance() decimal.Decimal {
	return e.balance
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) Params() Params {
	return e.params
}

func (e *Engine) SkilledWorkers() int {
	return e.skilled
}

func (e *Engine) UnskilledWorkers() int {
	return e.unskilled
}

// Warehouse returns a warehouse by id
func (e *Engine) Warehouse(id string) (*inventory.Warehouse, error) {
	w, ok := e.warehouses[id]
	if !ok {
		return nil, shared.NewUnknownItemError("warehouse", id)
	}
	return w, nil
}

// WarehouseIDs returns all warehouse ids in sorted order
func (e *Engine) WarehouseIDs() []string {
	ids := make([]string, 0, len(e.warehouses))
	for id := range e.warehouses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarketStock returns the unsold bicycles placed in a market
func (e *Engine) MarketStock(market string) (*inventory.Stock, error) {
	s, ok := e.markets[market]
	if !ok {
		return nil, shared.NewUnknownItemError("market", market)
	}
	return s, nil
}

// Ledger exposes the append-only cash movement record
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// ensureActive guards mutating operations against a finished game
func (e *Engine) ensureActive() error {
	if e.status == StatusGameOver {
		return shared.NewGameOverError(e.month)
	}
	return nil
}

// record charges or credits the balance and appends a ledger entry.
// amount is the absolute value; the sign comes from the category.
func (e *Engine) record(category ledger.Category, amount decimal.Decimal, description string) error {
	if amount.IsZero() {
		return nil
	}
	signed := amount.Abs()
	if category.IsExpense() {
		signed = signed.Neg()
	}
	before := e.balance
	e.balance = e.balance.Add(signed)
	entry, err := ledger.NewEntry(e.month, e.clock.Now(), category, signed, before, e.balance, description)
	if err != nil {
		return err
	}
	e.ledger.Append(entry)
	return nil
}

// totalAvailable sums an item's quantity across all warehouses
func (e *Engine) totalAvailable(item string) int {
	total := 0
	for _, w := range e.warehouses {
		total += w.Stock().Quantity(item)
	}
	return total
}

// consumeAcrossWarehouses removes quantity of an item, draining the home
// warehouse first, then the others in sorted order.
func (e *Engine) consumeAcrossWarehouses(item string, quantity int) error {
	for _, id := range e.consumeOrder() {
		if quantity == 0 {
			return nil
		}
		w := e.warehouses[id]
		take := w.Stock().Quantity(item)
		if take > quantity {
			take = quantity
		}
		if take == 0 {
			continue
		}
		if err := w.Retrieve(item, take); err != nil {
			return err
		}
		quantity -= take
	}
	if quantity > 0 {
		return shared.NewInsufficientStockError(item, quantity, 0)
	}
	return nil
}

// consumeOrder lists warehouse ids home-first, remainder sorted
func (e *Engine) consumeOrder() []string {
	order := []string{e.params.HomeWarehouse}
	for _, id := range e.WarehouseIDs() {
		if id != e.params.HomeWarehouse {
			order = append(order, id)
		}
	}
	return order
}
