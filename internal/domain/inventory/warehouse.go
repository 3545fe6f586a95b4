package inventory

import (
	"math"

	"github.com/fahrwerk/bikesim/internal/domain/shared"
)

// FootprintFunc resolves the storage space one unit of an item occupies
type FootprintFunc func(item string) (float64, error)

// Warehouse holds stock inside a finite amount of storage space
type Warehouse struct {
	id        string
	capacity  float64
	footprint FootprintFunc
	stock     *Stock
}

func NewWarehouse(id string, capacity float64, footprint FootprintFunc) *Warehouse {
	return &Warehouse{
		id:        id,
		capacity:  capacity,
		footprint: footprint,
		stock:     NewStock(),
	}
}

// RestoreWarehouse rebuilds a warehouse around persisted holdings
func RestoreWarehouse(id string, capacity float64, footprint FootprintFunc, quantities map[string]int) *Warehouse {
	w := NewWarehouse(id, capacity, footprint)
	w.stock = RestoreStock(quantities)
	return w
}

func (w *Warehouse) ID() string {
	return w.id
}

func (w *Warehouse) Capacity() float64 {
	return w.capacity
}

// Stock exposes the warehouse holdings
func (w *Warehouse) Stock() *Stock {
	return w.stock
}

// UsedSpace returns the space occupied by the current holdings
func (w *Warehouse) UsedSpace() (float64, error) {
	used := 0.0
	for item, qty := range w.stock.quantities {
		fp, err := w.footprint(item)
		if err != nil {
			return 0, err
		}
		used += fp * float64(qty)
	}
	return used, nil
}

// FreeSpace returns the remaining storage space
func (w *Warehouse) FreeSpace() (float64, error) {
	used, err := w.UsedSpace()
	if err != nil {
		return 0, err
	}
	free := w.capacity - used
	if free < 0 {
		free = 0
	}
	return free, nil
}

// MaxAdditional returns how many more units of an item fit
func (w *Warehouse) MaxAdditional(item string) (int, error) {
	fp, err := w.footprint(item)
	if err != nil {
		return 0, err
	}
	free, err := w.FreeSpace()
	if err != nil {
		return 0, err
	}
	if fp <= 0 {
		return math.MaxInt32, nil
	}
	return int(free / fp), nil
}

// Store adds units, failing if they do not fit
func (w *Warehouse) Store(item string, quantity int) error {
	if quantity < 0 {
		return shared.NewValidationError("quantity", "must not be negative")
	}
	fp, err := w.footprint(item)
	if err != nil {
		return err
	}
	free, err := w.FreeSpace()
	if err != nil {
		return err
	}
	needed := fp * float64(quantity)
	if needed > free {
		return shared.NewInsufficientCapacityError(w.id, needed, free)
	}
	return w.stock.Add(item, quantity)
}

// Retrieve removes units from the warehouse
func (w *Warehouse) Retrieve(item string, quantity int) error {
	return w.stock.Remove(item, quantity)
}
