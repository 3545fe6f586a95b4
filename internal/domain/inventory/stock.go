package inventory

import (
	"sort"

	"github.com/fahrwerk/bikesim/internal/domain/shared"
)

// Stock is a non-negative item counter. Keys whose quantity drops to zero
// are pruned so iteration only sees items actually held.
type Stock struct {
	quantities map[string]int
}

func NewStock() *Stock {
	return &Stock{quantities: make(map[string]int)}
}

// Quantity returns the held amount for an item (zero if absent)
func (s *Stock) Quantity(item string) int {
	return s.quantities[item]
}

// Add increases the held amount for an item
func (s *Stock) Add(item string, quantity int) error {
	if quantity < 0 {
		return shared.NewValidationError("quantity", "must not be negative")
	}
	if quantity == 0 {
		return nil
	}
	s.quantities[item] += quantity
	return nil
}

// Remove decreases the held amount, failing if not enough is held
func (s *Stock) Remove(item string, quantity int) error {
	if quantity < 0 {
		return shared.NewValidationError("quantity", "must not be negative")
	}
	available := s.quantities[item]
	if quantity > available {
		return shared.NewInsufficientStockError(item, quantity, available)
	}
	if quantity == available {
		delete(s.quantities, item)
		return nil
	}
	s.quantities[item] -= quantity
	return nil
}

// Items returns the held item names in sorted order
func (s *Stock) Items() []string {
	items := make([]string, 0, len(s.quantities))
	for item := range s.quantities {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Quantities returns a copy of the holdings
func (s *Stock) Quantities() map[string]int {
	copied := make(map[string]int, len(s.quantities))
	for item, qty := range s.quantities {
		copied[item] = qty
	}
	return copied
}

// IsEmpty reports whether nothing is held
func (s *Stock) IsEmpty() bool {
	return len(s.quantities) == 0
}

// TotalUnits returns the sum of all held quantities
func (s *Stock) TotalUnits() int {
	total := 0
	for _, qty := range s.quantities {
		total += qty
	}
	return total
}

// RestoreStock rebuilds a stock from persisted holdings, dropping
// non-positive entries.
func RestoreStock(quantities map[string]int) *Stock {
	s := NewStock()
	for item, qty := range quantities {
		if qty > 0 {
			s.quantities[item] = qty
		}
	}
	return s
}
