package catalog

import (
	"sort"

	"github.com/fahrwerk/bikesim/internal/domain/shared"
)

// Catalog aggregates the static game data: components, bicycle models,
// suppliers and markets.
type Catalog struct {
	components map[string]*Component
	bicycles   map[string]*Bicycle
	suppliers  map[string]*Supplier
	markets    map[string]*Market
}

func NewCatalog(components []*Component, bicycles []*Bicycle, suppliers []*Supplier, markets []*Market) *Catalog {
	c := &Catalog{
		components: make(map[string]*Component, len(components)),
		bicycles:   make(map[string]*Bicycle, len(bicycles)),
		suppliers:  make(map[string]*Supplier, len(suppliers)),
		markets:    make(map[string]*Market, len(markets)),
	}
	for _, component := range components {
		c.components[component.Name()] = component
	}
	for _, bicycle := range bicycles {
		c.bicycles[bicycle.Name()] = bicycle
	}
	for _, supplier := range suppliers {
		c.suppliers[supplier.Name()] = supplier
	}
	for _, market := range markets {
		c.markets[market.Name()] = market
	}
	return c
}

// Component looks up a component by name
func (c *Catalog) Component(name string) (*Component, error) {
	component, ok := c.components[name]
	if !ok {
		return nil, shared.NewUnknownItemError("component", name)
	}
	return component, nil
}

// Bicycle looks up a bicycle model by name
func (c *Catalog) Bicycle(name string) (*Bicycle, error) {
	bicycle, ok := c.bicycles[name]
	if !ok {
		return nil, shared.NewUnknownItemError("bicycle model", name)
	}
	return bicycle, nil
}

// Supplier looks up a supplier by name
func (c *Catalog) Supplier(name string) (*Supplier, error) {
	supplier, ok := c.suppliers[name]
	if !ok {
		return nil, shared.NewUnknownItemError("supplier", name)
	}
	return supplier, nil
}

// Market looks up a market by name
func (c *Catalog) Market(name string) (*Market, error) {
	market, ok := c.markets[name]
	if !ok {
		return nil, shared.NewUnknownItemError("market", name)
	}
	return market, nil
}

// HasComponent reports whether a component name is known
func (c *Catalog) HasComponent(name string) bool {
	_, ok := c.components[name]
	return ok
}

// ComponentNames returns all component names in sorted order
func (c *Catalog) ComponentNames() []string {
	return sortedKeys(c.components)
}

// BicycleNames returns all model names in sorted order
func (c *Catalog) BicycleNames() []string {
	return sortedKeys(c.bicycles)
}

// SupplierNames returns all supplier names in sorted order
func (c *Catalog) SupplierNames() []string {
	return sortedKeys(c.suppliers)
}

// MarketNames returns all market names in sorted order
func (c *Catalog) MarketNames() []string {
	return sortedKeys(c.markets)
}

// Footprint returns the storage footprint for an inventory item key,
// resolving both raw components and finished bicycles ("model:tier").
func (c *Catalog) Footprint(item string) (float64, error) {
	if component, ok := c.components[item]; ok {
		return component.Footprint(), nil
	}
	model, _, ok := SplitItemKey(item)
	if ok {
		if bicycle, found := c.bicycles[model]; found {
			return bicycle.Footprint(), nil
		}
	}
	return 0, shared.NewUnknownItemError("item", item)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
