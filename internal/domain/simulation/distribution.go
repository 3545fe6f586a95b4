package simulation

import (
	"fmt"
	"sort"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// DistributionLine ships a quantity of one finished model to one market
type DistributionLine struct {
	Model    string
	Tier     catalog.QualityTier
	Market   string
	Quantity int
}

// DistributionResult reports the shipped bicycles and transport cost
type DistributionResult struct {
	ShippingCost decimal.Decimal
	Shipped      map[string]map[string]int // market -> item -> quantity
	Warnings     []string
}

// DistributeToMarkets ships finished bicycles to markets. Lines naming an
// unknown model or market or an invalid tier are skipped with a warning.
// Quantities are clamped to combined warehouse stock. Each shipment drains warehouses in
// ascending transport cost to the target market; transport is charged per
// bicycle per route.
func (e *Engine) DistributeToMarkets(lines []DistributionLine) (*DistributionResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &DistributionResult{
		ShippingCost: decimal.Zero,
		Shipped:      make(map[string]map[string]int),
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if !line.Tier.IsValid() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("invalid quality tier %s for %s, line skipped", line.Tier, line.Model))
			continue
		}
		if _, err := e.catalog.Bicycle(line.Model); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown bicycle model %s, line skipped", line.Model))
			continue
		}
		marketStock, err := e.MarketStock(line.Market)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown market %s, line skipped", line.Market))
			continue
		}

		item := catalog.ItemKey(line.Model, line.Tier)
		quantity := line.Quantity
		available := e.totalAvailable(item)
		if available < quantity {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("only %d of %d %s (%s) in stock", available, quantity, line.Model, line.Tier))
			quantity = available
		}
		if quantity <= 0 {
			continue
		}

		for _, id := range e.cheapestRouteOrder(line.Market) {
			if quantity == 0 {
				break
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
				return nil, err
			}
			if err := marketStock.Add(item, take); err != nil {
				return nil, err
			}
			cost := e.transportCost(id, line.Market).Mul(decimal.NewFromInt(int64(take)))
			result.ShippingCost = result.ShippingCost.Add(cost)
			if result.Shipped[line.Market] == nil {
				result.Shipped[line.Market] = make(map[string]int)
			}
			result.Shipped[line.Market][item] += take
			quantity -= take
		}
	}

	if err := e.record(ledger.CategoryShipping, result.ShippingCost, "market shipping"); err != nil {
		return nil, err
	}
	return result, nil
}

// cheapestRouteOrder lists warehouse ids by ascending transport cost to
// the market, ties broken by id for determinism.
func (e *Engine) cheapestRouteOrder(market string) []string {
	ids := e.WarehouseIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return e.transportCost(ids[i], market).LessThan(e.transportCost(ids[j], market))
	})
	return ids
}

func (e *Engine) transportCost(warehouse, market string) decimal.Decimal {
	if routes, ok := e.params.TransportCost[warehouse]; ok {
		if cost, ok := routes[market]; ok {
			return cost
		}
	}
	return decimal.Zero
}
