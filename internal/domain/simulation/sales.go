package simulation

import (
	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// Sale is one realized market transaction during a sales round
type Sale struct {
	Market  string
	Model   string
	Tier    catalog.QualityTier
	Demand  int
	Sold    int
	Price   decimal.Decimal
	Revenue decimal.Decimal
	Unsold  int
}

// SalesResult reports one month's sales round
type SalesResult struct {
	TotalRevenue decimal.Decimal
	Sales        []Sale
}

// SimulateSales runs the monthly demand draw for every stocked model in
// every market. Demand is a Gaussian draw centered on the market's model
// preference times the demand baseline, scaled by the market's quality
// tier weight and the model's seasonal factor. Sold bicycles leave the
// market stock and their revenue is credited.
func (e *Engine) SimulateSales() (*SalesResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	result := &SalesResult{TotalRevenue: decimal.Zero}

	for _, marketName := range e.catalog.MarketNames() {
		market, err := e.catalog.Market(marketName)
		if err != nil {
			return nil, err
		}
		stock := e.markets[marketName]

		for _, item := range stock.Items() {
			quantity := stock.Quantity(item)
			if quantity <= 0 {
				continue
			}
			model, tier, ok := catalog.SplitItemKey(item)
			if !ok {
				continue
			}
			bicycle, err := e.catalog.Bicycle(model)
			if err != nil {
				return nil, err
			}

			mean := market.Preference(model) * e.params.DemandBaseline *
				market.TierWeight(tier) * e.params.Seasonal(e.month, model)
			demand := int(mean + e.params.DemandSpread*e.rng.NormFloat64())

			sold := demand
			if sold < 0 {
				sold = 0
			}
			if sold > quantity {
				sold = quantity
			}
			if e.params.SellFloor && sold == 0 {
				sold = 1
			}
			if sold == 0 {
				continue
			}

			price := bicycle.BasePrice().
				Mul(decimal.NewFromFloat(e.params.TierPriceFactor[tier])).
				Mul(decimal.NewFromFloat(market.PriceFactor()))
			revenue := price.Mul(decimal.NewFromInt(int64(sold)))

			if err := stock.Remove(item, sold); err != nil {
				return nil, err
			}
			result.TotalRevenue = result.TotalRevenue.Add(revenue)
			result.Sales = append(result.Sales, Sale{
				Market:  marketName,
				Model:   model,
				Tier:    tier,
				Demand:  demand,
				Sold:    sold,
				Price:   price,
				Revenue: revenue,
				Unsold:  quantity - sold,
			})
		}
	}

	if err := e.record(ledger.CategorySales, result.TotalRevenue, "bicycle sales"); err != nil {
		return nil, err
	}
	return result, nil
}
