package catalog

// Market is a sales destination with model preferences and quality appetite
type Market struct {
	name        string
	region      string
	preference  map[string]float64
	tierWeight  map[QualityTier]float64
	priceFactor float64
}

// NewMarket creates a market. preference maps model name to a demand share
// in [0, 1]; tierWeight scales demand per quality tier; priceFactor adjusts
// achievable prices relative to the base price.
func NewMarket(name, region string, preference map[string]float64, tierWeight map[QualityTier]float64, priceFactor float64) *Market {
	prefs := make(map[string]float64, len(preference))
	for model, share := range preference {
		prefs[model] = share
	}
	weights := make(map[QualityTier]float64, len(tierWeight))
	for tier, w := range tierWeight {
		weights[tier] = w
	}
	return &Market{
		name:        name,
		region:      region,
		preference:  prefs,
		tierWeight:  weights,
		priceFactor: priceFactor,
	}
}

func (m *Market) Name() string {
	return m.name
}

func (m *Market) Region() string {
	return m.region
}

// Preference returns the demand share for a model (zero if unknown)
func (m *Market) Preference(model string) float64 {
	return m.preference[model]
}

// TierWeight returns the demand multiplier for a quality tier
func (m *Market) TierWeight(tier QualityTier) float64 {
	if w, ok := m.tierWeight[tier]; ok {
		return w
	}
	return 1.0
}

// PriceFactor returns the market's price adjustment factor
func (m *Market) PriceFactor() float64 {
	return m.priceFactor
}
