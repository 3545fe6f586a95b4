package catalog

import "fmt"

// QualityTier is the finish level a bicycle is produced at
type QualityTier string

const (
	TierBudget   QualityTier = "budget"
	TierStandard QualityTier = "standard"
	TierPremium  QualityTier = "premium"
)

// AllTiers returns the tiers from cheapest to most expensive
func AllTiers() []QualityTier {
	return []QualityTier{TierBudget, TierStandard, TierPremium}
}

// IsValid checks if the tier is a known value
func (t QualityTier) IsValid() bool {
	switch t {
	case TierBudget, TierStandard, TierPremium:
		return true
	}
	return false
}

func (t QualityTier) String() string {
	return string(t)
}

// ParseTier converts a string into a QualityTier
func ParseTier(s string) (QualityTier, error) {
	t := QualityTier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid quality tier: %s", s)
	}
	return t, nil
}
