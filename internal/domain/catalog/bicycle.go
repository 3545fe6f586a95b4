package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bicycle is a producible model with its bill of materials and labor needs
type Bicycle struct {
	name           string
	parts          map[Category]string
	skilledHours   float64
	unskilledHours float64
	footprint      float64
	basePrice      decimal.Decimal
}

// NewBicycle creates a bicycle model. The parts map names the required
// component per category; models without a motor simply omit the entry.
func NewBicycle(name string, parts map[Category]string, skilledHours, unskilledHours, footprint float64, basePrice decimal.Decimal) *Bicycle {
	copied := make(map[Category]string, len(parts))
	for cat, part := range parts {
		copied[cat] = part
	}
	return &Bicycle{
		name:           name,
		parts:          copied,
		skilledHours:   skilledHours,
		unskilledHours: unskilledHours,
		footprint:      footprint,
		basePrice:      basePrice,
	}
}

func (b *Bicycle) Name() string {
	return b.name
}

// Part returns the component name required for the category, if any
func (b *Bicycle) Part(category Category) (string, bool) {
	part, ok := b.parts[category]
	return part, ok
}

// Parts returns the required components in assembly order
func (b *Bicycle) Parts() []string {
	parts := make([]string, 0, len(b.parts))
	for _, cat := range AllCategories() {
		if part, ok := b.parts[cat]; ok {
			parts = append(parts, part)
		}
	}
	return parts
}

// RequiresMotor reports whether the model needs a motor component
func (b *Bicycle) RequiresMotor() bool {
	_, ok := b.parts[CategoryMotor]
	return ok
}

func (b *Bicycle) SkilledHours() float64 {
	return b.skilledHours
}

func (b *Bicycle) UnskilledHours() float64 {
	return b.unskilledHours
}

// Footprint returns the storage space one finished bicycle occupies
func (b *Bicycle) Footprint() float64 {
	return b.footprint
}

// BasePrice returns the standard-tier list price
func (b *Bicycle) BasePrice() decimal.Decimal {
	return b.basePrice
}

// ItemKey builds the inventory key for a finished bicycle at a tier
func ItemKey(model string, tier QualityTier) string {
	return fmt.Sprintf("%s:%s", model, tier)
}

// SplitItemKey decomposes a finished-bicycle item key into model and tier.
// The third return value is false for raw component keys.
func SplitItemKey(item string) (string, QualityTier, bool) {
	idx := strings.LastIndex(item, ":")
	if idx < 0 {
		return "", "", false
	}
	tier := QualityTier(item[idx+1:])
	if !tier.IsValid() {
		return "", "", false
	}
	return item[:idx], tier, true
}
