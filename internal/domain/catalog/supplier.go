package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Supplier sells components at fixed prices with a known defect profile
type Supplier struct {
	name              string
	paymentTermDays   int
	deliveryDays      int
	defectProbability float64
	defectFraction    float64
	prices            map[string]decimal.Decimal
}

// NewSupplier creates a supplier. defectProbability is the chance a given
// order line contains defects, defectFraction the share of units rejected
// when it does.
func NewSupplier(name string, paymentTermDays, deliveryDays int, defectProbability, defectFraction float64, prices map[string]decimal.Decimal) *Supplier {
	copied := make(map[string]decimal.Decimal, len(prices))
	for component, price := range prices {
		copied[component] = price
	}
	return &Supplier{
		name:              name,
		paymentTermDays:   paymentTermDays,
		deliveryDays:      deliveryDays,
		defectProbability: defectProbability,
		defectFraction:    defectFraction,
		prices:            copied,
	}
}

func (s *Supplier) Name() string {
	return s.name
}

func (s *Supplier) PaymentTermDays() int {
	return s.paymentTermDays
}

func (s *Supplier) DeliveryDays() int {
	return s.deliveryDays
}

func (s *Supplier) DefectProbability() float64 {
	return s.defectProbability
}

func (s *Supplier) DefectFraction() float64 {
	return s.defectFraction
}

// Price returns the unit price for a component, if the supplier carries it
func (s *Supplier) Price(component string) (decimal.Decimal, bool) {
	price, ok := s.prices[component]
	return price, ok
}

// Components returns the carried component names in sorted order
func (s *Supplier) Components() []string {
	names := make([]string, 0, len(s.prices))
	for component := range s.prices {
		names = append(names, component)
	}
	sort.Strings(names)
	return names
}
