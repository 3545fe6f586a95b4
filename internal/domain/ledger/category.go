package ledger

import "fmt"

// Category represents the cash flow category for financial reporting
type Category string

const (
	// CategoryMaterials represents expenses for purchased components
	CategoryMaterials Category = "MATERIALS"

	// CategoryLabor represents hourly wages paid for production
	CategoryLabor Category = "LABOR"

	// CategoryTransfer represents inventory transfer fees
	CategoryTransfer Category = "TRANSFER"

	// CategorySalaries represents monthly staff salaries
	CategorySalaries Category = "SALARIES"

	// CategoryShipping represents transport costs to markets
	CategoryShipping Category = "SHIPPING"

	// CategoryRent represents warehouse rent
	CategoryRent Category = "RENT"

	// CategorySales represents income from sold bicycles
	CategorySales Category = "SALES"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryMaterials,
		CategoryLabor,
		CategoryTransfer,
		CategorySalaries,
		CategoryShipping,
		CategoryRent,
		CategorySales,
	}
}

// String returns the string representation of the Category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryMaterials,
		CategoryLabor,
		CategoryTransfer,
		CategorySalaries,
		CategoryShipping,
		CategoryRent,
		CategorySales:
		return true
	default:
		return false
	}
}

// IsIncome returns true if the category represents income
func (c Category) IsIncome() bool {
	return c == CategorySales
}

// IsExpense returns true if the category represents an expense
func (c Category) IsExpense() bool {
	return !c.IsIncome()
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
