package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is an immutable ledger record of a single cash movement.
// Amounts are signed: positive for income, negative for expenses.
type Entry struct {
	id            uuid.UUID
	month         int
	timestamp     time.Time
	category      Category
	amount        decimal.Decimal
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
	description   string
}

// NewEntry creates a ledger entry with validation
func NewEntry(
	month int,
	timestamp time.Time,
	category Category,
	amount decimal.Decimal,
	balanceBefore decimal.Decimal,
	balanceAfter decimal.Decimal,
	description string,
) (*Entry, error) {
	if month < 1 {
		return nil, &ErrInvalidEntry{Field: "month", Reason: "month must be at least 1"}
	}
	if !category.IsValid() {
		return nil, &ErrInvalidEntry{Field: "category", Reason: fmt.Sprintf("invalid category: %s", category)}
	}
	if amount.IsZero() {
		return nil, &ErrInvalidEntry{Field: "amount", Reason: "amount cannot be zero"}
	}
	if category.IsIncome() && amount.IsNegative() {
		return nil, &ErrInvalidEntry{Field: "amount", Reason: "income entries must have a positive amount"}
	}
	if category.IsExpense() && amount.IsPositive() {
		return nil, &ErrInvalidEntry{Field: "amount", Reason: "expense entries must have a negative amount"}
	}

	e := &Entry{
		id:            uuid.New(),
		month:         month,
		timestamp:     timestamp,
		category:      category,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		description:   description,
	}

	if err := e.validateBalance(); err != nil {
		return nil, err
	}
	return e, nil
}

// ReconstructEntry rebuilds an entry from persistence, bypassing validation
func ReconstructEntry(
	id uuid.UUID,
	month int,
	timestamp time.Time,
	category Category,
	amount decimal.Decimal,
	balanceBefore decimal.Decimal,
	balanceAfter decimal.Decimal,
	description string,
) *Entry {
	return &Entry{
		id:            id,
		month:         month,
		timestamp:     timestamp,
		category:      category,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		description:   description,
	}
}

func (e *Entry) validateBalance() error {
	expected := e.balanceBefore.Add(e.amount)
	if !e.balanceAfter.Equal(expected) {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: e.balanceBefore,
			Amount:        e.amount,
			BalanceAfter:  e.balanceAfter,
			Expected:      expected,
		}
	}
	return nil
}

// Getters (all fields are immutable)

func (e *Entry) ID() uuid.UUID {
	return e.id
}

func (e *Entry) Month() int {
	return e.month
}

func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

func (e *Entry) Category() Category {
	return e.category
}

func (e *Entry) Amount() decimal.Decimal {
	return e.amount
}

func (e *Entry) BalanceBefore() decimal.Decimal {
	return e.balanceBefore
}

func (e *Entry) BalanceAfter() decimal.Decimal {
	return e.balanceAfter
}

func (e *Entry) Description() string {
	return e.description
}

// IsIncome returns true if the entry represents income
func (e *Entry) IsIncome() bool {
	return e.amount.IsPositive()
}

// IsExpense returns true if the entry represents an expense
func (e *Entry) IsExpense() bool {
	return e.amount.IsNegative()
}

// String provides a human-readable representation
func (e *Entry) String() string {
	return fmt.Sprintf("Entry[month=%d, category=%s, amount=%s, balance=%s->%s]",
		e.month, e.category, e.amount, e.balanceBefore, e.balanceAfter)
}
