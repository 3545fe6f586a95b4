package simulation

import (
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// StaffChange applies hiring and firing deltas to both worker pools
type StaffChange struct {
	HireSkilled   int
	FireSkilled   int
	HireUnskilled int
	FireUnskilled int
}

// StaffResult reports the post-change headcounts and the salary charged
type StaffResult struct {
	Skilled     int
	Unskilled   int
	TotalSalary decimal.Decimal
}

// ManageStaff hires and fires workers. Headcounts are clamped to zero;
// firing more workers than employed empties the pool. The monthly salary
// for the post-change headcounts is charged immediately.
func (e *Engine) ManageStaff(change StaffChange) (*StaffResult, error) {
	if err := e.ensureActive(); err != nil {
		return nil, err
	}

	e.skilled += change.HireSkilled - change.FireSkilled
	e.unskilled += change.HireUnskilled - change.FireUnskilled
	if e.skilled < 0 {
		e.skilled = 0
	}
	if e.unskilled < 0 {
		e.unskilled = 0
	}

	salary := e.params.MonthlySalary[RoleSkilled].Mul(decimal.NewFromInt(int64(e.skilled))).
		Add(e.params.MonthlySalary[RoleUnskilled].Mul(decimal.NewFromInt(int64(e.unskilled))))
	if err := e.record(ledger.CategorySalaries, salary, "staff salaries"); err != nil {
		return nil, err
	}

	return &StaffResult{
		Skilled:     e.skilled,
		Unskilled:   e.unskilled,
		TotalSalary: salary,
	}, nil
}
