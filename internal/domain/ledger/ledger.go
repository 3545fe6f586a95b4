package ledger

import "github.com/shopspring/decimal"

// Ledger is an append-only record of all cash movements of a company
type Ledger struct {
	entries []*Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// RestoreLedger rebuilds a ledger from persisted entries
func RestoreLedger(entries []*Entry) *Ledger {
	l := NewLedger()
	l.entries = append(l.entries, entries...)
	return l
}

// Append records an entry. Entries are never modified or removed.
func (l *Ledger) Append(entry *Entry) {
	l.entries = append(l.entries, entry)
}

// Entries returns all entries in recording order
func (l *Ledger) Entries() []*Entry {
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// MonthEntries returns the entries recorded for a given month
func (l *Ledger) MonthEntries(month int) []*Entry {
	var out []*Entry
	for _, e := range l.entries {
		if e.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// MonthTotals sums amounts per category for a given month
func (l *Ledger) MonthTotals(month int) map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, e := range l.entries {
		if e.Month() != month {
			continue
		}
		totals[e.Category()] = totals[e.Category()].Add(e.Amount())
	}
	return totals
}

// CategoryTotals sums amounts per category across all months
func (l *Ledger) CategoryTotals() map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, e := range l.entries {
		totals[e.Category()] = totals[e.Category()].Add(e.Amount())
	}
	return totals
}

// MonthNet returns income minus expenses for a given month
func (l *Ledger) MonthNet(month int) decimal.Decimal {
	net := decimal.Zero
	for _, e := range l.entries {
		if e.Month() == month {
			net = net.Add(e.Amount())
		}
	}
	return net
}

// Len returns the number of recorded entries
func (l *Ledger) Len() int {
	return len(l.entries)
}
