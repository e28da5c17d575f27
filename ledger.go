package kalshi

import "sort"

// Point is one entry of the cumulative realized P&L series.
type Point struct {
	TS         int64 `json:"ts"`
	Cumulative Money `json:"cumulative"`
}

// Ledger folds the settled markets into realized figures and a profit curve.
type Ledger struct {
	// RealizedPnL is the sum of every settlement's cash change.
	RealizedPnL Money
	// CashIn is the sum of positive cash changes, CashOut the absolute sum
	// of negative ones.
	CashIn  Money
	CashOut Money
	// Series is the running realized P&L over time, non-decreasing in TS.
	// Settlements without a resolvable timestamp count toward the running
	// total but get no point on the curve.
	Series []Point
}

// NewLedger computes the settlement ledger. Input order does not matter:
// settlements are stably sorted by resolved timestamp, with timestamp-less
// ones moved to the end, so paginated or retried batches from the exchange
// reconcile to the same result.
func NewLedger(settlements []Settlement) Ledger {
	sorted := make([]Settlement, len(settlements))
	copy(sorted, settlements)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasTS && b.HasTS {
			return a.TS < b.TS
		}
		// Timestamped entries sort before absent ones; ties keep input order.
		return a.HasTS && !b.HasTS
	})

	var ledger Ledger
	for _, s := range sorted {
		if !s.HasCash {
			continue
		}
		ledger.RealizedPnL = ledger.RealizedPnL.Add(s.CashChange)
		if s.CashChange.IsPositive() {
			ledger.CashIn = ledger.CashIn.Add(s.CashChange)
		} else if s.CashChange.IsNegative() {
			ledger.CashOut = ledger.CashOut.Add(s.CashChange.Neg())
		}
		if s.HasTS {
			ledger.Series = append(ledger.Series, Point{TS: s.TS, Cumulative: ledger.RealizedPnL})
		}
	}
	return ledger
}

// ReturnRate is the realized P&L relative to the capital deployed, 0 when
// nothing was invested.
func (l Ledger) ReturnRate(totalInvested Money) Percent {
	return l.RealizedPnL.Over(totalInvested)
}
