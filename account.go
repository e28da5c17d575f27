package kalshi

// AccountBalance is a point-in-time reading of the account: cash on hand
// and the value tied up in open positions.
type AccountBalance struct {
	Cash          Money
	OpenPositions Money
}

// PortfolioTotal is cash plus open exposure.
func (a AccountBalance) PortfolioTotal() Money { return a.Cash.Add(a.OpenPositions) }

// NewAccountBalance resolves the balance record and the open event position
// records into a snapshot.
//
// Cash comes from the balance endpoint in integer cents. Open exposure is
// the sum over event positions, preferring the exposure figure and falling
// back to the position's total cost; both exist as dollar strings and, in
// older revisions, as cent integers.
func NewAccountBalance(balance Record, positions []Record) AccountBalance {
	var a AccountBalance
	if m, ok := balance.cents("balance", "balance_cents"); ok {
		a.Cash = m
	} else if m, ok := balance.dollars("balance_dollars"); ok {
		a.Cash = m
	}
	var exposure Money
	for _, p := range positions {
		if m, ok := p.dollars("event_exposure_dollars", "total_cost_dollars"); ok {
			exposure = exposure.Add(m)
			continue
		}
		if m, ok := p.cents("event_exposure", "total_cost"); ok {
			exposure = exposure.Add(m)
		}
	}
	a.OpenPositions = floorAtZero(exposure)
	return a
}

// OpenPositionsFromTotals is the fallback policy when no position records
// are available: exposure derived as portfolio total minus cash. Derived
// exposure from two independently-sourced totals can come out negative;
// that is a data artifact, not a short position, so it is floored at zero.
func OpenPositionsFromTotals(portfolioTotal, cash Money) Money {
	return floorAtZero(portfolioTotal.Sub(cash))
}

func floorAtZero(m Money) Money {
	if m.IsNegative() {
		return Money{}
	}
	return m
}
