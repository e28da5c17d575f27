package kalshi

// CashFlow decomposes the account's trading activity into capital deployed
// and capital returned.
//
// A naive sum of buys cannot tell money the user put in from money recycled
// out of earlier sales; the Reinvested/CashInvested split makes that
// distinction explicit.
type CashFlow struct {
	// TotalInvested is the notional of every buy fill.
	TotalInvested Money
	// TotalCashGenerated is the notional of every sell fill.
	TotalCashGenerated Money
	// Reinvested is the portion of buying funded by prior selling. It can
	// never exceed either side of the flow.
	Reinvested Money
	// CashInvested is the net new capital actually committed:
	// TotalInvested minus Reinvested, always >= 0.
	CashInvested Money
}

// NewCashFlow aggregates a list of fills, in any order. Fills with an
// Unknown action contribute to neither side.
func NewCashFlow(fills []Fill) CashFlow {
	var flow CashFlow
	for _, f := range fills {
		switch f.Action {
		case Buy:
			flow.TotalInvested = flow.TotalInvested.Add(f.Notional())
		case Sell:
			flow.TotalCashGenerated = flow.TotalCashGenerated.Add(f.Notional())
		}
	}
	flow.Reinvested = minMoney(flow.TotalInvested, flow.TotalCashGenerated)
	flow.CashInvested = flow.TotalInvested.Sub(flow.Reinvested)
	return flow
}
