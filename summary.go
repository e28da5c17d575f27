package kalshi

// openPositionsEpsilon is the exposure below which the account is treated
// as flat: at or under this, all profit must read as realized, whatever
// the arithmetic difference between net profit and realized P&L says.
// Stale exposure data or float noise upstream can otherwise leak a small
// phantom "unrealized" figure into the summary.
const openPositionsEpsilon = 1e-6

// PortfolioSummary is the full reconciled state of the account, produced
// fresh on every invocation. It is one explicit structure built once from
// named fields, never accumulated piecemeal, so the output contract can
// be audited in a single place.
type PortfolioSummary struct {
	Account AccountBalance

	CashFlow CashFlow
	Ledger   Ledger

	ReturnRate Percent

	// TotalDeposits is externally supplied configuration; it cannot be
	// derived from the exchange.
	TotalDeposits    Money
	NetProfit        Money // portfolio total minus deposits
	NetProfitPercent Percent
	UnrealizedPnL    Money
}

// NewSummary reconciles the account: raw fill and settlement records, the
// balance snapshot, and the configured total deposits, into one summary.
//
// This is a pure transform. It keeps no state between invocations, does no
// I/O, and never fails: incomplete records degrade field by field as
// documented on the individual calculators.
func NewSummary(fills, settlements []Record, account AccountBalance, totalDeposits Money) *PortfolioSummary {
	resolvedFills := make([]Fill, 0, len(fills))
	for _, r := range fills {
		resolvedFills = append(resolvedFills, NewFill(r))
	}
	resolvedSettlements := make([]Settlement, 0, len(settlements))
	for _, r := range settlements {
		resolvedSettlements = append(resolvedSettlements, NewSettlement(r))
	}

	s := &PortfolioSummary{
		Account:       account,
		CashFlow:      NewCashFlow(resolvedFills),
		Ledger:        NewLedger(resolvedSettlements),
		TotalDeposits: totalDeposits,
	}
	s.ReturnRate = s.Ledger.ReturnRate(s.CashFlow.TotalInvested)

	s.NetProfit = account.PortfolioTotal().Sub(totalDeposits)
	s.NetProfitPercent = s.NetProfit.Over(totalDeposits)

	// With no capital at risk everything is realized; see openPositionsEpsilon.
	if account.OpenPositions.AsFloat() > openPositionsEpsilon {
		s.UnrealizedPnL = s.NetProfit.Sub(s.Ledger.RealizedPnL)
	}
	return s
}

// MarshalJSON serializes the summary for the dashboard, with a fixed field
// order and every money figure as a plain number in dollars.
func (s *PortfolioSummary) MarshalJSON() ([]byte, error) {
	series := s.Ledger.Series
	if series == nil {
		series = []Point{}
	}
	var account jsonObjectWriter
	account.Append("cash", s.Account.Cash).
		Append("positions_value", s.Account.OpenPositions).
		Append("portfolio_total", s.Account.PortfolioTotal())

	var w jsonObjectWriter
	w.Append("total_invested", s.CashFlow.TotalInvested).
		Append("reinvested", s.CashFlow.Reinvested).
		Append("cash_invested", s.CashFlow.CashInvested).
		Append("realized_pnl", s.Ledger.RealizedPnL).
		Append("return_rate", float64(s.ReturnRate)).
		Append("cash_in", s.Ledger.CashIn).
		Append("cash_out", s.Ledger.CashOut).
		Append("cumulative_series", series).
		Append("total_deposits", s.TotalDeposits).
		Append("net_profit", s.NetProfit).
		Append("net_profit_percent", float64(s.NetProfitPercent)).
		Append("unrealized_pnl", s.UnrealizedPnL).
		Append("account", &account)
	return w.MarshalJSON()
}
