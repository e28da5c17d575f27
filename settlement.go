package kalshi

// Settlement is the cash effect of one market's final outcome being applied
// to the account. Immutable once built from its record.
type Settlement struct {
	Contract   string
	CashChange Money // signed: positive credits, negative debits
	HasCash    bool  // absent cash change means the record is skipped, not zeroed
	TS         int64 // epoch milliseconds
	HasTS      bool
}

// NewSettlement resolves a raw settlement record. The cash change has been
// seen in snake_case and camelCase across API revisions.
func NewSettlement(r Record) Settlement {
	s := Settlement{}
	s.Contract, _ = r.str("ticker", "market_ticker", "contract_id")
	s.CashChange, s.HasCash = r.dollars("cash_change", "cashChange")
	s.TS, s.HasTS = r.timestamp()
	return s
}
