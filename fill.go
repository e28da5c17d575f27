package kalshi

import "strings"

// Action classifies a fill as capital deployed or capital returned.
type Action int

const (
	Unknown Action = iota
	Buy
	Sell
)

// ParseAction derives the action from the record's text field,
// case-insensitively. Anything unrecognized is Unknown and is neither
// invested nor returned.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy
	case "sell":
		return Sell
	}
	return Unknown
}

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "unknown"
}

// Fill is one executed trade leg, immutable once built from its record.
type Fill struct {
	Contract  string
	Action    Action
	Quantity  int64
	UnitPrice Money
}

// NewFill resolves a raw fill record.
//
// Quantity has been seen under "size" and under "count" depending on the
// API revision. The unit price is either a dollar "price", a string
// "price_dollars", or the side-specific cent fields ("yes_price"/"no_price")
// picked by the fill's side.
func NewFill(r Record) Fill {
	f := Fill{}
	f.Contract, _ = r.str("ticker", "market_ticker", "contract_id")
	if s, ok := r.str("action"); ok {
		f.Action = ParseAction(s)
	}
	if n, ok := r.number("size", "count"); ok && n > 0 {
		f.Quantity = int64(n)
	}
	f.UnitPrice = unitPrice(r)
	return f
}

func unitPrice(r Record) Money {
	if m, ok := r.dollars("price", "price_dollars"); ok && !m.IsNegative() {
		return m
	}
	side, _ := r.str("side")
	if strings.EqualFold(side, "no") {
		if m, ok := r.cents("no_price"); ok && !m.IsNegative() {
			return m
		}
	}
	if m, ok := r.cents("yes_price"); ok && !m.IsNegative() {
		return m
	}
	return Money{}
}

// Notional is the fill's cash value: quantity times unit price.
func (f Fill) Notional() Money { return f.UnitPrice.MulInt(f.Quantity) }
