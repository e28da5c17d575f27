package kalshi

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact dollar amount on the Kalshi account.
//
// The exchange reports amounts in three encodings depending on the endpoint
// and the API revision: integer cents, float dollars, and dollar strings.
// All of them are normalized into this single type before any arithmetic,
// so the engine never mixes units.
type Money struct {
	value decimal.Decimal // in dollars
}

// M returns the Money for a dollar amount.
func M(dollars float64) Money { return Money{value: decimal.NewFromFloat(dollars)} }

// Cents returns the Money for an amount in integer cents.
func Cents(cents int64) Money { return Money{value: decimal.New(cents, -2)} }

// ParseDollars parses a decimal dollar string like "12.34".
func ParseDollars(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money           { return Money{value: m.value.Neg()} }
func (m Money) MulInt(n int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }

// Over returns the ratio m/n, or 0 when n is not strictly positive.
// Ratios in this package are never allowed to divide by zero.
func (m Money) Over(n Money) Percent {
	if !n.IsPositive() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64())
}

// minMoney returns the smaller of two amounts.
func minMoney(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// AsFloat returns the amount as a float64, for threshold comparisons only;
// accounting stays on the exact decimal value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String formats the amount as USD.
func (m Money) String() string {
	cur := money.GetCurrency(money.USD)
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).IntPart())
}

// SignedString is like String with an explicit sign; zero reads as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return "-" + m.Neg().String()
}

// MarshalJSON writes the amount as a bare number rounded to cents, which is
// what the summary consumers expect. decimal's own marshaler quotes the
// value, so the number is written directly.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(2).String()), nil
}
