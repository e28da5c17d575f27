package kalshi

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
)

func TestNewSummary_Scenario(t *testing.T) {
	// The canonical end-to-end scenario: one buy, one winning settlement,
	// everything settled back to cash.
	fills := []Record{
		{"ticker": "KXHIGHNY", "action": "Buy", "count": float64(10), "price": 0.40},
	}
	settlements := []Record{
		{"ticker": "KXHIGHNY", "cash_change": 5.0, "settled_time": "2025-01-15T00:00:00Z"},
	}
	account := AccountBalance{Cash: M(45), OpenPositions: M(0)}

	s := NewSummary(fills, settlements, account, M(40))

	if !s.CashFlow.TotalInvested.Equal(M(4)) {
		t.Errorf("TotalInvested = %v, want $4.00", s.CashFlow.TotalInvested)
	}
	if !s.CashFlow.Reinvested.IsZero() {
		t.Errorf("Reinvested = %v, want $0.00", s.CashFlow.Reinvested)
	}
	if !s.CashFlow.CashInvested.Equal(M(4)) {
		t.Errorf("CashInvested = %v, want $4.00", s.CashFlow.CashInvested)
	}
	if !s.Ledger.RealizedPnL.Equal(M(5)) {
		t.Errorf("RealizedPnL = %v, want $5.00", s.Ledger.RealizedPnL)
	}
	if !s.NetProfit.Equal(M(5)) {
		t.Errorf("NetProfit = %v, want $5.00", s.NetProfit)
	}
	// No open positions: all profit reads as realized.
	if !s.UnrealizedPnL.IsZero() {
		t.Errorf("UnrealizedPnL = %v, want $0.00", s.UnrealizedPnL)
	}
	if !s.ReturnRate.Equal(Percent(1.25)) {
		t.Errorf("ReturnRate = %v, want 125.00%%", s.ReturnRate)
	}
	if !s.NetProfitPercent.Equal(Percent(0.125)) {
		t.Errorf("NetProfitPercent = %v, want 12.50%%", s.NetProfitPercent)
	}
	if len(s.Ledger.Series) != 1 {
		t.Errorf("Series has %d points, want 1", len(s.Ledger.Series))
	}
}

func TestNewSummary_UnrealizedPolicy(t *testing.T) {
	settlements := []Record{{"cash_change": 2.0, "time": float64(1736899200)}}

	t.Run("flat account forces unrealized to zero", func(t *testing.T) {
		// Net profit (5) differs from realized (2); with no exposure the
		// difference must not surface as unrealized.
		account := AccountBalance{Cash: M(45), OpenPositions: M(0)}
		s := NewSummary(nil, settlements, account, M(40))
		if !s.UnrealizedPnL.IsZero() {
			t.Errorf("UnrealizedPnL = %v, want $0.00 on a flat account", s.UnrealizedPnL)
		}
	})

	t.Run("epsilon exposure still counts as flat", func(t *testing.T) {
		account := AccountBalance{Cash: M(45), OpenPositions: M(0.0000001)}
		s := NewSummary(nil, settlements, account, M(40))
		if !s.UnrealizedPnL.IsZero() {
			t.Errorf("UnrealizedPnL = %v, want $0.00 under epsilon exposure", s.UnrealizedPnL)
		}
	})

	t.Run("open exposure splits the profit", func(t *testing.T) {
		account := AccountBalance{Cash: M(35), OpenPositions: M(10)}
		s := NewSummary(nil, settlements, account, M(40))
		// net profit = 45 - 40 = 5; realized = 2; unrealized = 3.
		if !s.UnrealizedPnL.Equal(M(3)) {
			t.Errorf("UnrealizedPnL = %v, want $3.00", s.UnrealizedPnL)
		}
	})
}

func TestNewSummary_ZeroGuards(t *testing.T) {
	settlements := []Record{{"cash_change": 12.0, "time": float64(1736899200)}}
	account := AccountBalance{Cash: M(12)}

	s := NewSummary(nil, settlements, account, Money{})
	if s.ReturnRate != 0 {
		t.Errorf("ReturnRate = %v, want 0 with nothing invested", s.ReturnRate)
	}
	if s.NetProfitPercent != 0 {
		t.Errorf("NetProfitPercent = %v, want 0 with zero deposits", s.NetProfitPercent)
	}
}

func TestNewSummary_MissingTimestampSettlement(t *testing.T) {
	settlements := []Record{
		{"cash_change": 3.0, "settled_time": "2025-01-15T00:00:00Z"},
		{"cash_change": 3.0}, // no timestamp under any candidate name
	}
	s := NewSummary(nil, settlements, AccountBalance{}, M(40))

	if !s.Ledger.RealizedPnL.Equal(M(6)) {
		t.Errorf("RealizedPnL = %v, want $6.00 (both settlements count)", s.Ledger.RealizedPnL)
	}
	if !s.Ledger.CashIn.Equal(M(6)) {
		t.Errorf("CashIn = %v, want $6.00", s.Ledger.CashIn)
	}
	if len(s.Ledger.Series) != 1 {
		t.Errorf("Series has %d points, want 1 (only the timestamped settlement charts)", len(s.Ledger.Series))
	}
}

func TestNewSummary_PermutationInvariant(t *testing.T) {
	fills := []Record{
		{"action": "buy", "count": float64(10), "price": 0.50},
		{"action": "sell", "count": float64(4), "price": 0.60},
		{"action": "buy", "count": float64(2), "price": 0.30},
	}
	settlements := []Record{
		{"cash_change": 5.0, "time": float64(1736899200)},
		{"cash_change": -2.0, "time": float64(1736985600)},
		{"cash_change": 1.5},
	}
	account := AccountBalance{Cash: M(45), OpenPositions: M(3)}

	want, err := json.Marshal(NewSummary(fills, settlements, account, M(40)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		pf := append([]Record(nil), fills...)
		ps := append([]Record(nil), settlements...)
		rng.Shuffle(len(pf), func(i, j int) { pf[i], pf[j] = pf[j], pf[i] })
		rng.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })

		got, err := json.Marshal(NewSummary(pf, ps, account, M(40)))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(got) != string(want) {
			t.Fatalf("summary differs under input permutation:\ngot  %s\nwant %s", got, want)
		}
	}
}

func TestPortfolioSummaryMarshalJSON(t *testing.T) {
	fills := []Record{{"action": "buy", "count": float64(10), "price": 0.40}}
	settlements := []Record{{"cash_change": 5.0, "time": float64(1736899200)}}
	account := AccountBalance{Cash: M(45)}

	b, err := json.Marshal(NewSummary(fills, settlements, account, M(40)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := string(b)

	// The field order is part of the output contract.
	fields := []string{
		"total_invested", "reinvested", "cash_invested", "realized_pnl",
		"return_rate", "cash_in", "cash_out", "cumulative_series",
		"total_deposits", "net_profit", "net_profit_percent",
		"unrealized_pnl", "account",
	}
	last := -1
	for _, f := range fields {
		i := strings.Index(got, `"`+f+`"`)
		if i < 0 {
			t.Fatalf("field %q missing from %s", f, got)
		}
		if i < last {
			t.Errorf("field %q out of order", f)
		}
		last = i
	}

	if !strings.Contains(got, `"total_invested":4`) {
		t.Errorf("total_invested should be a plain number, got %s", got)
	}
	if !strings.Contains(got, `"cumulative_series":[{"ts":1736899200000,"cumulative":5`) {
		t.Errorf("unexpected series encoding in %s", got)
	}

	t.Run("empty series encodes as a list", func(t *testing.T) {
		b, err := json.Marshal(NewSummary(nil, nil, account, M(40)))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if !strings.Contains(string(b), `"cumulative_series":[]`) {
			t.Errorf("empty series must be [], not null: %s", b)
		}
	})
}
