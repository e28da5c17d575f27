package kalshi

import "testing"

func settled(cash float64, ts int64) Settlement {
	return Settlement{CashChange: M(cash), HasCash: true, TS: ts, HasTS: true}
}

func settledNoTS(cash float64) Settlement {
	return Settlement{CashChange: M(cash), HasCash: true}
}

func TestNewLedger(t *testing.T) {
	t.Run("series is rebuilt in time order", func(t *testing.T) {
		// Deliberately out of order, as paginated batches arrive.
		ledger := NewLedger([]Settlement{settled(3, 300), settled(-1, 100), settled(2, 200)})

		if !ledger.RealizedPnL.Equal(M(4)) {
			t.Errorf("RealizedPnL = %v, want $4.00", ledger.RealizedPnL)
		}
		if !ledger.CashIn.Equal(M(5)) {
			t.Errorf("CashIn = %v, want $5.00", ledger.CashIn)
		}
		if !ledger.CashOut.Equal(M(1)) {
			t.Errorf("CashOut = %v, want $1.00", ledger.CashOut)
		}

		wantTS := []int64{100, 200, 300}
		wantCumulative := []Money{M(-1), M(1), M(4)}
		if len(ledger.Series) != len(wantTS) {
			t.Fatalf("Series has %d points, want %d", len(ledger.Series), len(wantTS))
		}
		for i, p := range ledger.Series {
			if p.TS != wantTS[i] || !p.Cumulative.Equal(wantCumulative[i]) {
				t.Errorf("Series[%d] = {%d %v}, want {%d %v}", i, p.TS, p.Cumulative, wantTS[i], wantCumulative[i])
			}
		}
	})

	t.Run("missing timestamp counts toward totals but not the curve", func(t *testing.T) {
		ledger := NewLedger([]Settlement{settledNoTS(5), settled(5, 100)})
		if !ledger.RealizedPnL.Equal(M(10)) {
			t.Errorf("RealizedPnL = %v, want $10.00", ledger.RealizedPnL)
		}
		if !ledger.CashIn.Equal(M(10)) {
			t.Errorf("CashIn = %v, want $10.00", ledger.CashIn)
		}
		if len(ledger.Series) != 1 {
			t.Fatalf("Series has %d points, want 1", len(ledger.Series))
		}
		// The last point of the curve is the sum of the timestamped entries.
		if !ledger.Series[0].Cumulative.Equal(M(5)) {
			t.Errorf("Series[0].Cumulative = %v, want $5.00", ledger.Series[0].Cumulative)
		}
	})

	t.Run("missing cash change skips the record entirely", func(t *testing.T) {
		ledger := NewLedger([]Settlement{{TS: 100, HasTS: true}, settled(1, 200)})
		if !ledger.RealizedPnL.Equal(M(1)) {
			t.Errorf("RealizedPnL = %v, want $1.00", ledger.RealizedPnL)
		}
		if len(ledger.Series) != 1 {
			t.Errorf("Series has %d points, want 1 (cashless record is skipped, not zeroed)", len(ledger.Series))
		}
	})

	t.Run("stable order among equal timestamps", func(t *testing.T) {
		ledger := NewLedger([]Settlement{settled(1, 100), settled(2, 100)})
		if !ledger.Series[0].Cumulative.Equal(M(1)) || !ledger.Series[1].Cumulative.Equal(M(3)) {
			t.Errorf("ties must preserve input order, got %v then %v",
				ledger.Series[0].Cumulative, ledger.Series[1].Cumulative)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []Settlement{settled(3, 300), settled(-1, 100)}
		NewLedger(in)
		if in[0].TS != 300 || in[1].TS != 100 {
			t.Error("NewLedger must sort a copy, not the caller's slice")
		}
	})
}

func TestLedgerReturnRate(t *testing.T) {
	ledger := NewLedger([]Settlement{settled(12, 100)})

	if got := ledger.ReturnRate(M(48)); !got.Equal(Percent(0.25)) {
		t.Errorf("ReturnRate($48) = %v, want 25.00%%", got)
	}
	// Zero investment yields zero, never an error, never infinite.
	if got := ledger.ReturnRate(Money{}); got != 0 {
		t.Errorf("ReturnRate($0) = %v, want 0", got)
	}
	if got := ledger.ReturnRate(M(-1)); got != 0 {
		t.Errorf("ReturnRate(-$1) = %v, want 0", got)
	}
}
