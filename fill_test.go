package kalshi

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"buy", Buy},
		{"Buy", Buy},
		{"SELL", Sell},
		{" sell ", Sell},
		{"", Unknown},
		{"transfer", Unknown},
	}
	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFill(t *testing.T) {
	t.Run("dollar price and count", func(t *testing.T) {
		f := NewFill(Record{"ticker": "KXHIGHNY", "action": "buy", "count": float64(10), "price": 0.40})
		if f.Contract != "KXHIGHNY" || f.Action != Buy || f.Quantity != 10 {
			t.Fatalf("unexpected fill %+v", f)
		}
		if !f.Notional().Equal(M(4)) {
			t.Errorf("Notional() = %v, want $4.00", f.Notional())
		}
	})

	t.Run("size wins over count", func(t *testing.T) {
		f := NewFill(Record{"action": "sell", "size": float64(3), "count": float64(99), "price": 1.0})
		if f.Quantity != 3 {
			t.Errorf("Quantity = %d, want 3", f.Quantity)
		}
	})

	t.Run("side picks the cent price", func(t *testing.T) {
		yes := NewFill(Record{"action": "buy", "count": float64(2), "side": "yes", "yes_price": float64(40), "no_price": float64(60)})
		if !yes.UnitPrice.Equal(M(0.40)) {
			t.Errorf("yes UnitPrice = %v, want $0.40", yes.UnitPrice)
		}
		no := NewFill(Record{"action": "buy", "count": float64(2), "side": "no", "yes_price": float64(40), "no_price": float64(60)})
		if !no.UnitPrice.Equal(M(0.60)) {
			t.Errorf("no UnitPrice = %v, want $0.60", no.UnitPrice)
		}
	})

	t.Run("missing everything", func(t *testing.T) {
		f := NewFill(Record{})
		if f.Action != Unknown || f.Quantity != 0 || !f.Notional().IsZero() {
			t.Errorf("empty record should resolve to a no-op fill, got %+v", f)
		}
	})
}
