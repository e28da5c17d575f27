package kalshi

import "testing"

func TestRecordProbe(t *testing.T) {
	r := Record{"count": float64(7), "price": nil, "side": "yes"}

	t.Run("present value", func(t *testing.T) {
		v, ok := r.probe("count")
		if !ok || v.(float64) != 7 {
			t.Errorf("probe(count) = %v, %v", v, ok)
		}
	})

	t.Run("null is absent", func(t *testing.T) {
		if _, ok := r.probe("price"); ok {
			t.Error("probe(price) should treat null as absent")
		}
	})

	t.Run("ordered candidates", func(t *testing.T) {
		v, ok := r.probe("size", "count")
		if !ok || v.(float64) != 7 {
			t.Errorf("probe(size, count) = %v, %v", v, ok)
		}
	})

	t.Run("all absent", func(t *testing.T) {
		if _, ok := r.probe("missing", "also_missing"); ok {
			t.Error("probe() on absent fields should report absence")
		}
	})
}

func TestRecordMoney(t *testing.T) {
	r := Record{
		"balance":          float64(4500),
		"cash_change":      2.5,
		"exposure_dollars": "12.34",
		"bad_dollars":      "12,34",
	}

	if got, ok := r.cents("balance"); !ok || !got.Equal(M(45)) {
		t.Errorf("cents(balance) = %v, %v, want $45.00", got, ok)
	}
	if got, ok := r.dollars("cash_change"); !ok || !got.Equal(M(2.5)) {
		t.Errorf("dollars(cash_change) = %v, %v, want $2.50", got, ok)
	}
	if got, ok := r.dollars("exposure_dollars"); !ok || !got.Equal(M(12.34)) {
		t.Errorf("dollars(exposure_dollars) = %v, %v, want $12.34", got, ok)
	}
	if _, ok := r.dollars("bad_dollars"); ok {
		t.Error("dollars(bad_dollars) should treat a malformed string as absent")
	}
	if _, ok := r.cents("missing"); ok {
		t.Error("cents(missing) should be absent")
	}
}
