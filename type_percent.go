package kalshi

import "fmt"

// Percent is a plain ratio: 0.125 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", 100*float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", 100*float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
