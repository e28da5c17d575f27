package kalshi

import (
	"encoding/json"

	"github.com/PaesslerAG/jsonpath"
)

// Record is one raw activity record as decoded from the collaborator's JSON:
// a fill, a settlement, a balance reading, or an event position.
//
// The exchange does not keep field names stable across API revisions, so a
// Record is probed with an ordered list of candidate names rather than
// unmarshaled into a fixed struct. This probing is the single seam that has
// to change when the upstream schema changes; everything downstream only
// sees resolved values.
type Record map[string]any

// probe returns the first present, non-null value under any of the
// candidate field names.
func (r Record) probe(names ...string) (any, bool) {
	for _, name := range names {
		v, err := jsonpath.Get("$."+name, map[string]any(r))
		if err != nil || v == nil {
			continue
		}
		return v, true
	}
	return nil, false
}

// str resolves a text field.
func (r Record) str(names ...string) (string, bool) {
	v, ok := r.probe(names...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// number resolves a numeric field. Decoded JSON carries float64, but records
// built in code may carry native integer types, and some API revisions quote
// their numbers.
func (r Record) number(names ...string) (float64, bool) {
	v, ok := r.probe(names...)
	if !ok {
		return 0, false
	}
	return asNumber(v)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// cents resolves a money field denominated in integer cents.
func (r Record) cents(names ...string) (Money, bool) {
	n, ok := r.number(names...)
	if !ok {
		return Money{}, false
	}
	return Cents(int64(n)), true
}

// dollars resolves a money field denominated in dollars, accepting both
// numbers and the dollar strings some endpoints return.
func (r Record) dollars(names ...string) (Money, bool) {
	v, ok := r.probe(names...)
	if !ok {
		return Money{}, false
	}
	if s, isString := v.(string); isString {
		m, err := ParseDollars(s)
		if err != nil {
			return Money{}, false
		}
		return m, true
	}
	n, ok := asNumber(v)
	if !ok {
		return Money{}, false
	}
	return M(n), true
}
