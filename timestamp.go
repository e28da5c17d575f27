package kalshi

import (
	"strings"
	"time"
)

// timestampFields are the candidate names a record may carry its timestamp
// under, in probing order.
var timestampFields = []string{"time", "ts", "created_time", "created_ts", "settled_time"}

// msThreshold separates "looks like milliseconds" from "looks like seconds":
// a numeric timestamp above 1e12 is already in milliseconds.
const msThreshold = 1_000_000_000_000

// timestamp resolves the record's timestamp to epoch milliseconds.
//
// A candidate that is present but unparsable counts as absent and probing
// moves on to the next name. When every candidate fails the timestamp is
// absent; callers must handle that explicitly. There is no "now" and no
// zero default: records without a timestamp are kept out of time-ordered
// structures but still count toward totals.
func (r Record) timestamp() (int64, bool) {
	for _, name := range timestampFields {
		v, ok := r.probe(name)
		if !ok {
			continue
		}
		if ms, ok := epochMillis(v); ok {
			return ms, true
		}
	}
	return 0, false
}

// epochMillis normalizes a single raw timestamp value of unknown shape.
func epochMillis(v any) (int64, bool) {
	if n, ok := asNumber(v); ok {
		if n > msThreshold {
			return int64(n), true
		}
		return int64(n * 1000), true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	// ISO-8601, with or without an explicit offset; a trailing Z means UTC.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
