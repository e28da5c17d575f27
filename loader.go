package kalshi

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file decodes the collaborator's JSON into raw records. The engine
// does not fetch anything itself; whatever pulled the data from the
// exchange hands it over here, either as a bare JSON array or still inside
// the API response envelope (e.g. {"fills": [...], "cursor": ...}).

// DecodeRecords reads a list of records. When the payload is an object
// instead of an array, the list is looked up under the candidate keys, in
// order.
func DecodeRecords(r io.Reader, keys ...string) ([]Record, error) {
	var payload any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot decode records: %w", err)
	}
	switch v := payload.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		for _, key := range keys {
			list, ok := v[key].([]any)
			if !ok {
				continue
			}
			return toRecords(list)
		}
		return nil, fmt.Errorf("no record list under any of %q", keys)
	}
	return nil, fmt.Errorf("records payload is neither a list nor an object but %T", payload)
}

func toRecords(list []any) ([]Record, error) {
	records := make([]Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is not an object but %T", i, item)
		}
		records = append(records, Record(obj))
	}
	return records, nil
}

// DecodeRecord reads a single record, unwrapping the envelope keys the same
// way (e.g. {"balance": 4500} read directly, or nested under "balance").
func DecodeRecord(r io.Reader, keys ...string) (Record, error) {
	var payload map[string]any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot decode record: %w", err)
	}
	for _, key := range keys {
		if obj, ok := payload[key].(map[string]any); ok {
			return Record(obj), nil
		}
	}
	return Record(payload), nil
}

// Since keeps the records whose resolved timestamp is at or after minTS
// (epoch milliseconds). Records without a resolvable timestamp are dropped:
// a lookback window cannot place them. A minTS of zero or less keeps
// everything.
func Since(records []Record, minTS int64) []Record {
	if minTS <= 0 {
		return records
	}
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		ts, ok := r.timestamp()
		if !ok || ts < minTS {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
