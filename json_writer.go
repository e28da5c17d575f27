package kalshi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object with a fixed field order, so the
// summary's output contract stays auditable: fields appear exactly where
// the documentation says they do, and a missing field is a diff, not a
// silent drift.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// Append adds a key-value pair; the value goes through json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	b, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal field %q: %w", key, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	fmt.Fprintf(&w.buf, "%q:", key)
	w.buf.Write(b)
	return w
}

// Optional appends the pair only when the value is not nil.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if value == nil {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON wraps the accumulated fields in braces. It satisfies
// json.Marshaler.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	final := make([]byte, 0, w.buf.Len()+2)
	final = append(final, '{')
	final = append(final, w.buf.Bytes()...)
	final = append(final, '}')
	return final, nil
}
