// Package renderer turns reconciled account state into markdown reports
// for the terminal.
package renderer

import "time"

// day formats an epoch-milliseconds timestamp as a UTC calendar day.
func day(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
