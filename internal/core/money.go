// Package core holds the ledger domain: records, their enumerated tags and
// display labels, validation, and the civil date and time-of-day values the
// store persists as TEXT.
//
// Amounts are whole yen held in int64. There are no fractional amounts
// anywhere in the system.
package core

import "github.com/dustin/go-humanize"

// FormatYen renders a whole-yen amount with the currency sign and thousands
// separators, e.g. FormatYen(1234567) -> "¥1,234,567".
func FormatYen(amount int64) string {
	return "¥" + humanize.Comma(amount)
}
