package components

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatTimestamp renders ts relative to now ("3 minutes ago").
func FormatTimestamp(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(ts, now, "ago", "from now")
}
