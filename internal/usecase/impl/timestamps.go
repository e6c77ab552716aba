package impl

import "time"

// storedTime normalizes t to the UTC, microsecond-precision value the store keeps,
// so a created resource reads back exactly as it was returned.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
