// Package clock provides an injectable wall-clock source so commit
// timestamps are deterministic in tests.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock, normalized to UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time { return time.Now().UTC() }

// ISO8601 formats t the way project.json stores dates: millisecond
// precision, UTC, trailing "Z".
func ISO8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
