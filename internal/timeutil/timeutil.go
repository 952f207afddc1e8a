// internal/timeutil/timeutil.go
// ------------------------------
// Helpers for converting between the service's wire time formats and
// time.Time. The API emits ISO-8601 timestamps with millisecond precision
// and a literal Z suffix, and reports rate limit resets as UNIX epoch
// seconds.
package timeutil

import "time"

// WireLayout is the timestamp format the API emits and accepts.
const WireLayout = "2006-01-02T15:04:05.000Z"

// Parse converts a wire timestamp string into a UTC time.Time.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(WireLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Format converts a time.Time into the wire timestamp format.
func Format(t time.Time) string {
	return t.UTC().Format(WireLayout)
}

// FromUnix converts a UNIX timestamp in seconds to a UTC time.Time.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
