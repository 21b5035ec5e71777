package sqlite

import "time"

// toEpochMillis converts t to milliseconds since the Unix epoch.
func toEpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// fromEpochMillis converts milliseconds since the Unix epoch to UTC time.
func fromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
