package helpers

import "time"

// NowMillis returns the current wall-clock time as Unix milliseconds.
// Entity creation timestamps use this representation.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MillisToTime converts a Unix-milliseconds timestamp back to time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
