package util

import (
	"time"
)

// isoLayout matches the microsecond ISO-8601 form the stored created_at values use.
const isoLayout = "2006-01-02T15:04:05.000000"

// ISOTimestamp formats t in UTC without a zone suffix.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ParseISOTimestamp is the inverse of ISOTimestamp.
func ParseISOTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(isoLayout, s, time.UTC)
}
