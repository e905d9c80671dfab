package models

import "time"

// DigestSnapshot is the persisted top-10 ranking for one calendar day.
// Once written for a dateKey it is never recomputed.
type DigestSnapshot struct {
	DateKey string       `json:"dateKey"`
	Items   []DigestItem `json:"items"`
}

type DigestItem struct {
	ID         string `json:"id"`
	MatchScore int    `json:"matchScore"`
}

const dateKeyLayout = "2006-01-02"

// DateKeyFor renders t's local calendar date as a digest key.
func DateKeyFor(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey is the inverse of DateKeyFor.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}
