package domain

import "time"

// LocalTimeLayout is the slot timestamp format the backend expects:
// wall-clock time exactly as entered, no zone designator. Converting
// through UTC would shift every generated slot by the local offset, so
// nothing in this module may call t.UTC() on slot times.
const LocalTimeLayout = "2006-01-02T15:04:05"

// FormatLocal renders t in the backend's local-time slot format,
// preserving the wall clock of whatever location t carries.
func FormatLocal(t time.Time) string {
	return t.Format(LocalTimeLayout)
}

// ParseLocal parses a backend slot timestamp. The result carries no
// zone information beyond time.Local placement for arithmetic.
func ParseLocal(s string) (time.Time, error) {
	return time.ParseInLocation(LocalTimeLayout, s, time.Local)
}
