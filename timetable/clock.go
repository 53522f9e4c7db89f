package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a textual clock value (H:MM, HH:MM or HH:MM:SS) to a
// minute offset from midnight. Hours beyond 24 are kept as-is: overnight
// trips legitimately run past 24:00 and must sort after the evening ones.
// Malformed input reports ok=false rather than an error; callers degrade to
// a blank cell or a zero sort key.
func ParseClock(s string) (int, bool) {
	hours, minutes, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return hours*60 + minutes, true
}

// FormatClock renders a textual clock value as HH:MM with the hour and
// minute components zero-padded independently. Seconds are dropped;
// malformed input yields the empty string.
func FormatClock(s string) string {
	hours, minutes, ok := splitClock(s)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func splitClock(s string) (hours, minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hours, minutes, true
}
