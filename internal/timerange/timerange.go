// Package timerange converts shift time ranges such as "10:30 - 15:00" to and
// from their start/end tokens.
package timerange

import (
	"regexp"
	"strconv"
	"strings"
)

// Dash marks an unworked shift or a zero meal count in a grid cell.
const Dash = "-"

var rangePattern = regexp.MustCompile(`^\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// Format returns "start - end", or Dash when either side is missing.
func Format(start, end string) string {
	if start == "" || end == "" {
		return Dash
	}
	return start + " - " + end
}

// Parse extracts the start and end tokens verbatim. Anything that does not look
// like a range (including Dash and the empty string) yields two empty strings.
func Parse(text string) (string, string) {
	if text == "" || text == Dash {
		return "", ""
	}

	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// DurationHours returns (end - start) in hours. There is no midnight rollover:
// a shift ending at "00:00" yields a negative duration. Empty or malformed
// tokens yield 0.
func DurationHours(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}

	startMinutes, ok := minutes(start)
	if !ok {
		return 0
	}
	endMinutes, ok := minutes(end)
	if !ok {
		return 0
	}

	return float64(endMinutes-startMinutes) / 60
}

// minutes converts "H:MM" or "HH:MM" to minutes since midnight.
func minutes(token string) (int, bool) {
	h, m, found := strings.Cut(token, ":")
	if !found {
		return 0, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, false
	}

	return hours*60 + mins, true
}
