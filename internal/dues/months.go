package dues

import (
	"strings"
	"time"
)

// ParseMonth resolves an English month name or three-letter abbreviation,
// case-insensitively. It returns 0 when name is not a month.
func ParseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m
		}
	}
	return 0
}

// MonthName returns the English name used in the Payments sheet.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return m.String()
}
