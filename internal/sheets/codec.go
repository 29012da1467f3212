package sheets

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how dates are written back to the sheet (day/month/year).
const DateLayout = "02/01/2006"

// dateLayouts are tried in order when reading a date cell. Day-first layouts
// come before month-first ones because the sheet is maintained in a
// day/month/year locale.
var dateLayouts = []string{
	DateLayout,
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02",
	time.RFC3339,
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/06",
}

// ParseDate reads a date cell. It returns the zero time for empty or
// unparseable input.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate writes a date cell; the zero time becomes an empty cell.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseAmount reads a money cell, dropping currency symbols, thousands
// separators and spaces. Anything that still does not parse is zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount writes a money cell with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseBool reads a boolean cell written by hand or by the app.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "x":
		return true
	}
	return false
}

// FormatBool writes a boolean cell the way the sheet's checkbox columns expect.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Cell returns column i of row as a trimmed string, or "" when the row is
// shorter (the API omits trailing empty cells).
func Cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
