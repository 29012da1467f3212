// Package dues computes month-by-month dues status from a member's join date,
// the monthly rate and the member's payment history.
//
// All functions are pure: malformed input degrades to a classification, never
// to an error.
package dues

import (
	"time"

	"github.com/shopspring/decimal"

	"duesmanager/internal/model"
)

// Status is the classification of a single month.
type Status string

const (
	StatusNotApplicable Status = "N/A"
	StatusPaid          Status = "Paid"
	StatusNotPaid       Status = "Not Paid"
)

// MonthEntry is one row of a yearly status view.
type MonthEntry struct {
	Month  string `json:"month"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// Summary holds the per-member numbers shown on the admin dashboard.
type Summary struct {
	Year        int             `json:"year"`
	Required    decimal.Decimal `json:"required"`
	PaidInYear  decimal.Decimal `json:"paid_in_year"`
	Carryover   decimal.Decimal `json:"carryover"`
	Outstanding decimal.Decimal `json:"outstanding"`
	MonthsPaid  int             `json:"months_paid"`
}

// startMonth returns the first billable month of year, or 0 if nothing is
// billable in that year.
func startMonth(join time.Time, year int) int {
	switch {
	case join.IsZero() || year < join.Year():
		return 0
	case year == join.Year():
		return int(join.Month())
	default:
		return 1
	}
}

// Required is the amount owed for year: rate times the months from the start
// month through December.
func Required(join time.Time, rate decimal.Decimal, year int) decimal.Decimal {
	start := startMonth(join, year)
	if start == 0 || !rate.IsPositive() {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(int64(13 - start)))
}

// paidByYear sums completed payments per dues year.
func paidByYear(payments []model.Payment) map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)
	for _, p := range payments {
		if p.Status != model.PaymentStatusCompleted {
			continue
		}
		y := p.EffectiveYear()
		if y == 0 {
			continue
		}
		totals[y] = totals[y].Add(p.Amount)
	}
	return totals
}

// Carryover is the credit entering year. Surplus chains year over year: each
// prior year's paid amount plus the credit it received, less what it required.
func Carryover(join time.Time, rate decimal.Decimal, payments []model.Payment, year int) decimal.Decimal {
	return carryover(join, rate, paidByYear(payments), year)
}

func carryover(join time.Time, rate decimal.Decimal, totals map[int]decimal.Decimal, year int) decimal.Decimal {
	// Nothing is required before the join year, so earlier payments carry in
	// full and the walk starts at the join year.
	start := year
	if !join.IsZero() && join.Year() < start {
		start = join.Year()
	}
	carry := decimal.Zero
	for y, paid := range totals {
		if y < start {
			carry = carry.Add(paid)
		}
	}

	for y := start; y < year; y++ {
		surplus := carry.Add(totals[y]).Sub(Required(join, rate, y))
		if surplus.IsNegative() {
			surplus = decimal.Zero
		}
		carry = surplus
	}
	return carry
}

// monthsCovered returns how many months the total pays for.
func monthsCovered(total, rate decimal.Decimal) int {
	if !rate.IsPositive() {
		return 12
	}
	n := total.Div(rate).Floor().IntPart()
	if n < 0 {
		return 0
	}
	if n > 12 {
		return 12
	}
	return int(n)
}

// MonthStatus classifies month (1-12) of year for a member.
func MonthStatus(join time.Time, rate decimal.Decimal, payments []model.Payment, month time.Month, year int) Status {
	if month < time.January || month > time.December {
		return StatusNotApplicable
	}
	return YearStatus(join, rate, payments, year)[month-1].Status
}

// YearStatus classifies all twelve months of year.
func YearStatus(join time.Time, rate decimal.Decimal, payments []model.Payment, year int) [12]MonthEntry {
	var out [12]MonthEntry
	totals := paidByYear(payments)
	start := startMonth(join, year)
	total := carryover(join, rate, totals, year).Add(totals[year])
	paidThrough := start + monthsCovered(total, rate) - 1

	for i := range out {
		m := i + 1
		out[i] = MonthEntry{Month: time.Month(m).String(), Year: year}
		switch {
		case start == 0 || m < start:
			out[i].Status = StatusNotApplicable
		case m <= paidThrough:
			out[i].Status = StatusPaid
		default:
			out[i].Status = StatusNotPaid
		}
	}
	return out
}

// Outstanding is what remains owed for year, never negative.
func Outstanding(join time.Time, rate decimal.Decimal, payments []model.Payment, year int) decimal.Decimal {
	return Summarize(join, rate, payments, year).Outstanding
}

// Summarize computes the dashboard numbers for year.
func Summarize(join time.Time, rate decimal.Decimal, payments []model.Payment, year int) Summary {
	totals := paidByYear(payments)
	s := Summary{
		Year:       year,
		Required:   Required(join, rate, year),
		PaidInYear: totals[year],
		Carryover:  carryover(join, rate, totals, year),
	}
	credit := s.Carryover.Add(s.PaidInYear)
	s.Outstanding = s.Required.Sub(credit)
	if s.Outstanding.IsNegative() {
		s.Outstanding = decimal.Zero
	}

	if start := startMonth(join, year); start > 0 {
		s.MonthsPaid = monthsCovered(credit, rate)
		if remaining := 13 - start; s.MonthsPaid > remaining {
			s.MonthsPaid = remaining
		}
	}
	return s
}

// TotalCompleted sums every completed payment regardless of year.
func TotalCompleted(payments []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == model.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}
