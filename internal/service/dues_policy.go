package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"duesmanager/internal/dues"
	"duesmanager/internal/model"
)

// DuesPolicy carries the dues settings shared by the services.
type DuesPolicy struct {
	MonthlyDue decimal.Decimal
	Currency   string
	// Now returns the current time; nil means time.Now.
	Now func() time.Time
}

func (p DuesPolicy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Money formats an amount with the currency symbol.
func (p DuesPolicy) Money(d decimal.Decimal) string {
	return p.Currency + d.StringFixed(2)
}

// apply recomputes a member's stored totals from their payment history for
// the current tracking year.
func (p DuesPolicy) apply(m *model.Member, payments []model.Payment) {
	year := p.now().Year()
	m.Year = year
	m.TotalPaid = dues.TotalCompleted(payments)
	m.Balance = dues.Outstanding(m.JoinDate, p.MonthlyDue, payments, year)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func groupByMember(payments []model.Payment) map[string][]model.Payment {
	out := make(map[string][]model.Payment)
	for _, p := range payments {
		email := normalizeEmail(p.MemberEmail)
		out[email] = append(out[email], p)
	}
	return out
}
