package service

import (
	"sort"
	"time"

	"duesmanager/internal/model"
)

// Celebration kinds.
const (
	CelebrationBirthday    = "birthday"
	CelebrationAnniversary = "anniversary"
)

// Celebration is an upcoming birthday or anniversary.
type Celebration struct {
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Date     time.Time `json:"date"`
	DaysAway int       `json:"days_away"`
	// Years is the age or number of years married on Date, when known.
	Years int `json:"years,omitempty"`
}

// nextOccurrence returns the first anniversary of d on or after today.
// 29 February falls on 28 February in common years.
func nextOccurrence(d, today time.Time) time.Time {
	at := func(year int) time.Time {
		day := d.Day()
		if d.Month() == time.February && day == 29 && !isLeap(year) {
			day = 28
		}
		return time.Date(year, d.Month(), day, 0, 0, 0, 0, time.UTC)
	}
	next := at(today.Year())
	if next.Before(today) {
		next = at(today.Year() + 1)
	}
	return next
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// startOfDay returns the calendar date of t as midnight UTC, so day
// differences are whole multiples of 24 hours.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// upcomingCelebrations lists birthdays and anniversaries falling within days
// of now. A window of 0 means today only.
func upcomingCelebrations(members []model.Member, now time.Time, days int) []Celebration {
	if days < 0 {
		days = 0
	}
	today := startOfDay(now)
	out := []Celebration{}
	add := func(m model.Member, kind string, d time.Time) {
		if d.IsZero() {
			return
		}
		next := nextOccurrence(d, today)
		away := int(next.Sub(today).Hours() / 24)
		if away > days {
			return
		}
		c := Celebration{Email: m.Email, Name: m.Name, Kind: kind, Date: next, DaysAway: away}
		if d.Year() > 1 && next.Year() > d.Year() {
			c.Years = next.Year() - d.Year()
		}
		out = append(out, c)
	}
	for _, m := range members {
		add(m, CelebrationBirthday, m.Birthday)
		add(m, CelebrationAnniversary, m.Anniversary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysAway != out[j].DaysAway {
			return out[i].DaysAway < out[j].DaysAway
		}
		return out[i].Name < out[j].Name
	})
	return out
}
