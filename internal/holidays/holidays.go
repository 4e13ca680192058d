// Package holidays is the region-keyed holiday lookup consumed by the calendar
// package. It carries a small built-in table of fixed-date and Easter-relative
// public holidays per region; unknown regions resolve to "no holidays known".
package holidays

import (
	"sort"
	"time"
)

// Source answers holiday-membership queries. The zero value is ready to use.
type Source struct{}

// New returns a holiday source backed by the built-in region tables.
func New() *Source { return &Source{} }

// rule yields the holidays of one region for a given year, as month/day pairs
// resolved to dates in UTC.
type rule func(year int) []time.Time

var regions = map[string]rule{
	"US": usHolidays,
	"GB": gbHolidays,
	"DE": deHolidays,
	"FR": frHolidays,
	"AU": auHolidays,
}

// Regions returns the supported region codes, sorted.
func (s *Source) Regions() []string {
	out := make([]string, 0, len(regions))
	for code := range regions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// IsHoliday reports whether t is a public holiday in region. Unknown regions
// always report false.
func (s *Source) IsHoliday(t time.Time, region string) bool {
	r, ok := regions[region]
	if !ok {
		return false
	}
	y, m, d := t.Date()
	for _, h := range r(y) {
		hy, hm, hd := h.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nthWeekday returns the nth (1-based) weekday of a month; n = -1 means last.
func nthWeekday(y int, m time.Month, wd time.Weekday, n int) time.Time {
	if n > 0 {
		d := date(y, m, 1)
		offset := (int(wd) - int(d.Weekday()) + 7) % 7
		return d.AddDate(0, 0, offset+(n-1)*7)
	}
	d := date(y, m+1, 1).AddDate(0, 0, -1)
	offset := (int(d.Weekday()) - int(wd) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// easterSunday computes Gregorian Easter via the anonymous computus.
func easterSunday(y int) time.Time {
	a := y % 19
	b := y / 100
	c := y % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(y, time.Month(month), day)
}

func usHolidays(y int) []time.Time {
	return []time.Time{
		date(y, time.January, 1),
		nthWeekday(y, time.January, time.Monday, 3),  // MLK Day
		nthWeekday(y, time.February, time.Monday, 3), // Presidents' Day
		nthWeekday(y, time.May, time.Monday, -1),     // Memorial Day
		date(y, time.June, 19),
		date(y, time.July, 4),
		nthWeekday(y, time.September, time.Monday, 1),   // Labor Day
		nthWeekday(y, time.November, time.Thursday, 4),  // Thanksgiving
		date(y, time.November, 11),
		date(y, time.December, 25),
	}
}

func gbHolidays(y int) []time.Time {
	easter := easterSunday(y)
	return []time.Time{
		date(y, time.January, 1),
		easter.AddDate(0, 0, -2), // Good Friday
		easter.AddDate(0, 0, 1),  // Easter Monday
		nthWeekday(y, time.May, time.Monday, 1),  // Early May bank holiday
		nthWeekday(y, time.May, time.Monday, -1), // Spring bank holiday
		nthWeekday(y, time.August, time.Monday, -1),
		date(y, time.December, 25),
		date(y, time.December, 26),
	}
}

func deHolidays(y int) []time.Time {
	easter := easterSunday(y)
	return []time.Time{
		date(y, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		date(y, time.May, 1),
		easter.AddDate(0, 0, 39), // Ascension
		easter.AddDate(0, 0, 50), // Whit Monday
		date(y, time.October, 3),
		date(y, time.December, 25),
		date(y, time.December, 26),
	}
}

func frHolidays(y int) []time.Time {
	easter := easterSunday(y)
	return []time.Time{
		date(y, time.January, 1),
		easter.AddDate(0, 0, 1),
		date(y, time.May, 1),
		date(y, time.May, 8),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 50),
		date(y, time.July, 14),
		date(y, time.August, 15),
		date(y, time.November, 1),
		date(y, time.November, 11),
		date(y, time.December, 25),
	}
}

func auHolidays(y int) []time.Time {
	easter := easterSunday(y)
	return []time.Time{
		date(y, time.January, 1),
		date(y, time.January, 26),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		date(y, time.April, 25), // ANZAC Day
		date(y, time.December, 25),
		date(y, time.December, 26),
	}
}
