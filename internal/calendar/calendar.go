// Package calendar converts between date ranges and working-day counts under a
// configurable exclusion policy. Holiday membership comes from an injected
// lookup so this package performs no holiday math itself. All functions are
// pure and safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/jask/ganttly/internal/model"
)

// ErrInvalidDate is returned when a date string does not parse. Callers are
// expected to surface it as a validation condition, not to treat the result as
// arithmetic output.
var ErrInvalidDate = errors.New("calendar: invalid date")

// ErrNoWorkingDays is returned when the exclusion policy rejects more than a
// full year of consecutive dates, which can only happen with a lookup that
// marks everything a holiday.
var ErrNoWorkingDays = errors.New("calendar: no working day within a year")

// HolidayLookup reports whether a date is a holiday in a region. An
// implementation that does not recognise the region must return false, which
// degrades the policy to "no holidays known".
type HolidayLookup interface {
	IsHoliday(t time.Time, region string) bool
}

// IsWorkingDay reports whether t survives the active exclusion policy.
func IsWorkingDay(t time.Time, cfg model.WorkingDaysConfig, lookup HolidayLookup) bool {
	switch t.Weekday() {
	case time.Saturday:
		if cfg.ExcludeSaturday {
			return false
		}
	case time.Sunday:
		if cfg.ExcludeSunday {
			return false
		}
	}
	if cfg.ExcludeHolidays && lookup != nil && lookup.IsHoliday(t, cfg.HolidayRegion) {
		return false
	}
	return true
}

// WorkingDays counts working days from start to end inclusive. Without active
// exclusions this is the plain inclusive calendar-day count and no iteration
// happens. An end before start counts zero days.
func WorkingDays(startISO, endISO string, cfg model.WorkingDaysConfig, lookup HolidayLookup) (int, error) {
	start, err := model.ParseDate(startISO)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, startISO)
	}
	end, err := model.ParseDate(endISO)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, endISO)
	}
	if end.Before(start) {
		return 0, nil
	}
	if !cfg.HasExclusions() {
		return model.DaysBetween(start, end) + 1, nil
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, cfg, lookup) {
			count++
		}
	}
	return count, nil
}

// AddWorkingDays returns the end date of a span that starts at startISO and
// contains count working days. Without active exclusions this is
// start+(count-1) calendar days. With exclusions, start itself counts as day
// one when it is a working day; the walk then advances a day at a time,
// consuming the counter only on working days. A count below one returns the
// start date unchanged.
func AddWorkingDays(startISO string, count int, cfg model.WorkingDaysConfig, lookup HolidayLookup) (string, error) {
	start, err := model.ParseDate(startISO)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, startISO)
	}
	if count <= 0 {
		return model.FormatDate(start), nil
	}
	if !cfg.HasExclusions() {
		return model.FormatDate(start.AddDate(0, 0, count-1)), nil
	}
	remaining := count
	idle := 0
	for d := start; ; d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, cfg, lookup) {
			remaining--
			idle = 0
			if remaining == 0 {
				return model.FormatDate(d), nil
			}
			continue
		}
		idle++
		if idle > 366 {
			return "", ErrNoWorkingDays
		}
	}
}
