// Package biztime provides utilities for business time calculations.
// All storage and transport use UTC. The business timezone is only used
// for calculating date boundaries when presenting billing periods.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Sao_Paulo"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing with
// the default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddMonthsClamped adds n calendar months to t, clamping the day-of-month
// to the last valid day of the target month. Unlike time.AddDate, Jan 31
// plus one month yields Feb 28 (or Feb 29 in leap years) instead of
// rolling over into March.
func AddMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	// Normalize target year/month.
	m := int(month) - 1 + n
	targetYear := year + m/12
	targetMonth := time.Month(m%12 + 1)
	if m < 0 {
		// Go's integer division truncates toward zero; correct for
		// negative month offsets.
		targetYear = year + (m-11)/12
		targetMonth = time.Month((m%12+12)%12 + 1)
	}

	if last := lastDayOfMonth(targetYear, targetMonth); day > last {
		day = last
	}

	h, min, sec := t.Clock()
	return time.Date(targetYear, targetMonth, day, h, min, sec, t.Nanosecond(), t.Location())
}

// AddYearsClamped adds n calendar years to t, clamping Feb 29 to Feb 28 in
// non-leap target years.
func AddYearsClamped(t time.Time, n int) time.Time {
	return AddMonthsClamped(t, n*12)
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ToBizTimezone converts a UTC time to the business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
