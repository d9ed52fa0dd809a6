// Package calendar converts between instants and days of the Solar Hijri
// calendar as observed in Tehran, and validates goal deadlines against the
// server-configured window.
//
// A local day is always turned back into an instant at its end (23:59:59
// Tehran time). Deadlines built by this package and the window check share
// that boundary.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	dom "Motiv/internal/domain"
)

var ErrInvalidDate = errors.New("invalid local date")

// Location is the zone local days are evaluated in.
var Location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		return time.FixedZone("IRST", 3*3600+30*60)
	}
	return loc
}

// Date is a day in the Solar Hijri calendar. Month is 1-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Valid reports whether d names an existing day.
func (d Date) Valid() bool {
	if !validYear(d.Year) || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= monthLength(d.Year, d.Month)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is an earlier day than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// ToLocal returns the local day containing t.
func ToLocal(t time.Time) Date {
	lt := t.In(Location)
	jy, jm, jd := d2j(g2d(lt.Year(), int(lt.Month()), lt.Day()))
	return Date{Year: jy, Month: jm, Day: jd}
}

// ToGregorian returns the end of local day d.
func ToGregorian(d Date) (time.Time, error) {
	if !d.Valid() {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	return EndOfDay(d), nil
}

// EndOfDay returns 23:59:59 Tehran time of day d. d must be valid.
func EndOfDay(d Date) time.Time {
	gy, gm, gd := d2g(j2d(d.Year, d.Month, d.Day))
	return time.Date(gy, time.Month(gm), gd, 23, 59, 59, 0, Location)
}

// FormatDate renders the local day of t as YYYY/MM/DD.
func FormatDate(t time.Time) string {
	return ToLocal(t).String()
}

// ParseDate reads "YYYY/MM/DD" or "YYYY-MM-DD". Persian and Arabic-Indic
// digits are accepted.
func ParseDate(s string) (Date, error) {
	s = normalizeDigits(strings.TrimSpace(s))
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

func rulesUsable(r dom.Rules) bool {
	return r.MinGoalHours > 0 && r.MaxGoalHours > 0 && r.MinGoalHours < r.MaxGoalHours
}

// IsDeadlineWindowValid reports whether the end of day lies strictly between
// now+MinGoalHours and now+MaxGoalHours. Missing or inconsistent rules make
// every day invalid.
func IsDeadlineWindowValid(day Date, rules dom.Rules, now time.Time) bool {
	if !rulesUsable(rules) || !day.Valid() {
		return false
	}
	return withinWindow(EndOfDay(day), rules, now)
}

func withinWindow(deadline time.Time, rules dom.Rules, now time.Time) bool {
	lo := now.Add(time.Duration(rules.MinGoalHours) * time.Hour)
	hi := now.Add(time.Duration(rules.MaxGoalHours) * time.Hour)
	return lo.Before(deadline) && deadline.Before(hi)
}

// Bounds returns the first and last selectable days for a new goal. ok is
// false when no day qualifies.
func Bounds(rules dom.Rules, now time.Time) (first, last Date, ok bool) {
	if !rulesUsable(rules) {
		return Date{}, Date{}, false
	}
	lt := now.In(Location)
	span := int(rules.MaxGoalHours/24) + 2
	for i := 0; i <= span; i++ {
		eod := time.Date(lt.Year(), lt.Month(), lt.Day()+i, 23, 59, 59, 0, Location)
		if !withinWindow(eod, rules, now) {
			continue
		}
		d := ToLocal(eod)
		if !ok {
			first, ok = d, true
		}
		last = d
	}
	return first, last, ok
}
