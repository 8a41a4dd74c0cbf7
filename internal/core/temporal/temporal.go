// Package temporal resolves raw date and time-range input into a concrete search window
//
// Resolution order
// 1 a valid single-letter range code fully determines the window
// 2 otherwise free-text since/until dates are parsed per locale field order
// 3 parse failures degrade to fixed fallbacks, never errors
// 4 an inverted window is swapped so since <= until always holds
package temporal

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Window is a resolved [since, until] instant pair bounding a search by time
// either side may be nil meaning unbounded on that side
type Window struct {
	Since *time.Time
	Until *time.Time
}

// Input is the raw untrusted temporal portion of a search request
type Input struct {
	// TimeFilter is a compact range code: h=hour d=day w=week m=month y=year
	// anything else is treated as absent
	TimeFilter string

	// SinceDate and UntilDate are free-text dates like "8/20/2012"
	SinceDate string
	UntilDate string

	// Locale is a BCP 47 tag, blank means English
	Locale string
}

// DateOrder is the day/month field order used when parsing free-text dates
type DateOrder int

const (
	// MonthFirst parses 1/2/2006 as Jan 2
	MonthFirst DateOrder = iota
	// DayFirst parses 1/2/2006 as Feb 1
	DayFirst
)

const (
	layoutMonthFirst = "1/2/2006"
	layoutDayFirst   = "2/1/2006"
)

// english is the anchor for the month-first default
var english = language.MustParseBase("en")

// OrderFor maps a locale tag to its date field order
// English and unparseable tags get the month-first default, everything else day-first
func OrderFor(locale string) DateOrder {
	if strings.TrimSpace(locale) == "" {
		return MonthFirst
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return MonthFirst
	}
	base, _ := tag.Base()
	if base == english {
		return MonthFirst
	}
	return DayFirst
}

// Resolve turns Input into a Window relative to the supplied now
// now is injected by the caller so resolution is deterministic
func Resolve(in Input, now time.Time) Window {
	now = now.UTC()

	if w, ok := resolveCode(in.TimeFilter, now); ok {
		return w
	}

	// the date path only engages when the caller actually supplied a date
	if blank(in.SinceDate) && blank(in.UntilDate) {
		return Window{}
	}

	order := OrderFor(in.Locale)
	until := resolveUntil(in.UntilDate, order, now)
	since := resolveSince(in.SinceDate, order, until, now)

	// realign an inverted range so the earlier date opens the window
	if until != nil && since.After(*until) {
		s, u := startOfDay(*until), endOfDay(since)
		return Window{Since: &s, Until: &u}
	}
	return Window{Since: &since, Until: until}
}

// resolveCode maps a range code to a lookback window from now
// until stays nil for every valid code, the range is open ended upward
func resolveCode(code string, now time.Time) (Window, bool) {
	var since time.Time
	switch code {
	case "h":
		since = now.Add(-time.Hour) // exact instant, no truncation
	case "d":
		since = startOfDay(now.AddDate(0, 0, -1))
	case "w":
		since = startOfDay(now.AddDate(0, 0, -7))
	case "m":
		since = startOfDay(monthsAgo(now, 1))
	case "y":
		since = startOfDay(monthsAgo(now, 12))
	default:
		return Window{}, false
	}
	return Window{Since: &since}, true
}

// resolveSince parses the raw since date
// failures fall back to one year before the resolved until, or before now when unbounded
func resolveSince(raw string, order DateOrder, until *time.Time, now time.Time) time.Time {
	if d, ok := parseDate(raw, order); ok {
		return startOfDay(d)
	}
	anchor := now
	if until != nil {
		anchor = *until
	}
	return startOfDay(monthsAgo(anchor, 12))
}

// resolveUntil parses the raw until date
// blank means unbounded, unparseable but non-blank caps at end of the current day
func resolveUntil(raw string, order DateOrder, now time.Time) *time.Time {
	if blank(raw) {
		return nil
	}
	if d, ok := parseDate(raw, order); ok {
		e := endOfDay(d)
		return &e
	}
	e := endOfDay(now)
	return &e
}

// parseDate parses a slash-separated date honoring the locale field order
// rejects values that are not real calendar dates
func parseDate(raw string, order DateOrder) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	layout := layoutMonthFirst
	if order == DayFirst {
		layout = layoutDayFirst
	}
	d, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// monthsAgo steps back whole calendar months, clamping to the last valid
// day of the target month so Mar 31 minus a month is Feb 28/29, not Mar 3
func monthsAgo(t time.Time, months int) time.Time {
	u := t.UTC()
	y, m, d := u.Date()
	anchor := time.Date(y, m-time.Month(months), 1, u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
	if last := daysIn(anchor.Year(), anchor.Month()); d > last {
		d = last
	}
	return time.Date(anchor.Year(), anchor.Month(), d, u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
}

// daysIn counts the days in a month, day 0 of the next month
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
