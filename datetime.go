package vegalite

import (
	"math"
	"strings"
	"time"
)

// DateTimeOf converts t to a DateTime object. Every component down to
// milliseconds is written; Utc is set when t is in UTC.
func DateTimeOf(t time.Time) DateTime {
	n := func(v int) *float64 { f := float64(v); return &f }
	dt := DateTime{
		Year:         n(t.Year()),
		Month:        Number(t.Month()),
		Date:         n(t.Day()),
		Hours:        n(t.Hour()),
		Minutes:      n(t.Minute()),
		Seconds:      n(t.Second()),
		Milliseconds: n(t.Nanosecond() / int(time.Millisecond)),
	}
	if t.Location() == time.UTC {
		dt.Utc = Ptr(true)
	}
	return dt
}

// ParseDateTime reads an RFC 3339 timestamp into a UTC DateTime.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			t = t2
		} else {
			iss := singleIssue(CodeInvalidType, "/", "invalid RFC3339 time")
			iss[0].Cause = err
			return DateTime{}, iss
		}
	}
	return DateTimeOf(t.UTC()), nil
}

// Time converts d to a time.Time in loc, or in UTC when d.Utc is true.
// Year is required. A missing month falls back to the first month of Quarter
// (or January), a missing date to 1 and missing clock fields to 0. Day
// (day of week) has no single instant and is ignored.
func (d DateTime) Time(loc *time.Location) (time.Time, error) {
	if d.Year == nil {
		return time.Time{}, singleIssue(CodeRequired, "/year", "year is required to build a time")
	}
	month := time.January
	switch {
	case d.Month != nil:
		m, err := monthOf(d.Month)
		if err != nil {
			return time.Time{}, err
		}
		month = m
	case d.Quarter != nil:
		q := *d.Quarter
		if q < 1 || q > 4 || q != math.Trunc(q) {
			return time.Time{}, singleIssue(CodeInvalidType, "/quarter", "quarter must be 1-4")
		}
		month = time.Month((int(q)-1)*3 + 1)
	}
	if d.Utc != nil && *d.Utc {
		loc = time.UTC
	}
	if loc == nil {
		loc = time.Local
	}
	get := func(p *float64, def int) int {
		if p == nil {
			return def
		}
		return int(*p)
	}
	return time.Date(
		get(d.Year, 0), month, get(d.Date, 1),
		get(d.Hours, 0), get(d.Minutes, 0), get(d.Seconds, 0),
		get(d.Milliseconds, 0)*int(time.Millisecond), loc,
	), nil
}

// monthOf accepts 1-12 or an English month name, full or abbreviated to
// three letters, in any case.
func monthOf(v Value) (time.Month, error) {
	switch m := v.(type) {
	case Number:
		if m >= 1 && m <= 12 && float64(m) == math.Trunc(float64(m)) {
			return time.Month(m), nil
		}
	case String:
		name := strings.ToLower(string(m))
		for i := time.January; i <= time.December; i++ {
			full := strings.ToLower(i.String())
			if name == full || name == full[:3] {
				return i, nil
			}
		}
	}
	return 0, singleIssue(CodeInvalidType, "/month", "month must be 1-12 or a month name")
}
