package types

import (
	"math"
	"strings"
	"time"
)

// literalForm pairs the layouts of one type with the constructor for values
// parsed with them. Time-of-day forms also build the end of the day, which
// their constructors cannot express, in the location of a parsed value.
type literalForm struct {
	layouts  []string
	build    func(value time.Time) DateTime
	endOfDay func(value time.Time) DateTime
}

//nolint:gochecknoglobals
var literalForms = []literalForm{
	{
		layouts: []string{"2006-01-02"},
		build:   func(v time.Time) DateTime { return NewDate(v) },
	},
	{
		layouts:  []string{"15:04:05Z07", "15:04:05Z07:00"},
		build:    func(v time.Time) DateTime { return NewTimeTZ(offsetOnlyTimeFor(v)) },
		endOfDay: endOfDayTZ,
	},
	{
		layouts:  []string{"15:04:05"},
		build:    func(v time.Time) DateTime { return NewTime(v) },
		endOfDay: func(time.Time) DateTime { return &Time{timeBase.AddDate(0, 0, 1)} },
	},
	{
		layouts: []string{
			"2006-01-02T15:04:05Z07",
			"2006-01-02 15:04:05Z07",
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02 15:04:05Z07:00",
		},
		build: func(v time.Time) DateTime { return NewTimestampTZ(offsetOnlyTimeFor(v)) },
	},
	{
		layouts: []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"},
		build:   func(v time.Time) DateTime { return NewTimestamp(v) },
	},
}

// ParseTime parses src as a date, time with time zone, time, timestamp with
// time zone, or timestamp, trying each in that order. Returns false if no
// form matches. Fractional seconds are accepted; when precision is zero or
// greater they are rounded to that many digits.
//
// Timestamps may separate the date and time with "T" (ISO 8601) or a space
// (PostgreSQL output). A time of "24:00:00", with or without a zero
// fraction and a zone, is the end of the day, as is a time that rounds up
// past midnight.
func ParseTime(src string, precision int) (DateTime, bool) {
	if rest, ok := strings.CutPrefix(src, endOfDay); ok {
		return parseEndOfDay("00:00:00"+rest, precision)
	}

	for _, form := range literalForms {
		for _, layout := range form.layouts {
			value, err := time.Parse(layout, src)
			if err != nil {
				continue
			}
			rounded := adjustPrecision(value, precision)
			if form.endOfDay != nil && rounded.Day() != value.Day() {
				return form.endOfDay(value), true
			}
			return form.build(rounded), true
		}
	}
	return nil, false
}

// parseEndOfDay parses src, a 24:00:00 literal rewritten to start at
// midnight, with the time-of-day layouts. It fails if any fraction remains
// after rounding to precision.
func parseEndOfDay(src string, precision int) (DateTime, bool) {
	for _, form := range literalForms {
		if form.endOfDay == nil {
			continue
		}
		for _, layout := range form.layouts {
			value, err := time.Parse(layout, src)
			if err != nil {
				continue
			}
			if rounded := adjustPrecision(value, precision); !rounded.Equal(value.Truncate(time.Second)) {
				return nil, false
			}
			return form.endOfDay(value), true
		}
	}
	return nil, false
}

// endOfDayTZ returns the TimeTZ 24:00:00 in the offset of v.
func endOfDayTZ(v time.Time) DateTime {
	return &TimeTZ{time.Date(0, 1, 2, 0, 0, 0, 0, offsetLocationFor(v))}
}

// adjustPrecision rounds value to precision fractional digits, or returns it
// unchanged if precision is negative.
func adjustPrecision(value time.Time, precision int) time.Time {
	if precision < 0 {
		return value
	}
	return value.Round(time.Second / time.Duration(math.Pow10(precision)))
}
