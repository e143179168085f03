package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test  string
		value string
		typ   DateTime
		str   string
		wire  string
	}{
		{
			test:  "date",
			value: "2024-04-29",
			typ:   (*Date)(nil),
			str:   "2024-04-29",
			wire:  "000022b5",
		},
		{
			test:  "date_before_epoch",
			value: "1999-12-31",
			typ:   (*Date)(nil),
			str:   "1999-12-31",
			wire:  "ffffffff",
		},
		{
			test:  "timetz_hm",
			value: "14:15:31+01:22",
			typ:   (*TimeTZ)(nil),
			str:   "14:15:31+01:22",
			wire:  "0000000bf390e6c0ffffecc8",
		},
		{
			test:  "timetz_neg_fraction",
			value: "14:15:31.785996-03:14",
			typ:   (*TimeTZ)(nil),
			str:   "14:15:31.785996-03:14",
			wire:  "0000000bf39ce50c00002d78",
		},
		{
			test:  "timetz_hour_only",
			value: "14:15:31.785996+01",
			typ:   (*TimeTZ)(nil),
			str:   "14:15:31.785996+01:00",
			wire:  "0000000bf39ce50cfffff1f0",
		},
		{
			test:  "time",
			value: "14:15:31",
			typ:   (*Time)(nil),
			str:   "14:15:31",
			wire:  "0000000bf390e6c0",
		},
		{
			test:  "time_fraction",
			value: "14:15:31.785996",
			typ:   (*Time)(nil),
			str:   "14:15:31.785996",
			wire:  "0000000bf39ce50c",
		},
		{
			test:  "time_midnight",
			value: "00:00:00",
			typ:   (*Time)(nil),
			str:   "00:00:00",
			wire:  "0000000000000000",
		},
		{
			test:  "time_end_of_day",
			value: "24:00:00",
			typ:   (*Time)(nil),
			str:   "24:00:00",
			wire:  "000000141dd76000",
		},
		{
			test:  "timestamptz_z",
			value: "2024-04-29T14:15:31Z",
			typ:   (*TimestampTZ)(nil),
			str:   "2024-04-29T14:15:31Z",
			wire:  "0002ba3ba797c6c0",
		},
		{
			test:  "timestamptz_hour_only",
			value: "2020-03-11T11:22:42.465029+01",
			typ:   (*TimestampTZ)(nil),
			str:   "2020-03-11T11:22:42.465029+01:00:00",
			wire:  "0002439062a09905",
		},
		{
			test:  "timestamptz_space",
			value: "2024-04-29 14:15:31-03:14",
			typ:   (*TimestampTZ)(nil),
			str:   "2024-04-29T14:15:31-03:14:00",
			wire:  "0002ba3e5d6414c0",
		},
		{
			test:  "timestamp_t",
			value: "2024-04-29T15:11:38",
			typ:   (*Timestamp)(nil),
			str:   "2024-04-29T15:11:38",
			wire:  "0002ba3c70481e80",
		},
		{
			test:  "timestamp_space_fraction",
			value: "1999-12-31 23:59:59.999999",
			typ:   (*Timestamp)(nil),
			str:   "1999-12-31T23:59:59.999999",
			wire:  "ffffffffffffffff",
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			dt, ok := ParseTime(tc.value, -1)
			r.True(ok)
			a.IsType(tc.typ, dt)
			a.Equal(tc.str, dt.String())

			data, err := dt.AppendBinary(nil)
			r.NoError(err)
			a.Equal(tc.wire, hex.EncodeToString(data))
		})
	}
}

func TestParseFail(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test  string
		value string
	}{
		{"bogus", "bogus"},
		{"bad_date", "2024-02-30"},
		{"bad_time", "25:00:00"},
		{"past_end_of_day", "24:00:01"},
		{"bad_zone", "14:15:31+1"},
		{"end_of_day_fraction", "24:00:00.5"},
		{"end_of_day_sub_micro", "24:00:00.0000001"},
		{"end_of_day_bad_zone", "24:00:00+1"},
		{"end_of_day_junk", "24:00:00 tomorrow"},
		{"no_seconds", "2024-04-29 14:15"},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			dt, ok := ParseTime(tc.value, -1)
			a.False(ok)
			a.Nil(dt)
		})
	}
}

func TestParseTimePrecision(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test  string
		value string
		nanos map[int]int
	}{
		{
			test:  "time_nine_places",
			value: "14:15:31.78599685301",
			nanos: map[int]int{-1: 785996853, 0: 0, 1: 800000000, 2: 790000000, 6: 785997000},
		},
		{
			test:  "time_three_places",
			value: "14:15:31.785",
			nanos: map[int]int{-1: 785000000, 0: 0, 1: 800000000, 2: 790000000, 6: 785000000},
		},
		{
			test:  "time_one_place",
			value: "14:15:31.7",
			nanos: map[int]int{-1: 700000000, 0: 0, 1: 700000000, 2: 700000000, 6: 700000000},
		},
		{
			test:  "timestamptz_nine_places",
			value: "2020-03-11T11:22:42.465029739+01",
			nanos: map[int]int{-1: 465029739, 0: 0, 1: 500000000, 2: 470000000, 6: 465030000},
		},
		{
			test:  "timestamp_two_places",
			value: "2020-03-11 11:22:42.46",
			nanos: map[int]int{-1: 460000000, 0: 0, 1: 500000000, 2: 460000000, 6: 460000000},
		},
		{
			test:  "timestamp_no_places",
			value: "2020-03-11 11:22:42",
			nanos: map[int]int{-1: 0, 0: 0, 1: 0, 2: 0, 6: 0},
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			for precision, exp := range tc.nanos {
				dt, ok := ParseTime(tc.value, precision)
				a.True(ok)
				a.Equal(exp, dt.GoTime().Nanosecond(), "precision %d", precision)
			}
		})
	}
}

func TestParseTimeEndOfDay(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test      string
		value     string
		precision int
		typ       DateTime
		str       string
		wire      string
	}{
		{
			test:      "time",
			value:     "24:00:00",
			precision: -1,
			typ:       (*Time)(nil),
			str:       "24:00:00",
			wire:      "000000141dd76000",
		},
		{
			test:      "time_zero_fraction",
			value:     "24:00:00.000000",
			precision: 6,
			typ:       (*Time)(nil),
			str:       "24:00:00",
			wire:      "000000141dd76000",
		},
		{
			test:      "time_fraction_rounds_away",
			value:     "24:00:00.0000001",
			precision: 6,
			typ:       (*Time)(nil),
			str:       "24:00:00",
			wire:      "000000141dd76000",
		},
		{
			test:      "time_rounds_up",
			value:     "23:59:59.9999999",
			precision: 6,
			typ:       (*Time)(nil),
			str:       "24:00:00",
			wire:      "000000141dd76000",
		},
		{
			test:      "time_rounds_up_to_second",
			value:     "23:59:59.5",
			precision: 0,
			typ:       (*Time)(nil),
			str:       "24:00:00",
			wire:      "000000141dd76000",
		},
		{
			test:      "time_stays_in_day",
			value:     "23:59:59.9999994",
			precision: 6,
			typ:       (*Time)(nil),
			str:       "23:59:59.999999",
			wire:      "000000141dd75fff",
		},
		{
			test:      "timetz",
			value:     "24:00:00+02",
			precision: 6,
			typ:       (*TimeTZ)(nil),
			str:       "24:00:00+02:00",
			wire:      "000000141dd76000ffffe3e0",
		},
		{
			test:      "timetz_zero_fraction",
			value:     "24:00:00.000-05:30",
			precision: -1,
			typ:       (*TimeTZ)(nil),
			str:       "24:00:00-05:30",
			wire:      "000000141dd7600000004d58",
		},
		{
			test:      "timetz_rounds_up",
			value:     "23:59:59.9999999+02",
			precision: 6,
			typ:       (*TimeTZ)(nil),
			str:       "24:00:00+02:00",
			wire:      "000000141dd76000ffffe3e0",
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			dt, ok := ParseTime(tc.value, tc.precision)
			r.True(ok)
			a.IsType(tc.typ, dt)
			a.Equal(tc.str, dt.String())

			data, err := dt.AppendBinary(nil)
			r.NoError(err)
			a.Equal(tc.wire, hex.EncodeToString(data))
		})
	}
}

func TestParseTimeRoundsToEncodable(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	dt, ok := ParseTime("2020-03-11T11:22:42.465029739+01", -1)
	a.True(ok)
	_, err := dt.AppendBinary(nil)
	a.ErrorIs(err, ErrPrecision)

	dt, ok = ParseTime("2020-03-11T11:22:42.465029739+01", 6)
	a.True(ok)
	_, err = dt.AppendBinary(nil)
	a.NoError(err)
}
