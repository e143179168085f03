// Package types converts between Go date and time values and the PostgreSQL
// binary wire format for the date, time, timetz, timestamp, and timestamptz
// types.
//
// Each type wraps a [time.Time] and provides an Encode function returning
// the offset PostgreSQL stores, a Decode function building the value back
// from that offset, and [encoding.BinaryMarshaler] and
// [encoding.BinaryUnmarshaler] implementations for the framed bytes.
// Conversions use exact integer arithmetic and fail rather than lose
// precision or wrap.
package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/wire"
)

var (
	// ErrSQLType wraps errors for literals that cannot be parsed as any of
	// the types.
	ErrSQLType = errors.New("type")

	// ErrEncodingOverflow wraps errors for values that cannot be expressed
	// in the wire format relative to the PostgreSQL epoch.
	ErrEncodingOverflow = errors.New("encoding overflow")

	// ErrDecodingOverflow wraps errors for wire values that do not produce a
	// valid date or time.
	ErrDecodingOverflow = errors.New("decoding overflow")

	// ErrTimezoneAttachment wraps errors for decoded values that cannot be
	// expressed in UTC.
	ErrTimezoneAttachment = errors.New("time zone attachment")

	// ErrOutOfRange indicates a value outside the range PostgreSQL supports.
	ErrOutOfRange = errors.New("out of range")

	// ErrPrecision indicates a value with a sub-microsecond component.
	ErrPrecision = errors.New("sub-microsecond precision")

	// ErrInfinite indicates the wire value 'infinity' or '-infinity', which
	// has no time.Time equivalent.
	ErrInfinite = errors.New("infinite value")
)

// secondsPerHour contains the number of seconds in an hour (excluding leap
// seconds).
const secondsPerHour = 60 * 60

//nolint:gochecknoglobals
var (
	// epochDate is the PostgreSQL epoch date, 2000-01-01.
	epochDate = time.Date(
		wire.EpochYear, wire.EpochMonth, wire.EpochDay,
		0, 0, 0, 0, offsetZero,
	)

	// timeBase is the date on which Time and TimeTZ values are anchored. A
	// Time on the following day is 24:00:00.
	timeBase = time.Date(0, 1, 1, 0, 0, 0, 0, offsetZero)
)

// DateTime defines the interface for all date and time data types.
type DateTime interface {
	// GoTime returns the underlying time.Time object.
	GoTime() time.Time

	// OID returns the PostgreSQL object ID of the type.
	OID() oid.Oid

	// AppendBinary appends the PostgreSQL binary encoding to b.
	AppendBinary(b []byte) ([]byte, error)

	// String returns the canonical string representation.
	String() string
}

// microsOfDay returns the microseconds between timeBase and the wall clock
// of t, ignoring its location. Returns an error if t has a sub-microsecond
// component or if the result overflows.
func microsOfDay(t time.Time) (int64, error) {
	if t.Nanosecond()%1000 != 0 {
		return 0, fmt.Errorf("%w: %d nanoseconds", ErrPrecision, t.Nanosecond())
	}
	days, err := daysSince(t, timeBase)
	if err != nil {
		return 0, err
	}
	h, m, s := t.Clock()
	micros, err := checked.Mul(days, wire.MicrosPerDay)
	if err != nil {
		return 0, err
	}
	clock := int64(h*secondsPerHour+m*60+s)*wire.MicrosPerSecond + int64(t.Nanosecond()/1000)
	return checked.Add(micros, clock)
}

// daysSince returns the number of whole days from the calendar date of
// base to the calendar date of t, reading both wall clocks.
func daysSince(t, base time.Time) (int64, error) {
	return checked.Sub(unixDay(t), unixDay(base))
}

// unixDay returns the number of days from 1970-01-01 to the calendar date
// of t's wall clock.
func unixDay(t time.Time) int64 {
	y, m, d := t.Date()
	// Midnight UTC is always a whole number of days from the Unix epoch.
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / wire.SecondsPerDay
}
