package types

import (
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/wire"
)

// Time represents the PostgreSQL Time type.
type Time struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewTime coerces src into a Time by keeping only its wall clock.
func NewTime(src time.Time) *Time {
	return &Time{time.Date(
		0, 1, 1,
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		offsetZero,
	)}
}

// GoTime returns the underlying time.Time object.
func (t *Time) GoTime() time.Time { return t.Time }

// OID returns the PostgreSQL time OID.
func (*Time) OID() oid.Oid { return oid.T_time }

const (
	// timeFormat represents the canonical string format for Time values.
	timeFormat = "15:04:05.999999999"
	// endOfDay is the string representation of 24:00:00, which Go formats
	// as midnight.
	endOfDay = "24:00:00"
)

// String returns the string representation of t using the format
// "15:04:05.999999999", or "24:00:00" for the end of the day.
func (t *Time) String() string {
	if micros, err := microsOfDay(t.Time); err == nil && micros == wire.MicrosPerDay {
		return endOfDay
	}
	return t.Time.Format(timeFormat)
}

// Compare compares the time instant t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0.
func (t *Time) Compare(u *Time) int {
	if u == nil {
		return t.Time.Compare(time.Time{})
	}
	return t.Time.Compare(u.Time)
}

// EncodeTime returns the number of microseconds between midnight and t.
// Returns an error wrapping ErrEncodingOverflow if t has a sub-microsecond
// component or lies outside 00:00:00 through 24:00:00.
func EncodeTime(t *Time) (wire.Time, error) {
	micros, err := microsOfDay(t.Time)
	if err != nil {
		return 0, timeEncodingError("time", t.Time, err)
	}
	if tm := wire.Time(micros); tm.Valid() {
		return tm, nil
	}
	return 0, timeEncodingError("time", t.Time, ErrOutOfRange)
}

func timeEncodingError(name string, t time.Time, err error) error {
	return fmt.Errorf(
		"%w: cannot express %v %v as microseconds since midnight: %w",
		ErrEncodingOverflow, name, t, err,
	)
}

// DecodeTime returns the Time micros microseconds after midnight. Returns an
// error wrapping ErrDecodingOverflow unless micros is between 0 and
// 86400000000 (24:00:00), inclusive, the range enforced by time_recv in
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/date.c
func DecodeTime(micros wire.Time) (*Time, error) {
	if !micros.Valid() {
		return nil, timeDecodingError("time", micros)
	}
	return &Time{timeBase.Add(time.Duration(micros) * time.Microsecond)}, nil
}

func timeDecodingError(name string, micros wire.Time) error {
	return fmt.Errorf(
		"%w: could not add %d microseconds to %v 00:00:00: %w",
		ErrDecodingOverflow, micros, name, ErrOutOfRange,
	)
}

// AppendBinary appends the PostgreSQL binary encoding of t to b.
func (t *Time) AppendBinary(b []byte) ([]byte, error) {
	micros, err := EncodeTime(t)
	if err != nil {
		return b, err
	}
	return micros.Append(b), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (t *Time) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, wire.TimeSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (t *Time) UnmarshalBinary(data []byte) error {
	micros, err := wire.ReadTime(data)
	if err != nil {
		return err
	}
	tm, err := DecodeTime(micros)
	if err != nil {
		return err
	}
	*t = *tm
	return nil
}
