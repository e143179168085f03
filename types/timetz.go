package types

import (
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/wire"
)

// TimeTZ represents the PostgreSQL time with time zone type.
type TimeTZ struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewTimeTZ coerces src into a TimeTZ.
func NewTimeTZ(src time.Time) *TimeTZ {
	// Preserve the offset.
	return &TimeTZ{time.Date(
		0, 1, 1,
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		offsetLocationFor(src),
	)}
}

// GoTime returns the underlying time.Time object.
func (t *TimeTZ) GoTime() time.Time { return t.Time }

// OID returns the PostgreSQL timetz OID.
func (*TimeTZ) OID() oid.Oid { return oid.T_timetz }

const (
	// timeTZOutputFormat outputs 00:00 zones.
	timeTZOutputFormat = "15:04:05.999999999-07:00"
	// timeTZSecondOutputFormat is the output format when the offset
	// includes seconds.
	timeTZSecondOutputFormat = "15:04:05.999999999-07:00:00"
)

// String returns the string representation of t using the format
// "15:04:05.999999999-07:00", adding seconds to the offset when it has
// them.
func (t *TimeTZ) String() string {
	format := timeTZOutputFormat
	if _, off := t.Time.Zone(); off%60 != 0 {
		format = timeTZSecondOutputFormat
	}
	if micros, err := microsOfDay(t.Time); err == nil && micros == wire.MicrosPerDay {
		return endOfDay + t.Time.Format(format[len(timeFormat):])
	}
	return t.Time.Format(format)
}

// ToTime converts t to *Time.
func (t *TimeTZ) ToTime() *Time {
	return NewTime(t.Time)
}

// Compare compares the time instant t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0. Note
// that the TZ offset contributes to this comparison; values with different
// offsets are never considered to be the same.
func (t *TimeTZ) Compare(u time.Time) int {
	// https://github.com/postgres/postgres/blob/REL_17_BETA1/src/backend/utils/adt/date.c#L2442-L2467

	// Primary sort is by true (GMT-equivalent) time.
	cmp := t.Time.UTC().Compare(u.UTC())
	if cmp != 0 {
		return cmp
	}

	// If same GMT time, sort by timezone; we only want to say that two
	// timetz's are equal if both the time and zone parts are equal.
	_, off1 := t.Time.Zone()
	_, off2 := u.Zone()
	if off1 > off2 {
		return -1
	}
	if off1 < off2 {
		return 1
	}
	return 0
}

// EncodeTimeTZ returns the microseconds between midnight and the wall clock
// of t, along with its zone displacement in seconds west of UTC. Returns an
// error wrapping ErrEncodingOverflow if the time cannot be encoded as for
// EncodeTime or if the offset exceeds 15:59:59.
func EncodeTimeTZ(t *TimeTZ) (wire.TimeTZ, error) {
	micros, err := microsOfDay(t.Time)
	if err != nil {
		return wire.TimeTZ{}, timeEncodingError("timetz", t.Time, err)
	}
	if !wire.Time(micros).Valid() {
		return wire.TimeTZ{}, timeEncodingError("timetz", t.Time, ErrOutOfRange)
	}

	_, off := t.Time.Zone()
	if off < -wire.MaxZoneDisplacement || off > wire.MaxZoneDisplacement {
		return wire.TimeTZ{}, fmt.Errorf(
			"%w: time zone displacement of timetz %v is %d seconds: %w",
			ErrEncodingOverflow, t.Time, off, ErrOutOfRange,
		)
	}
	return wire.TimeTZ{Time: wire.Time(micros), Zone: int32(-off)}, nil
}

// DecodeTimeTZ returns the TimeTZ for tz in a location with its offset.
// Returns an error wrapping ErrDecodingOverflow if the time or the zone
// displacement is out of range.
func DecodeTimeTZ(tz wire.TimeTZ) (*TimeTZ, error) {
	if !tz.Time.Valid() {
		return nil, timeDecodingError("timetz", tz.Time)
	}
	if !tz.Valid() {
		return nil, fmt.Errorf(
			"%w: time zone displacement %d: %w",
			ErrDecodingOverflow, tz.Zone, ErrOutOfRange,
		)
	}
	midnight := time.Date(0, 1, 1, 0, 0, 0, 0, zoneLocation(-int(tz.Zone)))
	return &TimeTZ{midnight.Add(time.Duration(tz.Time) * time.Microsecond)}, nil
}

// AppendBinary appends the PostgreSQL binary encoding of t to b.
func (t *TimeTZ) AppendBinary(b []byte) ([]byte, error) {
	tz, err := EncodeTimeTZ(t)
	if err != nil {
		return b, err
	}
	return tz.Append(b), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (t *TimeTZ) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, wire.TimeTZSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (t *TimeTZ) UnmarshalBinary(data []byte) error {
	tz, err := wire.ReadTimeTZ(data)
	if err != nil {
		return err
	}
	tm, err := DecodeTimeTZ(tz)
	if err != nil {
		return err
	}
	*t = *tm
	return nil
}
