package types

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/wire"
)

// Timestamp represents the PostgreSQL timestamp without time zone type.
type Timestamp struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewTimestamp coerces src into a Timestamp.
func NewTimestamp(src time.Time) *Timestamp {
	// Convert result type to timestamp without time zone (use UTC)
	if src.Location() != time.UTC {
		src = time.Date(
			src.Year(), src.Month(), src.Day(),
			src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
			time.UTC,
		)
	}
	return &Timestamp{src}
}

// GoTime returns the underlying time.Time object.
func (ts *Timestamp) GoTime() time.Time { return ts.Time }

// OID returns the PostgreSQL timestamp OID.
func (*Timestamp) OID() oid.Oid { return oid.T_timestamp }

// timestampFormat represents the canonical string format for Timestamp
// values.
const timestampFormat = "2006-01-02T15:04:05.999999999"

// String returns the string representation of ts using the format
// "2006-01-02T15:04:05.999999999".
func (ts *Timestamp) String() string {
	return ts.Time.Format(timestampFormat)
}

// Compare compares the time instant ts with u. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts *Timestamp) Compare(u time.Time) int {
	return ts.Time.Compare(u)
}

// ToDate converts ts to *Date.
func (ts *Timestamp) ToDate() *Date {
	return NewDate(ts.Time)
}

// ToTimestampTZ converts ts to TimestampTZ by interpreting its wall clock in
// the time zone in ctx.
func (ts *Timestamp) ToTimestampTZ(ctx context.Context) *TimestampTZ {
	t := ts.Time
	return NewTimestampTZ(time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		TZFromContext(ctx),
	))
}

// EncodeTimestamp returns the number of microseconds between
// 2000-01-01T00:00:00 and the wall clock of ts; its location is ignored.
// Returns an error wrapping ErrEncodingOverflow if ts has a sub-microsecond
// component, if the count does not fit in 64 bits, or if it falls outside
// the PostgreSQL timestamp range.
func EncodeTimestamp(ts *Timestamp) (wire.Timestamp, error) {
	return encodeTimestamp("timestamp", NewTimestamp(ts.Time).Time)
}

// encodeTimestamp encodes t, which must be in UTC.
func encodeTimestamp(name string, t time.Time) (wire.Timestamp, error) {
	micros, err := microsSinceEpoch(t)
	if err != nil {
		return 0, timestampEncodingError(name, t, err)
	}
	if ts := wire.Timestamp(micros); ts.Valid() {
		return ts, nil
	}
	return 0, timestampEncodingError(name, t, ErrOutOfRange)
}

func timestampEncodingError(name string, t time.Time, err error) error {
	return fmt.Errorf(
		"%w: cannot express %v %v as microseconds since 2000-01-01T00:00:00: %w",
		ErrEncodingOverflow, name, t.Format(timestampFormat), err,
	)
}

// microsSinceEpoch returns the microseconds from the PostgreSQL epoch to the
// instant t.
func microsSinceEpoch(t time.Time) (int64, error) {
	if t.Nanosecond()%1000 != 0 {
		return 0, fmt.Errorf("%w: %d nanoseconds", ErrPrecision, t.Nanosecond())
	}
	secs, err := checked.Sub(t.Unix(), wire.EpochUnixSeconds)
	if err != nil {
		return 0, err
	}
	micros, err := checked.Mul(secs, wire.MicrosPerSecond)
	if err != nil {
		return 0, err
	}
	return checked.Add(micros, int64(t.Nanosecond()/1000))
}

// DecodeTimestamp returns the Timestamp micros microseconds after
// 2000-01-01T00:00:00. Returns an error wrapping ErrDecodingOverflow if
// micros is infinite or outside the PostgreSQL timestamp range.
func DecodeTimestamp(micros wire.Timestamp) (*Timestamp, error) {
	t, err := decodeTimestamp("timestamp", micros)
	if err != nil {
		return nil, err
	}
	return &Timestamp{t}, nil
}

// decodeTimestamp returns the UTC time micros microseconds after the
// PostgreSQL epoch.
func decodeTimestamp(name string, micros wire.Timestamp) (time.Time, error) {
	var err error
	switch {
	case micros.Infinite():
		err = ErrInfinite
	case !micros.Valid():
		err = ErrOutOfRange
	default:
		secs, us := checked.FloorDiv(int64(micros), wire.MicrosPerSecond)
		if secs, err = checked.Add(secs, wire.EpochUnixSeconds); err == nil {
			return time.Unix(secs, us*int64(time.Microsecond)).UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"%w: could not add %d microseconds to %v 2000-01-01T00:00:00: %w",
		ErrDecodingOverflow, micros, name, err,
	)
}

// AppendBinary appends the PostgreSQL binary encoding of ts to b.
func (ts *Timestamp) AppendBinary(b []byte) ([]byte, error) {
	micros, err := EncodeTimestamp(ts)
	if err != nil {
		return b, err
	}
	return micros.Append(b), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (ts *Timestamp) MarshalBinary() ([]byte, error) {
	return ts.AppendBinary(make([]byte, 0, wire.TimestampSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (ts *Timestamp) UnmarshalBinary(data []byte) error {
	micros, err := wire.ReadTimestamp(data)
	if err != nil {
		return err
	}
	t, err := DecodeTimestamp(micros)
	if err != nil {
		return err
	}
	*ts = *t
	return nil
}
