package types

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/wire"
)

// TimestampTZ represents the PostgreSQL timestamp with time zone type.
type TimestampTZ struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewTimestampTZ coerces src into a TimestampTZ.
func NewTimestampTZ(src time.Time) *TimestampTZ {
	return &TimestampTZ{src}
}

// GoTime returns the underlying time.Time object.
func (ts *TimestampTZ) GoTime() time.Time { return ts.Time }

// OID returns the PostgreSQL timestamptz OID.
func (*TimestampTZ) OID() oid.Oid { return oid.T_timestamptz }

// timestampTZFormat represents the canonical string format for TimestampTZ
// values.
const timestampTZFormat = "2006-01-02T15:04:05.999999999Z07:00:00"

// String returns the string representation of ts using the format
// "2006-01-02T15:04:05.999999999Z07:00:00".
func (ts *TimestampTZ) String() string {
	return ts.Time.Format(timestampTZFormat)
}

// Compare compares the time instant ts with u. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts *TimestampTZ) Compare(u time.Time) int {
	return ts.Time.Compare(u)
}

// EncodeTimestampTZ returns the number of microseconds between
// 2000-01-01T00:00:00 UTC and the instant ts. The zone of ts does not
// contribute: every representation of the same instant encodes to the same
// value. Returns an error wrapping ErrEncodingOverflow under the same
// conditions as EncodeTimestamp.
func EncodeTimestampTZ(ts *TimestampTZ) (wire.Timestamp, error) {
	return encodeTimestamp("timestamptz", ts.Time.UTC())
}

// DecodeTimestampTZ returns the TimestampTZ micros microseconds after
// 2000-01-01T00:00:00 UTC, expressed in the time zone in ctx. Returns an
// error wrapping ErrDecodingOverflow under the same conditions as
// DecodeTimestamp.
func DecodeTimestampTZ(ctx context.Context, micros wire.Timestamp) (*TimestampTZ, error) {
	naive, err := decodeTimestamp("timestamptz", micros)
	if err != nil {
		return nil, err
	}
	utc, err := attachUTC(naive)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: timestamptz %d could not be expressed in UTC: %w",
			ErrTimezoneAttachment, micros, err,
		)
	}
	return &TimestampTZ{utc.In(TZFromContext(ctx))}, nil
}

// attachUTC returns the instant the wall clock of naive names in UTC.
// Returns an error if naive carries an offset, because its wall clock and
// its instant then disagree.
func attachUTC(naive time.Time) (time.Time, error) {
	if name, off := naive.Zone(); off != 0 {
		return time.Time{}, fmt.Errorf(
			"wall clock %v is in zone %q with offset %d",
			naive.Format(timestampFormat), name, off,
		)
	}
	return time.Date(
		naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(),
		time.UTC,
	), nil
}

// AppendBinary appends the PostgreSQL binary encoding of ts to b.
func (ts *TimestampTZ) AppendBinary(b []byte) ([]byte, error) {
	micros, err := EncodeTimestampTZ(ts)
	if err != nil {
		return b, err
	}
	return micros.Append(b), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (ts *TimestampTZ) MarshalBinary() ([]byte, error) {
	return ts.AppendBinary(make([]byte, 0, wire.TimestampSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. The result is in
// UTC.
func (ts *TimestampTZ) UnmarshalBinary(data []byte) error {
	micros, err := wire.ReadTimestamp(data)
	if err != nil {
		return err
	}
	t, err := DecodeTimestampTZ(context.Background(), micros)
	if err != nil {
		return err
	}
	*ts = *t
	return nil
}
