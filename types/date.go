package types

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/wire"
)

// Date represents the PostgreSQL date type.
type Date struct {
	time.Time
}

// NewDate coerces src into a Date.
func NewDate(src time.Time) *Date {
	// Convert result type to a date
	return &Date{
		time.Date(src.Year(), src.Month(), src.Day(), 0, 0, 0, 0, offsetZero),
	}
}

// GoTime returns the underlying time.Time object.
func (d *Date) GoTime() time.Time { return d.Time }

// OID returns the PostgreSQL date OID.
func (*Date) OID() oid.Oid { return oid.T_date }

// dateFormat represents the canonical string format for Date values.
const dateFormat = "2006-01-02"

// String returns the string representation of d.
func (d *Date) String() string {
	return d.Format(dateFormat)
}

// Compare compares the time instant d with u. If d is before u, it returns
// -1; if d is after u, it returns +1; if they're the same, it returns 0.
func (d *Date) Compare(u time.Time) int {
	return d.Time.Compare(u)
}

// ToTimestamp converts d to *Timestamp at midnight.
func (d *Date) ToTimestamp() *Timestamp {
	return NewTimestamp(d.Time)
}

// ToTimestampTZ converts d to TimestampTZ at midnight in the time zone in
// ctx.
func (d *Date) ToTimestampTZ(ctx context.Context) *TimestampTZ {
	t := d.Time
	return NewTimestampTZ(
		time.Date(
			t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, TZFromContext(ctx),
		),
	)
}

// EncodeDate returns the number of days between 2000-01-01 and the calendar
// date of d. Returns an error wrapping ErrEncodingOverflow if the count does
// not fit in 32 bits or falls outside the PostgreSQL date range.
func EncodeDate(d *Date) (wire.Date, error) {
	days, err := daysSince(d.Time, epochDate)
	if err != nil {
		return 0, dateEncodingError(d, err)
	}
	n, err := checked.Narrow[int32](days)
	if err != nil {
		return 0, dateEncodingError(d, err)
	}
	if date := wire.Date(n); date.Valid() {
		return date, nil
	}
	return 0, dateEncodingError(d, ErrOutOfRange)
}

func dateEncodingError(d *Date, err error) error {
	return fmt.Errorf(
		"%w: cannot express date %v as days since 2000-01-01: %w",
		ErrEncodingOverflow, d, err,
	)
}

// DecodeDate returns the Date days after 2000-01-01. Returns an error
// wrapping ErrDecodingOverflow if days is infinite or outside the PostgreSQL
// date range.
func DecodeDate(days wire.Date) (*Date, error) {
	switch {
	case days.Infinite():
		return nil, fmt.Errorf(
			"%w: could not add %d days to date 2000-01-01: %w",
			ErrDecodingOverflow, days, ErrInfinite,
		)
	case !days.Valid():
		return nil, fmt.Errorf(
			"%w: could not add %d days to date 2000-01-01: %w",
			ErrDecodingOverflow, days, ErrOutOfRange,
		)
	}

	// Valid dates are far from overflowing the Unix seconds of time.Time.
	secs := (int64(days) + wire.EpochUnixSeconds/wire.SecondsPerDay) * wire.SecondsPerDay
	return NewDate(time.Unix(secs, 0).UTC()), nil
}

// AppendBinary appends the PostgreSQL binary encoding of d to b.
func (d *Date) AppendBinary(b []byte) ([]byte, error) {
	days, err := EncodeDate(d)
	if err != nil {
		return b, err
	}
	return days.Append(b), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (d *Date) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, wire.DateSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (d *Date) UnmarshalBinary(data []byte) error {
	days, err := wire.ReadDate(data)
	if err != nil {
		return err
	}
	date, err := DecodeDate(days)
	if err != nil {
		return err
	}
	*d = *date
	return nil
}
