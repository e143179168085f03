// Package wire implements the PostgreSQL binary representation of the
// temporal types: the raw day and microsecond offsets and their fixed-width,
// big-endian (network order) framing.
//
// The offsets are the integers PostgreSQL itself stores. See
// https://github.com/postgres/postgres/blob/REL_17_2/src/include/datatype/timestamp.h
// for the constants defined here.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrLength is returned when a binary value has the wrong number of bytes.
var ErrLength = errors.New("wire")

// The PostgreSQL epoch, 2000-01-01.
const (
	EpochYear  = 2000
	EpochMonth = 1
	EpochDay   = 1
)

const (
	// EpochUnixSeconds is the number of seconds from the Unix epoch to the
	// PostgreSQL epoch.
	EpochUnixSeconds = 946_684_800

	// SecondsPerDay is the number of seconds in a day (excluding leap
	// seconds).
	SecondsPerDay = 86_400

	// MicrosPerSecond is the number of microseconds in a second.
	MicrosPerSecond = 1_000_000

	// MicrosPerDay is the number of microseconds in a day and the largest
	// valid Time, 24:00:00.
	MicrosPerDay = SecondsPerDay * MicrosPerSecond

	// MaxZoneDisplacement is the largest absolute TimeTZ zone in seconds,
	// 15:59:59.
	MaxZoneDisplacement = 16*60*60 - 1
)

// Encoded sizes in bytes.
const (
	DateSize      = 4
	TimeSize      = 8
	TimestampSize = 8
	TimeTZSize    = 12
)

// Date is the number of days since 2000-01-01.
type Date int32

const (
	// MinDate is the first valid Date, Julian day 0 (4714-11-24 BC).
	MinDate Date = -2_451_545
	// EndDate is one past the last valid Date, 5874898-01-01.
	EndDate Date = 2_145_031_949

	// DateNegativeInfinity is the date '-infinity'.
	DateNegativeInfinity Date = math.MinInt32
	// DateInfinity is the date 'infinity'.
	DateInfinity Date = math.MaxInt32
)

// Valid returns true if d is a finite date within the range PostgreSQL
// accepts.
func (d Date) Valid() bool { return MinDate <= d && d < EndDate }

// Infinite returns true if d is 'infinity' or '-infinity'.
func (d Date) Infinite() bool {
	return d == DateInfinity || d == DateNegativeInfinity
}

// Append appends the binary representation of d to b.
func (d Date) Append(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(d))
}

// ReadDate decodes a Date from exactly DateSize bytes.
func ReadDate(b []byte) (Date, error) {
	if err := checkLength("date", b, DateSize); err != nil {
		return 0, err
	}
	return Date(int32(binary.BigEndian.Uint32(b))), nil
}

// Time is the number of microseconds since midnight.
type Time int64

// Valid returns true if t lies between 00:00:00 and 24:00:00 inclusive.
func (t Time) Valid() bool { return 0 <= t && t <= MicrosPerDay }

// Append appends the binary representation of t to b.
func (t Time) Append(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(t))
}

// ReadTime decodes a Time from exactly TimeSize bytes.
func ReadTime(b []byte) (Time, error) {
	if err := checkLength("time", b, TimeSize); err != nil {
		return 0, err
	}
	return Time(int64(binary.BigEndian.Uint64(b))), nil
}

// Timestamp is the number of microseconds since 2000-01-01T00:00:00.
type Timestamp int64

const (
	// MinTimestamp is the first valid Timestamp, 4714-11-24 00:00:00 BC.
	MinTimestamp Timestamp = -211_813_488_000_000_000
	// EndTimestamp is one past the last valid Timestamp,
	// 294277-01-01 00:00:00.
	EndTimestamp Timestamp = 9_223_371_331_200_000_000

	// TimestampNegativeInfinity is the timestamp '-infinity'.
	TimestampNegativeInfinity Timestamp = math.MinInt64
	// TimestampInfinity is the timestamp 'infinity'.
	TimestampInfinity Timestamp = math.MaxInt64
)

// Valid returns true if ts is a finite timestamp within the range
// PostgreSQL accepts.
func (ts Timestamp) Valid() bool { return MinTimestamp <= ts && ts < EndTimestamp }

// Infinite returns true if ts is 'infinity' or '-infinity'.
func (ts Timestamp) Infinite() bool {
	return ts == TimestampInfinity || ts == TimestampNegativeInfinity
}

// Append appends the binary representation of ts to b.
func (ts Timestamp) Append(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(ts))
}

// ReadTimestamp decodes a Timestamp from exactly TimestampSize bytes.
func ReadTimestamp(b []byte) (Timestamp, error) {
	if err := checkLength("timestamp", b, TimestampSize); err != nil {
		return 0, err
	}
	return Timestamp(int64(binary.BigEndian.Uint64(b))), nil
}

// TimeTZ is a time of day with a zone displacement. Zone is in seconds west
// of UTC, so UTC+05:30 is -19800.
type TimeTZ struct {
	Time Time
	Zone int32
}

// Valid returns true if both the time and the zone are in range.
func (t TimeTZ) Valid() bool {
	return t.Time.Valid() && -MaxZoneDisplacement <= t.Zone && t.Zone <= MaxZoneDisplacement
}

// Append appends the binary representation of t to b.
func (t TimeTZ) Append(b []byte) []byte {
	b = t.Time.Append(b)
	return binary.BigEndian.AppendUint32(b, uint32(t.Zone))
}

// ReadTimeTZ decodes a TimeTZ from exactly TimeTZSize bytes.
func ReadTimeTZ(b []byte) (TimeTZ, error) {
	if err := checkLength("timetz", b, TimeTZSize); err != nil {
		return TimeTZ{}, err
	}
	return TimeTZ{
		Time: Time(int64(binary.BigEndian.Uint64(b[:TimeSize]))),
		Zone: int32(binary.BigEndian.Uint32(b[TimeSize:])),
	}, nil
}

func checkLength(name string, b []byte, size int) error {
	if len(b) != size {
		return fmt.Errorf(
			"%w: invalid length for %v: expected %d bytes but got %d",
			ErrLength, name, size, len(b),
		)
	}
	return nil
}
