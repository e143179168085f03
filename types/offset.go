package types

import (
	"context"
	"time"
)

// offsetZero is the offset-only location for UTC, used by the types that
// carry no zone.
//
//nolint:gochecknoglobals
var offsetZero = time.FixedZone("", 0)

// zoneLocation returns an offset-only time.Location for off seconds east of
// UTC.
func zoneLocation(off int) *time.Location {
	if off == 0 {
		return offsetZero
	}
	return time.FixedZone("", off)
}

// offsetLocationFor returns the location of t if it is offset-only, and
// otherwise an offset-only location with the offset t has in its zone.
func offsetLocationFor(t time.Time) *time.Location {
	name, off := t.Zone()
	if name == "" {
		return t.Location()
	}
	return time.FixedZone("", off)
}

// offsetOnlyTimeFor returns t in the location returned by
// offsetLocationFor. Named zones lose their DST rules; the instant is
// unchanged.
func offsetOnlyTimeFor(t time.Time) time.Time {
	if name, _ := t.Zone(); name == "" {
		return t
	}
	return t.In(offsetLocationFor(t))
}

// tzKey is the Context key for the session time zone.
type tzKey struct{}

// ContextWithTZ returns a copy of ctx carrying tz as the session time zone,
// which decides the zone of decoded timestamptz values and of conversions
// to timestamptz. Returns ctx unchanged if tz is nil.
func ContextWithTZ(ctx context.Context, tz *time.Location) context.Context {
	if tz == nil {
		return ctx
	}
	return context.WithValue(ctx, tzKey{}, tz)
}

// TZFromContext returns the session time zone in ctx, or time.UTC if it
// has none.
func TZFromContext(ctx context.Context) *time.Location {
	if tz, ok := ctx.Value(tzKey{}).(*time.Location); ok {
		return tz
	}
	return time.UTC
}
