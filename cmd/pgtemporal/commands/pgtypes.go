package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq/oid"
	"github.com/theory/pgtemporal/types"
	"github.com/theory/pgtemporal/wire"
)

// errCoerce indicates a literal that cannot be converted to the requested
// type, such as a time for a date.
var errCoerce = errors.New("cannot convert")

// pgType binds a PostgreSQL type name to its codec.
type pgType struct {
	name string
	oid  oid.Oid
	// coerce converts a parsed literal to the type.
	coerce func(ctx context.Context, dt types.DateTime) (types.DateTime, error)
	// decode decodes a binary value of the type.
	decode func(ctx context.Context, data []byte) (types.DateTime, error)
}

//nolint:gochecknoglobals
var pgTypes = []pgType{
	{
		name: "date",
		oid:  oid.T_date,
		coerce: func(ctx context.Context, dt types.DateTime) (types.DateTime, error) {
			switch dt := dt.(type) {
			case *types.Date:
				return dt, nil
			case *types.Timestamp:
				return dt.ToDate(), nil
			case *types.TimestampTZ:
				return types.NewDate(dt.In(types.TZFromContext(ctx))), nil
			}
			return nil, coerceError(dt, "date")
		},
		decode: unmarshal[types.Date],
	},
	{
		name: "time",
		oid:  oid.T_time,
		coerce: func(ctx context.Context, dt types.DateTime) (types.DateTime, error) {
			switch dt := dt.(type) {
			case *types.Time:
				return dt, nil
			case *types.TimeTZ:
				return dt.ToTime(), nil
			case *types.Timestamp:
				return types.NewTime(dt.Time), nil
			case *types.TimestampTZ:
				return types.NewTime(dt.In(types.TZFromContext(ctx))), nil
			}
			return nil, coerceError(dt, "time")
		},
		decode: unmarshal[types.Time],
	},
	{
		name: "timetz",
		oid:  oid.T_timetz,
		coerce: func(ctx context.Context, dt types.DateTime) (types.DateTime, error) {
			switch dt := dt.(type) {
			case *types.TimeTZ:
				return dt, nil
			case *types.TimestampTZ:
				return types.NewTimeTZ(dt.In(types.TZFromContext(ctx))), nil
			}
			return nil, coerceError(dt, "timetz")
		},
		decode: unmarshal[types.TimeTZ],
	},
	{
		name: "timestamp",
		oid:  oid.T_timestamp,
		coerce: func(ctx context.Context, dt types.DateTime) (types.DateTime, error) {
			switch dt := dt.(type) {
			case *types.Timestamp:
				return dt, nil
			case *types.Date:
				return dt.ToTimestamp(), nil
			case *types.TimestampTZ:
				return types.NewTimestamp(dt.In(types.TZFromContext(ctx))), nil
			}
			return nil, coerceError(dt, "timestamp")
		},
		decode: unmarshal[types.Timestamp],
	},
	{
		name: "timestamptz",
		oid:  oid.T_timestamptz,
		coerce: func(ctx context.Context, dt types.DateTime) (types.DateTime, error) {
			switch dt := dt.(type) {
			case *types.TimestampTZ:
				return dt, nil
			case *types.Timestamp:
				return dt.ToTimestampTZ(ctx), nil
			case *types.Date:
				return dt.ToTimestampTZ(ctx), nil
			}
			return nil, coerceError(dt, "timestamptz")
		},
		decode: func(ctx context.Context, data []byte) (types.DateTime, error) {
			micros, err := wire.ReadTimestamp(data)
			if err != nil {
				return nil, err
			}
			return types.DecodeTimestampTZ(ctx, micros)
		},
	},
}

// lookupType returns the pgType named name, ignoring case.
func lookupType(name string) (*pgType, error) {
	for i := range pgTypes {
		if strings.EqualFold(pgTypes[i].name, name) {
			return &pgTypes[i], nil
		}
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

func coerceError(dt types.DateTime, to string) error {
	return fmt.Errorf("%w %v %v to %v", errCoerce, oid.TypeName[dt.OID()], dt, to)
}

// binaryUnmarshaler is implemented by pointers to the types that decode
// without a time zone.
type binaryUnmarshaler[T any] interface {
	*T
	types.DateTime
	UnmarshalBinary(data []byte) error
}

func unmarshal[T any, PT binaryUnmarshaler[T]](_ context.Context, data []byte) (types.DateTime, error) {
	val := PT(new(T))
	if err := val.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return val, nil
}
