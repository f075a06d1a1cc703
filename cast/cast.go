// Package cast implements type coercion between Values: static permission
// tables separating lossless widening from fallible narrowing, the cast
// entry points themselves, and configured conversions such as date parsing.
package cast

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/value"
)

// widens lists, per source type, the targets a value can always reach
// without information loss. Widening casts never fail at runtime.
var widens = map[value.DataType][]value.DataType{
	value.BoolType: {
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
		value.Int8Type, value.Int16Type, value.Int32Type, value.Int64Type,
	},
	value.Uint8Type: {
		value.Uint16Type, value.Uint32Type, value.Uint64Type,
		value.Int16Type, value.Int32Type, value.Int64Type,
		value.FloatType, value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Uint16Type: {
		value.Uint32Type, value.Uint64Type,
		value.Int32Type, value.Int64Type,
		value.FloatType, value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Uint32Type: {
		value.Uint64Type, value.Int64Type,
		value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Uint64Type: {value.DecimalType, value.StringType},
	value.Int8Type: {
		value.Int16Type, value.Int32Type, value.Int64Type,
		value.FloatType, value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Int16Type: {
		value.Int32Type, value.Int64Type,
		value.FloatType, value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Int32Type: {
		value.Int64Type, value.DoubleType, value.DecimalType, value.StringType,
	},
	value.Int64Type:  {value.DecimalType, value.StringType},
	value.FloatType:  {value.DoubleType, value.DecimalType, value.StringType},
	value.DoubleType: {value.DecimalType, value.StringType},
	value.DecimalType: {
		value.StringType,
	},
}

// narrows lists, per source type, the targets a value may reach only through
// a runtime-checked conversion that rejects on range or parse failure.
var narrows = map[value.DataType][]value.DataType{
	value.Uint8Type:  {value.Int8Type},
	value.Uint16Type: {value.Uint8Type, value.Int8Type, value.Int16Type},
	value.Uint32Type: {
		value.Uint8Type, value.Uint16Type,
		value.Int8Type, value.Int16Type, value.Int32Type,
	},
	value.Uint64Type: {
		value.Uint8Type, value.Uint16Type, value.Uint32Type,
		value.Int8Type, value.Int16Type, value.Int32Type, value.Int64Type,
	},
	value.Int8Type: {
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
	},
	value.Int16Type: {
		value.Int8Type,
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
	},
	value.Int32Type: {
		value.Int8Type, value.Int16Type,
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
	},
	value.Int64Type: {
		value.Int8Type, value.Int16Type, value.Int32Type,
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
	},
	value.DoubleType: {value.FloatType},
	value.StringType: {
		value.Uint8Type, value.Uint16Type, value.Uint32Type, value.Uint64Type,
		value.Int8Type, value.Int16Type, value.Int32Type, value.Int64Type,
		value.FloatType, value.DoubleType, value.DecimalType,
	},
}

func contains(list []value.DataType, dt value.DataType) bool {
	for _, t := range list {
		if t == dt {
			return true
		}
	}
	return false
}

// CanCast reports whether from always widens losslessly into to.
func CanCast(from, to value.DataType) bool {
	return contains(widens[from], to)
}

// CanTryCast reports whether from may narrow into to, subject to a runtime
// range or parse check.
func CanTryCast(from, to value.DataType) bool {
	return contains(narrows[from], to)
}

// TryCast transforms v into a value of the target type. Identity casts
// return v unchanged; pairs permitted by neither table are rejected with
// IllegalCastError; permitted narrowing that loses information is rejected
// at runtime, never silently truncated.
func TryCast(v value.Value, dtype value.DataType) (value.Value, error) {
	src := v.TypeOf()
	if src == dtype {
		return v, nil
	}
	if !CanCast(src, dtype) && !CanTryCast(src, dtype) {
		return value.Null, &errors.IllegalCastError{SourceType: src, DestType: dtype}
	}
	switch {
	case dtype == value.StringType:
		return value.String(v.String()), nil
	case src == value.StringType:
		s, _ := v.Str()
		return parseString(s, dtype)
	default:
		return intoNumber(v, dtype)
	}
}

// SafeCast wraps CastOrDefault with Null as the fallback. This is an
// explicit opt-in: failures are swallowed only here and in CastOrDefault.
func SafeCast(v value.Value, dtype value.DataType) value.Value {
	return CastOrDefault(v, dtype, value.Null)
}

// CastOrDefault attempts the cast and substitutes def on any failure.
func CastOrDefault(v value.Value, dtype value.DataType, def value.Value) value.Value {
	out, err := TryCast(v, dtype)
	if err != nil {
		return def
	}
	return out
}

// intoNumber converts a Bool or Number value into the numeric target using
// the checked accessors, so overflow surfaces instead of wrapping.
func intoNumber(v value.Value, dtype value.DataType) (value.Value, error) {
	if !dtype.IsNumeric() {
		return value.Null, &errors.InvalidNumericCastError{DestType: dtype}
	}
	var n value.Number
	if b, ok := v.Bool(); ok {
		if b {
			n = value.FromUint8(1)
		} else {
			n = value.FromUint8(0)
		}
	} else if num, ok := v.Number(); ok {
		n = num
	} else {
		return value.Null, &errors.IllegalCastError{SourceType: v.TypeOf(), DestType: dtype}
	}
	out, err := convertNumber(n, dtype)
	if err != nil {
		return value.Null, &errors.FailedNumericCastError{Value: v.String(), DestType: dtype, Cause: err}
	}
	return out, nil
}

func convertNumber(n value.Number, dtype value.DataType) (value.Value, error) {
	switch dtype {
	case value.Uint8Type:
		u, err := n.Uint8()
		return value.Uint8(u), err
	case value.Uint16Type:
		u, err := n.Uint16()
		return value.Uint16(u), err
	case value.Uint32Type:
		u, err := n.Uint32()
		return value.Uint32(u), err
	case value.Uint64Type:
		u, err := n.Uint64()
		return value.Uint64(u), err
	case value.Int8Type:
		i, err := n.Int8()
		return value.Int8(i), err
	case value.Int16Type:
		i, err := n.Int16()
		return value.Int16(i), err
	case value.Int32Type:
		i, err := n.Int32()
		return value.Int32(i), err
	case value.Int64Type:
		i, err := n.Int64()
		return value.Int64(i), err
	case value.FloatType:
		f, err := n.Float()
		return value.Float(f), err
	case value.DoubleType:
		f, err := n.Double()
		return value.Double(f), err
	default:
		return value.Decimal(n.Decimal()), nil
	}
}

// parseString parses a string into the numeric target using that type's
// native parse rule.
func parseString(s string, dtype value.DataType) (value.Value, error) {
	fail := func(err error) (value.Value, error) {
		return value.Null, &errors.FailedNumericCastError{Value: s, DestType: dtype, Cause: err}
	}
	switch dtype {
	case value.Uint8Type:
		u, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return fail(err)
		}
		return value.Uint8(uint8(u)), nil
	case value.Uint16Type:
		u, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return fail(err)
		}
		return value.Uint16(uint16(u)), nil
	case value.Uint32Type:
		u, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fail(err)
		}
		return value.Uint32(uint32(u)), nil
	case value.Uint64Type:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fail(err)
		}
		return value.Uint64(u), nil
	case value.Int8Type:
		i, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return fail(err)
		}
		return value.Int8(int8(i)), nil
	case value.Int16Type:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return fail(err)
		}
		return value.Int16(int16(i)), nil
	case value.Int32Type:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fail(err)
		}
		return value.Int32(int32(i)), nil
	case value.Int64Type:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fail(err)
		}
		return value.Int64(i), nil
	case value.FloatType:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fail(err)
		}
		return value.Float(float32(f)), nil
	case value.DoubleType:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail(err)
		}
		return value.Double(f), nil
	case value.DecimalType:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fail(err)
		}
		return value.Decimal(d), nil
	default:
		return value.Null, &errors.InvalidNumericCastError{DestType: dtype}
	}
}
