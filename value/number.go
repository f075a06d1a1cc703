package value

import (
	"errors"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// ErrNumericRange is the sentinel reported by the checked accessors when a
// value does not fit the requested width.
var ErrNumericRange = errors.New("value out of range for the requested numeric type")

// ErrNotInteger is reported when a fractional value is narrowed into an
// integer width.
var ErrNotInteger = errors.New("value has a fractional component")

// Number is the numeric sub-union of Value. The tag determines both the
// storage width and the DataType reported by TypeOf.
type Number struct {
	tag DataType
	u   uint64
	i   int64
	f   float64
	d   decimal.Decimal
}

// FromUint8 wraps a uint8 in a Number tagged Uint8Type.
func FromUint8(v uint8) Number { return Number{tag: Uint8Type, u: uint64(v)} }

// FromUint16 wraps a uint16 in a Number tagged Uint16Type.
func FromUint16(v uint16) Number { return Number{tag: Uint16Type, u: uint64(v)} }

// FromUint32 wraps a uint32 in a Number tagged Uint32Type.
func FromUint32(v uint32) Number { return Number{tag: Uint32Type, u: uint64(v)} }

// FromUint64 wraps a uint64 in a Number tagged Uint64Type.
func FromUint64(v uint64) Number { return Number{tag: Uint64Type, u: v} }

// FromInt8 wraps an int8 in a Number tagged Int8Type.
func FromInt8(v int8) Number { return Number{tag: Int8Type, i: int64(v)} }

// FromInt16 wraps an int16 in a Number tagged Int16Type.
func FromInt16(v int16) Number { return Number{tag: Int16Type, i: int64(v)} }

// FromInt32 wraps an int32 in a Number tagged Int32Type.
func FromInt32(v int32) Number { return Number{tag: Int32Type, i: int64(v)} }

// FromInt64 wraps an int64 in a Number tagged Int64Type.
func FromInt64(v int64) Number { return Number{tag: Int64Type, i: v} }

// FromFloat wraps a float32 in a Number tagged FloatType.
func FromFloat(v float32) Number { return Number{tag: FloatType, f: float64(v)} }

// FromDouble wraps a float64 in a Number tagged DoubleType.
func FromDouble(v float64) Number { return Number{tag: DoubleType, f: v} }

// FromDecimal wraps an arbitrary-precision decimal in a Number tagged
// DecimalType.
func FromDecimal(d decimal.Decimal) Number { return Number{tag: DecimalType, d: d} }

// TypeOf returns the DataType matching the Number's tag.
func (n Number) TypeOf() DataType {
	if n.tag == AnyType {
		// zero Number defaults to the widest signed integer
		return Int64Type
	}
	return n.tag
}

func narrowUint[T constraints.Unsigned](v uint64, max uint64) (T, error) {
	if v > max {
		return 0, ErrNumericRange
	}
	return T(v), nil
}

func narrowInt[T constraints.Signed](v int64, min, max int64) (T, error) {
	if v < min || v > max {
		return 0, ErrNumericRange
	}
	return T(v), nil
}

// asUint64 converts the payload into a uint64, rejecting negatives,
// fractional values and anything beyond the uint64 range.
func (n Number) asUint64() (uint64, error) {
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return n.u, nil
	case Int8Type, Int16Type, Int32Type, Int64Type:
		if n.i < 0 {
			return 0, ErrNumericRange
		}
		return uint64(n.i), nil
	case FloatType, DoubleType:
		if n.f != math.Trunc(n.f) {
			return 0, ErrNotInteger
		}
		if n.f < 0 || n.f >= math.MaxUint64 {
			return 0, ErrNumericRange
		}
		return uint64(n.f), nil
	case DecimalType:
		if !n.d.IsInteger() {
			return 0, ErrNotInteger
		}
		bi := n.d.BigInt()
		if !bi.IsUint64() {
			return 0, ErrNumericRange
		}
		return bi.Uint64(), nil
	default:
		return 0, nil
	}
}

// asInt64 converts the payload into an int64 with the same checks.
func (n Number) asInt64() (int64, error) {
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		if n.u > math.MaxInt64 {
			return 0, ErrNumericRange
		}
		return int64(n.u), nil
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return n.i, nil
	case FloatType, DoubleType:
		if n.f != math.Trunc(n.f) {
			return 0, ErrNotInteger
		}
		if n.f < math.MinInt64 || n.f >= math.MaxInt64 {
			return 0, ErrNumericRange
		}
		return int64(n.f), nil
	case DecimalType:
		if !n.d.IsInteger() {
			return 0, ErrNotInteger
		}
		bi := n.d.BigInt()
		if !bi.IsInt64() {
			return 0, ErrNumericRange
		}
		return bi.Int64(), nil
	default:
		return 0, nil
	}
}

// Uint8 returns the value as a uint8, failing on range loss.
func (n Number) Uint8() (uint8, error) {
	v, err := n.asUint64()
	if err != nil {
		return 0, err
	}
	return narrowUint[uint8](v, math.MaxUint8)
}

// Uint16 returns the value as a uint16, failing on range loss.
func (n Number) Uint16() (uint16, error) {
	v, err := n.asUint64()
	if err != nil {
		return 0, err
	}
	return narrowUint[uint16](v, math.MaxUint16)
}

// Uint32 returns the value as a uint32, failing on range loss.
func (n Number) Uint32() (uint32, error) {
	v, err := n.asUint64()
	if err != nil {
		return 0, err
	}
	return narrowUint[uint32](v, math.MaxUint32)
}

// Uint64 returns the value as a uint64, failing on range loss.
func (n Number) Uint64() (uint64, error) {
	return n.asUint64()
}

// Int8 returns the value as an int8, failing on range loss.
func (n Number) Int8() (int8, error) {
	v, err := n.asInt64()
	if err != nil {
		return 0, err
	}
	return narrowInt[int8](v, math.MinInt8, math.MaxInt8)
}

// Int16 returns the value as an int16, failing on range loss.
func (n Number) Int16() (int16, error) {
	v, err := n.asInt64()
	if err != nil {
		return 0, err
	}
	return narrowInt[int16](v, math.MinInt16, math.MaxInt16)
}

// Int32 returns the value as an int32, failing on range loss.
func (n Number) Int32() (int32, error) {
	v, err := n.asInt64()
	if err != nil {
		return 0, err
	}
	return narrowInt[int32](v, math.MinInt32, math.MaxInt32)
}

// Int64 returns the value as an int64, failing on range loss.
func (n Number) Int64() (int64, error) {
	return n.asInt64()
}

// Float returns the value as a float32. Integer payloads beyond float32's
// exact range are rejected rather than rounded.
func (n Number) Float() (float32, error) {
	v, err := n.Double()
	if err != nil {
		return 0, err
	}
	if v != 0 && (math.Abs(v) > math.MaxFloat32) {
		return 0, ErrNumericRange
	}
	return float32(v), nil
}

// Double returns the value as a float64.
func (n Number) Double() (float64, error) {
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return float64(n.u), nil
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return float64(n.i), nil
	case FloatType, DoubleType:
		return n.f, nil
	case DecimalType:
		return n.d.InexactFloat64(), nil
	default:
		return 0, nil
	}
}

// Decimal returns the value as an arbitrary-precision decimal. This is
// always a widening conversion.
func (n Number) Decimal() decimal.Decimal {
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return decimal.NewFromUint64(n.u)
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return decimal.NewFromInt(n.i)
	case FloatType, DoubleType:
		return decimal.NewFromFloat(n.f)
	case DecimalType:
		return n.d
	default:
		return decimal.Zero
	}
}

// Equal reports intra-tag equality. Numbers with different tags are never
// equal, even when the payloads coincide.
func (n Number) Equal(other Number) bool {
	if n.tag != other.tag {
		return false
	}
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return n.u == other.u
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return n.i == other.i
	case FloatType, DoubleType:
		return n.f == other.f
	case DecimalType:
		return n.d.Equal(other.d)
	default:
		return true
	}
}

// Compare orders two Numbers of the same tag. ok is false for cross-tag
// pairs, which are incomparable.
func (n Number) Compare(other Number) (int, bool) {
	if n.tag != other.tag {
		return 0, false
	}
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return cmpOrdered(n.u, other.u), true
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return cmpOrdered(n.i, other.i), true
	case FloatType, DoubleType:
		if math.IsNaN(n.f) || math.IsNaN(other.f) {
			return 0, false
		}
		return cmpOrdered(n.f, other.f), true
	case DecimalType:
		return n.d.Cmp(other.d), true
	default:
		return 0, true
	}
}

func cmpOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the payload according to its width.
func (n Number) String() string {
	switch n.tag {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return strconv.FormatUint(n.u, 10)
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return strconv.FormatInt(n.i, 10)
	case FloatType:
		return strconv.FormatFloat(n.f, 'g', -1, 32)
	case DoubleType:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case DecimalType:
		return n.d.String()
	default:
		return "0"
	}
}
