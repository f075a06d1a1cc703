// Package value implements the dynamic datum stored in a frame cell: a
// closed variant set of scalars and composites, the numeric sub-union with
// fixed widths, and the DataType tags describing both.
package value

import (
	"time"

	"github.com/shopspring/decimal"
)

// Value is a dynamically tagged scalar or composite datum. The variant set
// is closed: Null, Bool, String, Array, Map, Number, Date and Binary.
// Equality and ordering are defined only between same-variant values;
// cross-variant comparison yields "incomparable", never a panic.
type Value struct {
	kind DataType
	b    bool
	s    string
	num  Number
	arr  []Value
	m    *Map
	t    time.Time
	bin  []byte
}

// Null is the null value.
var Null = Value{kind: NullType}

// Bool wraps a native bool.
func Bool(b bool) Value { return Value{kind: BoolType, b: b} }

// String wraps a native string.
func String(s string) Value { return Value{kind: StringType, s: s} }

// Array wraps an ordered sequence of values.
func Array(vals ...Value) Value { return Value{kind: ArrayType, arr: vals} }

// Object wraps an ordered key-to-value map.
func Object(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: MapType, m: m}
}

// Date wraps a timestamp. The engine treats dates as naive wall-clock
// values; pass UTC times to keep formatting and ordering consistent.
func Date(t time.Time) Value { return Value{kind: DateType, t: t} }

// Binary wraps a byte sequence.
func Binary(b []byte) Value { return Value{kind: BinaryType, bin: b} }

// NewNumber wraps an already tagged Number.
func NewNumber(n Number) Value { return Value{kind: n.TypeOf(), num: n} }

// Uint8 wraps a native uint8. Every native width maps to exactly one
// Number tag.
func Uint8(v uint8) Value { return NewNumber(FromUint8(v)) }

// Uint16 wraps a native uint16.
func Uint16(v uint16) Value { return NewNumber(FromUint16(v)) }

// Uint32 wraps a native uint32.
func Uint32(v uint32) Value { return NewNumber(FromUint32(v)) }

// Uint64 wraps a native uint64.
func Uint64(v uint64) Value { return NewNumber(FromUint64(v)) }

// Int8 wraps a native int8.
func Int8(v int8) Value { return NewNumber(FromInt8(v)) }

// Int16 wraps a native int16.
func Int16(v int16) Value { return NewNumber(FromInt16(v)) }

// Int32 wraps a native int32.
func Int32(v int32) Value { return NewNumber(FromInt32(v)) }

// Int64 wraps a native int64.
func Int64(v int64) Value { return NewNumber(FromInt64(v)) }

// Float wraps a native float32.
func Float(v float32) Value { return NewNumber(FromFloat(v)) }

// Double wraps a native float64.
func Double(v float64) Value { return NewNumber(FromDouble(v)) }

// Decimal wraps an arbitrary-precision decimal.
func Decimal(d decimal.Decimal) Value { return NewNumber(FromDecimal(d)) }

// TypeOf reports the DataType of the value. It is total: every variant,
// including Null, maps to a tag.
func (v Value) TypeOf() DataType {
	return v.kind
}

// IsNull reports whether the value is the Null variant.
func (v Value) IsNull() bool { return v.kind == NullType }

// Bool unpacks a Bool variant.
func (v Value) Bool() (bool, bool) {
	if v.kind != BoolType {
		return false, false
	}
	return v.b, true
}

// Str unpacks a String variant.
func (v Value) Str() (string, bool) {
	if v.kind != StringType {
		return "", false
	}
	return v.s, true
}

// Number unpacks a Number variant.
func (v Value) Number() (Number, bool) {
	if !v.kind.IsNumeric() {
		return Number{}, false
	}
	return v.num, true
}

// Array unpacks an Array variant. The returned slice is the value's own
// backing storage and must be treated as read-only.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayType {
		return nil, false
	}
	return v.arr, true
}

// Object unpacks a Map variant.
func (v Value) Object() (*Map, bool) {
	if v.kind != MapType {
		return nil, false
	}
	return v.m, true
}

// Date unpacks a Date variant.
func (v Value) Date() (time.Time, bool) {
	if v.kind != DateType {
		return time.Time{}, false
	}
	return v.t, true
}

// Binary unpacks a Binary variant.
func (v Value) Binary() ([]byte, bool) {
	if v.kind != BinaryType {
		return nil, false
	}
	return v.bin, true
}

// Get indexes into a Map variant by key. Any other variant, or a missing
// key, yields Null.
func (v Value) Get(key string) Value {
	if v.kind != MapType {
		return Null
	}
	return v.m.Index(key)
}

// Equal reports intra-variant equality. Values of different variants are
// never equal; this policy is deliberate and applied explicitly rather than
// left to structural comparison.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind && !(v.kind.IsNumeric() && other.kind.IsNumeric()) {
		return false
	}
	switch v.kind {
	case NullType:
		return true
	case BoolType:
		return v.b == other.b
	case StringType:
		return v.s == other.s
	case DateType:
		return v.t.Equal(other.t)
	case BinaryType:
		return bytesEqual(v.bin, other.bin)
	case ArrayType:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case MapType:
		return v.m.Equal(other.m)
	default:
		return v.num.Equal(other.num)
	}
}

// Compare orders two values of the same variant: -1, 0 or 1 with ok=true,
// or ok=false when the pair is incomparable (cross-variant, Map, Binary, or
// an incomparable element inside an Array). Callers must treat ok=false as
// "incomparable", never as equality.
func (v Value) Compare(other Value) (int, bool) {
	if v.kind != other.kind && !(v.kind.IsNumeric() && other.kind.IsNumeric()) {
		return 0, false
	}
	switch v.kind {
	case NullType:
		return 0, true
	case BoolType:
		// false sorts before true
		return cmpBool(v.b, other.b), true
	case StringType:
		return cmpOrdered(v.s, other.s), true
	case DateType:
		switch {
		case v.t.Before(other.t):
			return -1, true
		case v.t.After(other.t):
			return 1, true
		default:
			return 0, true
		}
	case ArrayType:
		return cmpArrays(v.arr, other.arr)
	case MapType, BinaryType:
		return 0, false
	default:
		return v.num.Compare(other.num)
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func cmpArrays(a, b []Value) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, ok := a[i].Compare(b[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return cmpOrdered(len(a), len(b)), true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the value for display. It is total: composites print an
// explicit placeholder since structural printing is not part of the core.
func (v Value) String() string {
	switch v.kind {
	case NullType:
		return "null"
	case BoolType:
		if v.b {
			return "true"
		}
		return "false"
	case StringType:
		return v.s
	case DateType:
		return v.t.Format(DateDisplayLayout)
	case BinaryType:
		return "<binary>"
	case ArrayType:
		return "<array>"
	case MapType:
		return "<object>"
	default:
		return v.num.String()
	}
}

// DateDisplayLayout is the layout used when rendering Date values.
const DateDisplayLayout = "2006-01-02 15:04:05"
