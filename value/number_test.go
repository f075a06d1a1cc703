package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberTypeOf(t *testing.T) {
	tests := []struct {
		name string
		num  Number
		want DataType
	}{
		{"uint8", FromUint8(1), Uint8Type},
		{"uint16", FromUint16(1), Uint16Type},
		{"uint32", FromUint32(1), Uint32Type},
		{"uint64", FromUint64(1), Uint64Type},
		{"int8", FromInt8(-1), Int8Type},
		{"int16", FromInt16(-1), Int16Type},
		{"int32", FromInt32(-1), Int32Type},
		{"int64", FromInt64(-1), Int64Type},
		{"float", FromFloat(1.5), FloatType},
		{"double", FromDouble(1.5), DoubleType},
		{"decimal", FromDecimal(decimal.NewFromInt(1)), DecimalType},
		{"zero value defaults to int64", Number{}, Int64Type},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.num.TypeOf())
		})
	}
}

func TestNumberCheckedAccessors(t *testing.T) {
	t.Run("widening always succeeds", func(t *testing.T) {
		n := FromUint8(200)
		u16, err := n.Uint16()
		require.NoError(t, err)
		assert.Equal(t, uint16(200), u16)

		i64, err := n.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(200), i64)

		d, err := n.Double()
		require.NoError(t, err)
		assert.Equal(t, 200.0, d)
	})

	t.Run("narrowing rejects out of range", func(t *testing.T) {
		_, err := FromInt32(300).Uint8()
		assert.ErrorIs(t, err, ErrNumericRange)

		_, err = FromInt16(-1).Uint16()
		assert.ErrorIs(t, err, ErrNumericRange)

		_, err = FromUint64(1 << 40).Int32()
		assert.ErrorIs(t, err, ErrNumericRange)
	})

	t.Run("fractional values never become integers", func(t *testing.T) {
		_, err := FromDouble(1.5).Int64()
		assert.ErrorIs(t, err, ErrNotInteger)

		d := decimal.NewFromFloat(2.25)
		_, err = FromDecimal(d).Uint32()
		assert.ErrorIs(t, err, ErrNotInteger)
	})

	t.Run("integral floats narrow cleanly", func(t *testing.T) {
		i, err := FromDouble(42).Int8()
		require.NoError(t, err)
		assert.Equal(t, int8(42), i)
	})

	t.Run("decimal widening is total", func(t *testing.T) {
		d := FromInt64(-7).Decimal()
		assert.True(t, d.Equal(decimal.NewFromInt(-7)))
	})
}

func TestNumberRoundTripPerWidth(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		v, err := FromUint8(255).Uint8()
		require.NoError(t, err)
		assert.Equal(t, uint8(255), v)
	})
	t.Run("uint16", func(t *testing.T) {
		v, err := FromUint16(65535).Uint16()
		require.NoError(t, err)
		assert.Equal(t, uint16(65535), v)
	})
	t.Run("uint32", func(t *testing.T) {
		v, err := FromUint32(1 << 31).Uint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(1<<31), v)
	})
	t.Run("uint64", func(t *testing.T) {
		v, err := FromUint64(^uint64(0)).Uint64()
		require.NoError(t, err)
		assert.Equal(t, ^uint64(0), v)
	})
	t.Run("int8", func(t *testing.T) {
		v, err := FromInt8(-128).Int8()
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)
	})
	t.Run("int16", func(t *testing.T) {
		v, err := FromInt16(-32768).Int16()
		require.NoError(t, err)
		assert.Equal(t, int16(-32768), v)
	})
	t.Run("int32", func(t *testing.T) {
		v, err := FromInt32(-1 << 31).Int32()
		require.NoError(t, err)
		assert.Equal(t, int32(-1<<31), v)
	})
	t.Run("int64", func(t *testing.T) {
		v, err := FromInt64(-1 << 62).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(-1<<62), v)
	})
	t.Run("float", func(t *testing.T) {
		v, err := FromFloat(1.25).Float()
		require.NoError(t, err)
		assert.Equal(t, float32(1.25), v)
	})
	t.Run("double", func(t *testing.T) {
		v, err := FromDouble(-2.5).Double()
		require.NoError(t, err)
		assert.Equal(t, -2.5, v)
	})
	t.Run("decimal", func(t *testing.T) {
		d := decimal.RequireFromString("123.456")
		assert.True(t, FromDecimal(d).Decimal().Equal(d))
	})
}

func TestNumberEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want bool
	}{
		{"same tag same payload", FromInt32(5), FromInt32(5), true},
		{"same tag different payload", FromInt32(5), FromInt32(6), false},
		{"same payload different tag", FromInt32(5), FromInt64(5), false},
		{"uint vs int never equal", FromUint8(1), FromInt8(1), false},
		{"decimal equality is numeric", FromDecimal(decimal.RequireFromString("1.50")), FromDecimal(decimal.RequireFromString("1.5")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestNumberCompare(t *testing.T) {
	t.Run("orders within a tag", func(t *testing.T) {
		c, ok := FromInt16(-3).Compare(FromInt16(9))
		require.True(t, ok)
		assert.Equal(t, -1, c)
	})

	t.Run("cross tag is incomparable", func(t *testing.T) {
		_, ok := FromInt16(1).Compare(FromInt32(1))
		assert.False(t, ok)
	})

	t.Run("nan is incomparable", func(t *testing.T) {
		nan := FromDouble(0)
		nan.f = nan.f / nan.f // 0/0
		_, ok := nan.Compare(FromDouble(1))
		assert.False(t, ok)
	})
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "255", FromUint8(255).String())
	assert.Equal(t, "-12", FromInt64(-12).String())
	assert.Equal(t, "1.5", FromDouble(1.5).String())
	assert.Equal(t, "10.01", FromDecimal(decimal.RequireFromString("10.01")).String())
}
