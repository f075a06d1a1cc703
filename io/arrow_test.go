package io

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataframe/strata/dataframe"
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

func typedFrame(t *testing.T) *dataframe.DataFrame {
	t.Helper()
	s, err := schema.FromFields(
		schema.Field{Name: "id", DType: value.Int64Type},
		schema.Field{Name: "name", DType: value.StringType, Nullable: true},
		schema.Field{Name: "ok", DType: value.BoolType},
		schema.Field{Name: "score", DType: value.DoubleType, Nullable: true},
		schema.Field{Name: "seen", DType: value.DateType},
	)
	require.NoError(t, err)

	when := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	df, err := dataframe.FromRows(s, [][]value.Value{
		{value.Int64(1), value.String("alice"), value.Bool(true), value.Double(9.5), value.Date(when)},
		{value.Int64(2), value.Null, value.Bool(false), value.Null, value.Date(when.Add(time.Hour))},
	})
	require.NoError(t, err)
	return df
}

func TestArrowRoundTrip(t *testing.T) {
	df := typedFrame(t)

	rec, err := ToArrow(df, memory.NewGoAllocator())
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(5), rec.NumCols())
	assert.Equal(t, int64(2), rec.NumRows())

	back, err := FromArrow(rec)
	require.NoError(t, err)

	assert.Equal(t, df.Columns(), back.Columns())
	assert.Equal(t, df.Schema().Fields(), back.Schema().Fields())
	assert.Equal(t, df.NumRows(), back.NumRows())
	for row := 0; row < df.NumRows(); row++ {
		want := df.Index(row)
		got := back.Index(row)
		for col := range want {
			assert.True(t, want[col].Equal(got[col]),
				"row %d col %d: expected %s, got %s", row, col, want[col], got[col])
		}
	}
}

func TestToArrowNumericWidths(t *testing.T) {
	s, err := schema.FromFields(
		schema.Field{Name: "u8", DType: value.Uint8Type},
		schema.Field{Name: "i16", DType: value.Int16Type},
		schema.Field{Name: "f32", DType: value.FloatType},
	)
	require.NoError(t, err)
	df, err := dataframe.FromRows(s, [][]value.Value{
		{value.Uint8(200), value.Int16(-5), value.Float(1.5)},
	})
	require.NoError(t, err)

	rec, err := ToArrow(df, nil)
	require.NoError(t, err)
	defer rec.Release()

	as := rec.Schema()
	assert.Equal(t, arrow.PrimitiveTypes.Uint8, as.Field(0).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Int16, as.Field(1).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Float32, as.Field(2).Type)

	back, err := FromArrow(rec)
	require.NoError(t, err)
	assert.True(t, back.Index(0)[0].Equal(value.Uint8(200)))
	assert.True(t, back.Index(0)[1].Equal(value.Int16(-5)))
	assert.True(t, back.Index(0)[2].Equal(value.Float(1.5)))
}

func TestToArrowDecimalTravelsAsString(t *testing.T) {
	s, err := schema.FromFields(schema.Field{Name: "amount", DType: value.DecimalType})
	require.NoError(t, err)
	df, err := dataframe.FromRows(s, [][]value.Value{
		{value.Decimal(decimal.RequireFromString("10.010"))},
	})
	require.NoError(t, err)

	rec, err := ToArrow(df, nil)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, arrow.BinaryTypes.String, rec.Schema().Field(0).Type)

	back, err := FromArrow(rec)
	require.NoError(t, err)
	assert.True(t, back.Index(0)[0].Equal(value.String("10.010")))
}

func TestToArrowRejectsWeakColumns(t *testing.T) {
	df, err := dataframe.New([]string{"anything"}, [][]value.Value{{value.Int64(1)}})
	require.NoError(t, err)

	_, err = ToArrow(df, nil)
	require.Error(t, err)
	var un *UnsupportedColumnTypeError
	require.ErrorAs(t, err, &un)
	assert.Equal(t, "anything", un.Column)
	assert.Equal(t, value.AnyType, un.DType)
}

func TestToArrowRejectsMismatchedCell(t *testing.T) {
	s, err := schema.FromFields(schema.Field{Name: "n", DType: value.Int64Type})
	require.NoError(t, err)
	df, err := dataframe.FromRows(s, [][]value.Value{{value.String("not a number")}})
	require.NoError(t, err)

	_, err = ToArrow(df, nil)
	require.Error(t, err)
	var ic *errors.IllegalCastError
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, value.StringType, ic.SourceType)
	assert.Equal(t, value.Int64Type, ic.DestType)
}
