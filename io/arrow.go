package io

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/strataframe/strata/dataframe"
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

// UnsupportedColumnTypeError reports a column whose data type has no Arrow
// mapping: weakly typed columns and the composite variants.
type UnsupportedColumnTypeError struct {
	Column string
	DType  value.DataType
}

func (e *UnsupportedColumnTypeError) Error() string {
	return fmt.Sprintf("column %s has type %s which cannot be represented in Arrow", e.Column, e.DType)
}

// timestampNaive carries no time zone, matching the engine's naive Date
// semantics.
var timestampNaive = &arrow.TimestampType{Unit: arrow.Microsecond}

func arrowType(dt value.DataType) (arrow.DataType, bool) {
	switch dt {
	case value.BoolType:
		return arrow.FixedWidthTypes.Boolean, true
	case value.Uint8Type:
		return arrow.PrimitiveTypes.Uint8, true
	case value.Uint16Type:
		return arrow.PrimitiveTypes.Uint16, true
	case value.Uint32Type:
		return arrow.PrimitiveTypes.Uint32, true
	case value.Uint64Type:
		return arrow.PrimitiveTypes.Uint64, true
	case value.Int8Type:
		return arrow.PrimitiveTypes.Int8, true
	case value.Int16Type:
		return arrow.PrimitiveTypes.Int16, true
	case value.Int32Type:
		return arrow.PrimitiveTypes.Int32, true
	case value.Int64Type:
		return arrow.PrimitiveTypes.Int64, true
	case value.FloatType:
		return arrow.PrimitiveTypes.Float32, true
	case value.DoubleType:
		return arrow.PrimitiveTypes.Float64, true
	case value.StringType, value.DecimalType:
		// decimals travel as their exact string form
		return arrow.BinaryTypes.String, true
	case value.BinaryType:
		return arrow.BinaryTypes.Binary, true
	case value.DateType:
		return timestampNaive, true
	default:
		return nil, false
	}
}

// ToArrow materializes the frame as an Arrow record. Every column must
// carry a strongly typed schema entry (run DeriveSchema or CastColumn
// first) and every cell must match its column's type. The caller owns the
// returned record and must Release it.
func ToArrow(df *dataframe.DataFrame, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	fields := df.Schema().Fields()
	arrowFields := make([]arrow.Field, len(fields))
	for i, f := range fields {
		at, ok := arrowType(f.DType)
		if !ok {
			return nil, &UnsupportedColumnTypeError{Column: f.Name, DType: f.DType}
		}
		arrowFields[i] = arrow.Field{Name: f.Name, Type: at, Nullable: f.Nullable}
	}

	b := array.NewRecordBuilder(mem, arrow.NewSchema(arrowFields, nil))
	defer b.Release()

	_, rows := df.Shape()
	for col, f := range fields {
		fb := b.Field(col)
		for row := 0; row < rows; row++ {
			v, _ := df.At(row, col)
			if v.IsNull() {
				fb.AppendNull()
				continue
			}
			if err := appendValue(fb, f, v); err != nil {
				return nil, err
			}
		}
	}
	return b.NewRecord(), nil
}

func appendValue(fb array.Builder, f schema.Field, v value.Value) error {
	mismatch := func() error {
		return &errors.IllegalCastError{SourceType: v.TypeOf(), DestType: f.DType}
	}
	numeric := func() (value.Number, error) {
		n, ok := v.Number()
		if !ok {
			return value.Number{}, mismatch()
		}
		return n, nil
	}
	numErr := func(cause error) error {
		return &errors.FailedNumericCastError{Value: v.String(), DestType: f.DType, Cause: cause}
	}

	switch bld := fb.(type) {
	case *array.BooleanBuilder:
		bv, ok := v.Bool()
		if !ok {
			return mismatch()
		}
		bld.Append(bv)
	case *array.Uint8Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Uint8()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Uint16Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Uint16()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Uint32Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Uint32()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Uint64Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Uint64()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Int8Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Int8()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Int16Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Int16()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Int32Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Int32()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Int64Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Int64()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Float32Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Float()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.Float64Builder:
		n, err := numeric()
		if err != nil {
			return err
		}
		x, err := n.Double()
		if err != nil {
			return numErr(err)
		}
		bld.Append(x)
	case *array.StringBuilder:
		if f.DType == value.DecimalType {
			n, err := numeric()
			if err != nil {
				return err
			}
			bld.Append(n.Decimal().String())
			return nil
		}
		s, ok := v.Str()
		if !ok {
			return mismatch()
		}
		bld.Append(s)
	case *array.BinaryBuilder:
		bs, ok := v.Binary()
		if !ok {
			return mismatch()
		}
		bld.Append(bs)
	case *array.TimestampBuilder:
		t, ok := v.Date()
		if !ok {
			return mismatch()
		}
		bld.Append(arrow.Timestamp(t.UnixMicro()))
	default:
		return &UnsupportedColumnTypeError{Column: f.Name, DType: f.DType}
	}
	return nil
}

// FromArrow imports an Arrow record into a frame, mapping each supported
// Arrow column type back onto its data type. Null slots import as Null.
func FromArrow(rec arrow.Record) (*dataframe.DataFrame, error) {
	s := schema.WithCapacity(int(rec.NumCols()))
	getters := make([]func(int) value.Value, rec.NumCols())

	for i := 0; i < int(rec.NumCols()); i++ {
		af := rec.Schema().Field(i)
		col := rec.Column(i)
		dt, get, err := columnGetter(af, col)
		if err != nil {
			return nil, err
		}
		if _, err := s.PushField(schema.Field{Name: af.Name, DType: dt, Nullable: af.Nullable}); err != nil {
			return nil, err
		}
		getters[i] = get
	}

	rows := make([][]value.Value, rec.NumRows())
	for row := range rows {
		r := make([]value.Value, len(getters))
		for col, get := range getters {
			r[col] = get(row)
		}
		rows[row] = r
	}
	return dataframe.FromRows(s, rows)
}

func columnGetter(af arrow.Field, col arrow.Array) (value.DataType, func(int) value.Value, error) {
	nullable := func(fn func(int) value.Value) func(int) value.Value {
		return func(i int) value.Value {
			if col.IsNull(i) {
				return value.Null
			}
			return fn(i)
		}
	}

	switch c := col.(type) {
	case *array.Boolean:
		return value.BoolType, nullable(func(i int) value.Value { return value.Bool(c.Value(i)) }), nil
	case *array.Uint8:
		return value.Uint8Type, nullable(func(i int) value.Value { return value.Uint8(c.Value(i)) }), nil
	case *array.Uint16:
		return value.Uint16Type, nullable(func(i int) value.Value { return value.Uint16(c.Value(i)) }), nil
	case *array.Uint32:
		return value.Uint32Type, nullable(func(i int) value.Value { return value.Uint32(c.Value(i)) }), nil
	case *array.Uint64:
		return value.Uint64Type, nullable(func(i int) value.Value { return value.Uint64(c.Value(i)) }), nil
	case *array.Int8:
		return value.Int8Type, nullable(func(i int) value.Value { return value.Int8(c.Value(i)) }), nil
	case *array.Int16:
		return value.Int16Type, nullable(func(i int) value.Value { return value.Int16(c.Value(i)) }), nil
	case *array.Int32:
		return value.Int32Type, nullable(func(i int) value.Value { return value.Int32(c.Value(i)) }), nil
	case *array.Int64:
		return value.Int64Type, nullable(func(i int) value.Value { return value.Int64(c.Value(i)) }), nil
	case *array.Float32:
		return value.FloatType, nullable(func(i int) value.Value { return value.Float(c.Value(i)) }), nil
	case *array.Float64:
		return value.DoubleType, nullable(func(i int) value.Value { return value.Double(c.Value(i)) }), nil
	case *array.String:
		return value.StringType, nullable(func(i int) value.Value { return value.String(c.Value(i)) }), nil
	case *array.Binary:
		return value.BinaryType, nullable(func(i int) value.Value {
			return value.Binary(append([]byte(nil), c.Value(i)...))
		}), nil
	case *array.Timestamp:
		unit := c.DataType().(*arrow.TimestampType).Unit
		return value.DateType, nullable(func(i int) value.Value {
			return value.Date(c.Value(i).ToTime(unit))
		}), nil
	default:
		return value.AnyType, nil, &UnsupportedColumnTypeError{Column: af.Name, DType: value.AnyType}
	}
}
