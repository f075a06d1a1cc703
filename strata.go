// Package strata provides an in-process engine for tabular data: a
// dynamically typed value system, schema-described frames backed by a flat
// row-major buffer, and checked type casting. This package is the public
// API; it re-exports the subpackages a typical pipeline touches.
package strata

import (
	stdio "io"

	"github.com/shopspring/decimal"

	"github.com/strataframe/strata/cast"
	"github.com/strataframe/strata/dataframe"
	"github.com/strataframe/strata/io"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

// Version is the library version.
const Version = "0.3.0"

// Core types, re-exported for single-import use.
type (
	Value      = value.Value
	Number     = value.Number
	DataType   = value.DataType
	Map        = value.Map
	Field      = schema.Field
	Schema     = schema.Schema
	DataFrame  = dataframe.DataFrame
	Dim        = dataframe.Dim
	SubView    = dataframe.SubView
	Iter       = dataframe.Iter
	ColumnSpec = dataframe.ColumnSpec
	FilterOp   = dataframe.FilterOp
	Conversion = cast.Conversion
	CSVOptions = io.CSVOptions
)

// Data type tags.
const (
	AnyType     = value.AnyType
	NullType    = value.NullType
	BoolType    = value.BoolType
	StringType  = value.StringType
	ArrayType   = value.ArrayType
	MapType     = value.MapType
	DateType    = value.DateType
	BinaryType  = value.BinaryType
	Uint8Type   = value.Uint8Type
	Uint16Type  = value.Uint16Type
	Uint32Type  = value.Uint32Type
	Uint64Type  = value.Uint64Type
	Int8Type    = value.Int8Type
	Int16Type   = value.Int16Type
	Int32Type   = value.Int32Type
	Int64Type   = value.Int64Type
	FloatType   = value.FloatType
	DoubleType  = value.DoubleType
	DecimalType = value.DecimalType
)

// Filter comparison operators.
const (
	Eq    = dataframe.Eq
	NotEq = dataframe.NotEq
	Gt    = dataframe.Gt
	GtEq  = dataframe.GtEq
	Lt    = dataframe.Lt
	LtEq  = dataframe.LtEq
)

// Null is the null value.
var Null = value.Null

// Value constructors.
var (
	Bool    = value.Bool
	String  = value.String
	Array   = value.Array
	Object  = value.Object
	Date    = value.Date
	Binary  = value.Binary
	Uint8   = value.Uint8
	Uint16  = value.Uint16
	Uint32  = value.Uint32
	Uint64  = value.Uint64
	Int8    = value.Int8
	Int16   = value.Int16
	Int32   = value.Int32
	Int64   = value.Int64
	Float   = value.Float
	Double  = value.Double
	Decimal = value.Decimal
	NewMap  = value.NewMap
	MapOf   = value.MapOf
)

// New builds a frame from column names and rows.
func New(columns []string, rows [][]value.Value) (*DataFrame, error) {
	return dataframe.New(columns, rows)
}

// WithColumns builds an empty frame with the given weakly typed columns.
func WithColumns(columns []string) (*DataFrame, error) {
	return dataframe.WithColumns(columns)
}

// Empty returns a frame with no columns and no rows.
func Empty() *DataFrame {
	return dataframe.Empty()
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return schema.New()
}

// NewField returns a weakly typed nullable field.
func NewField(name string) Field {
	return schema.NewField(name)
}

// Col selects a column by name in a Select projection.
func Col(name string) ColumnSpec {
	return dataframe.Col(name)
}

// ColAs selects a column by name under an alias.
func ColAs(name, alias string) ColumnSpec {
	return dataframe.ColAs(name, alias)
}

// TryCast casts a value into the target type, failing on loss or on a pair
// the cast tables forbid.
func TryCast(v Value, dtype DataType) (Value, error) {
	return cast.TryCast(v, dtype)
}

// SafeCast casts a value, substituting Null when the cast fails.
func SafeCast(v Value, dtype DataType) Value {
	return cast.SafeCast(v, dtype)
}

// ParseDateTime returns a conversion parsing strings into dates with the
// given layout; an empty layout uses the configured default.
func ParseDateTime(layout string) Conversion {
	return cast.ParseDateTime(layout)
}

// NewDecimal parses an arbitrary-precision decimal literal.
func NewDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// FromCSV reads a CSV document into a weakly typed frame.
func FromCSV(r stdio.Reader, opts CSVOptions) (*DataFrame, error) {
	return io.FromCSV(r, opts)
}

// FromCSVFile reads a CSV file from disk.
func FromCSVFile(path string, opts CSVOptions) (*DataFrame, error) {
	return io.FromCSVFile(path, opts)
}

// ToCSV writes the frame as CSV.
func ToCSV(w stdio.Writer, df *DataFrame, opts CSVOptions) error {
	return io.ToCSV(w, df, opts)
}

// FrameFromJSONL reads one JSON object per line into a frame.
func FrameFromJSONL(r stdio.Reader, columns []string) (*DataFrame, error) {
	return io.FrameFromJSONL(r, columns)
}
