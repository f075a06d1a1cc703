// Package errors defines the typed errors surfaced by strata operations.
// Each error kind is its own struct carrying the fields a caller needs to
// react programmatically, in the style of error values rather than error
// strings.
package errors

import (
	"fmt"

	"github.com/strataframe/strata/value"
)

// IndexOutOfBoundsError occurs when a row or column index exceeds the
// frame's current dimensions.
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("the index is out of bounds (idx %d, len %d)", e.Index, e.Length)
}

// InvalidDataLengthError occurs when a row's length does not match the
// frame's column count.
type InvalidDataLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidDataLengthError) Error() string {
	return fmt.Sprintf("the length of the data does not match the expected length (expected (%d) != received (%d))", e.Expected, e.Actual)
}

// InvalidColumnNameError occurs when an operation references a column that
// does not exist in the schema.
type InvalidColumnNameError struct {
	Name string
}

func (e *InvalidColumnNameError) Error() string {
	return fmt.Sprintf("a column with the name %s does not exist", e.Name)
}

// DuplicateColumnNameError occurs when a column is added under a name the
// schema already holds.
type DuplicateColumnNameError struct {
	Name string
}

func (e *DuplicateColumnNameError) Error() string {
	return fmt.Sprintf("a column with the name %s already exists", e.Name)
}

// IllegalCastError occurs when neither the widening nor the narrowing
// permission table allows a cast between two data types.
type IllegalCastError struct {
	SourceType value.DataType
	DestType   value.DataType
}

func (e *IllegalCastError) Error() string {
	return fmt.Sprintf("the datatype of the value cannot be cast into the desired type. Cannot cast type %s into type %s", e.SourceType, e.DestType)
}

// FailedNumericCastError occurs when a permitted narrowing cast fails at
// runtime, for example on overflow or an unparseable string.
type FailedNumericCastError struct {
	Value    string
	DestType value.DataType
	Cause    error
}

func (e *FailedNumericCastError) Error() string {
	return fmt.Sprintf("failed to cast the value %s into the numeric type %s: %v", e.Value, e.DestType, e.Cause)
}

// Unwrap returns the underlying parse or overflow cause.
func (e *FailedNumericCastError) Unwrap() error {
	return e.Cause
}

// InvalidNumericCastError occurs when a numeric conversion targets a type
// that is not numeric.
type InvalidNumericCastError struct {
	DestType value.DataType
}

func (e *InvalidNumericCastError) Error() string {
	return fmt.Sprintf("the destination type %s is not numeric", e.DestType)
}

// ParseDateError occurs when a string value cannot be parsed into a date
// using the provided layout.
type ParseDateError struct {
	Value  string
	Layout string
	Cause  error
}

func (e *ParseDateError) Error() string {
	return fmt.Sprintf("failed to convert value into date data type using the layout. Cannot convert %s to date from layout %s: %v", e.Value, e.Layout, e.Cause)
}

// Unwrap returns the underlying time parse error.
func (e *ParseDateError) Unwrap() error {
	return e.Cause
}
