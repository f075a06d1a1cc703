package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataframe/strata/value"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"index out of bounds",
			&IndexOutOfBoundsError{Index: 9, Length: 3},
			"the index is out of bounds (idx 9, len 3)",
		},
		{
			"invalid data length",
			&InvalidDataLengthError{Expected: 3, Actual: 1},
			"the length of the data does not match the expected length (expected (3) != received (1))",
		},
		{
			"invalid column name",
			&InvalidColumnNameError{Name: "ghost"},
			"a column with the name ghost does not exist",
		},
		{
			"duplicate column name",
			&DuplicateColumnNameError{Name: "id"},
			"a column with the name id already exists",
		},
		{
			"illegal cast",
			&IllegalCastError{SourceType: value.BinaryType, DestType: value.Int64Type},
			"the datatype of the value cannot be cast into the desired type. Cannot cast type binary into type int64",
		},
		{
			"invalid numeric cast",
			&InvalidNumericCastError{DestType: value.StringType},
			"the destination type string is not numeric",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("strconv failure")

	fc := &FailedNumericCastError{Value: "300", DestType: value.Uint8Type, Cause: cause}
	assert.True(t, errors.Is(fc, cause))
	assert.Contains(t, fc.Error(), "300")
	assert.Contains(t, fc.Error(), "uint8")

	pd := &ParseDateError{Value: "x", Layout: "2006-01-02", Cause: cause}
	assert.True(t, errors.Is(pd, cause))
}
