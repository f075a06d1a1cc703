// Package dataframe implements the frame itself: a schema, a dimension
// pair, and a single contiguous buffer of values addressed row-major. All
// column and row mutation goes through this package.
package dataframe

import (
	multierror "github.com/hashicorp/go-multierror"
	"github.com/strataframe/strata/cast"
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

// DataFrame owns a flat buffer of values plus the schema and dimensions
// describing it. The buffer and schema are exclusively owned: views borrow
// read-only, and the epoch counter invalidates live iterators when the
// frame mutates underneath them.
type DataFrame struct {
	schema *schema.Schema
	dim    Dim
	data   []value.Value
	epoch  uint64
}

// Empty returns a frame with no columns and no rows.
func Empty() *DataFrame {
	return &DataFrame{schema: schema.New()}
}

// New builds a frame from column names and rows. Every row must match the
// column count; the whole input is validated before any of it is applied.
func New(columns []string, rows [][]value.Value) (*DataFrame, error) {
	df, err := WithColumns(columns)
	if err != nil {
		return nil, err
	}
	if _, err := df.Extend(rows); err != nil {
		return nil, err
	}
	return df, nil
}

// FromRows builds a frame around an existing schema and flattens the rows
// into its buffer. The batch validates as a whole, like Extend.
func FromRows(s *schema.Schema, rows [][]value.Value) (*DataFrame, error) {
	df := WithSchema(s)
	if _, err := df.Extend(rows); err != nil {
		return nil, err
	}
	return df, nil
}

// WithColumns builds an empty frame with the given weakly typed columns.
func WithColumns(columns []string) (*DataFrame, error) {
	s := schema.WithCapacity(len(columns))
	for _, name := range columns {
		if _, err := s.AddField(name); err != nil {
			return nil, err
		}
	}
	return WithSchema(s), nil
}

// WithSchema builds an empty frame around an existing schema. The frame
// takes ownership of the schema.
func WithSchema(s *schema.Schema) *DataFrame {
	if s == nil {
		s = schema.New()
	}
	return &DataFrame{
		schema: s,
		dim:    NewDim(s.Len(), 0),
	}
}

// Schema returns the frame's schema. Callers may tighten field metadata
// through it but must not add or remove fields directly; column-count
// changes go through PushColumn and RemoveColumn.
func (df *DataFrame) Schema() *schema.Schema {
	return df.schema
}

// Columns returns the column names in position order.
func (df *DataFrame) Columns() []string {
	return df.schema.FieldNames()
}

// Shape returns (column count, row count).
func (df *DataFrame) Shape() (int, int) {
	return df.dim.Shape()
}

// NumRows returns the row count.
func (df *DataFrame) NumRows() int { return df.dim.Rows() }

// NumCols returns the column count.
func (df *DataFrame) NumCols() int { return df.dim.Cols() }

// PushColumn appends a weakly typed column and inserts Null at the new
// column's position in every existing row. Rows are walked in ascending
// order with offsets computed from the updated column count, so rows that
// have already been widened stay aligned.
func (df *DataFrame) PushColumn(name string) error {
	if _, err := df.schema.AddField(name); err != nil {
		return err
	}
	df.dim.cols++
	df.epoch++

	colIndex := df.dim.cols - 1
	for row := 0; row < df.dim.rows; row++ {
		index := df.dim.ValueIndex(row, colIndex)
		if index >= len(df.data) {
			df.data = append(df.data, value.Null)
			continue
		}
		df.data = append(df.data, value.Null)
		copy(df.data[index+1:], df.data[index:])
		df.data[index] = value.Null
	}
	return nil
}

// RemoveColumn deletes the column at the given position along with its slot
// in every row. Rows are walked from last to first so earlier deletions do
// not invalidate the offsets still to be removed. Removed values are lost.
func (df *DataFrame) RemoveColumn(index int) error {
	if index >= df.dim.cols || index < 0 {
		return &errors.IndexOutOfBoundsError{Index: index, Length: df.dim.cols}
	}
	for row := df.dim.rows - 1; row >= 0; row-- {
		i := df.dim.ValueIndex(row, index)
		df.data = append(df.data[:i], df.data[i+1:]...)
	}
	df.dim.cols--
	df.schema.RemoveAt(index)
	df.epoch++
	return nil
}

// RenameColumn renames a column, failing explicitly when the old name is
// absent or the new name is taken.
func (df *DataFrame) RenameColumn(old, new string) error {
	if !df.schema.FieldExists(old) {
		return &errors.InvalidColumnNameError{Name: old}
	}
	if _, ok := df.schema.RenameField(old, new); !ok {
		return &errors.DuplicateColumnNameError{Name: new}
	}
	return nil
}

// PushRow appends one row after checking its length against the column
// count. On failure the frame is left unchanged. Returns the new row count.
func (df *DataFrame) PushRow(row []value.Value) (int, error) {
	if len(row) != df.dim.cols {
		return df.dim.rows, &errors.InvalidDataLengthError{Expected: df.dim.cols, Actual: len(row)}
	}
	df.pushRowUnchecked(row)
	return df.dim.rows, nil
}

func (df *DataFrame) pushRowUnchecked(row []value.Value) {
	df.data = append(df.data, row...)
	df.dim.rows++
	df.epoch++
}

// Extend appends a batch of rows. Validation runs over the whole batch
// first, collecting an error per invalid row; if any row is invalid none of
// the batch is applied. Returns the new row count.
func (df *DataFrame) Extend(rows [][]value.Value) (int, error) {
	var batchErr *multierror.Error
	for _, row := range rows {
		if len(row) != df.dim.cols {
			batchErr = multierror.Append(batchErr,
				&errors.InvalidDataLengthError{Expected: df.dim.cols, Actual: len(row)})
		}
	}
	if err := batchErr.ErrorOrNil(); err != nil {
		return df.dim.rows, err
	}
	df.extendUnchecked(rows)
	return df.dim.rows, nil
}

func (df *DataFrame) extendUnchecked(rows [][]value.Value) {
	for _, row := range rows {
		df.data = append(df.data, row...)
	}
	df.dim.rows += len(rows)
	df.epoch++
}

// Row returns the row at the given index, or ok=false when out of bounds.
// This accessor never panics.
func (df *DataFrame) Row(row int) ([]value.Value, bool) {
	if row < 0 || row >= df.dim.rows {
		return nil, false
	}
	start, end := df.dim.RowRange(row)
	if end > len(df.data) {
		return nil, false
	}
	return df.data[start:end], true
}

// Index is the convenience accessor for a row: out-of-range indexes yield
// an empty slice rather than an error.
func (df *DataFrame) Index(row int) []value.Value {
	r, ok := df.Row(row)
	if !ok {
		return nil
	}
	return r
}

// At returns the value at (row, col), or ok=false when out of bounds.
func (df *DataFrame) At(row, col int) (value.Value, bool) {
	if row < 0 || row >= df.dim.rows || col < 0 || col >= df.dim.cols {
		return value.Null, false
	}
	return df.data[df.dim.ValueIndex(row, col)], true
}

// MapColumn applies fn to every value in the named column by starting at
// the column's offset and stepping by the column count. Replacement values
// are computed for the whole column before any are written, so a failing fn
// leaves the frame unchanged.
func (df *DataFrame) MapColumn(name string, fn func(v value.Value) (value.Value, error)) error {
	col, ok := df.schema.FindIndex(name)
	if !ok {
		return &errors.InvalidColumnNameError{Name: name}
	}
	replacements := make([]value.Value, 0, df.dim.rows)
	for i := col; i < len(df.data); i += df.dim.cols {
		out, err := fn(df.data[i])
		if err != nil {
			return err
		}
		replacements = append(replacements, out)
	}
	for n, i := 0, col; i < len(df.data); n, i = n+1, i+df.dim.cols {
		df.data[i] = replacements[n]
	}
	df.epoch++
	return nil
}

// ColumnValues returns the values of the named column in row order.
func (df *DataFrame) ColumnValues(name string) ([]value.Value, error) {
	col, ok := df.schema.FindIndex(name)
	if !ok {
		return nil, &errors.InvalidColumnNameError{Name: name}
	}
	out := make([]value.Value, 0, df.dim.rows)
	for i := col; i < len(df.data); i += df.dim.cols {
		out = append(out, df.data[i])
	}
	return out, nil
}

// CastColumn casts every non-null value of the named column into the target
// type and writes the type back into the schema. Any single failure rejects
// the whole column.
func (df *DataFrame) CastColumn(name string, dtype value.DataType) error {
	err := df.MapColumn(name, func(v value.Value) (value.Value, error) {
		if v.IsNull() {
			return v, nil
		}
		return cast.TryCast(v, dtype)
	})
	if err != nil {
		return err
	}
	df.schema.FieldMut(name).DType = dtype
	return nil
}

// SafeCastColumn casts the named column, substituting def for every value
// the cast rejects. This is the explicit failure-absorbing variant.
func (df *DataFrame) SafeCastColumn(name string, dtype value.DataType, def value.Value) error {
	err := df.MapColumn(name, func(v value.Value) (value.Value, error) {
		if v.IsNull() {
			return v, nil
		}
		return cast.CastOrDefault(v, dtype, def), nil
	})
	if err != nil {
		return err
	}
	df.schema.FieldMut(name).DType = dtype
	return nil
}

// ConvertColumn applies a configured conversion to the named column and
// records the resulting data type in the schema.
func (df *DataFrame) ConvertColumn(name string, c cast.Conversion) (value.DataType, error) {
	err := df.MapColumn(name, func(v value.Value) (value.Value, error) {
		if v.IsNull() {
			return v, nil
		}
		return c.Apply(v)
	})
	if err != nil {
		return value.AnyType, err
	}
	dtype := c.ResultType()
	df.schema.FieldMut(name).DType = dtype
	return dtype, nil
}

// Clear drops all columns and rows.
func (df *DataFrame) Clear() {
	df.schema = schema.New()
	df.data = nil
	df.dim = NewDim(0, 0)
	df.epoch++
}

// Clone returns an independent deep copy of the frame's schema and buffer.
func (df *DataFrame) Clone() *DataFrame {
	return &DataFrame{
		schema: df.schema.Clone(),
		dim:    df.dim,
		data:   append([]value.Value(nil), df.data...),
	}
}
