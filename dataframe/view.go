package dataframe

import (
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

// Iter is a lazy, restartable iterator over a frame's rows. A fresh Iter
// always starts at row zero; exhaustion yields end-of-sequence, never an
// error. The iterator captures the frame's mutation epoch: if the frame
// mutates while the iterator is alive, iteration terminates rather than
// serving rows from a reshaped buffer.
type Iter struct {
	df    *DataFrame
	ptr   int
	epoch uint64
}

// Iter returns a row iterator positioned at row zero.
func (df *DataFrame) Iter() *Iter {
	return &Iter{df: df, epoch: df.epoch}
}

// Next returns the next row as a SubView, or ok=false when the sequence is
// exhausted or the frame has mutated since the iterator was created.
func (it *Iter) Next() (*SubView, bool) {
	if it.df.epoch != it.epoch {
		return nil, false
	}
	start, end := it.df.dim.RowRange(it.ptr)
	if end > len(it.df.data) || start == end {
		return nil, false
	}
	it.ptr++
	return &SubView{schema: it.df.schema, data: it.df.data[start:end]}, true
}

// Reset rewinds the iterator to row zero and re-captures the epoch.
func (it *Iter) Reset() {
	it.ptr = 0
	it.epoch = it.df.epoch
}

// SubView is one row of a frame: a schema reference plus a copy-on-write
// value slice. It borrows the frame's buffer until the first mutation
// through the view, at which point it is promoted to an owned copy; the
// frame itself is never written through a view.
type SubView struct {
	schema *schema.Schema
	data   []value.Value
	owned  bool
}

// NewSubView builds a view over an explicit row slice. The slice is
// borrowed; mutation promotes to a copy.
func NewSubView(s *schema.Schema, data []value.Value) *SubView {
	return &SubView{schema: s, data: data}
}

// Columns returns the view's column names in position order.
func (sv *SubView) Columns() []string {
	return sv.schema.FieldNames()
}

// ColumnIndex returns the position of the named column.
func (sv *SubView) ColumnIndex(name string) (int, bool) {
	return sv.schema.FindIndex(name)
}

// HasColumn reports whether the named column exists.
func (sv *SubView) HasColumn(name string) bool {
	return sv.schema.FieldExists(name)
}

// Len returns the number of values in the row.
func (sv *SubView) Len() int {
	return len(sv.data)
}

// At returns the value at the given position, or ok=false out of range.
func (sv *SubView) At(i int) (value.Value, bool) {
	if i < 0 || i >= len(sv.data) {
		return value.Null, false
	}
	return sv.data[i], true
}

// Index returns the value at the given position. Unlike At, it panics when
// the position is out of range; prefer At.
func (sv *SubView) Index(i int) value.Value {
	return sv.data[i]
}

// Get returns the value under the named column. A view built over a slice
// shorter than its schema reports ok=false for the missing tail.
func (sv *SubView) Get(name string) (value.Value, bool) {
	i, ok := sv.schema.FindIndex(name)
	if !ok || i >= len(sv.data) {
		return value.Null, false
	}
	return sv.data[i], true
}

// Set writes a value under the named column, promoting the view to an
// owned copy first. The backing frame is unchanged.
func (sv *SubView) Set(name string, v value.Value) error {
	i, ok := sv.schema.FindIndex(name)
	if !ok {
		return &errors.InvalidColumnNameError{Name: name}
	}
	if i >= len(sv.data) {
		return &errors.IndexOutOfBoundsError{Index: i, Length: len(sv.data)}
	}
	sv.promote()
	sv.data[i] = v
	return nil
}

// SetAt writes a value at the given position, promoting the view to an
// owned copy first.
func (sv *SubView) SetAt(i int, v value.Value) error {
	if i < 0 || i >= len(sv.data) {
		return &errors.IndexOutOfBoundsError{Index: i, Length: len(sv.data)}
	}
	sv.promote()
	sv.data[i] = v
	return nil
}

// Data returns the row values: the borrowed slice before promotion, the
// owned copy after. Treat as read-only; use Set/SetAt to mutate.
func (sv *SubView) Data() []value.Value {
	return sv.data
}

// ToRow returns an owned copy of the row values.
func (sv *SubView) ToRow() []value.Value {
	return append([]value.Value(nil), sv.data...)
}

// Owned reports whether the view has been promoted to its own copy.
func (sv *SubView) Owned() bool {
	return sv.owned
}

func (sv *SubView) promote() {
	if sv.owned {
		return
	}
	sv.data = append([]value.Value(nil), sv.data...)
	sv.owned = true
}
