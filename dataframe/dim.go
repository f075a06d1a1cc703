package dataframe

// Dim is the (column count, row count) pair plus the row-major addressing
// arithmetic over the flat buffer. Element (row, col) lives at
// row*cols + col; a row occupies [row*cols, row*cols+cols). Every caller
// shares this addressing contract; nothing else computes buffer offsets.
type Dim struct {
	cols int
	rows int
}

// NewDim builds a dimension pair.
func NewDim(cols, rows int) Dim {
	return Dim{cols: cols, rows: rows}
}

// ExpectedLen returns the buffer length implied by the dimensions.
func (d Dim) ExpectedLen() int {
	return d.cols * d.rows
}

// RowRange returns the half-open [start, end) buffer range for a row.
func (d Dim) RowRange(row int) (int, int) {
	i := d.cols * row
	return i, i + d.cols
}

// ValueIndex returns the buffer position of the value at (row, col).
func (d Dim) ValueIndex(row, col int) int {
	return row*d.cols + col
}

// Shape returns (column count, row count).
func (d Dim) Shape() (int, int) {
	return d.cols, d.rows
}

// Cols returns the column count.
func (d Dim) Cols() int { return d.cols }

// Rows returns the row count.
func (d Dim) Rows() int { return d.rows }
