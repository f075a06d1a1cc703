package dataframe

import (
	"regexp"

	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/value"
)

// FilterOp is a comparison applied by Where against a column's values.
type FilterOp int

const (
	Eq FilterOp = iota
	NotEq
	Gt
	GtEq
	Lt
	LtEq
)

// Filter produces a new frame holding the rows for which pred returns
// true. The source frame is unchanged.
func (df *DataFrame) Filter(pred func(row []value.Value) bool) *DataFrame {
	out := &DataFrame{
		schema: df.schema.Clone(),
		dim:    NewDim(df.dim.cols, 0),
	}
	for row := 0; row < df.dim.rows; row++ {
		start, end := df.dim.RowRange(row)
		r := df.data[start:end]
		if pred(r) {
			out.data = append(out.data, r...)
			out.dim.rows++
		}
	}
	return out
}

// Where filters rows by comparing the named column against an operand.
// Incomparable pairs (cross-variant values) never match any ordering op.
func (df *DataFrame) Where(column string, op FilterOp, operand value.Value) (*DataFrame, error) {
	col, ok := df.schema.FindIndex(column)
	if !ok {
		return nil, &errors.InvalidColumnNameError{Name: column}
	}
	matches := func(v value.Value) bool {
		switch op {
		case Eq:
			return v.Equal(operand)
		case NotEq:
			return !v.Equal(operand)
		default:
			c, comparable := v.Compare(operand)
			if !comparable {
				return false
			}
			switch op {
			case Gt:
				return c > 0
			case GtEq:
				return c >= 0
			case Lt:
				return c < 0
			default:
				return c <= 0
			}
		}
	}
	return df.Filter(func(row []value.Value) bool {
		return matches(row[col])
	}), nil
}

// WhereMatches filters rows whose string value in the named column matches
// the pattern. Non-string values never match.
func (df *DataFrame) WhereMatches(column string, re *regexp.Regexp) (*DataFrame, error) {
	col, ok := df.schema.FindIndex(column)
	if !ok {
		return nil, &errors.InvalidColumnNameError{Name: column}
	}
	return df.Filter(func(row []value.Value) bool {
		s, isStr := row[col].Str()
		return isStr && re.MatchString(s)
	}), nil
}
