package dataframe

import (
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/schema"
	"github.com/strataframe/strata/value"
)

// ColumnSpec selects a source column, optionally renaming it in the output.
type ColumnSpec struct {
	Name  string
	Alias string
}

// Col selects a column by name.
func Col(name string) ColumnSpec {
	return ColumnSpec{Name: name}
}

// ColAs selects a column by name and gives it an alias in the output.
func ColAs(name, alias string) ColumnSpec {
	return ColumnSpec{Name: name, Alias: alias}
}

// OutputName returns the name the column carries in the output schema.
func (c ColumnSpec) OutputName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// Select produces a fully materialized frame holding the requested columns
// in the requested order. Every spec is resolved against the source schema
// up front; the first unresolved name fails with InvalidColumnNameError.
// The output shares nothing with the source buffer.
func (df *DataFrame) Select(specs ...ColumnSpec) (*DataFrame, error) {
	positions := make([]int, len(specs))
	out := schema.WithCapacity(len(specs))
	for i, sp := range specs {
		pos, ok := df.schema.FindIndex(sp.Name)
		if !ok {
			return nil, &errors.InvalidColumnNameError{Name: sp.Name}
		}
		f, _ := df.schema.FieldAt(pos)
		f.Name = sp.OutputName()
		if _, err := out.PushField(f); err != nil {
			return nil, err
		}
		positions[i] = pos
	}

	data := make([]value.Value, 0, len(specs)*df.dim.rows)
	for row := 0; row < df.dim.rows; row++ {
		offset := df.dim.cols * row
		for _, pos := range positions {
			data = append(data, df.data[pos+offset])
		}
	}

	return &DataFrame{
		schema: out,
		dim:    NewDim(len(specs), df.dim.rows),
		data:   data,
	}, nil
}
