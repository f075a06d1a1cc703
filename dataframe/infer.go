package dataframe

import "github.com/strataframe/strata/value"

// DeriveSchema scans every column once and computes the narrowest DataType
// that fits its non-null values. The first observed non-null type is the
// baseline; any later mismatch reverts the field toward Any without
// changing the baseline mid-scan. A Null anywhere marks the field nullable;
// an empty column stays weakly typed.
func (df *DataFrame) DeriveSchema() {
	for col := 0; col < df.dim.cols; col++ {
		f := df.schema.FieldMutAt(col)
		baseline := value.AnyType
		strict := true
		nullable := false

		for i := col; i < len(df.data); i += df.dim.cols {
			v := df.data[i]
			if v.IsNull() {
				nullable = true
				continue
			}
			t := v.TypeOf()
			if baseline == value.AnyType {
				baseline = t
				continue
			}
			if t != baseline {
				strict = false
			}
		}

		if baseline == value.AnyType || !strict {
			f.DType = value.AnyType
			f.Nullable = true
		} else {
			f.DType = baseline
			f.Nullable = nullable
		}
	}
}
