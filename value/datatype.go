package value

// DataType is the static type tag describing a column's or value's kind.
// The set is closed: adding a kind means touching every switch that
// dispatches on it, which is intentional.
type DataType int

const (
	// AnyType marks a weakly typed field whose type has not been inferred yet.
	AnyType DataType = iota
	// NullType only appears transiently while inferring; no column may keep
	// it as its permanent type.
	NullType
	BoolType
	StringType
	ArrayType
	MapType
	DateType
	BinaryType

	Uint8Type
	Uint16Type
	Uint32Type
	Uint64Type
	Int8Type
	Int16Type
	Int32Type
	Int64Type

	FloatType
	DoubleType
	DecimalType
)

var dataTypeNames = map[DataType]string{
	AnyType:     "any",
	NullType:    "null",
	BoolType:    "boolean",
	StringType:  "string",
	ArrayType:   "array",
	MapType:     "object",
	DateType:    "date",
	BinaryType:  "binary",
	Uint8Type:   "uint8",
	Uint16Type:  "uint16",
	Uint32Type:  "uint32",
	Uint64Type:  "uint64",
	Int8Type:    "int8",
	Int16Type:   "int16",
	Int32Type:   "int32",
	Int64Type:   "int64",
	FloatType:   "float",
	DoubleType:  "double",
	DecimalType: "decimal",
}

var dataTypesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(dataTypeNames))
	for dt, name := range dataTypeNames {
		m[name] = dt
	}
	return m
}()

// String returns the canonical name of the data type.
func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return "any"
}

// DataTypeFromString maps a canonical name back to its DataType.
func DataTypeFromString(name string) (DataType, bool) {
	dt, ok := dataTypesByName[name]
	return dt, ok
}

// IsNumeric reports whether the data type is one of the Number widths.
func (dt DataType) IsNumeric() bool {
	switch dt {
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type,
		Int8Type, Int16Type, Int32Type, Int64Type,
		FloatType, DoubleType, DecimalType:
		return true
	default:
		return false
	}
}
