package schema

import (
	"encoding/json"
	"fmt"

	"github.com/strataframe/strata/value"
)

type fieldJSON struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Nullable bool         `json:"nullable"`
	Default  *value.Value `json:"default,omitempty"`
	Doc      string       `json:"doc,omitempty"`
}

// MarshalJSON encodes the field with its data type by canonical name.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Name:     f.Name,
		Type:     f.DType.String(),
		Nullable: f.Nullable,
		Default:  f.Default,
		Doc:      f.Doc,
	})
}

// UnmarshalJSON decodes a field produced by MarshalJSON.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw fieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	dt, ok := value.DataTypeFromString(raw.Type)
	if !ok {
		return fmt.Errorf("%s is not a valid type", raw.Type)
	}
	*f = Field{
		Name:     raw.Name,
		DType:    dt,
		Nullable: raw.Nullable,
		Default:  raw.Default,
		Doc:      raw.Doc,
	}
	return nil
}

// MarshalJSON encodes the schema as its field list in position order, so a
// round-trip preserves field order, names and dtypes exactly.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.fields)
}

// UnmarshalJSON decodes a field list and rebuilds the name index.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var fields []Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	rebuilt, err := FromFields(fields...)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}
