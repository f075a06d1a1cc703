// Package schema implements the ordered, name-indexed collection of typed
// column descriptors for a frame. Position order defines column order in the
// frame's backing buffer, so the field vector and the name index are kept in
// lock-step by every mutator.
package schema

import (
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/value"
)

// Field describes one typed column.
type Field struct {
	Name     string
	DType    value.DataType
	Nullable bool
	Default  *value.Value
	Doc      string
}

// NewField returns a weakly typed, nullable field. Types are tightened
// later, either explicitly or by schema derivation.
func NewField(name string) Field {
	return Field{
		Name:     name,
		DType:    value.AnyType,
		Nullable: true,
	}
}

// Schema is an ordered set of Fields with a name-to-position index.
// Every name is unique; position order is observable and stable.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{index: make(map[string]int)}
}

// WithCapacity returns an empty schema sized for n fields.
func WithCapacity(n int) *Schema {
	return &Schema{
		fields: make([]Field, 0, n),
		index:  make(map[string]int, n),
	}
}

// FromFields builds a schema from a field list, rejecting duplicate names.
func FromFields(fields ...Field) (*Schema, error) {
	s := WithCapacity(len(fields))
	for _, f := range fields {
		if _, err := s.PushField(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddField appends a new weakly typed field and returns its position.
func (s *Schema) AddField(name string) (int, error) {
	return s.PushField(NewField(name))
}

// PushField appends a field and returns its position. A name the schema
// already holds is rejected.
func (s *Schema) PushField(f Field) (int, error) {
	if _, exists := s.index[f.Name]; exists {
		return 0, &errors.DuplicateColumnNameError{Name: f.Name}
	}
	pos := len(s.fields)
	s.fields = append(s.fields, f)
	s.index[f.Name] = pos
	return pos, nil
}

// Field returns the field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	pos, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[pos], true
}

// FieldAt returns the field at the given position.
func (s *Schema) FieldAt(pos int) (Field, bool) {
	if pos < 0 || pos >= len(s.fields) {
		return Field{}, false
	}
	return s.fields[pos], true
}

// FieldMut returns a pointer to the named field for in-place edits, or nil
// when the name is absent. Renaming through the pointer is not supported;
// use RenameField so the index stays consistent.
func (s *Schema) FieldMut(name string) *Field {
	pos, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.fields[pos]
}

// FieldMutAt returns a pointer to the field at the given position, or nil
// when out of range. The same renaming caveat as FieldMut applies.
func (s *Schema) FieldMutAt(pos int) *Field {
	if pos < 0 || pos >= len(s.fields) {
		return nil
	}
	return &s.fields[pos]
}

// FindIndex returns the position of the named field.
func (s *Schema) FindIndex(name string) (int, bool) {
	pos, ok := s.index[name]
	return pos, ok
}

// FieldExists reports whether the named field is present.
func (s *Schema) FieldExists(name string) bool {
	_, ok := s.index[name]
	return ok
}

// RenameField renames old to new, updating the vector and the index
// atomically. It fails explicitly when old is absent or new already exists,
// returning ok=false and leaving the schema untouched.
func (s *Schema) RenameField(old, new string) (string, bool) {
	pos, ok := s.index[old]
	if !ok {
		return "", false
	}
	if _, taken := s.index[new]; taken && new != old {
		return "", false
	}
	s.fields[pos].Name = new
	delete(s.index, old)
	s.index[new] = pos
	return new, true
}

// Remove deletes the named field, shifting later fields down one position.
func (s *Schema) Remove(name string) (Field, bool) {
	pos, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	f, _ := s.RemoveAt(pos)
	return f, true
}

// RemoveAt deletes the field at the given position and reindexes the rest.
func (s *Schema) RemoveAt(pos int) (Field, bool) {
	if pos < 0 || pos >= len(s.fields) {
		return Field{}, false
	}
	f := s.fields[pos]
	s.fields = append(s.fields[:pos], s.fields[pos+1:]...)
	delete(s.index, f.Name)
	for i := pos; i < len(s.fields); i++ {
		s.index[s.fields[i].Name] = i
	}
	return f, true
}

// FieldNames returns the names in position order, not map iteration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns a copy of the field vector in position order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// IsWeak reports whether any field is still weakly typed.
func (s *Schema) IsWeak() bool {
	for _, f := range s.fields {
		if f.DType == value.AnyType {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the schema.
func (s *Schema) Clone() *Schema {
	c := WithCapacity(len(s.fields))
	c.fields = append(c.fields, s.fields...)
	for name, pos := range s.index {
		c.index[name] = pos
	}
	return c
}
