package value

import "sort"

// Map is an ordered key-to-value collection with unique, sorted keys. It
// backs the Object variant of Value.
type Map struct {
	keys []string
	vals []Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// MapOf builds a Map from alternating key/value pairs given as a plain map.
func MapOf(entries map[string]Value) *Map {
	m := NewMap()
	for k, v := range entries {
		m.Set(k, v)
	}
	return m
}

func (m *Map) search(key string) (int, bool) {
	i := sort.SearchStrings(m.keys, key)
	return i, i < len(m.keys) && m.keys[i] == key
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// IsEmpty reports whether the map holds no entries.
func (m *Map) IsEmpty() bool { return len(m.keys) == 0 }

// ContainsKey reports whether the key is present.
func (m *Map) ContainsKey(key string) bool {
	_, ok := m.search(key)
	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.search(key)
	if !ok {
		return Null, false
	}
	return m.vals[i], true
}

// Index returns the value stored under key, or Null when absent.
func (m *Map) Index(key string) Value {
	v, _ := m.Get(key)
	return v
}

// Set inserts or replaces the value under key, keeping keys sorted. It
// returns the previous value when the key was already present.
func (m *Map) Set(key string, v Value) (Value, bool) {
	i, ok := m.search(key)
	if ok {
		prev := m.vals[i]
		m.vals[i] = v
		return prev, true
	}
	m.keys = append(m.keys, "")
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key
	m.vals = append(m.vals, Value{})
	copy(m.vals[i+1:], m.vals[i:])
	m.vals[i] = v
	return Null, false
}

// Delete removes the entry under key, returning the removed value.
func (m *Map) Delete(key string) (Value, bool) {
	i, ok := m.search(key)
	if !ok {
		return Null, false
	}
	v := m.vals[i]
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	return v, true
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Values returns the values in key order.
func (m *Map) Values() []Value {
	return append([]Value(nil), m.vals...)
}

// Range calls fn for every entry in key order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	for i, k := range m.keys {
		if !fn(k, m.vals[i]) {
			return
		}
	}
}

// Clear removes every entry.
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	return &Map{
		keys: append([]string(nil), m.keys...),
		vals: append([]Value(nil), m.vals...),
	}
}

// Equal reports whether two maps hold the same keys and equal values.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k || !m.vals[i].Equal(other.vals[i]) {
			return false
		}
	}
	return true
}
