// Package bidi provides a bidirectional mapping between symbolic names
// and constant values, for rendering wire constants by name and parsing
// names back to constants.
package bidi

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateValue = errors.New("bidi: duplicate value")
	ErrNameNotFound   = errors.New("bidi: name not found")
)

// Map holds a name<->value table. Both directions are unique;
// construction fails when two names share a value.
type Map[V comparable] struct {
	values map[string]V
	names  map[V]string
}

// New builds a Map from name -> value pairs.
func New[V comparable](pairs map[string]V) (*Map[V], error) {
	m := &Map[V]{
		values: make(map[string]V, len(pairs)),
		names:  make(map[V]string, len(pairs)),
	}
	for name, v := range pairs {
		if prev, ok := m.names[v]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %v", ErrDuplicateValue, prev, name, v)
		}
		m.values[name] = v
		m.names[v] = name
	}
	return m, nil
}

// MustNew is New for package-level tables. It panics on duplicates.
func MustNew[V comparable](pairs map[string]V) *Map[V] {
	m, err := New(pairs)
	if err != nil {
		panic(err)
	}
	return m
}

// Value resolves a name to its value.
func (m *Map[V]) Value(name string) (V, error) {
	v, ok := m.values[name]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return v, nil
}

// Name resolves a value back to its name.
func (m *Map[V]) Name(v V) (string, bool) {
	name, ok := m.names[v]
	return name, ok
}

// NameOr resolves a value back to its name, or returns def when the
// value is unmapped.
func (m *Map[V]) NameOr(v V, def string) string {
	if name, ok := m.names[v]; ok {
		return name
	}
	return def
}

// Len reports the number of mapped pairs.
func (m *Map[V]) Len() int {
	return len(m.values)
}
