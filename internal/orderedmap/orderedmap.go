package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

// Map is an insertion-ordered map. It is used to hold element attributes,
// which must be iterated in document order.
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set inserts a new entry. Inserting a key that already exists is an
// error; use Store if overwriting is intended.
func (m *Map[K, V]) Set(key K, value V) error {
	_, exists := m.keys[key]
	if exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

// Store inserts or overwrites an entry. An overwritten entry keeps its
// original position in the iteration order.
func (m *Map[K, V]) Store(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

// Delete removes an entry, preserving the order of the remaining entries.
// It reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, exists := m.keys[key]; !exists {
		return false
	}
	delete(m.keys, key)
	for i, k := range m.entries {
		if k == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
