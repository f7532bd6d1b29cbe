package iterate

import "iter"

// OrderedMap is a mapping that remembers the order in which keys were
// first inserted. The zero value is not usable; use NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores v under k. Overwriting a key keeps its original position.
func (m *OrderedMap[K, V]) Set(k K, v V) *OrderedMap[K, V] {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	return m
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Delete removes k, if present.
func (m *OrderedMap[K, V]) Delete(k K) {
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// All yields the entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Entries implements Keyed.
func (m *OrderedMap[K, V]) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}
