package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type orderedMap[V any] struct {
	keys    []string
	entries map[string]V
}

func NewOrderedMap[V any]() OrderedMap[V] {
	return &orderedMap[V]{
		keys:    make([]string, 0),
		entries: make(map[string]V),
	}
}

func NewOrderedMapOf[V any](entries ...Entry[V]) OrderedMap[V] {
	m := NewOrderedMap[V]()
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

func FromSlice[V any](items []V, key func(V) string) OrderedMap[V] {
	m := NewOrderedMap[V]()
	for _, item := range items {
		m.Put(key(item), item)
	}
	return m
}

func (m *orderedMap[V]) Contains(k string) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *orderedMap[V]) Put(k string, v V) {
	if !m.Contains(k) {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = v
}

func (m *orderedMap[V]) Get(k string) Option[V] {
	if v, ok := m.entries[k]; ok {
		return Some(v)
	}
	return None[V]()
}

func (m *orderedMap[V]) Delete(k string) bool {
	if !m.Contains(k) {
		return false
	}
	delete(m.entries, k)
	i := slices.Index(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	return true
}

func (m *orderedMap[V]) Size() int {
	return len(m.keys)
}

func (m *orderedMap[V]) Keys() []string {
	return slices.Clone(m.keys)
}

func (m *orderedMap[V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, k := range m.keys {
		arr = append(arr, m.entries[k])
	}
	return arr
}

func (m *orderedMap[V]) Entries() []Entry[V] {
	arr := make([]Entry[V], 0, m.Size())
	for _, k := range m.keys {
		arr = append(arr, Entry[V]{Key: k, Value: m.entries[k]})
	}
	return arr
}

func (m *orderedMap[V]) Each(fn func(k string, v V)) {
	for _, k := range m.keys {
		fn(k, m.entries[k])
	}
}

func (m *orderedMap[V]) Merge(other OrderedMap[V]) OrderedMap[V] {
	merged := NewOrderedMapOf(m.Entries()...)
	other.Each(func(k string, v V) {
		merged.Put(k, v)
	})
	return merged
}

func (m orderedMap[V]) String() string {
	return fmt.Sprint(m.Entries())
}
