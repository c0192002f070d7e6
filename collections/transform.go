package collections

// MapValues returns a new map with the same keys in the same order, each value
// replaced by fn(value, position). The position argument is the entry's ordinal
// position in iteration order. The receiver is not mutated.
func MapValues[V any, S any](m OrderedMap[V], fn func(v V, i int) S) OrderedMap[S] {
	out := NewOrderedMap[S]()
	i := 0
	m.Each(func(k string, v V) {
		out.Put(k, fn(v, i))
		i++
	})
	return out
}

// Reduce folds over entries in iteration order, visiting every entry exactly once.
func Reduce[V any, A any](m OrderedMap[V], fn func(acc A, v V, k string) A, initial A) A {
	acc := initial
	m.Each(func(k string, v V) {
		acc = fn(acc, v, k)
	})
	return acc
}
