package collections

type Entry[V any] struct {
	Key   string
	Value V
}

type OrderedMap[V any] interface {
	Contains(k string) bool
	Put(k string, v V)
	Get(k string) Option[V]
	Delete(k string) bool
	Size() int
	Keys() []string
	Values() []V
	Entries() []Entry[V]
	Each(fn func(k string, v V))
	Merge(other OrderedMap[V]) OrderedMap[V]
}
