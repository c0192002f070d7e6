package collections

// Option is the absent-key marker returned by OrderedMap.Get. Absence is
// represented only by key non-membership, never by a stored sentinel value.
type Option[V any] struct {
	value   V
	present bool
}

func Some[V any](v V) Option[V] {
	return Option[V]{value: v, present: true}
}

func None[V any]() Option[V] {
	return Option[V]{}
}

func (o Option[V]) IsPresent() bool {
	return o.present
}

func (o Option[V]) Unwrap() (V, bool) {
	return o.value, o.present
}

func (o Option[V]) OrElse(fallback V) V {
	if o.present {
		return o.value
	}
	return fallback
}
