package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMapPutGetDelete(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	m := NewOrderedMap[*Mock]()
	m.Put("aa", &Mock{
		A: "aa",
		B: 22,
	})
	m.Put("bb", &Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, m.Size())
	require.Equal(t, true, m.Contains("aa"))
	require.Equal(t, true, m.Contains("bb"))
	require.Equal(t, false, m.Contains("cc"))
	v, ok := m.Get("aa").Unwrap()
	require.Equal(t, true, ok)
	require.Equal(t, 22, v.B)
	require.Equal(t, true, m.Delete("bb"))
	require.Equal(t, false, m.Contains("bb"))
	require.Equal(t, 1, m.Size())
}

func TestOrderedMapAbsentKey(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("aa", 1)
	require.Equal(t, false, m.Get("bb").IsPresent())
	require.Equal(t, false, m.Delete("bb"))
	require.Equal(t, -1, m.Get("bb").OrElse(-1))
	require.Equal(t, 1, m.Get("aa").OrElse(-1))
}

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("cc", 3)
	m.Put("aa", 1)
	m.Put("bb", 2)
	require.Equal(t, []string{"cc", "aa", "bb"}, m.Keys())
	require.Equal(t, []int{3, 1, 2}, m.Values())
	m.Delete("aa")
	require.Equal(t, []string{"cc", "bb"}, m.Keys())
}

func TestOrderedMapOverwriteKeepsPosition(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("aa", 1)
	m.Put("bb", 2)
	m.Put("aa", 9)
	require.Equal(t, []string{"aa", "bb"}, m.Keys())
	require.Equal(t, 9, m.Get("aa").OrElse(0))
	require.Equal(t, 2, m.Size())
}

func TestOrderedMapMerge(t *testing.T) {
	a := NewOrderedMapOf(
		Entry[int]{Key: "x", Value: 1},
	)
	b := NewOrderedMapOf(
		Entry[int]{Key: "y", Value: 2},
	)
	merged := a.Merge(b)
	require.Equal(t, []string{"x", "y"}, merged.Keys())
	require.Equal(t, []int{1, 2}, merged.Values())

	c := NewOrderedMapOf(
		Entry[int]{Key: "x", Value: 1},
		Entry[int]{Key: "z", Value: 3},
	)
	d := NewOrderedMapOf(
		Entry[int]{Key: "x", Value: 2},
	)
	merged = c.Merge(d)
	require.Equal(t, []string{"x", "z"}, merged.Keys())
	require.Equal(t, 2, merged.Get("x").OrElse(0))
	// merge is pure
	require.Equal(t, 1, c.Get("x").OrElse(0))
	require.Equal(t, []string{"x"}, d.Keys())
}

func TestFromSlice(t *testing.T) {
	type Mock struct {
		Name string
	}
	m := FromSlice([]*Mock{{Name: "aa"}, {Name: "bb"}, {Name: "cc"}}, func(v *Mock) string {
		return v.Name
	})
	require.Equal(t, []string{"aa", "bb", "cc"}, m.Keys())
	require.Equal(t, "bb", m.Get("bb").OrElse(nil).Name)
}
