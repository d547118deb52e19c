package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiwiko123/collections/container"
)

type sliceBacked[T any] struct {
	items []T
}

func (s *sliceBacked[T]) Items() []T { return s.items }

func TestLength(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  int
	}{
		{name: "nil backing", items: nil, want: 0},
		{name: "empty backing", items: []int{}, want: 0},
		{name: "three elements", items: []int{1, 2, 3}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &sliceBacked[int]{items: tt.items}
			assert.Equal(t, tt.want, container.Length[int](c))
		})
	}
}

func TestLengthNilContainer(t *testing.T) {
	assert.Equal(t, 0, container.Length[int](nil))
	assert.True(t, container.IsEmpty[int](nil))
}

func TestIsEmpty(t *testing.T) {
	empty := &sliceBacked[string]{}
	assert.True(t, container.IsEmpty[string](empty))

	full := &sliceBacked[string]{items: []string{"a"}}
	assert.False(t, container.IsEmpty[string](full))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{name: "both empty", a: nil, b: nil, want: true},
		{name: "same contents", a: []int{1, 2, 3}, b: []int{1, 2, 3}, want: true},
		{name: "different order", a: []int{1, 2, 3}, b: []int{3, 2, 1}, want: false},
		{name: "different lengths", a: []int{1, 2}, b: []int{1, 2, 3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &sliceBacked[int]{items: tt.a}
			b := &sliceBacked[int]{items: tt.b}
			assert.Equal(t, tt.want, container.Equal[int](a, b))
		})
	}
}

func TestEqualNilContainer(t *testing.T) {
	c := &sliceBacked[int]{items: []int{1}}
	assert.False(t, container.Equal[int](c, nil))
	assert.False(t, container.Equal[int](nil, c))
	assert.True(t, container.Equal[int](nil, nil))
}

func TestEqualFunc(t *testing.T) {
	a := &sliceBacked[[]int]{items: [][]int{{1}, {2, 3}}}
	b := &sliceBacked[[]int]{items: [][]int{{9}, {8, 7}}}

	sameLen := func(x, y []int) bool { return len(x) == len(y) }
	assert.True(t, container.EqualFunc[[]int](a, b, sameLen))

	c := &sliceBacked[[]int]{items: [][]int{{1, 2}, {3}}}
	assert.False(t, container.EqualFunc[[]int](a, c, sameLen))
}
