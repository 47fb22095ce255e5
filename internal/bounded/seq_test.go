package bounded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushUntilFull(t *testing.T) {
	s := New[int](3)
	assert.True(t, s.Push(1))
	assert.True(t, s.Push(2))
	assert.True(t, s.Push(3))
	assert.False(t, s.Push(4), "push on a full sequence must fail")
	assert.Equal(t, []int{1, 2, 3}, s.Slice())
	assert.True(t, s.Full())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name        string
		start       []int
		capacity    int
		index       int
		value       int
		want        []int
		wantDropped int
		wantEvicted bool
		wantOK      bool
	}{
		{"into empty", nil, 3, 0, 9, []int{9}, 0, false, true},
		{"at head", []int{1, 2}, 3, 0, 9, []int{9, 1, 2}, 0, false, true},
		{"in middle", []int{1, 2}, 3, 1, 9, []int{1, 9, 2}, 0, false, true},
		{"at tail", []int{1, 2}, 3, 2, 9, []int{1, 2, 9}, 0, false, true},
		{"full evicts last", []int{1, 2, 3}, 3, 1, 9, []int{1, 9, 2}, 3, true, true},
		{"full at head", []int{1, 2, 3}, 3, 0, 9, []int{9, 1, 2}, 3, true, true},
		{"full past tail rejected", []int{1, 2, 3}, 3, 3, 9, []int{1, 2, 3}, 0, false, false},
		{"beyond length rejected", []int{1}, 3, 2, 9, []int{1}, 0, false, false},
		{"negative rejected", []int{1}, 3, -1, 9, []int{1}, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int](tt.capacity)
			for _, v := range tt.start {
				require.True(t, s.Push(v))
			}

			dropped, evicted, ok := s.Insert(tt.index, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEvicted, evicted)
			assert.Equal(t, tt.wantDropped, dropped)
			assert.Equal(t, tt.want, s.Slice())
			assert.LessOrEqual(t, s.Len(), s.Cap())
		})
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	s := New[string](4)
	for _, v := range []string{"a", "b", "c", "d"} {
		s.Push(v)
	}

	assert.Equal(t, "b", s.Remove(1))
	assert.Equal(t, []string{"a", "c", "d"}, s.Slice())

	assert.Equal(t, "d", s.Remove(2))
	assert.Equal(t, []string{"a", "c"}, s.Slice())
}

func TestSwapRemove(t *testing.T) {
	s := New[int](4)
	for _, v := range []int{10, 20, 30, 40} {
		s.Push(v)
	}

	assert.Equal(t, 20, s.SwapRemove(1))
	assert.Equal(t, []int{10, 40, 30}, s.Slice())

	assert.Equal(t, 30, s.SwapRemove(2))
	assert.Equal(t, []int{10, 40}, s.Slice())
}

func TestTruncateZeroesTail(t *testing.T) {
	s := New[int](3)
	s.Push(1)
	s.Push(2)
	s.Push(3)

	s.Truncate(1)
	assert.Equal(t, 1, s.Len())
	require.True(t, s.Push(7))
	assert.Equal(t, []int{1, 7}, s.Slice())

	s.Truncate(10)
	assert.Equal(t, 2, s.Len())
}

func TestAtOutOfRangePanics(t *testing.T) {
	s := New[int](2)
	s.Push(1)
	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.Remove(-1) })
}

func TestAllStopsEarly(t *testing.T) {
	s := New[int](5)
	for i := range 5 {
		s.Push(i)
	}

	var seen []int
	for i, v := range s.All() {
		if i == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
