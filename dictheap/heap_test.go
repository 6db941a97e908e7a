package dictheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/dictheap"
)

func intLess(a, b int) bool { return a < b }

func TestHeap_Empty(t *testing.T) {
	h := dictheap.New[string, int](intLess)
	assert.Equal(t, 0, h.Len())
	_, _, ok := h.RemoveFirst()
	assert.False(t, ok)
	_, _, ok = h.Peek()
	assert.False(t, ok)
	_, ok = h.Get("x")
	assert.False(t, ok)
	assert.False(t, h.Delete("x"))
	require.NoError(t, h.CheckInvariants())
}

// TestHeap_RemoveFirstOrder: a→5, b→1, c→3 pops 1, 3, 5.
func TestHeap_RemoveFirstOrder(t *testing.T) {
	h := dictheap.New[string, int](intLess)
	h.Set("a", 5)
	h.Set("b", 1)
	h.Set("c", 3)

	var keys []string
	var vals []int
	for h.Len() > 0 {
		k, v, ok := h.RemoveFirst()
		require.True(t, ok)
		keys = append(keys, k)
		vals = append(vals, v)
		require.NoError(t, h.CheckInvariants())
	}
	assert.Equal(t, []int{1, 3, 5}, vals)
	assert.Equal(t, []string{"b", "c", "a"}, keys)
}

func TestHeap_UpdateAndDelete(t *testing.T) {
	h := dictheap.New[string, int](intLess)
	for k, v := range map[string]int{"a": 10, "b": 20, "c": 30, "d": 40} {
		h.Set(k, v)
	}
	require.NoError(t, h.CheckInvariants())

	h.Set("d", 1) // decrease
	k, v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, "d", k)
	assert.Equal(t, 1, v)

	h.Set("d", 100) // increase
	k, _, _ = h.Peek()
	assert.Equal(t, "a", k)
	require.NoError(t, h.CheckInvariants())

	assert.True(t, h.Delete("a"))
	assert.False(t, h.Contains("a"))
	assert.False(t, h.Delete("a"))
	got, ok := h.Get("d")
	require.True(t, ok)
	assert.Equal(t, 100, got)
	assert.Equal(t, 3, h.Len())
	require.NoError(t, h.CheckInvariants())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains("b"))
}

// TestHeap_RandomOperations interleaves inserts, updates and deletes and
// checks both invariants after each step, then drains in sorted order.
func TestHeap_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		h := dictheap.New[int, int](intLess)
		live := map[int]int{}
		for op := 0; op < 300; op++ {
			key := rng.Intn(60)
			switch rng.Intn(4) {
			case 0, 1, 2:
				val := rng.Intn(1000)
				h.Set(key, val)
				live[key] = val
			case 3:
				_, present := live[key]
				assert.Equal(t, present, h.Delete(key))
				delete(live, key)
			}
			require.NoError(t, h.CheckInvariants(), "round %d op %d", round, op)
			require.Equal(t, len(live), h.Len())
		}

		want := make([]int, 0, len(live))
		for _, v := range live {
			want = append(want, v)
		}
		sort.Ints(want)

		var got []int
		for {
			k, v, ok := h.RemoveFirst()
			if !ok {
				break
			}
			assert.Equal(t, live[k], v, "value for key %d", k)
			got = append(got, v)
			require.NoError(t, h.CheckInvariants())
		}
		assert.Equal(t, want, got)
	}
}

func TestHeap_CustomComparatorAndKeys(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	// max-heap by priority
	h := dictheap.New[string, job](func(a, b job) bool { return a.priority > b.priority })
	h.Set("low", job{"low", 1})
	h.Set("high", job{"high", 9})
	h.Set("mid", job{"mid", 5})

	n := 0
	for k := range h.Keys() {
		assert.True(t, h.Contains(k))
		n++
	}
	assert.Equal(t, 3, n)

	_, j, ok := h.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, "high", j.name)
}
