// SPDX-License-Identifier: MIT
// Package: msf/concurrent

package concurrent_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/msf/concurrent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppendVector_Sequential covers PushBack/Get/Len/Snapshot on one goroutine,
// including growth from a zero capacity.
func TestAppendVector_Sequential(t *testing.T) {
	v := concurrent.NewAppendVector[string](0)
	_, ok := v.Get(0)
	assert.False(t, ok)
	assert.Empty(t, v.Snapshot())

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		v.PushBack(s)
	}
	require.Equal(t, 5, v.Len())

	got, ok := v.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "c", got)

	_, ok = v.Get(5)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, v.Snapshot())
}

// TestAppendVector_NegativeCapacity treats a negative hint as zero.
func TestAppendVector_NegativeCapacity(t *testing.T) {
	v := concurrent.NewAppendVector[int](-5)
	v.PushBack(7)
	got, ok := v.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 7, got)
}

// TestAppendVector_SnapshotIsCopy ensures later appends do not leak into an
// earlier snapshot and that mutating a snapshot does not touch the vector.
func TestAppendVector_SnapshotIsCopy(t *testing.T) {
	v := concurrent.NewAppendVector[int](2)
	v.PushBack(1)
	v.PushBack(2)

	snap := v.Snapshot()
	v.PushBack(3)
	assert.Equal(t, []int{1, 2}, snap)

	snap[0] = 100
	assert.Equal(t, []int{1, 2, 3}, v.Snapshot())
	got, ok := v.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

// TestAppendVector_ConcurrentPushAndGet runs writers and readers together.
// Every pushed value must appear exactly once and readers must never observe
// a value that was not pushed.
func TestAppendVector_ConcurrentPushAndGet(t *testing.T) {
	const (
		writers   = 8
		perWriter = 2000
		readers   = 4
	)
	v := concurrent.NewAppendVector[int](1)

	var (
		wg      sync.WaitGroup
		done    = make(chan struct{})
		badRead = make(chan int, readers)
	)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bad := 0
			for {
				select {
				case <-done:
					badRead <- bad
					return
				default:
				}
				n := v.Len()
				for i := 0; i < n; i += 97 {
					got, ok := v.Get(i)
					if !ok || got < 0 || got >= writers*perWriter {
						bad++
					}
				}
			}
		}()
	}

	var wwg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wwg.Add(1)
		go func(w int) {
			defer wwg.Done()
			for i := 0; i < perWriter; i++ {
				v.PushBack(w*perWriter + i)
			}
		}(w)
	}
	wwg.Wait()
	close(done)
	wg.Wait()
	close(badRead)

	for bad := range badRead {
		assert.Zero(t, bad)
	}

	snap := v.Snapshot()
	require.Len(t, snap, writers*perWriter)
	sort.Ints(snap)
	for i, got := range snap {
		if got != i {
			t.Fatalf("snapshot[%d] = %d, want %d", i, got, i)
		}
	}
}
