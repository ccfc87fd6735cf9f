package container_test

import (
	"math"
	"sync"
	"testing"

	"rajin/parastar/pkg/container"

	"github.com/stretchr/testify/assert"
)

func newIntCoarse() *container.Coarse[int] {
	return container.NewCoarse(math.MinInt, math.MaxInt)
}

func TestCoarseSetSequentialScenario(t *testing.T) {
	s := newIntCoarse()

	added, err := s.Add(5)
	assert.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(5)
	assert.NoError(t, err)
	assert.False(t, added)

	added, err = s.Add(3)
	assert.NoError(t, err)
	assert.True(t, added)

	assert.True(t, s.Contains(3))
	assert.False(t, s.Remove(7))
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Remove(5))
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.CheckInvariants())
}

func TestCoarseSetIdempotentAdd(t *testing.T) {
	s := newIntCoarse()

	_, err := s.Add(42)
	assert.NoError(t, err)
	added, err := s.Add(42)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, s.Size())
}

func TestCoarseSetRemoveAbsent(t *testing.T) {
	s := newIntCoarse()
	_, _ = s.Add(1)
	assert.False(t, s.Remove(99))
	assert.Equal(t, 1, s.Size())
}

func TestCoarseSetStrictlyIncreasingOrder(t *testing.T) {
	s := newIntCoarse()
	for _, v := range []int{10, 1, 7, 3, 9} {
		_, err := s.Add(v)
		assert.NoError(t, err)
	}
	assert.True(t, s.CheckInvariants())
}

func TestCoarseSetConcurrentAdds(t *testing.T) {
	s := newIntCoarse()

	const workers = 4
	const perWorker = 500
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := s.Add(base + i)
				assert.NoError(t, err)
			}
		}(w * perWorker)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Size())
	for k := 0; k < workers*perWorker; k++ {
		assert.True(t, s.Contains(k))
	}
	assert.True(t, s.CheckInvariants())
}

func TestCoarseSetAllocationError(t *testing.T) {
	s := newIntCoarse().WithCapacity(2)
	_, err := s.Add(1)
	assert.NoError(t, err)
	_, err = s.Add(2)
	assert.NoError(t, err)
	_, err = s.Add(3)
	assert.Error(t, err)
	assert.Equal(t, 2, s.Size())
}
