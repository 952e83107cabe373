package helper_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhminhmr/go-generic-error/helper"
)

func TestSyncMapPutIfAbsentKeepsFirstValue(t *testing.T) {
	var m helper.SyncMap[string, int]

	actual, exists := m.PutIfAbsent("a", 1)
	assert.False(t, exists)
	assert.Equal(t, 1, actual)

	actual, exists = m.PutIfAbsent("a", 2)
	assert.True(t, exists)
	assert.Equal(t, 1, actual)

	value, exists := m.Get("a")
	require.True(t, exists)
	assert.Equal(t, 1, value)

	_, exists = m.Get("b")
	assert.False(t, exists)
}

func TestSyncMapGetOrComputeComputesOnce(t *testing.T) {
	var m helper.SyncMap[uintptr, []string]
	var calls atomic.Int32
	compute := func(key uintptr) []string {
		calls.Add(1)
		return []string{"frame"}
	}

	first := m.GetOrCompute(42, compute)
	second := m.GetOrCompute(42, compute)

	assert.Equal(t, []string{"frame"}, first)
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, int32(1), calls.Load())
}

func TestSyncMapGetOrComputeConcurrent(t *testing.T) {
	var m helper.SyncMap[int, *int]
	const workers = 16
	results := make([]*int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.GetOrCompute(7, func(int) *int { v := i; return &v })
		}()
	}
	wg.Wait()
	for _, result := range results {
		assert.Same(t, results[0], result)
	}
}
