package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("sequential", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var offsets []int
		total := 0
		err = p.Process(context.Background(), items, func(_ context.Context, batch []int, offset int) error {
			offsets = append(offsets, offset)
			total += len(batch)
			assert.Equal(t, offset, batch[0])
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		assert.Equal(t, []int{0, 10, 20}, offsets)
	})

	t.Run("stops on first error", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		calls := 0
		err = p.Process(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			calls++
			if offset == 10 {
				return errors.New("fail")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch 1 failed")
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewProcessorWithDefaults[int]()
		err := p.Process(ctx, items, func(context.Context, []int, int) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty items", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		assert.ErrorIs(t, p.Process(context.Background(), nil, nil), ErrEmptyItems)
	})

	t.Run("nil callback", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		assert.ErrorIs(t, p.Process(context.Background(), items, nil), ErrNilCallback)
	})
}

func TestProcessor_ProcessConcurrent(t *testing.T) {
	items := make([]int, 95)
	for i := range items {
		items[i] = i
	}

	t.Run("processes every item", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var processed atomic.Int32
		seen := make([]bool, len(items))
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, batch []int, offset int) error {
			processed.Add(int32(len(batch)))
			for i := range batch {
				seen[offset+i] = true
			}
			return nil
		}, 4)
		require.NoError(t, err)
		assert.Equal(t, int32(95), processed.Load())
		for i, ok := range seen {
			assert.True(t, ok, "item %d", i)
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)

		var inFlight, peak atomic.Int32
		err = p.ProcessConcurrent(context.Background(), items, func(context.Context, []int, int) error {
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			inFlight.Add(-1)
			return nil
		}, 3)
		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("collects all errors", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var calls atomic.Int32
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			calls.Add(1)
			if offset == 20 || offset == 70 {
				return errors.New("boom")
			}
			return nil
		}, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch 2 failed")
		assert.Contains(t, err.Error(), "batch 7 failed")
		assert.Equal(t, int32(10), calls.Load())
	})

	t.Run("progress reaches completion", func(t *testing.T) {
		var mu sync.Mutex
		var last ProgressSnapshot
		p := NewProcessorWithDefaults[int]().WithProgressCallback(func(s ProgressSnapshot) {
			mu.Lock()
			defer mu.Unlock()
			if s.ProcessedItems > last.ProcessedItems {
				last = s
			}
		})
		many := make([]int, 450)
		err := p.ProcessConcurrent(context.Background(), many, func(context.Context, []int, int) error { return nil }, 0)
		require.NoError(t, err)
		assert.True(t, last.IsComplete())
		assert.Equal(t, 5, last.ProcessedBatches)
		assert.InDelta(t, 100.0, last.PercentComplete(), 1e-9)
	})
}

func TestNewProcessor_InvalidBatchSize(t *testing.T) {
	_, err := NewProcessor[int](0)
	require.ErrorIs(t, err, ErrInvalidBatchSize)
	_, err = NewProcessor[int](MaxBatchSize + 1)
	require.ErrorIs(t, err, ErrInvalidBatchSize)
}

func TestProcessor_Bounds(t *testing.T) {
	p, err := NewProcessor[int](10)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 10}, {10, 20}, {20, 25}}, p.Bounds(25))
	assert.Equal(t, [][2]int{{0, 10}}, p.Bounds(10))
	assert.Empty(t, p.Bounds(0))
	assert.Equal(t, 10, p.BatchSize())
}

func TestProgress(t *testing.T) {
	p := NewProgress(100, 10)

	snap := p.Snapshot()
	assert.Equal(t, 0.0, snap.PercentComplete())
	assert.False(t, snap.IsComplete())

	snap = p.Add(10)
	assert.Equal(t, 10.0, snap.PercentComplete())
	assert.Equal(t, 1, snap.ProcessedBatches)

	snap = p.Add(90)
	assert.True(t, snap.IsComplete())
	assert.GreaterOrEqual(t, snap.ItemsPerSecond(), 0.0)

	assert.Equal(t, 0.0, ProgressSnapshot{}.PercentComplete())
	assert.Equal(t, 0.0, ProgressSnapshot{}.ItemsPerSecond())
}
