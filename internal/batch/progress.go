package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress counts completed items and batches. Safe for concurrent use.
type Progress struct {
	mu               sync.Mutex
	totalItems       int
	totalBatches     int
	processedItems   int
	processedBatches int
	start            time.Time
}

// ProgressSnapshot is a point-in-time copy of a Progress.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	Elapsed          time.Duration
}

// NewProgress starts tracking a run of totalItems split into totalBatches.
func NewProgress(totalItems, totalBatches int) *Progress {
	return &Progress{
		totalItems:   totalItems,
		totalBatches: totalBatches,
		start:        time.Now(),
	}
}

// Add records one finished batch of n items and returns the new state.
func (p *Progress) Add(n int) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += n
	p.processedBatches++
	return p.snapshotLocked()
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshotLocked()
}

func (p *Progress) snapshotLocked() ProgressSnapshot {
	return ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		Elapsed:          time.Since(p.start),
	}
}

// PercentComplete returns completion in the range 0-100.
func (s ProgressSnapshot) PercentComplete() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / float64(s.TotalItems) * percentMultiplier
}

// IsComplete reports whether every item has been processed.
func (s ProgressSnapshot) IsComplete() bool {
	return s.ProcessedItems >= s.TotalItems
}

// ItemsPerSecond returns the processing rate so far.
func (s ProgressSnapshot) ItemsPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / secs
}
