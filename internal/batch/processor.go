package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 100

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 1000
)

var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// Callback handles one batch. offset is the index of batch[0] in the full
// item slice, so callbacks can write results positionally.
type Callback[T any] func(ctx context.Context, batch []T, offset int) error

// ProgressCallback is invoked after each batch completes.
type ProgressCallback func(snapshot ProgressSnapshot)

// Processor splits items into fixed-size batches.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Process runs callback over each batch in order and stops on the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback Callback[T]) error {
	if err := p.validate(items, callback); err != nil {
		return err
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(ctx, items[b[0]:b[1]], b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}

	return nil
}

// ProcessConcurrent runs batches with at most maxConcurrency in flight.
// Every batch runs even if another fails; all batch errors are joined.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if err := p.validate(items, callback); err != nil {
		return err
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))
	errs := make([]error, len(bounds))

	var g errgroup.Group
	g.SetLimit(maxConcurrency)

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			if err := callback(ctx, items[b[0]:b[1]], b[0]); err != nil {
				errs[i] = fmt.Errorf("batch %d failed: %w", i, err)
				return nil
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}
	return ctx.Err()
}

// Bounds returns the [start, end) index pairs for totalItems.
func (p *Processor[T]) Bounds(totalItems int) [][2]int {
	count := totalItems / p.batchSize
	if totalItems%p.batchSize > 0 {
		count++
	}

	bounds := make([][2]int, count)
	for i := range count {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return bounds
}

func (p *Processor[T]) validate(items []T, callback Callback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	return nil
}

func (p *Processor[T]) report(progress *Progress, n int) {
	snap := progress.Add(n)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}
