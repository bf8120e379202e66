package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/units"
)

// ErrMalformedLine is reported for input lines that are not "<value> <from> <to>".
var ErrMalformedLine = errors.New("malformed line")

// Request is one conversion read from input.
type Request struct {
	// Line is the 1-based input line number.
	Line  int
	Value float64
	From  string
	To    string

	// Err is set when the line could not be parsed.
	Err error
}

// Outcome is the result of one Request.
type Outcome struct {
	Request Request
	Result  conversion.Result
	Err     error
}

// OK reports whether the conversion succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// ParseRequests reads one request per line. Blank lines and lines starting
// with '#' are skipped. Unit tokens are resolved against category, so
// aliases such as "KM" or "m2" map to canonical ids. Lines that cannot be
// parsed are returned with Err set rather than failing the whole read.
func ParseRequests(r io.Reader, category units.Category) ([]Request, error) {
	var reqs []Request
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reqs = append(reqs, parseLine(lineNo, line, category))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return reqs, nil
}

func parseLine(lineNo int, line string, category units.Category) Request {
	req := Request{Line: lineNo}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		req.Err = fmt.Errorf("%w %d: expected \"<value> <from> <to>\", got %d fields", ErrMalformedLine, lineNo, len(fields))
		return req
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		req.Err = fmt.Errorf("%w %d: invalid value %q", ErrMalformedLine, lineNo, fields[0])
		return req
	}
	req.Value = v

	req.From = resolveOrKeep(category, fields[1])
	req.To = resolveOrKeep(category, fields[2])
	return req
}

// resolveOrKeep returns the canonical id for token, or token unchanged so the
// engine reports it as unknown.
func resolveOrKeep(category units.Category, token string) string {
	if id, ok := units.ResolveUnitID(category, token); ok {
		return id
	}
	return token
}

// Converter runs Requests through an Engine in batches.
type Converter struct {
	engine      *conversion.Engine
	processor   *Processor[Request]
	concurrency int
	logger      zerolog.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithConcurrency sets how many batches may run at once. Values below 2 run sequentially.
func WithConcurrency(n int) ConverterOption {
	return func(c *Converter) {
		c.concurrency = n
	}
}

// WithLogger sets the logger used for per-line diagnostics.
func WithLogger(l zerolog.Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithProgress sets a callback invoked after each batch.
func WithProgress(cb ProgressCallback) ConverterOption {
	return func(c *Converter) {
		c.processor.WithProgressCallback(cb)
	}
}

// NewConverter creates a Converter for engine with the given batch size.
func NewConverter(engine *conversion.Engine, batchSize int, opts ...ConverterOption) (*Converter, error) {
	p, err := NewProcessor[Request](batchSize)
	if err != nil {
		return nil, err
	}
	c := &Converter{
		engine:      engine,
		processor:   p,
		concurrency: 1,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run converts every request. Outcomes are returned in input order. The
// returned error is non-nil only when ctx is cancelled.
func (c *Converter) Run(ctx context.Context, reqs []Request) ([]Outcome, error) {
	if len(reqs) == 0 {
		return []Outcome{}, nil
	}

	outcomes := make([]Outcome, len(reqs))
	callback := func(ctx context.Context, batch []Request, offset int) error {
		for i, req := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[offset+i] = c.convert(req)
		}
		return nil
	}

	var err error
	if c.concurrency > 1 {
		err = c.processor.ProcessConcurrent(ctx, reqs, callback, c.concurrency)
	} else {
		err = c.processor.Process(ctx, reqs, callback)
	}
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (c *Converter) convert(req Request) Outcome {
	if req.Err != nil {
		c.logger.Debug().Int("line", req.Line).Err(req.Err).Msg("skipping malformed line")
		return Outcome{Request: req, Err: req.Err}
	}

	res, err := c.engine.Evaluate(req.Value, req.From, req.To)
	if err != nil {
		c.logger.Debug().Int("line", req.Line).Err(err).Msg("conversion failed")
		return Outcome{Request: req, Err: fmt.Errorf("line %d: %w", req.Line, err)}
	}
	return Outcome{Request: req, Result: res}
}

// Summary counts successes and failures in outcomes.
func Summary(outcomes []Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
