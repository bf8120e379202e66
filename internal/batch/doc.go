// Package batch converts many values at once.
//
// Input lines of the form "<value> <from> <to>" are parsed into Requests,
// split into fixed-size batches and run through a conversion.Engine, either
// sequentially or with bounded concurrency. Per-line failures (malformed
// input, unknown units) are reported on the line's Outcome and never stop the
// run; only cancellation does.
package batch
