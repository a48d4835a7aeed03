// Package gap defines scan directions, options and error definitions
// for gap counting over a Column.
package gap

import (
	"context"
	"errors"
	"fmt"
)

// MaxGap caps the scan: probing stops once the counter exceeds it,
// so the largest reported gap is MaxGap.
const MaxGap = 100

// Sentinel errors. Match them with errors.Is; returned errors carry
// the selector index and position as context.
var (
	// ErrLengthMismatch indicates that rows, cols and out (or values and
	// valid) differ in length.
	ErrLengthMismatch = errors.New("gap: length mismatch")

	// ErrIndexOutOfRange indicates that a probed position falls outside the column.
	ErrIndexOutOfRange = errors.New("gap: index out of range")

	// ErrBadDirection is returned for a Direction other than Down or Up.
	ErrBadDirection = errors.New("gap: unknown scan direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gap: invalid option supplied")
)

// Direction selects which way a scan walks from the reference cell.
//
//   - Down — toward lower indexes ("missing below").
//   - Up   — toward higher indexes ("missing above").
type Direction int

const (
	// Down walks from the reference cell toward index 0.
	Down Direction = iota

	// Up walks from the reference cell toward the end of the column.
	Up
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool { return d == Down || d == Up }

// Option configures a scan via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs of a scan.
type Options struct {
	// Ctx allows cancellation; checked before each row.
	Ctx context.Context

	// Workers > 1 shards the row loop across that many goroutines.
	// 0 and 1 both mean sequential.
	Workers int

	// OnGap is called with the selector index and the gap written there.
	// In parallel mode it is called concurrently.
	OnGap func(i, gap int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential, uncancellable options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnGap:   func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used for the row loop.
//
//	n > 1:  shard rows into n contiguous chunks
//	n == 0: sequential (same as 1)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// WithOnGap registers a callback run after each gap is computed.
func WithOnGap(fn func(i, gap int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGap = fn
		}
	}
}
