package gap

import (
	"context"
	"fmt"
)

// scanner holds the read-only inputs of one Scan call and its result buffer.
type scanner struct {
	dir    Direction
	rows   []int
	cols   []string
	train  Column
	target string
	ctx    context.Context
	onGap  func(i, gap int)
	res    []float64
}

// Below computes "missing below" for every selector entry whose column
// name equals target: the NA run starting at rows[i] and walking toward
// the start of train, reported as count-1.
//
// below is not modified; a copy with matching entries overwritten is returned.
// Errors: ErrLengthMismatch, ErrIndexOutOfRange, ErrOptionViolation.
//
// Example:
//
//	train := Column{Num(1), NA(), NA(), Num(5)}
//	out, _ := Below([]int{3}, []string{"x"}, train, []float64{0}, "x")
//	// out == [1]
func Below(rows []int, cols []string, train Column, below []float64, target string, opts ...Option) ([]float64, error) {
	return Scan(Down, rows, cols, train, below, target, opts...)
}

// Above computes "missing above": the NA run starting at rows[i] and
// walking toward the end of train, reported as count-1.
// Same contract as Below.
func Above(rows []int, cols []string, train Column, above []float64, target string, opts ...Option) ([]float64, error) {
	return Scan(Up, rows, cols, train, above, target, opts...)
}

// Scan is the direction-agnostic driver behind Below and Above.
//
// Validation happens before any probing, in this order: options,
// direction, then len(rows) == len(cols) == len(out).
// Rows whose column name differs from target are copied through and
// never probed. On error the result is nil.
func Scan(dir Direction, rows []int, cols []string, train Column, out []float64, target string, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadDirection, dir)
	}
	if len(rows) != len(cols) || len(rows) != len(out) {
		return nil, fmt.Errorf("%w: rows=%d cols=%d out=%d",
			ErrLengthMismatch, len(rows), len(cols), len(out))
	}

	res := make([]float64, len(out))
	copy(res, out)
	s := &scanner{
		dir:    dir,
		rows:   rows,
		cols:   cols,
		train:  train,
		target: target,
		ctx:    o.Ctx,
		onGap:  o.OnGap,
		res:    res,
	}

	var err error
	if o.Workers > 1 && len(rows) > 1 {
		err = s.runParallel(o.Workers)
	} else {
		err = s.run(0, len(rows))
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// run processes selector entries [lo, hi) and stops at the first error.
func (s *scanner) run(lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := s.ctx.Err(); err != nil {
			return fmt.Errorf("gap: scan interrupted at selector index %d: %w", i, err)
		}
		if s.cols[i] != s.target {
			continue
		}
		g, err := count(s.train, s.rows[i], s.dir)
		if err != nil {
			return fmt.Errorf("selector index %d: %w", i, err)
		}
		s.res[i] = float64(g)
		s.onGap(i, g)
	}

	return nil
}
