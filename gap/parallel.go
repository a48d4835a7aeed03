package gap

import "golang.org/x/sync/errgroup"

// runParallel splits the selector into contiguous chunks, one goroutine each.
// Every goroutine writes only its own slots of s.res. When several chunks
// fail, the error from the lowest selector index wins, matching run(0, n).
func (s *scanner) runParallel(workers int) error {
	n := len(s.rows)
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	errs := make([]error, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go.mod targets go1.21 loop semantics
		lo := w * size
		hi := min(lo+size, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			errs[w] = s.run(lo, hi)
			return errs[w]
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}
	// chunks are ordered, so the first failing chunk holds the lowest index
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
