package gap

import "fmt"

// probe returns the 0-based cell checked at step counter for a 1-based row.
// Step 0 is the row's own cell in both directions.
func probe(row, counter int, dir Direction) int {
	if dir == Down {
		return row - counter - 1
	}

	return row + counter - 1
}

// count walks from row in dir while cells are NA and returns counter-1.
// Only probed positions are bounds-checked.
func count(train Column, row int, dir Direction) (int, error) {
	counter := 0
	for {
		pos := probe(row, counter, dir)
		if pos < 0 || pos >= len(train) {
			return 0, fmt.Errorf("%w: row %d probes cell %d of %d (%s)",
				ErrIndexOutOfRange, row, pos, len(train), dir)
		}
		if train[pos].valid {
			break
		}
		counter++
		if counter > MaxGap {
			break
		}
	}

	return counter - 1, nil
}

// Count returns the gap for a single 1-based row of train.
//
// Returns -1 when the row's own cell is present, k-1 for a run of k NAs
// (k <= MaxGap), and MaxGap for longer runs.
// Errors: ErrBadDirection, ErrIndexOutOfRange.
func Count(train Column, row int, dir Direction) (int, error) {
	if !dir.valid() {
		return 0, fmt.Errorf("%w: %s", ErrBadDirection, dir)
	}

	return count(train, row, dir)
}
