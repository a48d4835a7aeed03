// Package gap measures runs of missing values (NA) in a numeric column,
// the way a feature-engineering pipeline needs them for long-format tables.
//
// 🚀 What is a gap?
//
//	A gap is a maximal run of consecutive NA cells that starts at a
//	reference row and extends in one scan direction. Typical uses:
//	  • "how long has this sensor been silent?" features
//	  • distance-to-last-observation inputs for gradient boosting
//	  • flagging rows that sit inside long outages
//
// ✨ Key features:
//   - explicit nullable cells (Value, Column): NA is never a magic float
//   - Below / Above over a row selector, with the original off-by-one contract
//   - fixed scan cap (MaxGap) so every row costs at most 101 probes
//   - fail-fast errors instead of out-of-bounds reads
//   - optional row sharding across goroutines (WithWorkers)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nagap/gap"
//
//	train := gap.Column{gap.Num(1), gap.NA(), gap.NA(), gap.Num(5)}
//	rows := []int{3, 4}               // 1-based positions into train
//	cols := []string{"temp", "temp"}  // long-format column names
//	below, err := gap.Below(rows, cols, train, make([]float64, 2), "temp")
//	// below == [1 -1]
//
// Output convention:
//
//	The reported value is count-1, where count is the number of NA cells
//	probed starting at the reference cell itself. A present reference cell
//	yields -1, a single NA yields 0, and a run of 101+ NAs yields MaxGap.
//
// Performance:
//
//   - Time:   O(N·MaxGap) worst case, O(N) typical
//   - Memory: O(N) for the returned copy
package gap
