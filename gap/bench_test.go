package gap_test

import (
	"testing"

	"github.com/katalvlaran/nagap/gap"
)

// BenchmarkBelow_Sequential measures the row loop on 100k selector entries.
func BenchmarkBelow_Sequential(b *testing.B) {
	train, rows, cols, out := randomSelector(3, 50000, 100000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gap.Below(rows, cols, train, out, "a")
	}
}

// BenchmarkBelow_Parallel4 shards the same input across four workers.
func BenchmarkBelow_Parallel4(b *testing.B) {
	train, rows, cols, out := randomSelector(3, 50000, 100000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gap.Below(rows, cols, train, out, "a", gap.WithWorkers(4))
	}
}

// BenchmarkCount_CapHit measures the worst case: every probe is NA.
func BenchmarkCount_CapHit(b *testing.B) {
	train := make(gap.Column, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gap.Count(train, 500, gap.Up)
	}
}
