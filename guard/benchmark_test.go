//go:build unit

package guard

import (
	"errors"
	"testing"
)

// Benchmarks cover both paths: the false path is the hot one and must stay
// allocation free.

var errBench = errors.New("bench")

func BenchmarkArgumentNull_False(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Throw.ArgumentNull(false, "param", "message")
	}
}

func BenchmarkArgumentNull_True(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Throw.ArgumentNull(true, "param", "message")
	}
}

func BenchmarkTimeout_False(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Throw.Timeout(false, "message", errBench)
	}
}

func BenchmarkAggregate_False(b *testing.B) {
	b.ReportAllocs()

	errs := []error{errBench, errBench}

	for i := 0; i < b.N; i++ {
		_ = Throw.Aggregate(false, "message", errs...)
	}
}

func BenchmarkAggregate_True(b *testing.B) {
	b.ReportAllocs()

	errs := []error{errBench, errBench}

	for i := 0; i < b.N; i++ {
		_ = Throw.Aggregate(true, "message", errs...)
	}
}

func BenchmarkKindOf(b *testing.B) {
	err := Throw.MissingField(true, "Account", "Balance")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = KindOf(err)
	}
}
