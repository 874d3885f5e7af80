package spectral

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-bispec/signal"
)

func BenchmarkComputePeriodogram(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		axis := signal.TimeAxis(n, 1.0)
		x := signal.UnpolarizedNoise(n, 1, 1.0)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ComputePeriodogram(axis, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkComputeMultitaper(b *testing.B) {
	for _, n := range []int{256, 1024} {
		axis := signal.TimeAxis(n, 1.0)
		x := signal.UnpolarizedNoise(n, 1, 1.0)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ComputeMultitaper(axis, x, DefaultBandwidth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	axis := signal.TimeAxis(4096, 1.0)
	x := signal.UnpolarizedNoise(4096, 1, 1.0)

	p, err := ComputePeriodogram(axis, x)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Normalize(1e-3)
	}
}
