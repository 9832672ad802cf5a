package prior_test

import (
	"testing"

	"github.com/katalvlaran/priors/prior"
)

// benchmarkSample draws batches of size n from p inside the timed loop.
func benchmarkSample(b *testing.B, p prior.Prior, n int) {
	src := prior.NewSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Sample(src, n); err != nil {
			b.Fatalf("sample failed: %v", err)
		}
	}
}

// BenchmarkGaussianLnProb measures the per-point log-density cost.
func BenchmarkGaussianLnProb(b *testing.B) {
	g, err := prior.NewGaussian(1, 1)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.LnProb(float64(i % 7))
	}
}

// BenchmarkUniformSample measures inverse-CDF uniform draws in batches of 1000.
func BenchmarkUniformSample(b *testing.B) {
	u, err := prior.NewUniform(0, 1)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	benchmarkSample(b, u, 1000)
}

// BenchmarkBoundedGaussianSample measures rejection sampling with bounds
// one sd around the mean (acceptance ~68%).
func BenchmarkBoundedGaussianSample(b *testing.B) {
	bg, err := prior.NewBoundedGaussian(0, 1, -1, 1)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	benchmarkSample(b, bg, 1000)
}

// BenchmarkAlgebraMul measures the affine-transform dispatch.
func BenchmarkAlgebraMul(b *testing.B) {
	u, err := prior.NewUniform(1, 2)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prior.Mul(u, 2); err != nil {
			b.Fatalf("mul failed: %v", err)
		}
	}
}
