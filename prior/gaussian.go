package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxRedraws bounds the rejection loop of BoundedGaussian.Sample. A budget
// this size is only exhausted when the bounds cover a vanishing tail of the
// underlying Gaussian (total mass below ~1e-4 per draw).
const maxRedraws = 10000

// Gaussian is a normal prior over the whole real line, parameterized by
// mean mu and standard deviation sd > 0. The guess is mu.
//
// Density and draws delegate to distuv.Normal:
//
//	lnprob(x) = -((x-mu)/sd)^2/2 - log(sd*sqrt(2*pi))
//
// Errors:
//   - ErrParameterSpec — sd <= 0, NaN parameter, or an explicit WithGuess
//     (the guess is derived from mu and cannot be overridden).
type Gaussian struct {
	name   string
	mu, sd float64
}

// NewGaussian constructs a normal prior with mean mu and standard
// deviation sd.
func NewGaussian(mu, sd float64, opts ...Option) (*Gaussian, error) {
	if math.IsNaN(mu) || math.IsNaN(sd) {
		return nil, fmt.Errorf("prior: gaussian parameter is NaN: %w", ErrParameterSpec)
	}
	if sd <= 0 {
		return nil, fmt.Errorf("prior: gaussian standard deviation %v must be positive: %w",
			sd, ErrParameterSpec)
	}

	o := gatherOptions(opts)
	if o.hasGuess {
		return nil, fmt.Errorf("prior: gaussian guess is derived from mu: %w", ErrParameterSpec)
	}

	return &Gaussian{name: o.name, mu: mu, sd: sd}, nil
}

// dist returns the evaluation-only distuv view of the prior.
func (g *Gaussian) dist() distuv.Normal {
	return distuv.Normal{Mu: g.mu, Sigma: g.sd}
}

// Name returns the optional label ("" if none).
func (g *Gaussian) Name() string { return g.name }

// Guess returns mu.
func (g *Gaussian) Guess() float64 { return g.mu }

// Mu returns the mean.
func (g *Gaussian) Mu() float64 { return g.mu }

// Sd returns the standard deviation.
func (g *Gaussian) Sd() float64 { return g.sd }

// Variance returns sd^2.
func (g *Gaussian) Variance() float64 { return g.sd * g.sd }

// Prob returns the normal density at x.
func (g *Gaussian) Prob(x float64) float64 { return g.dist().Prob(x) }

// LnProb returns the normal log density at x.
func (g *Gaussian) LnProb(x float64) float64 { return g.dist().LogProb(x) }

// Sample returns n draws from N(mu, sd).
func (g *Gaussian) Sample(src rand.Source, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prior: sample count %d must be positive: %w", n, ErrParameterSpec)
	}

	d := distuv.Normal{Mu: g.mu, Sigma: g.sd, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}

	return out, nil
}

// ScaleFactor returns |mu| when the mean is nonzero, otherwise sd.
func (g *Gaussian) ScaleFactor() float64 { return scaleFactorOr(g.mu, g.sd) }

// Scale maps x into dimensionless optimizer units.
func (g *Gaussian) Scale(x float64) float64 { return x / g.ScaleFactor() }

// Unscale is the exact inverse of Scale.
func (g *Gaussian) Unscale(x float64) float64 { return x * g.ScaleFactor() }

// Family reports FamilyGaussian.
func (g *Gaussian) Family() Family { return FamilyGaussian }

// Equal reports exact structural equality with another prior.
func (g *Gaussian) Equal(other Prior) bool {
	o, ok := other.(*Gaussian)

	return ok && g.name == o.name && g.mu == o.mu && g.sd == o.sd
}

// Close reports structural equality within tol on mu and sd.
func (g *Gaussian) Close(other Prior, tol float64) bool {
	o, ok := other.(*Gaussian)

	return ok && g.name == o.name &&
		closeFloat(g.mu, o.mu, tol) && closeFloat(g.sd, o.sd, tol)
}

// BoundedGaussian is a Gaussian truncated to the closed interval
// [lower, upper]: the density is the untruncated normal density inside the
// interval and exactly zero outside (LnProb returns -Inf there, never the
// improper sentinel — the domain is formally bounded).
//
// Sampling policy: rejection — redraw from the underlying Gaussian until a
// draw lands inside the bounds (see maxRedraws).
type BoundedGaussian struct {
	Gaussian
	lower, upper float64
}

// NewBoundedGaussian constructs a Gaussian truncated to [lower, upper].
// The mean must lie inside the bounds, so Guess always respects them.
func NewBoundedGaussian(mu, sd, lower, upper float64, opts ...Option) (*BoundedGaussian, error) {
	g, err := NewGaussian(mu, sd, opts...)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return nil, fmt.Errorf("prior: bounded gaussian bound is NaN: %w", ErrParameterSpec)
	}
	if upper <= lower {
		return nil, fmt.Errorf("prior: bounded gaussian upper bound %v must exceed lower bound %v: %w",
			upper, lower, ErrParameterSpec)
	}
	if mu < lower || mu > upper {
		return nil, fmt.Errorf("prior: bounded gaussian mean %v outside [%v, %v]: %w",
			mu, lower, upper, ErrParameterSpec)
	}

	return &BoundedGaussian{Gaussian: *g, lower: lower, upper: upper}, nil
}

// LowerBound returns the lower edge of the support.
func (b *BoundedGaussian) LowerBound() float64 { return b.lower }

// UpperBound returns the upper edge of the support.
func (b *BoundedGaussian) UpperBound() float64 { return b.upper }

// Prob returns the Gaussian density inside [lower, upper] and 0 outside.
func (b *BoundedGaussian) Prob(x float64) float64 {
	if x < b.lower || x > b.upper {
		return 0
	}

	return b.Gaussian.Prob(x)
}

// LnProb returns the Gaussian log density inside [lower, upper] and -Inf
// outside.
func (b *BoundedGaussian) LnProb(x float64) float64 {
	if x < b.lower || x > b.upper {
		return math.Inf(-1)
	}

	return b.Gaussian.LnProb(x)
}

// Sample returns n draws from the truncated distribution by rejection:
// each draw comes from the underlying Gaussian and is redrawn until it
// lands inside [lower, upper].
func (b *BoundedGaussian) Sample(src rand.Source, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prior: sample count %d must be positive: %w", n, ErrParameterSpec)
	}

	d := distuv.Normal{Mu: b.mu, Sigma: b.sd, Src: src}
	out := make([]float64, n)
	for i := range out {
		accepted := false
		for attempt := 0; attempt < maxRedraws; attempt++ {
			if v := d.Rand(); v >= b.lower && v <= b.upper {
				out[i] = v
				accepted = true

				break
			}
		}
		if !accepted {
			return nil, ErrSampleRejection
		}
	}

	return out, nil
}

// Family reports FamilyBoundedGaussian.
func (b *BoundedGaussian) Family() Family { return FamilyBoundedGaussian }

// Equal reports exact structural equality with another prior.
func (b *BoundedGaussian) Equal(other Prior) bool {
	o, ok := other.(*BoundedGaussian)

	return ok && b.name == o.name &&
		b.mu == o.mu && b.sd == o.sd &&
		b.lower == o.lower && b.upper == o.upper
}

// Close reports structural equality within tol on all four parameters.
func (b *BoundedGaussian) Close(other Prior, tol float64) bool {
	o, ok := other.(*BoundedGaussian)

	return ok && b.name == o.name &&
		closeFloat(b.mu, o.mu, tol) && closeFloat(b.sd, o.sd, tol) &&
		closeFloat(b.lower, o.lower, tol) && closeFloat(b.upper, o.upper, tol)
}
