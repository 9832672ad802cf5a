package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a flat prior over (lower, upper). Either bound may be infinite;
// with an infinite interval the prior is improper: its density is zero (and
// its log density the ImproperLnProb sentinel) everywhere, and it cannot be
// sampled.
//
// Uniform — construction & evaluation
//
// Description:
//
//	The density is 1/interval strictly inside the open interval and 0
//	elsewhere, so the bounds themselves carry zero density. The default
//	guess is the midpoint when both bounds are finite, the finite bound
//	when exactly one is infinite, and 0 when both are.
//
// Errors:
//   - ErrParameterSpec     — upper <= lower, NaN bound, or guess outside bounds.
//   - ErrImproperSampling  — Sample on an infinite interval.
type Uniform struct {
	name         string
	lower, upper float64
	guess        float64
}

// NewUniform constructs a flat prior over (lower, upper).
func NewUniform(lower, upper float64, opts ...Option) (*Uniform, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return nil, fmt.Errorf("prior: uniform bound is NaN: %w", ErrParameterSpec)
	}
	if upper <= lower {
		return nil, fmt.Errorf("prior: uniform upper bound %v must exceed lower bound %v: %w",
			upper, lower, ErrParameterSpec)
	}

	o := gatherOptions(opts)
	guess := defaultUniformGuess(lower, upper)
	if o.hasGuess {
		if math.IsNaN(o.guess) || o.guess < lower || o.guess > upper {
			return nil, fmt.Errorf("prior: uniform guess %v outside [%v, %v]: %w",
				o.guess, lower, upper, ErrParameterSpec)
		}
		guess = o.guess
	}

	return &Uniform{name: o.name, lower: lower, upper: upper, guess: guess}, nil
}

// defaultUniformGuess picks the representative point when none is supplied:
// midpoint, the finite bound, or zero, depending on which bounds are finite.
func defaultUniformGuess(lower, upper float64) float64 {
	loInf, upInf := math.IsInf(lower, 0), math.IsInf(upper, 0)
	switch {
	case !loInf && !upInf:
		return (lower + upper) / 2
	case loInf && !upInf:
		return upper
	case !loInf && upInf:
		return lower
	default:
		return 0
	}
}

// Name returns the optional label ("" if none).
func (u *Uniform) Name() string { return u.name }

// Guess returns the representative point estimate.
func (u *Uniform) Guess() float64 { return u.guess }

// LowerBound returns the lower edge of the support (possibly -Inf).
func (u *Uniform) LowerBound() float64 { return u.lower }

// UpperBound returns the upper edge of the support (possibly +Inf).
func (u *Uniform) UpperBound() float64 { return u.upper }

// Interval returns upper-lower; +Inf when either bound is infinite.
func (u *Uniform) Interval() float64 { return u.upper - u.lower }

// improper reports whether the interval is infinite.
func (u *Uniform) improper() bool { return math.IsInf(u.Interval(), 1) }

// Prob returns 1/interval strictly inside the bounds, 0 elsewhere. An
// improper uniform has zero density at every finite point.
func (u *Uniform) Prob(x float64) float64 {
	if u.improper() || x <= u.lower || x >= u.upper {
		return 0
	}

	return 1 / u.Interval()
}

// LnProb returns -log(interval) strictly inside the bounds and -Inf
// outside; an improper uniform returns ImproperLnProb everywhere.
func (u *Uniform) LnProb(x float64) float64 {
	if u.improper() {
		return ImproperLnProb
	}
	if x <= u.lower || x >= u.upper {
		return math.Inf(-1)
	}

	return -math.Log(u.Interval())
}

// Sample returns n inverse-CDF draws from (lower, upper). Sampling an
// improper uniform fails with ErrImproperSampling.
func (u *Uniform) Sample(src rand.Source, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prior: sample count %d must be positive: %w", n, ErrParameterSpec)
	}
	if u.improper() {
		return nil, ErrImproperSampling
	}

	d := distuv.Uniform{Min: u.lower, Max: u.upper, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}

	return out, nil
}

// ScaleFactor returns |guess| when the guess is nonzero, interval/10 for a
// zero-guess finite interval, and 1 for an improper uniform.
func (u *Uniform) ScaleFactor() float64 {
	fallback := 1.0
	if !u.improper() {
		fallback = u.Interval() / 10
	}

	return scaleFactorOr(u.guess, fallback)
}

// Scale maps x into dimensionless optimizer units.
func (u *Uniform) Scale(x float64) float64 { return x / u.ScaleFactor() }

// Unscale is the exact inverse of Scale.
func (u *Uniform) Unscale(x float64) float64 { return x * u.ScaleFactor() }

// Family reports FamilyUniform.
func (u *Uniform) Family() Family { return FamilyUniform }

// Equal reports exact structural equality with another prior.
func (u *Uniform) Equal(other Prior) bool {
	o, ok := other.(*Uniform)

	return ok && u.name == o.name &&
		u.lower == o.lower && u.upper == o.upper && u.guess == o.guess
}

// Close reports structural equality within tol on bounds and guess.
func (u *Uniform) Close(other Prior, tol float64) bool {
	o, ok := other.(*Uniform)

	return ok && u.name == o.name &&
		closeFloat(u.lower, o.lower, tol) &&
		closeFloat(u.upper, o.upper, tol) &&
		closeFloat(u.guess, o.guess, tol)
}
