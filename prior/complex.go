package prior

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Part is one component of a ComplexPrior: either a scalar prior or a fixed
// real number. A fixed part contributes its value as the guess and zero
// log-probability — a pinned value carries no probabilistic penalty.
type Part struct {
	prior Prior
	fixed float64
}

// FixedPart wraps a fixed real number as a component.
func FixedPart(v float64) Part { return Part{fixed: v} }

// PriorPart wraps a scalar prior as a component.
func PriorPart(p Prior) Part { return Part{prior: p} }

// IsFixed reports whether the component is a pinned number rather than a
// distribution.
func (p Part) IsFixed() bool { return p.prior == nil }

// Prior returns the wrapped prior, or nil for a fixed part.
func (p Part) Prior() Prior { return p.prior }

// Fixed returns the pinned value; meaningful only when IsFixed.
func (p Part) Fixed() float64 { return p.fixed }

// Guess returns the component's point estimate.
func (p Part) Guess() float64 {
	if p.IsFixed() {
		return p.fixed
	}

	return p.prior.Guess()
}

// LnProb returns the component's log density at x; 0 for a fixed part.
func (p Part) LnProb(x float64) float64 {
	if p.IsFixed() {
		return 0
	}

	return p.prior.LnProb(x)
}

// sample draws n values from the component; a fixed part repeats its value.
func (p Part) sample(src rand.Source, n int) ([]float64, error) {
	if p.IsFixed() {
		out := make([]float64, n)
		for i := range out {
			out[i] = p.fixed
		}

		return out, nil
	}

	return p.prior.Sample(src, n)
}

// equal reports exact structural equality between two components.
func (p Part) equal(o Part) bool {
	if p.IsFixed() != o.IsFixed() {
		return false
	}
	if p.IsFixed() {
		return p.fixed == o.fixed
	}

	return p.prior.Equal(o.prior)
}

// close reports structural equality within tol between two components.
func (p Part) close(o Part, tol float64) bool {
	if p.IsFixed() != o.IsFixed() {
		return false
	}
	if p.IsFixed() {
		return closeFloat(p.fixed, o.fixed, tol)
	}

	return p.prior.Close(o.prior, tol)
}

// ComplexPrior pairs two components as the real and imaginary parts of a
// complex-valued parameter (a refractive index, typically). The components
// are independent: the joint log density is the sum of the per-component
// log densities, with fixed parts contributing zero.
type ComplexPrior struct {
	name string
	re   Part
	im   Part
}

// NewComplexPrior pairs re and im as a complex-valued prior. A PriorPart
// wrapping a nil prior is rejected with ErrParameterSpec.
func NewComplexPrior(re, im Part, opts ...Option) (*ComplexPrior, error) {
	if (!re.IsFixed() && re.prior == nil) || (!im.IsFixed() && im.prior == nil) {
		return nil, fmt.Errorf("prior: complex component wraps a nil prior: %w", ErrParameterSpec)
	}

	o := gatherOptions(opts)
	if o.hasGuess {
		return nil, fmt.Errorf("prior: complex guess is derived from its components: %w", ErrParameterSpec)
	}

	return &ComplexPrior{name: o.name, re: re, im: im}, nil
}

// Name returns the optional label ("" if none).
func (c *ComplexPrior) Name() string { return c.name }

// Real returns the real component.
func (c *ComplexPrior) Real() Part { return c.re }

// Imag returns the imaginary component.
func (c *ComplexPrior) Imag() Part { return c.im }

// Guess combines the component guesses into a complex point estimate.
func (c *ComplexPrior) Guess() complex128 {
	return complex(c.re.Guess(), c.im.Guess())
}

// LnProb returns the joint log density at z: the sum of the real
// component's log density at real(z) and the imaginary component's at
// imag(z).
func (c *ComplexPrior) LnProb(z complex128) float64 {
	return c.re.LnProb(real(z)) + c.im.LnProb(imag(z))
}

// Prob returns exp(LnProb(z)).
func (c *ComplexPrior) Prob(z complex128) float64 {
	return probFromLn(c.LnProb(z))
}

// Sample returns n complex draws: both components are drawn independently
// from src in sequence (real first), fixed parts repeating their value.
func (c *ComplexPrior) Sample(src rand.Source, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prior: sample count %d must be positive: %w", n, ErrParameterSpec)
	}

	res, err := c.re.sample(src, n)
	if err != nil {
		return nil, err
	}
	ims, err := c.im.sample(src, n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(res[i], ims[i])
	}

	return out, nil
}

// Equal reports exact structural equality: both components compared
// recursively, names compared exactly.
func (c *ComplexPrior) Equal(other *ComplexPrior) bool {
	return other != nil && c.name == other.name &&
		c.re.equal(other.re) && c.im.equal(other.im)
}

// Close reports component-wise structural equality within tol.
func (c *ComplexPrior) Close(other *ComplexPrior, tol float64) bool {
	return other != nil && c.name == other.name &&
		c.re.close(other.re, tol) && c.im.close(other.im, tol)
}
