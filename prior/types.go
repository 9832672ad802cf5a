// Package prior: shared contract, closed family enumeration and sampling
// sources.

package prior

import "golang.org/x/exp/rand"

// Family identifies a concrete scalar prior variant. The set is closed:
// the algebra in this package dispatches over it and every pairing outside
// the table is rejected, never coerced.
type Family int

const (
	// FamilyUniform — flat density over an interval, possibly improper.
	FamilyUniform Family = iota

	// FamilyGaussian — normal density over the whole real line.
	FamilyGaussian

	// FamilyBoundedGaussian — normal density truncated to a closed interval.
	FamilyBoundedGaussian
)

// String returns the family name for diagnostics.
func (f Family) String() string {
	switch f {
	case FamilyUniform:
		return "Uniform"
	case FamilyGaussian:
		return "Gaussian"
	case FamilyBoundedGaussian:
		return "BoundedGaussian"
	default:
		return "Unknown"
	}
}

// ImproperLnProb is the finite log-probability sentinel returned by improper
// (infinite-interval) distributions in place of a true -Inf. Outer
// optimizers subtract and compare log densities; a finite large-magnitude
// value keeps that arithmetic NaN-free. Proper bounded distributions still
// return exactly -Inf at zero-density points.
const ImproperLnProb = -1e6

// Prior is the contract every concrete scalar distribution implements.
//
// Implementations are immutable value objects: no method mutates the
// receiver, derived quantities (interval, scale factor) are computed
// accessors, and algebraic operations return fresh instances. Instances are
// therefore safe for concurrent use; sampling state lives entirely in the
// caller-supplied rand.Source.
type Prior interface {
	// Name returns the optional label attached at construction ("" if none).
	Name() string

	// Guess returns a representative point estimate used to seed optimizers.
	Guess() float64

	// Prob returns the probability density at x: 0 outside the support,
	// never negative.
	Prob(x float64) float64

	// LnProb returns the natural log of Prob(x). Out-of-support points
	// yield -Inf for proper distributions and ImproperLnProb for improper
	// ones; LnProb never returns an error.
	LnProb(x float64) float64

	// Sample returns n independent draws honoring the support. A nil src
	// falls back to an unseeded source; pass NewSource(seed) for
	// reproducible draws.
	Sample(src rand.Source, n int) ([]float64, error)

	// ScaleFactor returns the natural unit-scale of the parameter:
	// |Guess()| when the guess is nonzero, otherwise a family-specific
	// fallback (interval/10 for a finite Uniform, sd for a Gaussian, 1 for
	// an improper Uniform).
	ScaleFactor() float64

	// Scale maps a physical value into dimensionless optimizer units;
	// Unscale is its exact inverse.
	Scale(x float64) float64
	Unscale(x float64) float64

	// Family reports the concrete variant for algebra dispatch.
	Family() Family

	// Equal reports exact structural equality with another prior: same
	// concrete family, same name, identical parameters.
	Equal(other Prior) bool

	// Close reports structural equality within an absolute tolerance on
	// every numeric parameter (names and families still compared exactly).
	Close(other Prior, tol float64) bool
}

// NewSource returns a deterministic sampling source for seed. Each call
// yields an independent source; no process-wide random state is shared
// between calls.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
