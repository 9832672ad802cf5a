// Package prior: abstract base contract and shared numeric helpers.

package prior

import "math"

// New is the construction entry point of the abstract base contract.
// The base "prior" defines only the shared method set (see the Prior
// interface); it carries no distribution of its own, so constructing it
// always fails with ErrNotImplemented. Use NewUniform, NewGaussian,
// NewBoundedGaussian or NewComplexPrior instead.
func New(_ ...Option) (Prior, error) {
	return nil, ErrNotImplemented
}

// scaleFactorOr implements the shared scale-factor rule: the magnitude of a
// nonzero guess, otherwise the family-specific fallback.
func scaleFactorOr(guess, fallback float64) float64 {
	if guess != 0 {
		return math.Abs(guess)
	}

	return fallback
}

// probFromLn converts a log density back to a density. math.Exp maps both
// -Inf and the ImproperLnProb sentinel to 0, so out-of-support points stay
// at zero density.
func probFromLn(lnp float64) float64 {
	return math.Exp(lnp)
}

// closeFloat reports |a-b| <= tol, treating equal values (including equal
// infinities) as close regardless of tol.
func closeFloat(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol
}
