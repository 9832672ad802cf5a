// Package prior: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the prior
// package. All constructors and operators MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on user input.

package prior

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "prior: ..." for consistency. Constructors
// wrap ErrParameterSpec with fmt.Errorf("prior: <detail>: %w", ...) so that
// callers distinguish the single "parameter specification" kind via
// errors.Is while still seeing which argument was rejected.

var (
	// ErrParameterSpec is the single construction-error kind: invalid bound
	// ordering, a guess outside the bounds, a non-positive standard
	// deviation, a zero scale, or a non-positive sample count. An invalid
	// object is never partially constructed.
	ErrParameterSpec = errors.New("prior: invalid parameter specification")

	// ErrNotImplemented is returned by New, the designated construction
	// entry point of the abstract base contract. The base type exists only
	// to define the shared method set and can never be instantiated.
	ErrNotImplemented = errors.New("prior: base prior is not instantiable")

	// ErrUnsupportedOp rejects operator combinations outside the closed
	// algebra: adding two non-Gaussian priors, multiplying two priors, or
	// applying scalar algebra to a family with no defined rule. Operands
	// are left unchanged.
	ErrUnsupportedOp = errors.New("prior: unsupported operation for prior family")

	// ErrImproperSampling is returned when sampling an improper
	// (infinite-interval) Uniform: an unnormalizable density has no
	// inverse CDF to draw from.
	ErrImproperSampling = errors.New("prior: cannot sample an improper prior")

	// ErrSampleRejection is returned when rejection sampling of a
	// BoundedGaussian exhausts its redraw budget, which happens only when
	// the bounds cover a vanishing tail of the underlying Gaussian.
	ErrSampleRejection = errors.New("prior: rejection sampling exhausted its redraw budget")
)
