// Package prior: the closed affine algebra over the prior families.
//
// Every operation dispatches over the concrete family and either applies an
// explicitly defined transformation or fails with ErrUnsupportedOp — no
// silent coercion, no approximation. Operands are never mutated; every
// result is a fresh prior carrying the operand's name.
//
// Defined table:
//
//	Add/Sub/SubFrom  — Uniform (shift bounds+guess), Gaussian (shift mu),
//	                   BoundedGaussian (shift mu and bounds)
//	Mul/Div/Neg      — Uniform (scale bounds+guess, re-ordering under a
//	                   negative factor), Gaussian (scale mu by c, sd by |c|),
//	                   BoundedGaussian (both)
//	AddPriors        — Gaussian + Gaussian only: independent-variable
//	                   convolution, mu1+mu2 and sqrt(sd1^2+sd2^2)
//	AddEach/MulEach  — elementwise broadcast over a slice of scalars,
//	                   one independent prior per element
//
// Anything else — two Uniforms added, mismatched families, any product of
// two priors, any algebra over ComplexPrior — is a type error by design:
// the closed family is only tractable under affine transforms plus
// same-family Gaussian convolution.

package prior

import (
	"fmt"
	"math"
)

// Add returns p shifted by c: a new prior of the same family.
func Add(p Prior, c float64) (Prior, error) {
	if err := checkOperand(p, c, "add"); err != nil {
		return nil, err
	}

	switch q := p.(type) {
	case *Uniform:
		return NewUniform(q.lower+c, q.upper+c,
			WithGuess(q.guess+c), WithName(q.name))
	case *Gaussian:
		return NewGaussian(q.mu+c, q.sd, WithName(q.name))
	case *BoundedGaussian:
		return NewBoundedGaussian(q.mu+c, q.sd, q.lower+c, q.upper+c, WithName(q.name))
	default:
		return nil, fmt.Errorf("prior: add %T: %w", p, ErrUnsupportedOp)
	}
}

// Sub returns p shifted by -c.
func Sub(p Prior, c float64) (Prior, error) {
	return Add(p, -c)
}

// SubFrom returns c - p: the negated prior shifted by c.
func SubFrom(c float64, p Prior) (Prior, error) {
	n, err := Neg(p)
	if err != nil {
		return nil, err
	}

	return Add(n, c)
}

// Mul returns p scaled by c: bounds and guess (Uniform) or mu (Gaussian
// family) multiplied by c, standard deviations by |c|, bound order
// re-normalized under a negative factor. A zero factor would collapse the
// distribution and fails with ErrParameterSpec.
func Mul(p Prior, c float64) (Prior, error) {
	if err := checkOperand(p, c, "mul"); err != nil {
		return nil, err
	}
	if c == 0 {
		return nil, fmt.Errorf("prior: mul by zero collapses the distribution: %w", ErrParameterSpec)
	}

	switch q := p.(type) {
	case *Uniform:
		lo, hi := orderedScale(q.lower, q.upper, c)

		return NewUniform(lo, hi, WithGuess(q.guess*c), WithName(q.name))
	case *Gaussian:
		return NewGaussian(q.mu*c, q.sd*math.Abs(c), WithName(q.name))
	case *BoundedGaussian:
		lo, hi := orderedScale(q.lower, q.upper, c)

		return NewBoundedGaussian(q.mu*c, q.sd*math.Abs(c), lo, hi, WithName(q.name))
	default:
		return nil, fmt.Errorf("prior: mul %T: %w", p, ErrUnsupportedOp)
	}
}

// Div returns p scaled by 1/c; c must be nonzero.
func Div(p Prior, c float64) (Prior, error) {
	if c == 0 {
		return nil, fmt.Errorf("prior: division by zero: %w", ErrParameterSpec)
	}

	return Mul(p, 1/c)
}

// Neg returns p scaled by -1.
func Neg(p Prior) (Prior, error) {
	return Mul(p, -1)
}

// AddPriors convolves two priors of independent variables. The result is
// defined only for two Gaussians: mu = mu1+mu2, sd = sqrt(sd1^2+sd2^2).
// Every other pairing — Uniform+Uniform, Gaussian+BoundedGaussian, anything
// with a ComplexPrior — fails with ErrUnsupportedOp.
func AddPriors(a, b Prior) (Prior, error) {
	ga, aok := a.(*Gaussian)
	gb, bok := b.(*Gaussian)
	if !aok || !bok {
		return nil, fmt.Errorf("prior: add %T and %T: %w", a, b, ErrUnsupportedOp)
	}

	name := ga.name
	if gb.name != ga.name {
		name = ""
	}

	return NewGaussian(ga.mu+gb.mu, math.Hypot(ga.sd, gb.sd), WithName(name))
}

// MulPriors is the product row of the dispatch table: the product of two
// random variables is not expressible inside this closed family for ANY
// pairing, so every call fails with ErrUnsupportedOp. It exists so the
// rejection is an explicit, documented rule rather than a missing entry
// point.
func MulPriors(a, b Prior) (Prior, error) {
	return nil, fmt.Errorf("prior: multiply %T and %T: %w", a, b, ErrUnsupportedOp)
}

// AddEach shifts p by each element of cs, returning one independent prior
// per element.
func AddEach(p Prior, cs []float64) ([]Prior, error) {
	return mapEach(p, cs, Add)
}

// MulEach scales p by each element of cs, returning one independent prior
// per element.
func MulEach(p Prior, cs []float64) ([]Prior, error) {
	return mapEach(p, cs, Mul)
}

// mapEach applies op(p, c) across cs, failing fast on the first error.
func mapEach(p Prior, cs []float64, op func(Prior, float64) (Prior, error)) ([]Prior, error) {
	out := make([]Prior, len(cs))
	for i, c := range cs {
		q, err := op(p, c)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return out, nil
}

// orderedScale multiplies both bounds by c and restores lower < upper.
func orderedScale(lower, upper, c float64) (lo, hi float64) {
	lo, hi = lower*c, upper*c
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

// checkOperand rejects nil priors and non-finite scalars before dispatch.
func checkOperand(p Prior, c float64, op string) error {
	if p == nil {
		return fmt.Errorf("prior: %s with nil prior: %w", op, ErrUnsupportedOp)
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("prior: %s with non-finite scalar %v: %w", op, c, ErrParameterSpec)
	}

	return nil
}
