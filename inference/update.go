package inference

import (
	"fmt"

	"github.com/katalvlaran/priors/prior"
)

// Updated folds an observed estimate into a prior, returning a new prior of
// the same family centered on the observation:
//
//   - Gaussian        → Gaussian(v.Value, v.EffectiveUncertainty)
//   - BoundedGaussian → same, with the original bounds preserved; an
//     observed value outside the bounds surfaces ErrParameterSpec from
//     construction.
//   - Uniform         → the bounds are kept and the observed value becomes
//     the guess (the flat density carries no width to revise).
//
// The operand is never mutated and its name carries over. ComplexPrior has
// no update rule and fails with ErrUnsupportedOp; update its components
// individually instead.
func Updated(p prior.Prior, v UncertainValue) (prior.Prior, error) {
	switch q := p.(type) {
	case *prior.Gaussian:
		return prior.NewGaussian(v.Value(), v.EffectiveUncertainty(), prior.WithName(q.Name()))
	case *prior.BoundedGaussian:
		return prior.NewBoundedGaussian(v.Value(), v.EffectiveUncertainty(),
			q.LowerBound(), q.UpperBound(), prior.WithName(q.Name()))
	case *prior.Uniform:
		return prior.NewUniform(q.LowerBound(), q.UpperBound(),
			prior.WithGuess(v.Value()), prior.WithName(q.Name()))
	default:
		return nil, fmt.Errorf("inference: update %T: %w", p, prior.ErrUnsupportedOp)
	}
}
