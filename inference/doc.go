// Package inference is the fit-driver-facing layer over package prior:
// uncertain estimates from earlier fits, posterior updates of priors, and
// batched starting points for multi-parameter optimizers.
//
// 🚀 What lives here?
//
//   - UncertainValue — an external estimate of a parameter (value,
//     uncertainty, degrees of freedom), typically produced by an MCMC or
//     least-squares result.
//   - Updated — folds an UncertainValue into a prior, yielding a new prior
//     of the same family with the observed value as its center and a
//     dof-inflated width; bounds are preserved.
//   - GenerateGuess — an n×p gonum matrix of per-parameter starting points,
//     column j holding n draws from parameter j's prior, optionally pulled
//     toward the guesses by a scaling factor.
//
// ⚙️ Usage:
//
//	ps := []prior.Prior{gaussian, uniform}
//	batch, err := inference.GenerateGuess(ps, 50,
//	    inference.WithScaling(0.5), inference.WithSeed(22))
//
// Determinism:
//
//	With WithSeed (or an explicit WithSource) the returned matrix is
//	byte-identical across runs and process restarts: draws are consumed
//	column-major from a single PCG source.
package inference
