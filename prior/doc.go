// Package prior implements the probability distributions used to describe
// belief about physical model parameters, together with the closed algebra
// that lets a model builder shift, scale and combine them.
//
// 🚀 What is a prior?
//
//	A prior is a distribution over a single scalar parameter (or a pair of
//	scalars for complex-valued parameters) evaluated by an outer inference
//	engine. Each prior answers the same five questions:
//	  • Guess    — a representative starting point for an optimizer
//	  • Prob     — probability density at a point (0 outside support)
//	  • LnProb   — log density, numerically safe for optimizers
//	  • Sample   — independent draws honoring the support
//	  • Scale    — mapping to order-unity optimizer units
//
// ✨ Families:
//   - Uniform          — flat over an interval; bounds may be ±Inf (improper)
//   - Gaussian         — normal with mean mu and standard deviation sd
//   - BoundedGaussian  — Gaussian truncated to a closed interval
//   - ComplexPrior     — two scalar parts (priors or fixed numbers) as
//     real/imaginary components of a complex parameter
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/priors/prior"
//
//	g, err := prior.NewGaussian(1, 1)
//	if err != nil { ... }
//	g.Guess()     // 1
//	g.LnProb(0)   // -1.4189385332...
//
//	shifted, err := prior.Add(g, 2)   // Gaussian(3, 1)
//
// Algebra:
//
//	The algebra is closed over affine transforms of a single family plus
//	convolution of two independent Gaussians (AddPriors). Every other
//	pairing is rejected with ErrUnsupportedOp rather than approximated.
//
// Sampling:
//
//	Sampling is deterministic under a caller-supplied source
//	(prior.NewSource(seed)); no prior owns or mutates random state, so
//	values are reproducible and instances are safe for concurrent use.
//
// Log-probability convention:
//
//	Proper distributions return exactly -Inf at zero-density points inside
//	a formally bounded domain. Improper (infinite-support) uniforms return
//	the finite sentinel ImproperLnProb (-1e6) instead, so outer optimizers
//	never see a NaN from -Inf arithmetic.
//
// Densities and draws delegate to gonum.org/v1/gonum/stat/distuv.
package prior
