// Package priors is a small toolbox for Bayesian parameter inference:
// prior distributions, their closed algebra, and fit-ready guess batches.
//
// 🚀 What is priors?
//
//	A library of probability distributions ("priors") describing belief
//	about physical model parameters before data arrives. It is the
//	parameter-space half of a scattering-model fitting pipeline:
//	  • Optimizer & MCMC seeding (guesses, order-unity scaling)
//	  • Log-posterior evaluation (per-parameter log densities)
//	  • Belief updating from earlier fit results
//	  • Complex-valued parameters (e.g. refractive indices)
//
// ✨ Key features:
//   - Uniform, Gaussian, BoundedGaussian and ComplexPrior families
//   - Improper (infinite-support) uniforms with stable log-probability
//   - A closed affine algebra: shift, scale, negate, convolve Gaussians
//   - Posterior updates from uncertain estimates
//   - Deterministic, seedable sampling — no global random state
//
// Everything is organized under two subpackages:
//
//	prior/     — distribution types, their densities, sampling and algebra
//	inference/ — uncertain estimates, posterior updates, guess generation
//
// Quick example:
//
//	p, _ := prior.NewGaussian(1, 1)
//	fmt.Println(p.Guess())     // 1
//	fmt.Println(p.LnProb(0))   // -1.4189385332...
//
// Densities and sampling build on gonum (gonum.org/v1/gonum/stat/distuv);
// guess batches are gonum matrices ready for an optimizer.
//
//	go get github.com/katalvlaran/priors
package priors
