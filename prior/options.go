// Package prior: functional configuration for prior constructors.
// Defaults are the zero values; each WithX impacts behavior and is covered
// by tests.

package prior

// Option customizes a prior at construction time. Options apply to the
// constructor, not to the built value: priors stay immutable afterwards.
type Option func(*options)

// options carries constructor-time settings. Fields are unexported; public
// APIs consume ...Option.
type options struct {
	name     string
	guess    float64
	hasGuess bool
}

// WithName attaches a label to the prior, carried through algebra and
// posterior updates. Labels are purely descriptive and participate in
// Equal/Close comparisons.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithGuess overrides the default representative point estimate. Only
// Uniform accepts it (the Gaussian family derives its guess from mu); the
// guess must lie within the bounds or construction fails with
// ErrParameterSpec.
func WithGuess(guess float64) Option {
	return func(o *options) {
		o.guess = guess
		o.hasGuess = true
	}
}

// gatherOptions folds opts into their defaults.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
