package inference_test

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/priors/inference"
	"github.com/katalvlaran/priors/prior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldSigma is log(sqrt(0.5/pi)) - 1/2: the standard normal log density one
// standard deviation away from the mean.
const goldSigma = -1.4189385332

// TestUncertainValue_Validation rejects non-positive uncertainties and
// degrees of freedom below 1.
func TestUncertainValue_Validation(t *testing.T) {
	_, err := inference.NewUncertainValue(1, 0, 1)
	assert.ErrorIs(t, err, prior.ErrParameterSpec, "zero uncertainty must fail")

	_, err = inference.NewUncertainValue(1, -0.5, 1)
	assert.ErrorIs(t, err, prior.ErrParameterSpec, "negative uncertainty must fail")

	_, err = inference.NewUncertainValue(1, 0.5, 0)
	assert.ErrorIs(t, err, prior.ErrParameterSpec, "zero degrees of freedom must fail")

	_, err = inference.NewUncertainValue(math.NaN(), 0.5, 1)
	assert.ErrorIs(t, err, prior.ErrParameterSpec)

	v, err := inference.NewUncertainValue(1, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Value())
	assert.Equal(t, 0.5, v.Uncertainty())
	assert.Equal(t, 1, v.DoF())
}

// TestUncertainValue_EffectiveUncertainty pins the dof inflation: doubled
// at one degree of freedom, converging to the raw value as dof grows.
func TestUncertainValue_EffectiveUncertainty(t *testing.T) {
	v, err := inference.NewUncertainValue(1, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.EffectiveUncertainty())

	v, err = inference.NewUncertainValue(1, 0.5, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v.EffectiveUncertainty(), 1e-3)
}

// TestUpdated_BoundedGaussianGold pins the golden identity-update case:
// an observation at the prior's own mean keeps the mean as the guess and
// yields the closed-form single-Gaussian log density at the new width.
func TestUpdated_BoundedGaussianGold(t *testing.T) {
	p, err := prior.NewBoundedGaussian(1, 2, -1, 2)
	require.NoError(t, err)
	v, err := inference.NewUncertainValue(1, 0.5, 1)
	require.NoError(t, err)

	u, err := inference.Updated(p, v)
	require.NoError(t, err)

	assert.Equal(t, 1.0, u.Guess())
	assert.InDelta(t, goldSigma, u.LnProb(0), 1e-9)

	b, ok := u.(*prior.BoundedGaussian)
	require.True(t, ok, "the family is preserved")
	assert.Equal(t, -1.0, b.LowerBound(), "bounds are preserved unchanged")
	assert.Equal(t, 2.0, b.UpperBound())
}

// TestUpdated_Gaussian verifies the plain-Gaussian update and name
// preservation.
func TestUpdated_Gaussian(t *testing.T) {
	p, err := prior.NewGaussian(0, 3, prior.WithName("x0"))
	require.NoError(t, err)
	v, err := inference.NewUncertainValue(0.7, 0.2, 4)
	require.NoError(t, err)

	u, err := inference.Updated(p, v)
	require.NoError(t, err)

	g, ok := u.(*prior.Gaussian)
	require.True(t, ok)
	assert.Equal(t, 0.7, g.Mu())
	assert.InDelta(t, 0.25, g.Sd(), 1e-12, "sd is the dof-inflated uncertainty")
	assert.Equal(t, "x0", g.Name())
}

// TestUpdated_Uniform verifies a Uniform keeps its bounds and adopts the
// observed value as its guess.
func TestUpdated_Uniform(t *testing.T) {
	p, err := prior.NewUniform(0, 2)
	require.NoError(t, err)
	v, err := inference.NewUncertainValue(0.3, 0.1, 2)
	require.NoError(t, err)

	u, err := inference.Updated(p, v)
	require.NoError(t, err)

	uu, ok := u.(*prior.Uniform)
	require.True(t, ok)
	assert.Equal(t, 0.0, uu.LowerBound())
	assert.Equal(t, 2.0, uu.UpperBound())
	assert.Equal(t, 0.3, uu.Guess())
}

// TestUpdated_ObservationOutsideBounds surfaces the construction error
// when the observed value escapes a bounded prior's support.
func TestUpdated_ObservationOutsideBounds(t *testing.T) {
	p, err := prior.NewBoundedGaussian(1, 1, 0, 2)
	require.NoError(t, err)
	v, err := inference.NewUncertainValue(5, 0.5, 1)
	require.NoError(t, err)

	_, err = inference.Updated(p, v)
	assert.ErrorIs(t, err, prior.ErrParameterSpec)
}

// TestUpdated_OperandUnchanged verifies the update never mutates the input
// prior.
func TestUpdated_OperandUnchanged(t *testing.T) {
	p, err := prior.NewGaussian(0, 3)
	require.NoError(t, err)
	v, err := inference.NewUncertainValue(0.7, 0.2, 4)
	require.NoError(t, err)

	_, err = inference.Updated(p, v)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Mu())
	assert.Equal(t, 3.0, p.Sd())
}

// stubPrior exercises the unsupported-family default of Updated.
type stubPrior struct{}

func (stubPrior) Name() string                               { return "" }
func (stubPrior) Guess() float64                             { return 0 }
func (stubPrior) Prob(float64) float64                       { return 0 }
func (stubPrior) LnProb(float64) float64                     { return 0 }
func (stubPrior) Sample(rand.Source, int) ([]float64, error) { return nil, nil }
func (stubPrior) ScaleFactor() float64                       { return 1 }
func (stubPrior) Scale(x float64) float64                    { return x }
func (stubPrior) Unscale(x float64) float64                  { return x }
func (stubPrior) Family() prior.Family                       { return prior.Family(99) }
func (stubPrior) Equal(prior.Prior) bool                     { return false }
func (stubPrior) Close(prior.Prior, float64) bool            { return false }

// TestUpdated_UnsupportedFamily rejects families outside the update table.
func TestUpdated_UnsupportedFamily(t *testing.T) {
	v, err := inference.NewUncertainValue(1, 0.5, 1)
	require.NoError(t, err)

	_, err = inference.Updated(stubPrior{}, v)
	assert.ErrorIs(t, err, prior.ErrUnsupportedOp)
}
