package inference

import (
	"fmt"
	"math"

	"github.com/katalvlaran/priors/prior"
)

// UncertainValue is an external estimate of a parameter: a value, the
// standard deviation of that estimate, and the degrees of freedom behind
// it. It is consumed, never produced, by this module — fit results carry
// their own estimates here to update priors.
type UncertainValue struct {
	value       float64
	uncertainty float64
	dof         int
}

// NewUncertainValue validates and wraps an estimate. The uncertainty must
// be positive and the degrees of freedom at least 1.
func NewUncertainValue(value, uncertainty float64, dof int) (UncertainValue, error) {
	if math.IsNaN(value) || math.IsNaN(uncertainty) {
		return UncertainValue{}, fmt.Errorf("inference: uncertain value is NaN: %w", prior.ErrParameterSpec)
	}
	if uncertainty <= 0 {
		return UncertainValue{}, fmt.Errorf("inference: uncertainty %v must be positive: %w",
			uncertainty, prior.ErrParameterSpec)
	}
	if dof < 1 {
		return UncertainValue{}, fmt.Errorf("inference: degrees of freedom %d must be at least 1: %w",
			dof, prior.ErrParameterSpec)
	}

	return UncertainValue{value: value, uncertainty: uncertainty, dof: dof}, nil
}

// Value returns the estimated parameter value.
func (v UncertainValue) Value() float64 { return v.value }

// Uncertainty returns the raw standard deviation of the estimate.
func (v UncertainValue) Uncertainty() float64 { return v.uncertainty }

// DoF returns the degrees of freedom behind the estimate.
func (v UncertainValue) DoF() int { return v.dof }

// EffectiveUncertainty inflates the raw uncertainty by (dof+1)/dof: a
// single-degree-of-freedom estimate doubles its width, while the factor
// converges to 1 as the degrees of freedom grow.
func (v UncertainValue) EffectiveUncertainty() float64 {
	d := float64(v.dof)

	return v.uncertainty * (d + 1) / d
}
