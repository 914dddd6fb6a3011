// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CausalEffect returns the regression slope of a on b, Cov(a,b) / Var(b).
// This is how strongly b linearly drives a.
// Returns ErrNumericalInstability when b has zero variance.
func CausalEffect(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, invalidInput("causal effect of samples with lengths %d and %d", len(a), len(b))
	}
	if len(b) < 2 {
		return 0, invalidInput("causal effect needs at least 2 samples, got %d", len(b))
	}

	// stat uses the unbiased n-1 normalization for both, so the ratio is the
	// same as for the biased estimates
	v := stat.Variance(b, nil)
	if v == 0 || math.IsNaN(v) {
		return 0, numericalInstability("variance of regressor is %v", v)
	}
	return stat.Covariance(a, b, nil) / v, nil
}

// Residual returns a - CausalEffect(a, b) * b, the part of a that b does not
// linearly explain. The inputs are never modified.
func Residual(a, b []float64) ([]float64, error) {
	_, r, err := project(a, b)
	return r, err
}

// project returns both the effect of b on a and the residual of a given b.
func project(a, b []float64) (float64, []float64, error) {
	effect, err := CausalEffect(a, b)
	if err != nil {
		return 0, nil, err
	}

	r := make([]float64, len(a))
	for t := range a {
		r[t] = a[t] - effect*b[t]
	}
	return effect, r, nil
}
