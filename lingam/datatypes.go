// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Default kernel parameters, taken from the DirectLiNGAM kernel paper
const (
	DefaultSigma = 0.5
	DefaultKappa = 0.02
)

// Options controls one run of the ordering engine.
type Options struct {
	// Width of the Gaussian kernel (0 means DefaultSigma)
	Sigma float64

	// Regularization strength of the MI estimate (0 means DefaultKappa)
	Kappa float64

	// How many workers evaluate candidates in a round, must be >= 1
	Processes int

	// Optional prior knowledge, nil means no constraints
	Prior PriorKnowledge

	// Logger for per-round diagnostics, nil means no logging
	Logger *zap.Logger
}

// RoundScore is the exogeneity statistic T(j) of one candidate in one round.
type RoundScore struct {
	Variable int
	Score    float64
}

// Result holds the output of a causal discovery run.
type Result struct {
	// Causal order, exogenous variables first. Order[p] is an original variable index.
	Order []int

	// Strictly lower triangular n x n matrix in order-position space:
	// Coefficients[i][j] is the effect of Order[j] on Order[i].
	Coefficients *mat.Dense

	// Scores[r] holds T(j) for every eligible candidate evaluated in round r
	Scores [][]RoundScore
}

// Estimator is the interface for a causal order estimator.
type Estimator interface {
	// Turns variable-major samples (n_variables x n_samples) into a causal order
	Estimate(X *mat.Dense, opts Options) (*Result, error)
}

// DirectEstimator implements the DirectLiNGAM estimator with a kernel based
// mutual information criterion.
type DirectEstimator struct{}

// candidateSet is a read-only view of the variables still in play.
// slots is indexed by original variable index, members lists the indices
// taking part in the current evaluation in ascending order.
type candidateSet struct {
	slots   [][]float64
	members []int
}
