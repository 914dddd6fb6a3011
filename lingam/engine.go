// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Fit runs DirectLiNGAM on X, which holds one variable per row and one sample
// per column.
func Fit(X *mat.Dense, opts Options) (*Result, error) {
	return (&DirectEstimator{}).Estimate(X, opts)
}

// FitSamples is Fit for samples stored as x[variable][sample].
// Rows of different lengths are rejected.
func FitSamples(x [][]float64, opts Options) (*Result, error) {
	if len(x) == 0 {
		return nil, invalidInput("no variables")
	}
	m := len(x[0])
	for i, row := range x {
		if len(row) != m {
			return nil, invalidInput("variable %d has %d samples, variable 0 has %d", i, len(row), m)
		}
	}
	if m == 0 {
		return nil, invalidInput("variables have no samples")
	}

	X := mat.NewDense(len(x), m, nil)
	for i, row := range x {
		X.SetRow(i, row)
	}
	return Fit(X, opts)
}

// Estimate computes the causal order and the coefficient matrix of X.
// X: n_variables x n_samples, already numeric and free of missing values
// opts: kernel parameters, worker count, prior knowledge and logger
// Returns: the Result, or an error wrapping one of the package error classes.
// No partial result is ever returned.
func (e *DirectEstimator) Estimate(X *mat.Dense, opts Options) (*Result, error) {
	// 1. Validate everything before any computation
	if X == nil {
		return nil, invalidInput("sample matrix not provided")
	}
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	slots, err := variableSlots(X)
	if err != nil {
		return nil, err
	}
	n := len(slots)
	if opts.Prior != nil {
		if err := opts.Prior.Validate(n); err != nil {
			return nil, err
		}
	}

	ke := NewKernelEstimator(opts.Sigma, opts.Kappa)
	logger := opts.Logger

	// 2. Initial state: every variable unordered, empty order, zero effects
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	order := make([]int, 0, n)
	effects := mat.NewDense(n, n, nil)
	scores := make([][]RoundScore, 0, n)

	logger.Debug("starting causal ordering",
		zap.Int("variables", n),
		zap.Int("samples", len(slots[0])),
		zap.Int("processes", opts.Processes),
		zap.Bool("prior", opts.Prior != nil),
	)

	// 3. Peel off one variable per round
	for round := 0; len(remaining) > 0; round++ {
		eligible := remaining
		if opts.Prior != nil {
			eligible = opts.Prior.Eligible(remaining)
			if len(eligible) == 0 {
				return nil, &PriorViolationError{Round: round, Remaining: slices.Clone(remaining)}
			}
		}

		k, roundScores, err := ke.selectExogenous(candidateSet{slots: slots, members: eligible}, opts.Processes)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		order = append(order, k)
		scores = append(scores, roundScores)

		// Record k's effect on every other unordered variable, then replace
		// each of them with its residual on k. Fresh slices, never in place.
		next := make([]int, 0, len(remaining)-1)
		for _, i := range remaining {
			if i == k {
				continue
			}
			effect, r, err := project(slots[i], slots[k])
			if err != nil {
				return nil, fmt.Errorf("round %d: effect of x%d on x%d: %w", round, k, i, err)
			}
			effects.Set(i, k, effect)
			slots[i] = r
			next = append(next, i)
		}
		slots[k] = nil
		remaining = next

		logger.Debug("selected variable",
			zap.Int("round", round),
			zap.Int("variable", k),
			zap.Float64("score", scoreOf(roundScores, k)),
			zap.Int("eligible", len(eligible)),
			zap.Ints("remaining", remaining),
		)
	}

	// 4. Re-express the effects in order-position space
	result := &Result{
		Order:        order,
		Coefficients: lowerTriangular(effects, order),
		Scores:       scores,
	}

	logger.Debug("causal ordering finished", zap.Ints("order", order))
	return result, nil
}

// resolveOptions fills defaults and rejects bad values.
func resolveOptions(opts Options) (Options, error) {
	if opts.Processes < 1 {
		return opts, invalidInput("processes must be >= 1, got %d", opts.Processes)
	}
	if opts.Sigma == 0 {
		opts.Sigma = DefaultSigma
	}
	if opts.Kappa == 0 {
		opts.Kappa = DefaultKappa
	}
	if !(opts.Sigma > 0) || math.IsInf(opts.Sigma, 0) {
		return opts, invalidInput("sigma must be a positive finite number, got %v", opts.Sigma)
	}
	if !(opts.Kappa > 0) || math.IsInf(opts.Kappa, 0) {
		return opts, invalidInput("kappa must be a positive finite number, got %v", opts.Kappa)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts, nil
}

// variableSlots copies each row of X into its own slice and checks that every
// variable has at least 2 finite samples and nonzero variance.
func variableSlots(X *mat.Dense) ([][]float64, error) {
	n, m := X.Dims()
	if m < 2 {
		return nil, invalidInput("need at least 2 samples per variable, got %d", m)
	}

	slots := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := mat.Row(nil, i, X)
		constant := true
		for t, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, invalidInput("variable %d sample %d is %v", i, t, v)
			}
			if v != row[0] {
				constant = false
			}
		}
		if constant {
			return nil, invalidInput("variable %d is constant, variance undefined", i)
		}
		slots[i] = row
	}
	return slots, nil
}

// lowerTriangular builds C[row][col] = B[order[row]][order[col]] for col < row.
func lowerTriangular(B *mat.Dense, order []int) *mat.Dense {
	n := len(order)
	C := mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		for col := 0; col < row; col++ {
			C.Set(row, col, B.At(order[row], order[col]))
		}
	}
	return C
}

func scoreOf(scores []RoundScore, j int) float64 {
	for _, s := range scores {
		if s.Variable == j {
			return s.Score
		}
	}
	return math.NaN()
}
