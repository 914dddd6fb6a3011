// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// KernelEstimator computes a kernel based estimate of the mutual information
// between two samples. It holds no mutable state and is safe for concurrent use.
type KernelEstimator struct {
	// Width of the Gaussian kernel
	Sigma float64
	// Regularization strength, scaled by m/2 for m samples
	Kappa float64
}

// NewKernelEstimator returns an estimator for the given kernel width and
// regularization. Zero values are replaced by DefaultSigma and DefaultKappa.
func NewKernelEstimator(sigma, kappa float64) *KernelEstimator {
	if sigma == 0 {
		sigma = DefaultSigma
	}
	if kappa == 0 {
		kappa = DefaultKappa
	}
	return &KernelEstimator{Sigma: sigma, Kappa: kappa}
}

// Kernel evaluates the Gaussian kernel exp(-(a-b)^2 / (2 sigma^2)).
func (ke *KernelEstimator) Kernel(a, b float64) float64 {
	d := a - b
	return math.Exp(-(d * d) / (2 * ke.Sigma * ke.Sigma))
}

// Gram returns the m x m matrix of kernel values over all sample pairs of x.
func (ke *KernelEstimator) Gram(x []float64) *mat.Dense {
	m := len(x)
	K := mat.NewDense(m, m, nil)

	// Symmetric, so only compute the upper half
	for p := 0; p < m; p++ {
		K.Set(p, p, 1)
		for q := p + 1; q < m; q++ {
			v := ke.Kernel(x[p], x[q])
			K.Set(p, q, v)
			K.Set(q, p, v)
		}
	}
	return K
}

// CenterGram applies the projection P K P where P has (m-2)/m on the diagonal
// and -1/m elsewhere.
func CenterGram(K mat.Matrix) *mat.Dense {
	m, _ := K.Dims()
	P := centeringMatrix(m)

	var PK, PKP mat.Dense
	PK.Mul(P, K)
	PKP.Mul(&PK, P)
	return &PKP
}

func centeringMatrix(m int) *mat.Dense {
	off := -1.0 / float64(m)
	diag := float64(m-2) / float64(m)

	P := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				P.Set(i, j, diag)
			} else {
				P.Set(i, j, off)
			}
		}
	}
	return P
}

// LogDeterminant returns the sum of log|U_ii| over the diagonal of the upper
// factor of an LU decomposition of a. This is log|det a| without ever forming
// the determinant, which overflows for the Gram matrices used here.
// A zero pivot means a is singular and is reported as ErrNumericalInstability.
func LogDeterminant(a mat.Matrix) (float64, error) {
	r, c := a.Dims()
	if r != c {
		return 0, invalidInput("log-determinant of non-square %dx%d matrix", r, c)
	}
	if r == 0 {
		return 0, nil
	}

	var lu mat.LU
	lu.Factorize(a)

	var U mat.TriDense
	lu.UTo(&U)

	sum := 0.0
	for i := 0; i < r; i++ {
		d := math.Abs(U.At(i, i))
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, numericalInstability("pivot %d of %dx%d log-determinant is %v", i, r, r, U.At(i, i))
		}
		sum += math.Log(d)
	}
	return sum, nil
}

// MutualInformation estimates the mutual information between samples x and r.
// With Kx, Kr the centered Gram matrices and c = m*kappa/2 it computes
//
//	-1/2 * (logdet [[(Kx+cI)^2, Kx Kr], [Kr Kx, (Kr+cI)^2]] - logdet diag((Kx+cI)^2, (Kr+cI)^2))
//
// The result is close to 0 when x and r are independent.
func (ke *KernelEstimator) MutualInformation(x, r []float64) (float64, error) {
	m := len(x)
	if len(r) != m {
		return 0, invalidInput("mutual information of samples with lengths %d and %d", m, len(r))
	}
	if m == 0 {
		return 0, invalidInput("mutual information of empty samples")
	}

	c := float64(m) * ke.Kappa / 2

	// 1. Centered Gram matrices
	Kx := CenterGram(ke.Gram(x))
	Kr := CenterGram(ke.Gram(r))

	// 2. Squared regularized terms, (K + cI)^2
	Ax := regularize(Kx, c)
	Ar := regularize(Kr, c)
	var Ax2, Ar2 mat.Dense
	Ax2.Mul(Ax, Ax)
	Ar2.Mul(Ar, Ar)

	// 3. Cross terms
	var Kxr, Krx mat.Dense
	Kxr.Mul(Kx, Kr)
	Krx.Mul(Kr, Kx)

	// 4. Assemble the 2m x 2m numerator block matrix
	numer := mat.NewDense(2*m, 2*m, nil)
	numer.Slice(0, m, 0, m).(*mat.Dense).Copy(&Ax2)
	numer.Slice(0, m, m, 2*m).(*mat.Dense).Copy(&Kxr)
	numer.Slice(m, 2*m, 0, m).(*mat.Dense).Copy(&Krx)
	numer.Slice(m, 2*m, m, 2*m).(*mat.Dense).Copy(&Ar2)

	logNumer, err := LogDeterminant(numer)
	if err != nil {
		return 0, err
	}

	// 5. The denominator is block diagonal, so its log-determinant is the
	// sum over its two blocks
	logAx2, err := LogDeterminant(&Ax2)
	if err != nil {
		return 0, err
	}
	logAr2, err := LogDeterminant(&Ar2)
	if err != nil {
		return 0, err
	}

	mi := -0.5 * (logNumer - (logAx2 + logAr2))
	if math.IsNaN(mi) || math.IsInf(mi, 0) {
		return 0, numericalInstability("mutual information estimate is %v", mi)
	}
	return mi, nil
}

// regularize returns K + cI as a new matrix.
func regularize(K *mat.Dense, c float64) *mat.Dense {
	m, _ := K.Dims()
	A := mat.DenseCopyOf(K)
	for i := 0; i < m; i++ {
		A.Set(i, i, A.At(i, i)+c)
	}
	return A
}
