// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	// Bad shapes, too few samples, bad options, malformed or contradictory prior
	ErrInvalidInput = errors.New("invalid input")

	// Singular Gram structure, zero variance residuals, non-finite scores
	ErrNumericalInstability = errors.New("numerical instability")

	// No variable was eligible under the prior knowledge in some round
	ErrPriorConstraintViolation = errors.New("prior constraint violation")
)

// PriorViolationError reports the round in which the prior knowledge left no
// eligible candidate, together with the variables that were still unordered.
type PriorViolationError struct {
	Round     int
	Remaining []int
}

func (e *PriorViolationError) Error() string {
	return fmt.Sprintf("%v: no eligible candidate in round %d, remaining variables %v",
		ErrPriorConstraintViolation, e.Round, e.Remaining)
}

// Unwrap lets errors.Is match ErrPriorConstraintViolation.
func (e *PriorViolationError) Unwrap() error { return ErrPriorConstraintViolation }

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func numericalInstability(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericalInstability, fmt.Sprintf(format, args...))
}
