// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// exogeneity computes T(j): residualize every other member i of cands on j
// and sum MI(x_j, residual_i). A lower value means x_j looks more exogenous.
func (ke *KernelEstimator) exogeneity(cands candidateSet, j int) (float64, error) {
	xj := cands.slots[j]

	total := 0.0
	for _, i := range cands.members {
		if i == j {
			continue
		}
		r, err := Residual(cands.slots[i], xj)
		if err != nil {
			return 0, fmt.Errorf("residual of x%d on x%d: %w", i, j, err)
		}
		mi, err := ke.MutualInformation(xj, r)
		if err != nil {
			return 0, fmt.Errorf("MI between x%d and residual of x%d: %w", j, i, err)
		}
		total += mi
	}
	return total, nil
}

// selectExogenous evaluates T(j) for every member of cands using up to
// processes workers and returns the member with the smallest score. Ties go to
// the member listed first. The scores are returned in member order.
func (ke *KernelEstimator) selectExogenous(cands candidateSet, processes int) (int, []RoundScore, error) {
	if len(cands.members) == 0 {
		return 0, nil, invalidInput("no candidates to select from")
	}

	// Each worker writes only to its own position, so the slice needs no lock
	scores := make([]RoundScore, len(cands.members))

	if processes <= 1 {
		for pos, j := range cands.members {
			t, err := ke.exogeneity(cands, j)
			if err != nil {
				return 0, nil, err
			}
			scores[pos] = RoundScore{Variable: j, Score: t}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(processes)
		for pos, j := range cands.members {
			g.Go(func() error {
				t, err := ke.exogeneity(cands, j)
				if err != nil {
					return err
				}
				scores[pos] = RoundScore{Variable: j, Score: t}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, nil, err
		}
	}

	// Aggregate on the calling goroutine
	best := -1
	for pos, s := range scores {
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			return 0, nil, numericalInstability("exogeneity of x%d is %v", s.Variable, s.Score)
		}
		if best < 0 || s.Score < scores[best].Score {
			best = pos
		}
	}
	return scores[best].Variable, scores, nil
}
