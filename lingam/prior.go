// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

// Values of a prior knowledge entry
const (
	// No constraint for this pair
	PriorUnknown = -1
	// Entry (i,j) == 0: j may not be picked while i is still unordered
	PriorAbsent = 0
	// Entry (i,j) == 1: i may not be picked while j is still unordered
	PriorPresent = 1
)

// PriorKnowledge is an n x n matrix of constraints on the causal order.
// It is read-only input; the engine never modifies it. Diagonal entries carry
// no constraint.
type PriorKnowledge [][]int

// Validate checks the shape and values of pk for n variables and rejects
// contradictory pairs. A pair i != j is contradictory when pk[i][j] == pk[j][i]
// and both are 0 or 1: the two entries would then disqualify both variables
// for as long as both are unordered.
func (pk PriorKnowledge) Validate(n int) error {
	if len(pk) != n {
		return invalidInput("prior knowledge has %d rows, want %d", len(pk), n)
	}
	for i, row := range pk {
		if len(row) != n {
			return invalidInput("prior knowledge row %d has %d columns, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v != PriorUnknown && v != PriorAbsent && v != PriorPresent {
				return invalidInput("prior knowledge entry (%d,%d) is %d, want -1, 0 or 1", i, j, v)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if pk[i][j] != PriorUnknown && pk[i][j] == pk[j][i] {
				return invalidInput("prior knowledge entries (%d,%d) and (%d,%d) are both %d and contradict each other",
					i, j, j, i, pk[i][j])
			}
		}
	}
	return nil
}

// Eligible returns the members of remaining that no pair (i,j) of remaining
// variables disqualifies, keeping the order of remaining.
func (pk PriorKnowledge) Eligible(remaining []int) []int {
	if pk == nil {
		return append([]int(nil), remaining...)
	}

	disqualified := make(map[int]bool, len(remaining))
	for _, i := range remaining {
		for _, j := range remaining {
			if i == j {
				continue
			}
			switch pk[i][j] {
			case PriorPresent:
				disqualified[i] = true
			case PriorAbsent:
				disqualified[j] = true
			}
		}
	}

	eligible := make([]int, 0, len(remaining))
	for _, i := range remaining {
		if !disqualified[i] {
			eligible = append(eligible, i)
		}
	}
	return eligible
}
