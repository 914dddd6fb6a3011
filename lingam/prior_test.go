// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unknownPrior returns an n x n prior with no constraints
func unknownPrior(n int) PriorKnowledge {
	pk := make(PriorKnowledge, n)
	for i := range pk {
		pk[i] = make([]int, n)
		for j := range pk[i] {
			pk[i][j] = PriorUnknown
		}
	}
	return pk
}

func TestPriorValidate(t *testing.T) {
	ok := unknownPrior(3)
	ok[1][0] = PriorPresent
	ok[0][1] = PriorAbsent
	ok[2][2] = PriorPresent // diagonal carries no constraint
	require.NoError(t, ok.Validate(3))

	tests := []struct {
		name string
		pk   PriorKnowledge
		n    int
	}{
		{"too few rows", unknownPrior(2), 3},
		{"ragged row", PriorKnowledge{{-1, -1}, {-1}}, 2},
		{"bad value", PriorKnowledge{{-1, 2}, {-1, -1}}, 2},
		{"both present", PriorKnowledge{{-1, 1}, {1, -1}}, 2},
		{"both absent", PriorKnowledge{{-1, 0}, {0, -1}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pk.Validate(tt.n)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPriorEligible(t *testing.T) {
	// Nil prior: everything is eligible
	var none PriorKnowledge
	assert.Equal(t, []int{0, 2, 3}, none.Eligible([]int{0, 2, 3}))

	pk := unknownPrior(4)
	// 0 waits for 1
	pk[0][1] = PriorPresent
	// 3 waits for 2, stated from 2's row
	pk[2][3] = PriorAbsent

	assert.Equal(t, []int{1, 2}, pk.Eligible([]int{0, 1, 2, 3}))

	// Once 1 and 2 are gone the constraints no longer apply
	assert.Equal(t, []int{0, 3}, pk.Eligible([]int{0, 3}))
	assert.Equal(t, []int{0, 2}, pk.Eligible([]int{0, 2, 3}))

	// A lone variable is always eligible, even with a diagonal entry
	pk[1][1] = PriorPresent
	assert.Equal(t, []int{1}, pk.Eligible([]int{1}))
}

func TestPriorEligibleCanBeEmpty(t *testing.T) {
	pk := unknownPrior(3)
	pk[0][1] = PriorPresent
	pk[1][2] = PriorPresent
	pk[2][0] = PriorPresent
	require.NoError(t, pk.Validate(3))

	assert.Empty(t, pk.Eligible([]int{0, 1, 2}))
}
